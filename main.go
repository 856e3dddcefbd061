package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	config "github.com/drummonds/notfound/config"
	"github.com/drummonds/notfound/server"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// injectGlobals injects all of our globals into their packages
func injectGlobals(logger *slog.Logger) {
	Logger = logger
	config.Logger = Logger
}

func main() {
	serverConfig, logger := config.SetupServer()
	injectGlobals(logger)

	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Printf("   %s\n", serverConfig.AppName)
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Server will start on: %s\n", serverConfig.Addr())
	if serverConfig.ListenAddrIP == "" {
		fmt.Println("(Listening on all network interfaces)")
	}
	fmt.Println(strings.Repeat("=", 50) + "\n")

	err := run(serverConfig)
	if err != nil {
		Logger.Error("Server exited with error", "error", err)
	} else {
		Logger.Info("Server stopped")
	}
	config.CloseLog()
	if err != nil {
		os.Exit(1)
	}
}

// run serves until the server fails or SIGINT/SIGTERM arrives
func run(serverConfig config.ServerConfig) error {
	srv := server.New(serverConfig, Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	Logger.Info("Shutting down server", "timeout", serverConfig.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverConfig.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return <-errCh
}
