package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger

// logFile is the LOG_FILE opened when LOG_OUTPUT=file, closed by CloseLog
var logFile *os.File

// ServerConfig contains all of the server settings
type ServerConfig struct {
	ListenAddrIP    string
	ListenAddrPort  string
	AppName         string
	StaticDir       string // directory holding app.wasm and wasm_exec.js
	ShutdownTimeout time.Duration
}

// Addr returns the host:port the server binds to
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.ListenAddrIP, c.ListenAddrPort)
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

// SetupServer loads configuration and returns ServerConfig and Logger
func SetupServer() (ServerConfig, *slog.Logger) {
	// Load .env file (silently ignore if doesn't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("config.env")

	logger := setupLogging()
	Logger = logger

	serverConfigLive := ServerConfig{}
	serverConfigLive.ListenAddrPort = getEnv("SERVER_PORT", "8000")
	serverConfigLive.ListenAddrIP = getEnv("SERVER_ADDR", "")
	serverConfigLive.AppName = getEnv("APP_NAME", "notfound")
	serverConfigLive.StaticDir = filepath.ToSlash(getEnv("STATIC_DIR", "web"))
	serverConfigLive.ShutdownTimeout = time.Duration(getEnvInt("SHUTDOWN_TIMEOUT", 10)) * time.Second

	Logger.Info("Server configuration loaded",
		"addr", serverConfigLive.Addr(),
		"appName", serverConfigLive.AppName,
		"staticDir", serverConfigLive.StaticDir)

	return serverConfigLive, logger
}

// parseLogLevel maps a LOG_LEVEL value to a slog level, defaulting to info
func parseLogLevel(logLevel string) slog.Level {
	switch logLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupLogging configures the application logger
func setupLogging() *slog.Logger {
	handlerOptions := &slog.HandlerOptions{Level: parseLogLevel(getEnv("LOG_LEVEL", "info"))}

	var logWriter io.Writer = os.Stdout
	var openErr error
	if getEnv("LOG_OUTPUT", "stdout") == "file" {
		logFile, openErr = openLogFile(getEnv("LOG_FILE", "notfound.log"))
		if openErr == nil {
			logWriter = logFile
		}
	}

	logger := slog.New(slog.NewTextHandler(logWriter, handlerOptions))
	if openErr != nil {
		logger.Warn("Failed to open log file, logging to stdout", "error", openErr)
	} else if logFile != nil {
		fmt.Println("Logging to file: ", logFile.Name())
	}
	return logger
}

// openLogFile opens name for appending, creating it if needed
func openLogFile(name string) (*os.File, error) {
	logPath, err := filepath.Abs(filepath.ToSlash(name))
	if err != nil {
		return nil, fmt.Errorf("log file path %q: %w", name, err)
	}
	return os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
}

// CloseLog closes the log file opened by SetupServer. It is a no-op when
// logging goes to stdout.
func CloseLog() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	if err != nil && Logger != nil {
		Logger.Warn("Failed to close log file", "error", err)
	}
	return err
}
