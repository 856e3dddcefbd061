package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"

	config "github.com/drummonds/notfound/config"
	"github.com/drummonds/notfound/webapp"
)

// maxPortRetries is how many consecutive ports Start tries before giving up
const maxPortRetries = 5

// Server wraps the Echo instance together with its configuration
type Server struct {
	Echo   *echo.Echo
	Config config.ServerConfig
	Logger *slog.Logger
}

// New creates the Echo server with middleware, routes and the route miss handler
func New(cfg config.ServerConfig, logger *slog.Logger) *Server {
	s := &Server{Config: cfg, Logger: logger}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.HTTPErrorHandler
	s.Echo = e

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return ulid.Make().String() },
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.Logger.Debug("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"requestID", v.RequestID)
			return nil
		},
	}))
	e.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig))

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.Echo
	appHandler := webapp.Handler(s.Config.AppName)

	// go-app specific resources
	e.GET("/app.js", echo.WrapHandler(appHandler))
	e.GET("/app.css", echo.WrapHandler(appHandler))
	e.GET("/app-worker.js", echo.WrapHandler(appHandler))
	e.GET("/manifest.webmanifest", echo.WrapHandler(appHandler))

	// wasm_exec.js and app.wasm are build outputs, so they are read from disk
	e.File("/wasm_exec.js", filepath.Join(s.Config.StaticDir, "wasm_exec.js"))
	e.Static("/web", s.Config.StaticDir)

	e.GET(webapp.StylesheetPath, func(c echo.Context) error {
		return c.Blob(http.StatusOK, "text/css; charset=utf-8", webapp.Stylesheet())
	})

	e.GET("/api/health", s.Health)

	// Only "/" is routed to the app, everything else is a route miss
	e.GET("/", echo.WrapHandler(appHandler))
}

// Health reports that the server is up
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// HTTPErrorHandler serves the not found page for route misses and defers
// everything else to Echo's default handler
func (s *Server) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}

	if code != http.StatusNotFound {
		s.Echo.DefaultHTTPErrorHandler(err, c)
		return
	}

	path := c.Request().URL.Path
	s.Logger.Info("Route not found",
		"path", path,
		"method", c.Request().Method,
		"requestID", c.Response().Header().Get(echo.HeaderXRequestID))

	var writeErr error
	if strings.HasPrefix(path, "/api/") {
		writeErr = c.JSON(http.StatusNotFound, map[string]string{
			"error":   "Not Found",
			"message": "The requested API endpoint does not exist",
			"path":    path,
		})
	} else {
		writeErr = c.HTMLBlob(http.StatusNotFound, webapp.NotFoundDocument())
	}
	if writeErr != nil {
		s.Logger.Error("Failed to write not found response", "path", path, "error", writeErr)
	}
}

// Start binds the configured address, moving to the next port when the
// current one is already in use. It blocks until the server stops.
func (s *Server) Start() error {
	startPort := s.Config.ListenAddrPort
	if s.Config.ListenAddrIP == "" {
		s.Logger.Info("No Ip Addr set, binding on ALL addresses")
	}

	for attempt := 0; attempt < maxPortRetries; attempt++ {
		addr := s.Config.Addr()
		s.Logger.Info("Attempting to start server", "address", addr, "attempt", attempt+1)

		err := s.Echo.Start(addr)
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		if !isAddressInUse(err) {
			return fmt.Errorf("start server on %s: %w", addr, err)
		}

		s.Logger.Warn("Port already in use, trying next port",
			"port", s.Config.ListenAddrPort,
			"attempt", attempt+1,
			"max_attempts", maxPortRetries)

		next, err := nextPort(s.Config.ListenAddrPort)
		if err != nil {
			return err
		}
		s.Config.ListenAddrPort = next
	}

	return fmt.Errorf("no free port found after %d attempts starting at %s", maxPortRetries, startPort)
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}

// nextPort returns the port number after port
func nextPort(port string) (string, error) {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", fmt.Errorf("invalid port %q: %w", port, err)
	}
	return strconv.Itoa(portNum + 1), nil
}

// isAddressInUse checks if the error is due to address already in use
func isAddressInUse(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "address already in use")
}
