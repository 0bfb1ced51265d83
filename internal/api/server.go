package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/concave-dev/monctl/internal/api/handlers"
	"github.com/concave-dev/monctl/internal/logging"
	"github.com/concave-dev/monctl/internal/netutil"
	"github.com/concave-dev/monctl/internal/state"
	"github.com/concave-dev/monctl/internal/version"
	"github.com/gin-gonic/gin"
)

// Represents the monstub control API server
type Server struct {
	store      *state.Store
	httpServer *http.Server
	listener   net.Listener
	bindAddr   string
	bindPort   int
	user       string
	password   string
	startTime  time.Time
}

// NewServer creates a new control API server instance
func NewServer(config *Config) *Server {
	// Set Gin to release mode for production
	gin.SetMode(gin.ReleaseMode)

	return &Server{
		store:     config.Store,
		bindAddr:  config.BindAddr,
		bindPort:  config.BindPort,
		user:      config.User,
		password:  config.Password,
		startTime: time.Now(),
	}
}

// Router builds the gin engine with middleware and routes. Tests serve it
// through httptest without binding a port.
func (s *Server) Router() *gin.Engine {
	router := gin.New()

	// Configure Gin logging only if not already configured by CLI tools
	if !logging.IsConfiguredByCLI() {
		gin.DefaultWriter = logging.NewLevelWriter("INFO", "gin")
		gin.DefaultErrorWriter = logging.NewLevelWriter("ERROR", "gin")
	}

	// Add middleware
	router.Use(s.requestIDMiddleware())
	router.Use(s.loggingMiddleware())
	router.Use(gin.Recovery())
	if s.user != "" {
		router.Use(s.authMiddleware())
	}

	// Setup routes
	s.setupRoutes(router)

	return router
}

// Start binds the listener and serves the control API in the background.
// Binding happens before Start returns so a busy port fails immediately.
func (s *Server) Start() error {
	listener, port, err := netutil.BindTCP(s.bindAddr, s.bindPort)
	if err != nil {
		return fmt.Errorf("failed to bind control API listener: %w", err)
	}
	s.listener = listener
	s.bindPort = port

	logging.Info("Starting control API server on %s", s.Addr())

	s.httpServer = &http.Server{
		Handler: s.Router(),
		// Timeouts for production
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logging.Error("HTTP server failed: %v", err)
		}
	}()

	logging.Success("Control API server started on %s", s.Addr())
	return nil
}

// Addr returns "host:port" of the bound listener, or of the configured
// address before Start.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.bindAddr, strconv.Itoa(s.bindPort))
}

// URL returns the base URL clients should use.
func (s *Server) URL() string {
	return "http://" + s.Addr()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down control API server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

// getHandlerHealth is a health endpoint handler factory
func (s *Server) getHandlerHealth() gin.HandlerFunc {
	return handlers.HandleHealth(version.MonstubVersion, s.startTime)
}
