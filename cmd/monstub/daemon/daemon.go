// Package daemon runs the monstub control API server.
//
// Run builds the topology, starts the HTTP server on the configured listen
// address and blocks until SIGINT/SIGTERM or context cancellation, then shuts
// the server down gracefully.
package daemon

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/concave-dev/monctl/cmd/monstub/config"
	"github.com/concave-dev/monctl/internal/api"
	"github.com/concave-dev/monctl/internal/logging"
	"github.com/concave-dev/monctl/internal/state"
)

// ShutdownTimeout bounds graceful shutdown of in-flight requests.
const ShutdownTimeout = 5 * time.Second

// buildAPIConfig converts the daemon config into the API server config.
func buildAPIConfig(cfg *config.Config, store *state.Store) *api.Config {
	apiConfig := api.DefaultConfig()

	apiConfig.BindAddr = cfg.BindAddr
	apiConfig.BindPort = cfg.BindPort
	apiConfig.User = cfg.User
	apiConfig.Password = cfg.Password
	apiConfig.Store = store

	return apiConfig
}

// Start builds the state store and starts the API server. The caller owns
// shutdown of the returned server.
func Start(cfg *config.Config) (*api.Server, error) {
	idx, err := cfg.BuildTopology()
	if err != nil {
		return nil, err
	}
	logging.Info("Loaded topology with %d hosts", idx.Len())

	apiConfig := buildAPIConfig(cfg, state.NewStore(idx))
	if err := apiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid API config: %w", err)
	}

	server := api.NewServer(apiConfig)
	if err := server.Start(); err != nil {
		return nil, err
	}
	return server, nil
}

// Run starts monstub and blocks until a shutdown signal arrives or ctx is
// cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	// net/http reports connection errors through the standard logger
	logging.RedirectStandardLog(logging.NewLevelWriter("WARN", "http"))

	server, err := Start(cfg)
	if err != nil {
		return err
	}

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	logging.Success("monstub serving control API at %s", server.URL())
	if cfg.User != "" {
		logging.Info("Basic auth enabled for user '%s'", cfg.User)
	}
	logging.Info("Press Ctrl+C to shutdown")

	select {
	case sig := <-sigCh:
		logging.Info("Received signal: %v", sig)
	case <-ctx.Done():
		logging.Info("Context cancelled")
	}

	logging.Info("Initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error("Error shutting down API server: %v", err)
		return err
	}

	logging.Success("monstub shutdown completed")
	return nil
}
