// Package api provides the HTTP control API served by monstub.
//
// This file defines configuration structures and validation logic for the
// stand-in control API server. The server speaks the same wire format as a
// monitoring server's control API: every call is "/<verb>/[<id>]", request
// parameters arrive as a JSON object body, and every response is a JSON
// envelope {"success": bool, "content": ...}.
//
// The configuration carries network binding settings, optional basic auth
// credentials and the state store the handlers operate on.
package api

import (
	"fmt"

	"github.com/concave-dev/monctl/internal/config"
	"github.com/concave-dev/monctl/internal/state"
	"github.com/concave-dev/monctl/internal/validate"
)

// Config holds all configuration parameters required for running the control
// API server.
//
// User and Password enable HTTP basic auth when User is non-empty; requests
// with missing or wrong credentials get a 401. BindPort 0 lets the OS choose a
// port, which tests rely on.
type Config struct {
	BindAddr string       // HTTP server bind address (e.g., "127.0.0.1")
	BindPort int          // HTTP server bind port, 0 for OS-assigned
	User     string       // Basic auth user (empty disables auth)
	Password string       // Basic auth password
	Store    *state.Store // Monitoring state served and mutated by handlers
}

// DefaultConfig creates a new Config instance with loopback binding and the
// default control API port. Store must be set by the caller.
func DefaultConfig() *Config {
	return &Config{
		BindAddr: config.DefaultAPIHost,
		BindPort: config.DefaultAPIPort,
		Store:    nil, // Must be set by caller
	}
}

// Validate checks that the server can start: a bind address, a port in range
// and a state store.
func (c *Config) Validate() error {
	if err := validate.ValidateRequiredString(c.BindAddr, "bind address"); err != nil {
		return err
	}
	if err := validate.ValidateField(c.BindPort, "min=0,max=65535"); err != nil {
		return fmt.Errorf("bind port validation failed: %w", err)
	}
	if c.Password != "" && c.User == "" {
		return fmt.Errorf("password given without user")
	}
	if c.Store == nil {
		return fmt.Errorf("state store cannot be nil")
	}

	return nil
}
