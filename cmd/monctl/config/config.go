// Package config provides configuration management for the monctl CLI.
//
// Options are bound to cobra flags by the commands package and may be filled
// from a YAML config file or MONCTL_* environment variables. A single Options
// value is created per invocation and passed explicitly to handlers and the
// API client.
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/concave-dev/monctl/internal/version"
)

// Version returns the current monctl CLI version from the centralized version package
var Version = version.MonctlVersion

// Options holds the global CLI configuration for one invocation.
type Options struct {
	Host     string // Control API host
	Port     int    // Control API port
	User     string // Basic auth user (empty disables auth)
	Password string // Basic auth password
	URL      string // Full base URL, overrides Host/Port
	Raw      bool   // Pass verb and key=value params straight to the API

	ConfigFile string // Explicit config file path
	LogLevel   string // Log level for CLI operations
	Timeout    int    // Request timeout in seconds, 0 for none
	Verbose    bool   // Show info logs
	Output     string // Output format: table, json
}

// BaseURL returns the control API base URL without a trailing slash.
func (o *Options) BaseURL() string {
	if o.URL != "" {
		return strings.TrimRight(o.URL, "/")
	}
	return fmt.Sprintf("http://%s", net.JoinHostPort(o.Host, strconv.Itoa(o.Port)))
}

// RequestTimeout returns Timeout as a duration.
func (o *Options) RequestTimeout() time.Duration {
	return time.Duration(o.Timeout) * time.Second
}

// JSONOutput reports whether results should be rendered as JSON.
func (o *Options) JSONOutput() bool {
	return o.Output == "json"
}
