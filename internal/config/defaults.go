// Package config provides default values shared by monctl and monstub, so the
// CLI talks to a locally started stub without extra flags.
package config

const (
	// DefaultAPIHost is the control API host monctl connects to
	DefaultAPIHost = "127.0.0.1"

	// DefaultAPIPort is the control API port. monstub listens here by default.
	DefaultAPIPort = 8080

	// DefaultListenAddr is the monstub listen address
	DefaultListenAddr = "127.0.0.1:8080"

	// DefaultLogLevel is the default log level for all components
	DefaultLogLevel = "INFO"

	// DefaultTimeoutSeconds bounds each HTTP request; 0 disables the bound
	DefaultTimeoutSeconds = 8

	// EnvPrefix prefixes environment variables read by monctl (MONCTL_HOST, ...)
	EnvPrefix = "MONCTL"
)
