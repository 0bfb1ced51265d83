// Package commands contains Cobra CLI command definitions for monstub.
package commands

import (
	"github.com/concave-dev/monctl/cmd/monstub/config"
	"github.com/spf13/cobra"
)

// SetupFlags configures all command line flags for the daemon
func SetupFlags(cmd *cobra.Command, cfg *config.Config) {
	// Network flags
	cmd.Flags().StringVar(&cfg.ListenAddr, "listen", config.DefaultListen,
		"Address and port to serve the control API on (e.g., 127.0.0.1:8080)\n"+
			"Port 0 picks a free port")

	// Topology flags
	cmd.Flags().StringVar(&cfg.TopologyFile, "topology", "",
		"YAML file with a 'hosts:' mapping of host name to service names")
	cmd.Flags().StringArrayVar(&cfg.Objects, "object", nil,
		"Host and its services as host=svc1,svc2 (repeatable, merged with --topology)")

	// Auth flags
	cmd.Flags().StringVar(&cfg.User, "user", "",
		"Require HTTP basic auth with this user")
	cmd.Flags().StringVar(&cfg.Password, "password", "",
		"Basic auth password")

	// Operational flags
	cmd.Flags().StringVar(&cfg.LogLevel, "log-level", config.DefaultLogLevel,
		"Log level: DEBUG, INFO, WARN, ERROR")
	cmd.Flags().StringVar(&cfg.LogFile, "log-file", "",
		"Write logs to this file instead of stdout/stderr")
}
