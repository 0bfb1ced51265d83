// Package commands provides the CLI command structure for the monstub daemon.
//
// monstub has a single root command: it parses flags into a Config, sets up
// logging (optionally to a file), validates the configuration and runs the
// daemon until it is told to stop.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/concave-dev/monctl/cmd/monstub/config"
	"github.com/concave-dev/monctl/cmd/monstub/daemon"
	"github.com/concave-dev/monctl/cmd/monstub/utils"
	"github.com/concave-dev/monctl/internal/logging"
	"github.com/concave-dev/monctl/internal/version"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the monstub root command around cfg.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	// Log file handle, closed when the daemon returns
	var logFile *os.File

	cleanupLogFile := func() {
		if logFile != nil {
			if err := logFile.Close(); err != nil {
				// Use fmt.Fprintf since the logger may point at the closed file
				fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
			}
			logFile = nil
		}
	}

	cmd := &cobra.Command{
		Use:   "monstub",
		Short: "In-memory stand-in for a monitoring server's control API",
		Long: `monstub (monitoring stub) serves the JSON-over-HTTP control API that monctl
talks to, backed by an in-memory topology and state.

It records scheduled downtimes, acknowledgements and check/notification flags
so control actions can be exercised locally. Nothing is persisted.`,
		Version:      version.MonstubVersion,
		SilenceUsage: true, // Don't show usage on errors
		Args:         cobra.NoArgs,
		Example: `  # Serve two hosts on the default address
  monstub --object=web01=HTTP,PING --object=db01=MySQL

  # Serve a topology file with basic auth on a random port
  monstub --topology=hosts.yaml --listen=127.0.0.1:0 --user=ops --password=secret`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			utils.DisplayBanner(cmd.OutOrStdout(), version.MonstubVersion)
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if cfg.LogFile != "" {
				if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
					return fmt.Errorf("failed to create log directory: %w", err)
				}
				var err error
				logFile, err = os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
				if err != nil {
					return fmt.Errorf("failed to open log file %s: %w", cfg.LogFile, err)
				}
				logging.SetOutput(logFile)
			}

			// DEBUG=true overrides --log-level for development
			if os.Getenv("DEBUG") == "true" {
				cfg.LogLevel = "DEBUG"
			}

			if err := cfg.Validate(); err != nil {
				cleanupLogFile()
				return err
			}
			logging.SetLevel(cfg.LogLevel)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer cleanupLogFile()
			return daemon.Run(cmd.Context(), cfg)
		},
	}

	SetupFlags(cmd, cfg)
	return cmd
}
