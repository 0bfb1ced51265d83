// Package commands provides the complete command tree implementation for monctl.
//
// The tree is built per invocation by NewRootCommand around a single
// config.Options value: global flags bind into it, PersistentPreRunE fills the
// rest from the config file and environment and validates it, and each
// command's RunE hands it to a fresh handlers.Handler.
//
// COMMAND STRUCTURE:
//   - hosts, services: listings answered from the topology snapshot
//   - enable/disable-notifications, enable/disable-checks, cancel-downtime:
//     target-only control actions with --recursive
//   - schedule-downtime, acknowledge-problem: control actions with options
//   - --raw: verb and key=value parameters sent straight to the API
//
// Command names may be abbreviated to any unambiguous prefix; see ExpandArgs.
package commands

import (
	"io"

	"github.com/concave-dev/monctl/cmd/monctl/config"
	"github.com/concave-dev/monctl/cmd/monctl/handlers"
	"github.com/concave-dev/monctl/internal/action"
	defaults "github.com/concave-dev/monctl/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the monctl command tree. Command output is written
// to out.
func NewRootCommand(opts *config.Options, out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "monctl [command]",
		Short: "Command-line control for a monitoring server's control API",
		Long: `monctl (monitoring control) issues control actions against a monitoring
server's JSON-over-HTTP control API: acknowledge problems, schedule and
cancel downtime, enable and disable checks and notifications, and list the
hosts and services the server knows.

Host and service arguments are resolved against the server's topology before
any action is sent. Command names may be abbreviated to any unambiguous prefix.`,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		Example: `  # List hosts and the services of one host
  monctl hosts
  monctl services web01

  # Acknowledge a service problem without notifying contacts
  monctl acknowledge-problem web01 HTTP --comment="looking into it" --notify=false

  # Schedule two hours of downtime on a host and all its services
  monctl schedule-downtime web01 2h --recursive --comment="kernel upgrade"

  # Prefixes work when unambiguous
  monctl sched web01 PING 50m

  # Talk to a remote server with basic auth
  monctl --url=https://nagios.example.com/api --user=ops --password=secret hosts

  # Send a raw API call
  monctl --raw cancel_downtime 17`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(cmd.Flags(), opts); err != nil {
				return err
			}
			return config.Validate(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Raw {
				return handlers.New(opts, out).Raw(cmd.Context(), args)
			}
			if len(args) == 0 {
				return cmd.Help()
			}
			// Anything reaching here did not name a command.
			_, err := action.DefaultRegistry().Lookup(args[0])
			return err
		},
	}
	rootCmd.SetOut(out)

	SetupGlobalFlags(rootCmd, opts)
	SetupCommands(rootCmd, opts, out)

	return rootCmd
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command, opts *config.Options) {
	flags := rootCmd.PersistentFlags()

	flags.StringVar(&opts.Host, "host", defaults.DefaultAPIHost,
		"Control API host")
	flags.IntVar(&opts.Port, "port", defaults.DefaultAPIPort,
		"Control API port")
	flags.StringVar(&opts.User, "user", "",
		"Basic auth user")
	flags.StringVar(&opts.Password, "password", "",
		"Basic auth password")
	flags.StringVar(&opts.URL, "url", "",
		"Control API base URL, overrides --host and --port")
	flags.BoolVar(&opts.Raw, "raw", false,
		"Send a verb, optional object id and key=value parameters as-is")

	flags.StringVar(&opts.ConfigFile, "config", "",
		"Config file (default ~/.config/monctl/config.yaml)")
	flags.StringVar(&opts.LogLevel, "log-level", "ERROR",
		"Log level: DEBUG, INFO, WARN, ERROR")
	flags.IntVar(&opts.Timeout, "timeout", defaults.DefaultTimeoutSeconds,
		"Request timeout in seconds")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false,
		"Show verbose output")
	flags.StringVarP(&opts.Output, "output", "o", "table",
		"Output format: table, json")
}

// SetupCommands adds one subcommand per registered command to rootCmd.
func SetupCommands(rootCmd *cobra.Command, opts *config.Options, out io.Writer) {
	for _, spec := range action.Commands {
		rootCmd.AddCommand(newCommand(spec, opts, out))
	}
}
