package commands

import (
	"io"

	"github.com/concave-dev/monctl/cmd/monctl/config"
	"github.com/concave-dev/monctl/cmd/monctl/handlers"
	"github.com/concave-dev/monctl/internal/action"
	"github.com/spf13/cobra"
)

// newCommand builds the cobra command for spec. Target resolution happens in
// the handler, so targeted commands accept any number of positional args and
// report resolution failures with typed errors.
func newCommand(spec action.Spec, opts *config.Options, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   spec.Name + " " + usageArgs(spec.Name),
		Short: spec.Summary,
		Args:  cobra.ArbitraryArgs,
	}

	switch spec.Name {
	case action.CmdHosts:
		cmd.Args = cobra.NoArgs
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			return handlers.New(opts, out).Hosts(cmd.Context())
		}

	case action.CmdServices:
		cmd.Args = cobra.MaximumNArgs(1)
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			return handlers.New(opts, out).Services(cmd.Context(), args)
		}

	case action.CmdScheduleDowntime:
		var dtOpts action.DowntimeOptions
		cmd.Flags().BoolVar(&dtOpts.Recursive, "recursive", false, "Apply to the host and all of its services")
		cmd.Flags().StringVar(&dtOpts.Author, "author", "", "Downtime author")
		cmd.Flags().StringVar(&dtOpts.Comment, "comment", "", "Downtime comment")
		cmd.Example = `  # Two hours on a single service
  monctl schedule-downtime web01 HTTP 2h

  # One day on a host and all its services
  monctl schedule-downtime web01 1d --recursive --comment="rack move"`
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			return handlers.New(opts, out).ScheduleDowntime(cmd.Context(), args, dtOpts)
		}

	case action.CmdAcknowledgeProblem:
		var ackOpts action.AckOptions
		var sticky, notify, persistent bool
		cmd.Flags().StringVar(&ackOpts.Comment, "comment", "", "Acknowledgement comment (required)")
		cmd.Flags().StringVar(&ackOpts.Author, "author", "", "Acknowledgement author")
		cmd.Flags().BoolVar(&sticky, "sticky", true, "Keep the acknowledgement until the object recovers")
		cmd.Flags().BoolVar(&notify, "notify", true, "Notify contacts about the acknowledgement")
		cmd.Flags().BoolVar(&persistent, "persistent", false, "Keep the acknowledgement comment across restarts")
		cmd.Example = `  monctl acknowledge-problem web01 HTTP --comment="investigating"
  monctl acknowledge-problem db01 --comment="known issue" --sticky=false --persistent`
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			ackOpts.Sticky = action.ToggleFrom(sticky, flags.Changed("sticky"))
			ackOpts.Notify = action.ToggleFrom(notify, flags.Changed("notify"))
			ackOpts.Persistent = action.ToggleFrom(persistent, flags.Changed("persistent"))
			return handlers.New(opts, out).Acknowledge(cmd.Context(), args, ackOpts)
		}

	default:
		var targetOpts action.TargetOptions
		cmd.Flags().BoolVar(&targetOpts.Recursive, "recursive", false, "Apply to the host and all of its services")
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			return handlers.New(opts, out).Targeted(cmd.Context(), spec, args, targetOpts)
		}
	}

	forwardRaw(cmd, opts, out)
	return cmd
}

// forwardRaw makes cmd pass its own name and arguments through as a raw verb
// when --raw is set, so verbs that share a name with a command still reach
// the server untouched.
func forwardRaw(cmd *cobra.Command, opts *config.Options, out io.Writer) {
	baseArgs, baseRun := cmd.Args, cmd.RunE
	cmd.Args = func(cmd *cobra.Command, args []string) error {
		if opts.Raw {
			return nil
		}
		return baseArgs(cmd, args)
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if opts.Raw {
			raw := append([]string{cmd.Name()}, args...)
			return handlers.New(opts, out).Raw(cmd.Context(), raw)
		}
		return baseRun(cmd, args)
	}
}

func usageArgs(name string) string {
	switch name {
	case action.CmdHosts:
		return ""
	case action.CmdServices:
		return "<host>"
	case action.CmdScheduleDowntime:
		return "<host> [service] <duration>"
	default:
		return "<host> [service]"
	}
}
