package handlers

import (
	"context"
	"time"

	"github.com/concave-dev/monctl/internal/action"
	"github.com/concave-dev/monctl/internal/duration"
	"github.com/concave-dev/monctl/internal/logging"
	"github.com/concave-dev/monctl/internal/topology"
	"github.com/dustin/go-humanize"
)

// resolveTarget fetches the topology and consumes the host/service target
// from the front of args.
func (h *Handler) resolveTarget(ctx context.Context, args []string) (topology.Target, []string, error) {
	idx, err := h.fetchTopology(ctx)
	if err != nil {
		return topology.Target{}, nil, err
	}

	target, rest, err := topology.Resolve(args, idx)
	if err != nil {
		return topology.Target{}, nil, err
	}
	logging.Debug("Resolved target %s with %d remaining arguments", target, len(rest))
	return target, rest, nil
}

// Targeted runs a command whose only options are the target and --recursive:
// enable/disable notifications, enable/disable checks and cancel-downtime.
func (h *Handler) Targeted(ctx context.Context, spec action.Spec, args []string, opts action.TargetOptions) error {
	h.begin()

	target, rest, err := h.resolveTarget(ctx, args)
	if err != nil {
		return err
	}
	if err := action.CheckExtraArgs(target, rest); err != nil {
		return err
	}
	if err := opts.Validate(target); err != nil {
		return err
	}

	req := action.BuildTargeted(spec, target, opts)
	if err := h.send(ctx, req); err != nil {
		return err
	}

	logging.Success("%s succeeded for %s", spec.Name, describeTarget(target, opts.Recursive))
	return nil
}

// ScheduleDowntime runs schedule-downtime. The duration is the first
// positional argument after the target.
func (h *Handler) ScheduleDowntime(ctx context.Context, args []string, opts action.DowntimeOptions) error {
	h.begin()

	target, rest, err := h.resolveTarget(ctx, args)
	if err != nil {
		return err
	}
	if err := opts.Validate(target); err != nil {
		return err
	}

	req, secs, err := action.BuildDowntime(target, rest, opts)
	if err != nil {
		return err
	}

	logging.Info("Scheduling %s of downtime for %s", duration.Format(secs), describeTarget(target, opts.Recursive))

	if err := h.send(ctx, req); err != nil {
		return err
	}

	end := time.Now().Add(time.Duration(secs) * time.Second)
	logging.Success("Downtime scheduled for %s, ends %s", describeTarget(target, opts.Recursive), humanize.Time(end))
	return nil
}

// Acknowledge runs acknowledge-problem. The comment is checked before the
// topology is fetched so a missing option never costs a network call.
func (h *Handler) Acknowledge(ctx context.Context, args []string, opts action.AckOptions) error {
	h.begin()

	if err := opts.Validate(); err != nil {
		return err
	}

	target, rest, err := h.resolveTarget(ctx, args)
	if err != nil {
		return err
	}
	if err := action.CheckExtraArgs(target, rest); err != nil {
		return err
	}

	req, err := action.BuildAcknowledge(target, opts)
	if err != nil {
		return err
	}
	logging.Info("Acknowledging problem on %s: %s", target, logging.FormatComment(opts.Comment))
	if err := h.send(ctx, req); err != nil {
		return err
	}

	logging.Success("Problem acknowledged for %s", target)
	return nil
}

func describeTarget(target topology.Target, recursive bool) string {
	if recursive {
		return target.Host + " and all its services"
	}
	return target.String()
}
