// Package handlers provides command handler functions for monctl.
//
// This package contains the command execution logic for every monctl command.
// A Handler is created per invocation from the parsed Options and runs one
// pipeline: fetch the topology snapshot, resolve the host/service target from
// the positional arguments, validate command options, build the action
// request, send it and render the classified outcome.
//
// The package is organized as follows:
//   - topology.go: local listings (hosts, services)
//   - control.go: control actions (notifications, checks, downtime, acknowledge)
//   - raw.go: raw pass-through of a verb and key=value parameters
//
// Every failure is returned as a classified error from internal/errors; the
// main package reports it and maps it to the exit status.
package handlers

import (
	"context"
	"io"
	"os"

	"github.com/concave-dev/monctl/cmd/monctl/client"
	"github.com/concave-dev/monctl/cmd/monctl/config"
	"github.com/concave-dev/monctl/cmd/monctl/display"
	"github.com/concave-dev/monctl/cmd/monctl/utils"
	"github.com/concave-dev/monctl/internal/action"
	"github.com/concave-dev/monctl/internal/logging"
	"github.com/concave-dev/monctl/internal/topology"
)

// Handler runs monctl commands for one invocation.
type Handler struct {
	opts    *config.Options
	api     *client.MonitorAPIClient
	printer *display.Printer
}

// New creates a Handler writing command output to out. A nil out means stdout.
func New(opts *config.Options, out io.Writer) *Handler {
	if out == nil {
		out = os.Stdout
	}
	return &Handler{
		opts:    opts,
		api:     client.NewFromOptions(opts),
		printer: display.NewPrinter(out, opts.JSONOutput(), opts.Verbose),
	}
}

// begin configures logging for the invocation.
func (h *Handler) begin() {
	utils.SetupLogging(h.opts.LogLevel, h.opts.Verbose)
}

// fetchTopology loads the snapshot every targeted command resolves against.
// A failure here aborts the invocation before any action is sent.
func (h *Handler) fetchTopology(ctx context.Context) (*topology.Index, error) {
	logging.Info("Fetching topology from control API: %s", h.api.BaseURL())
	return h.api.FetchTopology(ctx)
}

// send dispatches req and renders its outcome.
func (h *Handler) send(ctx context.Context, req action.Request) error {
	logging.Debug("Sending %s with %d parameters", req.Verb, req.Params.Len())
	outcome, err := h.api.Do(ctx, req)
	if err != nil {
		return err
	}
	return h.printer.Outcome(outcome)
}
