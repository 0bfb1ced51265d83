package handlers

import (
	"context"

	"github.com/concave-dev/monctl/internal/logging"
	"github.com/concave-dev/monctl/internal/topology"
)

// Hosts lists every host known to the monitoring server. It sends no action
// request; the listing comes from the topology snapshot.
func (h *Handler) Hosts(ctx context.Context) error {
	h.begin()

	idx, err := h.fetchTopology(ctx)
	if err != nil {
		return err
	}

	if err := h.printer.Hosts(idx); err != nil {
		return err
	}
	logging.Success("Listed %d hosts", idx.Len())
	return nil
}

// Services lists the services of the host named by args[0].
func (h *Handler) Services(ctx context.Context, args []string) error {
	h.begin()

	idx, err := h.fetchTopology(ctx)
	if err != nil {
		return err
	}

	host, err := topology.ResolveHost(args, idx)
	if err != nil {
		return err
	}

	services, err := idx.Services(host)
	if err != nil {
		return err
	}

	if err := h.printer.Services(host, services); err != nil {
		return err
	}
	logging.Success("Listed %d services on host '%s'", len(services), host)
	return nil
}
