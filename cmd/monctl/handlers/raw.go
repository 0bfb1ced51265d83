package handlers

import (
	"context"

	"github.com/concave-dev/monctl/internal/action"
	"github.com/concave-dev/monctl/internal/logging"
)

// Raw sends a verb and key=value parameters straight to the control API,
// bypassing topology resolution and command-specific validation.
func (h *Handler) Raw(ctx context.Context, args []string) error {
	h.begin()

	req, err := action.BuildRaw(args)
	if err != nil {
		return err
	}

	logging.Info("Sending raw %s request to %s", req.Verb, h.api.BaseURL())
	if err := h.send(ctx, req); err != nil {
		return err
	}

	logging.Success("Raw %s request succeeded", req.Verb)
	return nil
}
