package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/concave-dev/monctl/internal/logging"
	"github.com/concave-dev/monctl/internal/state"
	"github.com/gin-gonic/gin"
)

// DowntimeContent is the structured content of a successful schedule_downtime.
type DowntimeContent struct {
	DowntimeIDs []int64   `json:"downtime_ids"`
	Objects     []string  `json:"objects"`
	End         time.Time `json:"end"`
}

// resolveObjects expands a request target, answering with a failure envelope
// when the target is unknown.
func resolveObjects(c *gin.Context, store *state.Store, host, service string, servicesToo bool) ([]state.Object, bool) {
	objects, err := store.Objects(host, service, servicesToo)
	if err != nil {
		respondFailure(c, http.StatusOK, err.Error())
		return nil, false
	}
	return objects, true
}

// HandleScheduleDowntime schedules downtime on a host, a service, or a host
// and all of its services.
func HandleScheduleDowntime(store *state.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DowntimeRequest
		if err := bindParams(c, &req); err != nil {
			respondBindError(c, err)
			return
		}

		seconds, err := strconv.ParseInt(req.Duration, 10, 64)
		if err != nil || seconds < 0 {
			respondFailure(c, http.StatusBadRequest, fmt.Sprintf("Invalid duration '%s': expected whole seconds", req.Duration))
			return
		}

		objects, ok := resolveObjects(c, store, req.Host, req.Service, req.Recursive())
		if !ok {
			return
		}

		created := store.ScheduleDowntime(objects, seconds, req.Author, req.Comment)
		content := DowntimeContent{End: created[0].End}
		for _, dt := range created {
			content.DowntimeIDs = append(content.DowntimeIDs, dt.ID)
			content.Objects = append(content.Objects, dt.Object.String())
		}

		logging.Info("Scheduled %ds downtime for %s: %s", seconds, state.Summary(objects), logging.FormatComment(req.Comment))
		respondOK(c, content)
	}
}

// HandleCancelDowntime cancels the downtime named by the path id, or every
// downtime on the target given in the body.
func HandleCancelDowntime(store *state.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, hasID, err := objectID(c)
		if err != nil {
			respondFailure(c, http.StatusBadRequest, err.Error())
			return
		}
		if hasID {
			if err := store.CancelDowntime(id); err != nil {
				respondFailure(c, http.StatusOK, err.Error())
				return
			}
			logging.Info("Cancelled downtime %d", id)
			respondOK(c, fmt.Sprintf("Downtime %d cancelled", id))
			return
		}

		var req CancelRequest
		if err := bindParams(c, &req); err != nil {
			respondBindError(c, err)
			return
		}
		if req.Host == "" {
			respondFailure(c, http.StatusBadRequest, "Missing required parameter 'host' or downtime id")
			return
		}

		objects, ok := resolveObjects(c, store, req.Host, req.Service, parseBool(req.ServicesToo, false))
		if !ok {
			return
		}

		removed := store.CancelDowntimesFor(objects)
		logging.Info("Cancelled %d downtimes for %s", removed, state.Summary(objects))
		respondOK(c, fmt.Sprintf("Cancelled %d downtimes for %s", removed, state.Summary(objects)))
	}
}

// FlagSetter applies an enable/disable verb to a set of objects.
type FlagSetter func(store *state.Store, objects []state.Object, enabled bool)

// SetChecks switches active checks.
func SetChecks(store *state.Store, objects []state.Object, enabled bool) {
	store.SetChecks(objects, enabled)
}

// SetNotifications switches notifications.
func SetNotifications(store *state.Store, objects []state.Object, enabled bool) {
	store.SetNotifications(objects, enabled)
}

// HandleFlag serves the enable/disable checks and notifications verbs. what
// names the switch in the response message.
func HandleFlag(store *state.Store, set FlagSetter, enabled bool, what string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TargetRequest
		if err := bindParams(c, &req); err != nil {
			respondBindError(c, err)
			return
		}

		objects, ok := resolveObjects(c, store, req.Host, req.Service, req.Recursive())
		if !ok {
			return
		}

		set(store, objects, enabled)

		verb := "disabled"
		if enabled {
			verb = "enabled"
		}
		logging.Info("%s %s for %s", what, verb, state.Summary(objects))
		respondOK(c, fmt.Sprintf("%s %s for %s", what, verb, state.Summary(objects)))
	}
}

// HandleAcknowledge acknowledges a host or service problem.
func HandleAcknowledge(store *state.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AckRequest
		if err := bindParams(c, &req); err != nil {
			respondBindError(c, err)
			return
		}

		objects, ok := resolveObjects(c, store, req.Host, req.Service, req.Recursive())
		if !ok {
			return
		}

		for _, obj := range objects {
			store.Acknowledge(state.Acknowledgement{
				Object:     obj,
				Comment:    req.Comment,
				Author:     req.Author,
				Sticky:     parseBool(req.Sticky, true),
				Notify:     parseBool(req.Notify, true),
				Persistent: parseBool(req.Persistent, false),
			})
		}

		logging.Info("Acknowledged problem on %s: %s", state.Summary(objects), logging.FormatComment(req.Comment))
		respondOK(c, fmt.Sprintf("Problem acknowledged for %s", state.Summary(objects)))
	}
}
