package api

import (
	"github.com/concave-dev/monctl/internal/api/handlers"
	"github.com/gin-gonic/gin"
)

// Verbs served by the control API.
const (
	VerbObjects              = "objects"
	VerbState                = "state"
	VerbHealth               = "health"
	VerbScheduleDowntime     = "schedule_downtime"
	VerbCancelDowntime       = "cancel_downtime"
	VerbEnableChecks         = "enable_checks"
	VerbDisableChecks        = "disable_checks"
	VerbEnableNotifications  = "enable_notifications"
	VerbDisableNotifications = "disable_notifications"
	VerbAcknowledgeProblem   = "acknowledge_problem"
)

// verbPath matches "/<verb>", "/<verb>/" and "/<verb>/<id>".
func verbPath(verb string) string {
	return "/" + verb + "/*id"
}

// Configures all API routes
func (s *Server) setupRoutes(router *gin.Engine) {
	// Read-only verbs
	router.GET(verbPath(VerbObjects), handlers.HandleObjects(s.store))
	router.GET(verbPath(VerbState), handlers.HandleState(s.store))
	router.GET(verbPath(VerbHealth), s.getHandlerHealth())

	// Control verbs
	router.POST(verbPath(VerbScheduleDowntime), handlers.HandleScheduleDowntime(s.store))
	router.POST(verbPath(VerbCancelDowntime), handlers.HandleCancelDowntime(s.store))
	router.POST(verbPath(VerbEnableChecks), handlers.HandleFlag(s.store, handlers.SetChecks, true, "Checks"))
	router.POST(verbPath(VerbDisableChecks), handlers.HandleFlag(s.store, handlers.SetChecks, false, "Checks"))
	router.POST(verbPath(VerbEnableNotifications), handlers.HandleFlag(s.store, handlers.SetNotifications, true, "Notifications"))
	router.POST(verbPath(VerbDisableNotifications), handlers.HandleFlag(s.store, handlers.SetNotifications, false, "Notifications"))
	router.POST(verbPath(VerbAcknowledgeProblem), handlers.HandleAcknowledge(s.store))

	router.NoRoute(handlers.HandleUnknownVerb)
}
