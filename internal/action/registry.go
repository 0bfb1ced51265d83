// Package action turns resolved targets and typed command options into the
// verb and parameters of a control API request, and maps command names onto
// the commands monctl knows.
package action

import (
	"sort"
	"strings"

	monerrors "github.com/concave-dev/monctl/internal/errors"
)

// Command names as typed on the command line.
const (
	CmdHosts                = "hosts"
	CmdServices             = "services"
	CmdEnableNotifications  = "enable-notifications"
	CmdDisableNotifications = "disable-notifications"
	CmdEnableChecks         = "enable-checks"
	CmdDisableChecks        = "disable-checks"
	CmdScheduleDowntime     = "schedule-downtime"
	CmdCancelDowntime       = "cancel-downtime"
	CmdAcknowledgeProblem   = "acknowledge-problem"
)

// Server-side verbs.
const (
	VerbObjects              = "objects"
	VerbEnableNotifications  = "enable_notifications"
	VerbDisableNotifications = "disable_notifications"
	VerbEnableChecks         = "enable_checks"
	VerbDisableChecks        = "disable_checks"
	VerbScheduleDowntime     = "schedule_downtime"
	VerbCancelDowntime       = "cancel_downtime"
	VerbAcknowledgeProblem   = "acknowledge_problem"
)

// Spec describes one command. Local commands answer from the topology
// snapshot and never send an action request.
type Spec struct {
	Name    string
	Verb    string
	Local   bool
	Summary string
}

// Commands lists every command monctl supports.
var Commands = []Spec{
	{Name: CmdHosts, Local: true, Summary: "List known hosts"},
	{Name: CmdServices, Local: true, Summary: "List the services of a host"},
	{Name: CmdEnableNotifications, Verb: VerbEnableNotifications, Summary: "Enable notifications for a host or service"},
	{Name: CmdDisableNotifications, Verb: VerbDisableNotifications, Summary: "Disable notifications for a host or service"},
	{Name: CmdEnableChecks, Verb: VerbEnableChecks, Summary: "Enable active checks for a host or service"},
	{Name: CmdDisableChecks, Verb: VerbDisableChecks, Summary: "Disable active checks for a host or service"},
	{Name: CmdScheduleDowntime, Verb: VerbScheduleDowntime, Summary: "Schedule downtime for a host or service"},
	{Name: CmdCancelDowntime, Verb: VerbCancelDowntime, Summary: "Cancel downtime for a host or service"},
	{Name: CmdAcknowledgeProblem, Verb: VerbAcknowledgeProblem, Summary: "Acknowledge a host or service problem"},
}

// Registry resolves typed command names, accepting unambiguous prefixes.
type Registry struct {
	specs map[string]Spec
}

// NewRegistry builds a registry from specs.
func NewRegistry(specs ...Spec) *Registry {
	r := &Registry{specs: make(map[string]Spec, len(specs))}
	for _, s := range specs {
		r.specs[s.Name] = s
	}
	return r
}

// DefaultRegistry returns a registry holding Commands.
func DefaultRegistry() *Registry {
	return NewRegistry(Commands...)
}

// Lookup resolves typed to a command. An exact name always wins. Otherwise
// typed must be a prefix of exactly one name: no match is CommandNotFound and
// several matches are AmbiguousCommand, listing the candidates sorted.
func (r *Registry) Lookup(typed string) (Spec, error) {
	if typed == "" {
		return Spec{}, monerrors.New(monerrors.CommandNotFound, "no command given")
	}
	if s, ok := r.specs[typed]; ok {
		return s, nil
	}

	var matches []string
	for name := range r.specs {
		if strings.HasPrefix(name, typed) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)

	switch len(matches) {
	case 0:
		return Spec{}, monerrors.Newf(monerrors.CommandNotFound, "unknown command '%s'", typed).
			WithSuggestion("run 'monctl --help' to list commands")
	case 1:
		return r.specs[matches[0]], nil
	default:
		return Spec{}, monerrors.Newf(monerrors.AmbiguousCommand,
			"command '%s' is ambiguous, matches: %s", typed, strings.Join(matches, ", "))
	}
}

// Names returns all command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
