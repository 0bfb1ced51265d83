package action

import (
	"strconv"

	"github.com/concave-dev/monctl/internal/duration"
	monerrors "github.com/concave-dev/monctl/internal/errors"
	"github.com/concave-dev/monctl/internal/topology"
)

// Parameter names understood by the control API.
const (
	ParamHost        = "host"
	ParamService     = "service"
	ParamServicesToo = "services_too"
	ParamDuration    = "duration"
	ParamAuthor      = "author"
	ParamComment     = "comment"
	ParamSticky      = "sticky"
	ParamNotify      = "notify"
	ParamPersistent  = "persistent"
)

// Request is a fully-shaped action: the verb, an optional numeric object id
// and the parameters to send.
type Request struct {
	Verb     string
	ObjectID string
	Params   *Params
}

// Toggle is a boolean option that remembers whether it was set explicitly.
type Toggle int

const (
	// Default leaves the server-side default in effect.
	Default Toggle = iota
	// On was explicitly enabled.
	On
	// Off was explicitly disabled.
	Off
)

// ToggleFrom builds a Toggle from a flag value and whether the flag was given.
func ToggleFrom(value, changed bool) Toggle {
	switch {
	case !changed:
		return Default
	case value:
		return On
	default:
		return Off
	}
}

// TargetOptions apply to every command acting on a host or service.
type TargetOptions struct {
	// Recursive applies the action to a host and all of its services.
	Recursive bool
}

// Validate enforces that recursive targets are host-only.
func (o TargetOptions) Validate(target topology.Target) error {
	if o.Recursive && target.HasService() {
		return monerrors.Newf(monerrors.AmbiguousInput,
			"--recursive applies to a host and all its services, but service '%s' was also given", target.Service).
			WithSuggestion("drop the service argument or the --recursive flag")
	}
	return nil
}

// DowntimeOptions configure schedule-downtime.
type DowntimeOptions struct {
	TargetOptions
	Author  string
	Comment string
}

// AckOptions configure acknowledge-problem. Sticky and Notify default to
// enabled on the server, Persistent to disabled.
type AckOptions struct {
	Comment    string
	Author     string
	Sticky     Toggle
	Notify     Toggle
	Persistent Toggle
}

// Validate requires a comment.
func (o AckOptions) Validate() error {
	if o.Comment == "" {
		return monerrors.New(monerrors.MissingRequiredOption, "acknowledge-problem requires a comment").
			WithSuggestion("pass --comment=TEXT")
	}
	return nil
}

// targetParams starts every control request with host, then service, then the
// recursive marker. It does not reject recursive service targets; callers
// check TargetOptions.Validate first.
func targetParams(target topology.Target, recursive bool) *Params {
	p := NewParams()
	p.Set(ParamHost, target.Host)
	if target.HasService() {
		p.Set(ParamService, target.Service)
	}
	if recursive {
		p.Set(ParamServicesToo, "true")
	}
	return p
}

// BuildTargeted shapes the commands that carry no options beyond the target:
// notifications, checks and cancel-downtime.
func BuildTargeted(spec Spec, target topology.Target, opts TargetOptions) Request {
	return Request{
		Verb:   spec.Verb,
		Params: targetParams(target, opts.Recursive),
	}
}

// BuildDowntime shapes schedule-downtime and returns the parsed duration in
// seconds. The duration comes from the first remaining positional argument;
// a missing or malformed duration fails before any parameter is produced.
func BuildDowntime(target topology.Target, rest []string, opts DowntimeOptions) (Request, int64, error) {
	if len(rest) == 0 {
		return Request{}, 0, monerrors.New(monerrors.MissingRequiredOption, "schedule-downtime requires a duration").
			WithSuggestion("pass a duration such as 2h, 50m or 600 after the host/service")
	}
	seconds, err := duration.Parse(rest[0])
	if err != nil {
		return Request{}, 0, err
	}

	if len(rest) > 1 {
		return Request{}, 0, monerrors.Newf(monerrors.InvalidFormat, "unexpected argument '%s' after duration", rest[1])
	}

	p := targetParams(target, opts.Recursive)
	p.Set(ParamDuration, strconv.FormatInt(seconds, 10))
	if opts.Author != "" {
		p.Set(ParamAuthor, opts.Author)
	}
	if opts.Comment != "" {
		p.Set(ParamComment, opts.Comment)
	}
	return Request{Verb: VerbScheduleDowntime, Params: p}, seconds, nil
}

// BuildAcknowledge shapes acknowledge-problem. Only non-default booleans are
// sent: sticky and notify as FALSE when explicitly disabled, persistent as
// TRUE when explicitly enabled.
func BuildAcknowledge(target topology.Target, opts AckOptions) (Request, error) {
	if err := opts.Validate(); err != nil {
		return Request{}, err
	}

	p := targetParams(target, false)
	p.Set(ParamComment, opts.Comment)
	if opts.Sticky == Off {
		p.Set(ParamSticky, "FALSE")
	}
	if opts.Notify == Off {
		p.Set(ParamNotify, "FALSE")
	}
	if opts.Persistent == On {
		p.Set(ParamPersistent, "TRUE")
	}
	if opts.Author != "" {
		p.Set(ParamAuthor, opts.Author)
	}
	return Request{Verb: VerbAcknowledgeProblem, Params: p}, nil
}

// CheckExtraArgs reports positional arguments left over after target
// resolution. For host-only commands a leftover token is a service name the
// topology does not know.
func CheckExtraArgs(target topology.Target, rest []string) error {
	if len(rest) == 0 {
		return nil
	}
	if !target.HasService() {
		return monerrors.Newf(monerrors.TargetNotFound,
			"service '%s' not found on host '%s'", rest[0], target.Host).
			WithSuggestion("run 'monctl services " + target.Host + "' to list its services")
	}
	return monerrors.Newf(monerrors.InvalidFormat, "unexpected argument '%s'", rest[0])
}
