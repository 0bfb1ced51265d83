// Package errors defines the failure taxonomy shared by every monctl component.
//
// Each fatal condition is a typed *Error carrying a Kind, so that the command
// layer can report it and map it to an exit status without string matching.
// No condition is retried or recovered locally; callers return these values up
// to the top-level dispatcher.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind categorizes a failure.
type Kind int

const (
	// KindUnknown is used for errors that did not originate in monctl.
	KindUnknown Kind = iota
	// InvalidFormat reports a malformed duration or raw-mode argument.
	InvalidFormat
	// TargetNotFound reports a host or service missing from the topology.
	TargetNotFound
	// MissingRequiredOption reports a command invoked without a required option.
	MissingRequiredOption
	// AmbiguousInput reports option combinations that contradict each other.
	AmbiguousInput
	// CommandNotFound reports a command name matching no known command.
	CommandNotFound
	// AmbiguousCommand reports a command prefix matching several commands.
	AmbiguousCommand
	// Transport reports a connection-level failure (refused, timeout).
	Transport
	// Unauthorized reports an HTTP 401 from the control API.
	Unauthorized
	// ParseFailure reports a response body that is not valid JSON.
	ParseFailure
	// ProtocolFailure reports a response with a falsy success field.
	ProtocolFailure
	// UnknownShape reports valid JSON of an unexpected shape.
	UnknownShape
)

var kindNames = map[Kind]string{
	KindUnknown:           "unknown",
	InvalidFormat:         "invalid format",
	TargetNotFound:        "target not found",
	MissingRequiredOption: "missing required option",
	AmbiguousInput:        "ambiguous input",
	CommandNotFound:       "command not found",
	AmbiguousCommand:      "ambiguous command",
	Transport:             "transport failure",
	Unauthorized:          "unauthorized",
	ParseFailure:          "parse failure",
	ProtocolFailure:       "protocol failure",
	UnknownShape:          "unknown response shape",
}

// String returns the human-readable kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a classified failure with an optional suggestion and cause.
type Error struct {
	Kind       Kind
	Message    string
	Suggestion string
	Cause      error
}

// New creates a classified error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a classified error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies an existing error.
func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Cause: err}
}

// WithSuggestion attaches a hint on how to fix the problem.
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestion = suggestion
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind, so errors.Is(err, errors.New(kind, ""))
// works as a kind check.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ExitCode maps an error to a process exit status. Every failure collapses to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
