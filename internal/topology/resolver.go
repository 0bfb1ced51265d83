package topology

import (
	"net/url"

	monerrors "github.com/concave-dev/monctl/internal/errors"
)

// Target identifies what a command acts on: a host and, optionally, one of
// its services. A resolved Target always refers to entries of the Index it was
// resolved against.
type Target struct {
	Host    string
	Service string
}

// HasService reports whether the target names a service.
func (t Target) HasService() bool {
	return t.Service != ""
}

// String renders "host" or "host/service" for log output.
func (t Target) String() string {
	if t.HasService() {
		return t.Host + "/" + t.Service
	}
	return t.Host
}

// Resolve consumes a host and an optional service from the front of args.
//
// The first token must be a known host. The second token is taken as the
// service only when it names a service on that host; otherwise it is left in
// place for command-specific parsing. At most two tokens are consumed and the
// returned slice holds the untouched remainder.
func Resolve(args []string, idx *Index) (Target, []string, error) {
	if len(args) == 0 {
		return Target{}, args, monerrors.New(monerrors.TargetNotFound, "no host given").
			WithSuggestion("pass a host name as the first argument")
	}

	host := args[0]
	if !idx.HasHost(host) {
		return Target{}, args, hostNotFound(host)
	}

	target := Target{Host: host}
	rest := args[1:]
	if len(rest) > 0 {
		if svc, ok := matchService(idx, host, rest[0]); ok {
			target.Service = svc
			rest = rest[1:]
		}
	}
	return target, rest, nil
}

// ResolveHost requires args to be exactly one known host name.
func ResolveHost(args []string, idx *Index) (string, error) {
	if len(args) == 0 {
		return "", monerrors.New(monerrors.TargetNotFound, "no host given")
	}
	if !idx.HasHost(args[0]) {
		return "", hostNotFound(args[0])
	}
	return args[0], nil
}

// matchService looks the decoded argument up on host, falling back to the raw
// text for service names that themselves contain escape sequences.
func matchService(idx *Index, host, raw string) (string, bool) {
	if svc := decode(raw); idx.HasService(host, svc) {
		return svc, true
	}
	if idx.HasService(host, raw) {
		return raw, true
	}
	return "", false
}

// decode percent-decodes a service argument so names like "Disk%20Usage" match
// the server's "Disk Usage". Text that is not valid percent-encoding is used
// verbatim.
func decode(raw string) string {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
