// Package topology holds the snapshot of hosts and services reported by the
// monitoring server, and resolves command-line identifiers against it.
//
// An Index is built once per invocation from a single "objects" fetch and is
// read-only afterward. Nothing here is cached across invocations.
package topology

import (
	"fmt"
	"sort"

	monerrors "github.com/concave-dev/monctl/internal/errors"
)

// Index maps host names to the set of service names known on each host.
type Index struct {
	hosts map[string]map[string]struct{}
}

// New builds an Index from a host → services mapping. The input is copied.
// Empty service names are dropped, since an empty Target.Service means the
// host itself.
func New(hosts map[string][]string) *Index {
	idx := &Index{hosts: make(map[string]map[string]struct{}, len(hosts))}
	for host, services := range hosts {
		set := make(map[string]struct{}, len(services))
		for _, svc := range services {
			if svc == "" {
				continue
			}
			set[svc] = struct{}{}
		}
		idx.hosts[host] = set
	}
	return idx
}

// FromContent builds an Index from the decoded content of an objects response,
// which must be a JSON object of host name to an array of service names.
func FromContent(content any) (*Index, error) {
	raw, ok := content.(map[string]any)
	if !ok {
		return nil, monerrors.Newf(monerrors.UnknownShape,
			"topology content is %T, expected an object of host to services", content)
	}

	hosts := make(map[string][]string, len(raw))
	for host, value := range raw {
		if value == nil {
			hosts[host] = nil
			continue
		}
		list, ok := value.([]any)
		if !ok {
			return nil, monerrors.Newf(monerrors.UnknownShape,
				"services for host '%s' are %T, expected an array", host, value)
		}
		services := make([]string, 0, len(list))
		for _, item := range list {
			name, ok := item.(string)
			if !ok {
				return nil, monerrors.Newf(monerrors.UnknownShape,
					"service name on host '%s' is %T, expected a string", host, item)
			}
			services = append(services, name)
		}
		hosts[host] = services
	}
	return New(hosts), nil
}

// HasHost reports whether host is known.
func (idx *Index) HasHost(host string) bool {
	_, ok := idx.hosts[host]
	return ok
}

// HasService reports whether service is known on host.
func (idx *Index) HasService(host, service string) bool {
	if service == "" {
		return false
	}
	set, ok := idx.hosts[host]
	if !ok {
		return false
	}
	_, ok = set[service]
	return ok
}

// Hosts returns all host names, sorted.
func (idx *Index) Hosts() []string {
	hosts := make([]string, 0, len(idx.hosts))
	for host := range idx.hosts {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)
	return hosts
}

// Services returns the services known on host, sorted. Unknown hosts yield
// TargetNotFound.
func (idx *Index) Services(host string) ([]string, error) {
	set, ok := idx.hosts[host]
	if !ok {
		return nil, hostNotFound(host)
	}
	services := make([]string, 0, len(set))
	for svc := range set {
		services = append(services, svc)
	}
	sort.Strings(services)
	return services, nil
}

// Len returns the number of hosts.
func (idx *Index) Len() int {
	return len(idx.hosts)
}

func hostNotFound(host string) error {
	return monerrors.New(monerrors.TargetNotFound, fmt.Sprintf("host '%s' not found", host)).
		WithSuggestion("run 'monctl hosts' to list known hosts")
}
