package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/concave-dev/monctl/internal/topology"
	"github.com/spf13/viper"
)

// TopologyKey is the top-level key of the topology file.
const TopologyKey = "hosts"

// ParseObjectSpec parses "host=svc1,svc2" or a bare "host". Blank service
// names are dropped.
func ParseObjectSpec(spec string) (string, []string, error) {
	host, list, _ := strings.Cut(spec, "=")
	host = strings.TrimSpace(host)
	if host == "" {
		return "", nil, fmt.Errorf("invalid object '%s': expected host=svc1,svc2", spec)
	}

	var services []string
	for _, svc := range strings.Split(list, ",") {
		if svc = strings.TrimSpace(svc); svc != "" {
			services = append(services, svc)
		}
	}
	return host, services, nil
}

// LoadTopologyFile reads the hosts mapping from a YAML file. Viper folds
// keys to lower case, so host names come back lower-cased; service names are
// kept as written.
func LoadTopologyFile(path string) (map[string][]string, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read topology file %s: %w", path, err)
	}
	if !v.IsSet(TopologyKey) {
		return nil, fmt.Errorf("topology file %s has no '%s' key", path, TopologyKey)
	}
	return v.GetStringMapStringSlice(TopologyKey), nil
}

// BuildTopology merges the topology file and --object specs into an Index.
// Services named for the same host in several places are combined.
func (c *Config) BuildTopology() (*topology.Index, error) {
	hosts := make(map[string][]string)

	if c.TopologyFile != "" {
		fromFile, err := LoadTopologyFile(c.TopologyFile)
		if err != nil {
			return nil, err
		}
		for host, services := range fromFile {
			hosts[host] = mergeServices(hosts[host], services)
		}
	}

	for _, spec := range c.Objects {
		host, services, err := ParseObjectSpec(spec)
		if err != nil {
			return nil, err
		}
		hosts[host] = mergeServices(hosts[host], services)
	}

	if len(hosts) == 0 {
		return nil, fmt.Errorf("no hosts configured: pass --topology or --object")
	}
	return topology.New(hosts), nil
}

func mergeServices(existing, more []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(more))
	merged := make([]string, 0, len(existing)+len(more))
	for _, svc := range append(append([]string{}, existing...), more...) {
		if _, ok := seen[svc]; ok {
			continue
		}
		seen[svc] = struct{}{}
		merged = append(merged, svc)
	}
	sort.Strings(merged)
	return merged
}
