package config

import (
	"fmt"

	"github.com/concave-dev/monctl/internal/logging"
	"github.com/concave-dev/monctl/internal/validate"
)

// Validate checks and normalizes the configuration before startup. The listen
// address is split into BindAddr and BindPort; port 0 is accepted and lets
// the OS choose.
func (c *Config) Validate() error {
	netAddr, err := validate.ParseBindAddress(c.ListenAddr)
	if err != nil {
		logging.Error("Invalid listen address '%s': %v", c.ListenAddr, err)
		return fmt.Errorf("invalid listen address: %w", err)
	}
	c.BindAddr = netAddr.Host
	c.BindPort = netAddr.Port

	if err := logging.ValidateLogLevel(c.LogLevel); err != nil {
		return err
	}

	if c.Password != "" && c.User == "" {
		return fmt.Errorf("--password requires --user")
	}

	if c.TopologyFile == "" && len(c.Objects) == 0 {
		return fmt.Errorf("no topology: pass --topology=FILE or at least one --object=host=svc1,svc2")
	}

	for _, spec := range c.Objects {
		if _, _, err := ParseObjectSpec(spec); err != nil {
			return err
		}
	}

	return nil
}
