package config

import (
	"fmt"

	"github.com/concave-dev/monctl/internal/logging"
	"github.com/concave-dev/monctl/internal/validate"
)

// Validate checks the global options before any command runs.
func Validate(opts *Options) error {
	if err := ValidateAPIEndpoint(opts); err != nil {
		return err
	}

	if err := ValidateOutputFormat(opts.Output); err != nil {
		return err
	}

	if err := logging.ValidateLogLevel(opts.LogLevel); err != nil {
		return err
	}

	if err := validate.ValidateTimeout(opts.RequestTimeout(), "timeout"); err != nil {
		return err
	}

	if opts.Password != "" && opts.User == "" {
		return fmt.Errorf("--password requires --user")
	}

	return nil
}

// ValidateAPIEndpoint validates --url, or --host and --port when no URL is given.
func ValidateAPIEndpoint(opts *Options) error {
	if opts.URL != "" {
		if err := validate.BaseURL(opts.URL); err != nil {
			logging.Error("Invalid API URL '%s': %v", opts.URL, err)
			return err
		}
		return nil
	}

	if err := validate.APIHost(opts.Host); err != nil {
		return err
	}

	if err := validate.ValidatePortRange(opts.Port); err != nil {
		logging.Error("Invalid API port %d: %v", opts.Port, err)
		return fmt.Errorf("API port must be between 1-65535")
	}

	return nil
}

// ValidateOutputFormat validates the --output flag
func ValidateOutputFormat(output string) error {
	validOutputs := map[string]bool{
		"table": true,
		"json":  true,
	}
	if !validOutputs[output] {
		return fmt.Errorf("invalid output format '%s' - valid: table, json", output)
	}
	return nil
}
