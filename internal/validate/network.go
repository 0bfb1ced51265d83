// Package validate provides input validation for monctl and monstub settings,
// built on the go-playground/validator library.
//
// VALIDATION COVERAGE:
//   - API endpoint: host name or IP, port range, base URL
//   - Listen address: "host:port" for the monstub server
//   - Verbs: control API verb names passed through raw mode
package validate

import (
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
}

// NetworkAddress is a validated "host:port" listen address.
type NetworkAddress struct {
	Host string `validate:"required,ip"`
	Port int    `validate:"min=0,max=65535"`
}

// String returns the address in "host:port" form.
func (na NetworkAddress) String() string {
	return net.JoinHostPort(na.Host, strconv.Itoa(na.Port))
}

// ParseBindAddress parses and validates a "host:port" listen address. Port 0
// is allowed and lets the OS pick a port.
func ParseBindAddress(addr string) (*NetworkAddress, error) {
	if addr == "" {
		return nil, fmt.Errorf("address cannot be empty")
	}

	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid address format '%s': %w", addr, err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid port '%s': %w", portStr, err)
	}

	netAddr := &NetworkAddress{
		Host: host,
		Port: port,
	}
	if err := validate.Struct(netAddr); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return netAddr, nil
}

// APIHost validates the --host flag: an IP address or a DNS host name.
func APIHost(host string) error {
	if err := ValidateField(host, "required,hostname_rfc1123|ip"); err != nil {
		return fmt.Errorf("invalid API host '%s': expected a host name or IP address", host)
	}
	return nil
}

// BaseURL validates the --url flag: an absolute http or https URL with a host.
func BaseURL(raw string) error {
	if err := ValidateField(raw, "required,url"); err != nil {
		return fmt.Errorf("invalid API URL '%s'", raw)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid API URL '%s': %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid API URL '%s': scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid API URL '%s': missing host", raw)
	}
	return nil
}

// ValidateField validates a single value against validator tags.
//
// Example: ValidateField("192.168.1.1", "required,ip")
func ValidateField(value any, tag string) error {
	return validate.Var(value, tag)
}
