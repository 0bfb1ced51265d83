package validate

import (
	"fmt"
	"regexp"
	"time"
)

var verbRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidatePortRange validates that a port number is within 1-65535.
func ValidatePortRange(port int) error {
	return ValidateField(port, "required,min=1,max=65535")
}

// ValidateRequiredString validates that a string field is not empty.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidateTimeout accepts zero (no timeout) or a positive duration.
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout < 0 {
		return fmt.Errorf("%s cannot be negative", name)
	}
	return nil
}

// VerbFormat checks a control API verb such as "schedule_downtime". Verbs
// become a URL path segment, so only lowercase letters, digits and
// underscores are allowed, starting with a letter.
func VerbFormat(verb string) error {
	if verb == "" {
		return fmt.Errorf("verb cannot be empty")
	}
	if !verbRegex.MatchString(verb) {
		return fmt.Errorf("verb '%s' must contain only lowercase letters [a-z], numbers [0-9] and underscores (_), starting with a letter", verb)
	}
	return nil
}
