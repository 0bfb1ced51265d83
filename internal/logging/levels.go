package logging

import (
	"fmt"
	"strings"
)

// ValidLogLevels is the set of levels accepted by --log-level in monctl and
// monstub.
var ValidLogLevels = map[string]bool{
	"DEBUG": true,
	"INFO":  true,
	"WARN":  true,
	"ERROR": true,
}

// IsValidLogLevel reports whether level is supported. Matching ignores case.
func IsValidLogLevel(level string) bool {
	return ValidLogLevels[strings.ToUpper(level)]
}

// ValidateLogLevel returns an error naming the valid levels if level is unknown.
func ValidateLogLevel(level string) error {
	if !IsValidLogLevel(level) {
		return fmt.Errorf("invalid log level: %s (valid: DEBUG, INFO, WARN, ERROR)", level)
	}
	return nil
}
