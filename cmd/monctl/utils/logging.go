// Package utils provides utility functions for the monctl CLI.
// This file contains logging setup and Resty logger integration utilities.
package utils

import (
	"os"
	"strings"

	"github.com/concave-dev/monctl/internal/logging"
)

// RestyLogger implements resty.Logger interface and routes logs through structured logging
type RestyLogger struct{}

// Errorf routes error messages through structured logging.
func (s RestyLogger) Errorf(format string, v ...any) {
	logging.Error(format, v...)
}

// Warnf routes warning messages through structured logging.
func (s RestyLogger) Warnf(format string, v ...any) {
	logging.Warn(format, v...)
}

// Debugf routes debug messages through structured logging.
func (s RestyLogger) Debugf(format string, v ...any) {
	logging.Debug(format, v...)
}

// SetupLogging configures CLI logging. DEBUG=true in the environment forces
// debug output. --verbose or a log level below ERROR shows logs at that level;
// otherwise only errors are shown so command output stays clean.
func SetupLogging(level string, verbose bool) {
	switch {
	case os.Getenv("DEBUG") == "true":
		logging.RestoreOutput()
		logging.SetLevel("DEBUG")
	case verbose && strings.EqualFold(level, "ERROR"):
		logging.RestoreOutput()
		logging.SetLevel("INFO")
	case verbose || !strings.EqualFold(level, "ERROR"):
		logging.RestoreOutput()
		logging.SetLevel(level)
	default:
		logging.SetLevel(level)
		logging.SuppressOutput()
	}
}
