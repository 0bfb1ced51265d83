// Package logging provides text formatting helpers for log lines that carry
// operator-supplied free text such as acknowledgement and downtime comments.
//
// Debug logs show the full text. Info, warn, error and success logs show a
// shortened single-line form so a long comment does not swamp the log.
package logging

import (
	"strings"

	"github.com/charmbracelet/log"
)

// MaxTextLength is the rune length free text is shortened to outside debug
// logging.
const MaxTextLength = 40

// FormatText formats free text for logging based on the current log level.
// Newlines are always folded to spaces.
func FormatText(text string) string {
	text = strings.Join(strings.Fields(text), " ")

	// Use stderr logger since debug messages go to stderr
	if stderrLogger.GetLevel() <= log.DebugLevel {
		return text
	}
	return Truncate(text, MaxTextLength)
}

// FormatComment formats a comment for logging, quoting it and marking an
// empty one.
//
// Usage: logging.Info("Acknowledged %s: %s", target, logging.FormatComment(comment))
func FormatComment(comment string) string {
	if strings.TrimSpace(comment) == "" {
		return "(no comment)"
	}
	return "\"" + FormatText(comment) + "\""
}

// Truncate shortens text to at most max runes, ending in "..." when cut.
func Truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
