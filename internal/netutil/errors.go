// Package netutil provides network error classification and listener binding
// shared by monctl and monstub.
//
// Errors are classified by type rather than by message text, so the checks
// behave the same across operating systems and Go versions.
package netutil

import (
	"errors"
	"net"
	"syscall"
)

// IsAddressInUseError checks if an error indicates "address already in use"
// using proper error type checking rather than string matching.
//
// Used by monstub when binding its listener so a busy port produces a clear
// message instead of a raw socket error.
func IsAddressInUseError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.EADDRINUSE)
	}
	return false
}

// IsConnectionRefusedError checks if an error indicates "connection refused".
//
// The control API client uses it to tell an operator that nothing is
// listening at the configured address, as opposed to a slow or unreachable
// server.
func IsConnectionRefusedError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}
	return false
}

// IsTimeoutError reports whether err is a network timeout, including a
// request deadline set through an http.Client timeout.
func IsTimeoutError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
