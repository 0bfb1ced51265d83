// Package utils provides common utility functions shared by monctl and monstub.
//
// This file implements request ID generation. monctl tags every control API
// request with an X-Request-ID header and monstub echoes it (or assigns one)
// so a client debug log line can be matched to the server's access log.

package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// RequestIDHeader carries the request correlation ID.
const RequestIDHeader = "X-Request-ID"

// GenerateID creates a 12-character hex identifier from crypto/rand.
//
// Returns format: "a1b2c3d4e5f6"
func GenerateID() (string, error) {
	// Generate 6 bytes of random data (12 hex characters)
	bytes := make([]byte, 6)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
