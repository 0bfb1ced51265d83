// Package version provides centralized version information for the monctl
// CLI and the monstub development server. Both follow semantic versioning.
package version

// MonctlVersion holds the current monctl CLI version.
// Format: major.minor.patch[-prerelease][+build]
const MonctlVersion = "0.1.0-dev"

// MonstubVersion holds the current monstub server version. It is versioned
// separately because its API surface tracks the monitoring server, not the CLI.
const MonstubVersion = "0.1.0-dev"
