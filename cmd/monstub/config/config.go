// Package config provides configuration management for the monstub daemon.
//
// monstub serves an in-memory stand-in for a monitoring server's control API.
// Its configuration covers the listen address, optional basic auth credentials
// and the topology of hosts and services it serves. The topology comes from a
// YAML file, from repeated --object flags, or both:
//
//	hosts:
//	  web01: [HTTP, PING]
//	  db01: [MySQL]
//
// A single Config value is created per invocation and passed to the daemon.
package config

import (
	configDefaults "github.com/concave-dev/monctl/internal/config"
)

const (
	DefaultListen   = configDefaults.DefaultListenAddr // Default listen address
	DefaultLogLevel = configDefaults.DefaultLogLevel   // Default log level
)

// Config holds all daemon configuration values
type Config struct {
	ListenAddr   string   // "host:port" to serve the control API on
	BindAddr     string   // Host part of ListenAddr (set by Validate)
	BindPort     int      // Port part of ListenAddr (set by Validate)
	TopologyFile string   // YAML file with a hosts: mapping
	Objects      []string // host=svc1,svc2 specs from --object
	User         string   // Basic auth user (empty disables auth)
	Password     string   // Basic auth password
	LogLevel     string   // Log level: DEBUG, INFO, WARN, ERROR
	LogFile      string   // Optional log file, stdout/stderr when empty
}

// New returns a Config with defaults applied.
func New() *Config {
	return &Config{
		ListenAddr: DefaultListen,
		LogLevel:   DefaultLogLevel,
	}
}
