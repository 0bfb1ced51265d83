// Package main implements the monstub daemon, an in-memory stand-in for a
// monitoring server's control API used for local development and tests.
package main

import (
	"os"

	"github.com/concave-dev/monctl/cmd/monstub/commands"
	"github.com/concave-dev/monctl/cmd/monstub/config"
)

// main is the main entry point
func main() {
	if err := commands.NewRootCommand(config.New()).Execute(); err != nil {
		os.Exit(1)
	}
}
