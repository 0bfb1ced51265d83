// Package main provides the entry point for the monctl CLI.
//
// monctl resolves host and service arguments against a monitoring server's
// topology and issues control actions through its JSON-over-HTTP control API.
//
// INITIALIZATION FLOW:
// 1. Build the command tree around one Options value
// 2. Expand an abbreviated command name to its full name
// 3. Execute; on failure print the error and its suggestion to stderr
//
// Every failure exits with status 1.
package main

import (
	"os"

	"github.com/concave-dev/monctl/cmd/monctl/commands"
	"github.com/concave-dev/monctl/cmd/monctl/config"
	"github.com/concave-dev/monctl/cmd/monctl/display"
	"github.com/concave-dev/monctl/internal/action"
	monerrors "github.com/concave-dev/monctl/internal/errors"
)

// main is the main entry point
func main() {
	opts := &config.Options{}
	rootCmd := commands.NewRootCommand(opts, os.Stdout)

	args, err := commands.ExpandArgs(rootCmd, action.DefaultRegistry(), os.Args[1:])
	if err == nil {
		rootCmd.SetArgs(args)
		err = rootCmd.Execute()
	}

	if err != nil {
		display.Error(os.Stderr, err)
		os.Exit(monerrors.ExitCode(err))
	}
}
