// Package main is the entry point for the kindling CLI.
//
// kindling is a command-line companion for the Kindling dating app. Its
// onboarding wizard walks new members through building their profile
// (name, photos, bio, interests) and writes the result to a YAML file
// ready for submission.
//
// For detailed usage information, run:
//
//	kindling --help
package main

import (
	"fmt"
	"os"

	"github.com/kindling-app/kindling/cmd/kindling/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
