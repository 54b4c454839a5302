// Package main provides the ritual binary entry point.
// Ritual is a small daily habit tracker: a short list of rituals, a
// date-keyed completion ledger, streaks, and an idea backlog.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/ritual/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
