// ABOUTME: Journal CLI - Entry point for the append-only personal journal
// ABOUTME: Runs the command tree and maps errors to a non-zero exit
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/harper/journal/internal/cli"
	"github.com/harper/journal/internal/journal"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, journal.ErrInvalidArguments) {
			fmt.Fprintln(os.Stderr, cli.UsageLine)
		}
		os.Exit(1)
	}
}
