package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// mainify wraps an error-returning entry point so deferred cleanup in the
// entry point still runs before the process exits on failure.
func mainify(entry func(*cobra.Command, []string) error) func(*cobra.Command, []string) {
	return func(command *cobra.Command, arguments []string) {
		if err := entry(command, arguments); err != nil {
			fatal(err)
		}
	}
}

// warning prints a warning message to standard error.
func warning(message string) {
	fmt.Fprintln(os.Stderr, "Warning:", message)
}

// printError prints an error message to standard error.
func printError(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
}

// fatal prints an error message to standard error and exits with code 1.
func fatal(err error) {
	printError(err)
	os.Exit(1)
}
