// Package main provides the csscontrast CLI tool for checking CSS token contrast.
//
// Usage:
//
//	csscontrast              # check the current directory
//	csscontrast check site   # check another directory
//	csscontrast check --strict --level aaa
//
// See --help for all available options.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Strict-mode failures were already reported by the summary
		if !errors.Is(err, errStrictFailure) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
