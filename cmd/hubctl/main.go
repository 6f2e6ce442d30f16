// Package main provides the entry point for the hubctl CLI.
package main

import (
	"fmt"
	"os"

	"content-hub/cmd/hubctl/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
