// Package main provides the swiftkt command-line translator.
package main

import (
	"os"

	"github.com/leapstack-labs/swiftkt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
