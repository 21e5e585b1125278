// Package main provides the nmtkit CLI application.
// nmtkit prepares, validates and inspects neural machine translation
// training and translation configurations.
package main

import (
	"os"
)

var (
	// Version is set by build flags
	Version = "dev"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
