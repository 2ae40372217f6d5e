// Package main provides the themecheck command.
package main

import (
	"os"

	"github.com/leapstack-labs/themecheck/internal/cli"
)

func main() {
	os.Exit(cli.Main())
}
