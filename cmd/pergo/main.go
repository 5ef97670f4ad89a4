// Command pergo is a line-oriented pattern search utility in the spirit of
// grep, built on package compiler's NFA compiler and package sim's
// concurrent simulator. See SPEC_FULL.md for the full CLI contract.
package main

import (
	"os"

	"github.com/coregx/pergo/internal/runner"
)

func main() {
	opts := runner.ParseFlags()
	matched := runner.Run(opts)
	if !matched {
		os.Exit(1)
	}
}
