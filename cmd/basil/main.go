// Command basil runs the basil interpreter: lexing, parsing, evaluation,
// and an interactive REPL, all reachable as cobra subcommands.
package main

import (
	"os"

	"github.com/basil-lang/basil/cmd/basil/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
