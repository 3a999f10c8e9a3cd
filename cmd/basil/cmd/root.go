package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "basil",
	Short: "basil interpreter",
	Long: `basil is a small homoiconic Lisp-family interpreter.

It evaluates S-expressions with lexical-scope environments, user-defined
functions, unhygienic macros with quasiquotation, and a compact set of
primitive operations over numbers, sequences, and symbols.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}

// colorEnabled reports whether diagnostics should be colorized, honoring
// both --no-color and a non-terminal stdout (color.NoColor tracks the
// latter automatically).
func colorEnabled() bool {
	return !noColor && !color.NoColor
}
