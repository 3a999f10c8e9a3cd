package cmd

import (
	"fmt"
	"os"

	"github.com/basil-lang/basil/internal/builtin"
	"github.com/basil-lang/basil/internal/env"
	"github.com/basil-lang/basil/internal/eval"
	"github.com/basil-lang/basil/internal/reader"
	"github.com/basil-lang/basil/internal/value"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a basil file or an inline expression",
	Long: `Execute a basil program from a file or inline expression.

Examples:
  # Run a script file
  basil run script.bl

  # Evaluate an inline expression
  basil run -e "(print (+ 1 2))"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

func runScript(_ *cobra.Command, args []string) error {
	var input, filename string

	switch {
	case evalExpr != "":
		input, filename = evalExpr, "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	r := reader.New(input, filename)
	forms, parseErr := r.ParseTopLevel()
	if parseErr != nil {
		exitWithError("%v", parseErr)
		return nil
	}

	baseEnv := env.New()
	builtin.Register(baseEnv)
	if err := loadPrelude(baseEnv); err != nil {
		return err
	}
	ev := eval.New()

	var last *value.Expr = value.Nil()
	for _, form := range forms {
		v, evalErr := ev.EvalTopLevel(form, baseEnv)
		if evalErr != nil {
			exitWithError("%s", evalErr.Format(colorEnabled()))
			return nil
		}
		last = v
	}

	if evalExpr != "" {
		fmt.Println(last.String())
	}
	return nil
}
