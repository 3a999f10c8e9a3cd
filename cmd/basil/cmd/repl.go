package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/basil-lang/basil/internal/builtin"
	"github.com/basil-lang/basil/internal/env"
	"github.com/basil-lang/basil/internal/eval"
	"github.com/basil-lang/basil/internal/reader"
	"github.com/basil-lang/basil/internal/replconfig"
	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

var replConfigPath string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive basil session",
	Long: `repl starts a line-editing read-eval-print loop. Expressions are
read one top-level form at a time; incomplete forms (an unmatched open
paren) continue onto the next line instead of erroring.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().StringVar(&replConfigPath, "config", "", "path to a YAML REPL config file")
}

func runRepl(_ *cobra.Command, _ []string) error {
	var cfg replconfig.Config
	if replConfigPath != "" {
		loaded, err := replconfig.Load(replConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load REPL config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = replconfig.Default()
	}
	useColor := cfg.Color && colorEnabled()

	baseEnv := env.New()
	builtin.Register(baseEnv)
	if err := loadPrelude(baseEnv); err != nil {
		return err
	}
	ev := eval.New()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	errColor := color.New(color.FgRed, color.Bold)
	valColor := color.New(color.FgGreen)

	var pending strings.Builder
	prompt := cfg.Prompt

	for {
		input, err := line.Prompt(prompt)
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Println()
			break
		}
		if err != nil {
			return fmt.Errorf("REPL input error: %w", err)
		}

		pending.WriteString(input)
		pending.WriteString("\n")
		source := pending.String()

		r := reader.New(source, "<repl>")
		forms, parseErr := r.ParseTopLevel()
		if parseErr != nil {
			if strings.Contains(parseErr.Error(), "unmatched (") {
				prompt = "  ... "
				continue
			}
			if useColor {
				errColor.Println(parseErr.Error())
			} else {
				fmt.Println(parseErr.Error())
			}
			pending.Reset()
			prompt = cfg.Prompt
			continue
		}

		line.AppendHistory(strings.TrimSpace(source))
		pending.Reset()
		prompt = cfg.Prompt

		for _, form := range forms {
			v, evalErr := ev.EvalTopLevel(form, baseEnv)
			if evalErr != nil {
				if useColor {
					errColor.Println(evalErr.Format(useColor))
				} else {
					fmt.Println(evalErr.Format(false))
				}
				continue
			}
			if useColor {
				valColor.Println(v.String())
			} else {
				fmt.Println(v.String())
			}
		}
	}

	if f, err := os.Create(cfg.HistoryFile); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
	return nil
}
