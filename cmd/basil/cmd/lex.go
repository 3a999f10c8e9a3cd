package cmd

import (
	"fmt"
	"os"

	"github.com/basil-lang/basil/internal/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a basil source file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	l := lexer.New(string(content), filename)
	for {
		tok, lexErr := l.Next()
		if lexErr != nil {
			exitWithError("%v", lexErr)
			return nil
		}
		fmt.Printf("%-12s %-10q %s\n", tok.Kind, tok.Literal, tok.Pos)
		if tok.Kind == lexer.EOF {
			break
		}
	}
	return nil
}
