package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/basil-lang/basil/internal/reader"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

var (
	parseJSON  bool
	parseQuery string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a basil source file and print its expression tree",
	Long: `Parse reads every top-level form and prints the resulting expression
tree. With --json it prints a structured representation instead of the
printed form; --query runs a gjson path against that structure (implies
--json).`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print the structured JSON representation")
	parseCmd.Flags().StringVar(&parseQuery, "query", "", "gjson path to extract from the JSON representation (implies --json)")
}

func runParse(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	r := reader.New(string(content), filename)
	forms, parseErr := r.ParseTopLevel()
	if parseErr != nil {
		exitWithError("%v", parseErr)
		return nil
	}

	if !parseJSON && parseQuery == "" {
		for _, f := range forms {
			fmt.Println(f.String())
		}
		return nil
	}

	items := make([]any, len(forms))
	for i, f := range forms {
		items[i] = f.ToJSON()
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	if parseQuery != "" {
		result := gjson.GetBytes(encoded, parseQuery)
		fmt.Println(result.String())
		return nil
	}

	var pretty []byte
	pretty, err = json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	fmt.Println(string(pretty))
	return nil
}
