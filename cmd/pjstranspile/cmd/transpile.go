package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bramblecore/pjstranspile/pkg/transpile"
)

var outputFile string

var transpileCmd = &cobra.Command{
	Use:   "transpile [file]",
	Short: "Transpile a Processing-dialect source file",
	Long: `Run the full pipeline over a source file and write the rendered
target-language output.

Examples:
  # Transpile to stdout
  pjstranspile transpile sketch.pde

  # Transpile with a custom output file
  pjstranspile transpile sketch.pde -o sketch.js

  # Transpile using a config file's defaultScope/aFunctions/libraries
  pjstranspile transpile sketch.pde --config pjs.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runTranspile,
}

func init() {
	rootCmd.AddCommand(transpileCmd)
	transpileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
}

func runTranspile(_ *cobra.Command, args []string) error {
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	opts, err := loadOptions(filename)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out, err := transpile.Transpile(string(content), opts)
	if err != nil {
		return fmt.Errorf("transpile failed: %w", err)
	}

	if outputFile == "" {
		fmt.Println(out)
		return nil
	}
	if err := os.WriteFile(outputFile, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outputFile, err)
	}
	fmt.Printf("Transpiled %s -> %s\n", filename, outputFile)
	return nil
}
