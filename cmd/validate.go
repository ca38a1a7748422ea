package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wqr11/test-10x/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a catalog file",
	Long: `Validate checks that a catalog TOML file only holds cards that can be displayed:
known categories and badge colors, non-negative prices and picture ids from 1 to N.
Without a path the built-in catalog is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalogPath := ""
		if len(args) == 1 {
			catalogPath = args[0]

			// Check if path exists
			if _, err := os.Stat(catalogPath); os.IsNotExist(err) {
				return fmt.Errorf("catalog file not found: %s", catalogPath)
			}
		}

		name := catalogPath
		if name == "" {
			name = "built-in"
		}

		// Create validator and run validation
		v := validator.NewValidator(catalogPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Catalog '%s' is valid.\n", name)
		} else {
			fmt.Fprintf(out, "❌ Catalog '%s' has %d validation errors:\n", name, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
