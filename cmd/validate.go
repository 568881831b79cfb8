package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/mushikago/internal/catalog"
	"github.com/arcanaland/mushikago/internal/config"
	"github.com/arcanaland/mushikago/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [catalog]",
	Short: "Validate a card catalog",
	Long: `Validate checks a card catalog (.json, .yaml or .toml) for missing or duplicate ids
and for values the deck order cannot rank: unknown types, colors and rarities.
Without an argument the configured catalog, or the built-in one, is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := catalogFlag
		if len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			path = cfg.CatalogPath
		}

		var (
			results validator.ValidationResults
			name    = path
		)
		if path == "" {
			name = "built-in catalog"
			v := validator.NewValidator("")
			v.ValidateRecords(catalog.DefaultRecords())
			results = v.Results
		} else {
			// Check if path exists
			if _, err := os.Stat(path); os.IsNotExist(err) {
				return fmt.Errorf("catalog not found: %s", path)
			}

			var err error
			results, err = validator.NewValidator(path).Validate()
			if err != nil {
				return fmt.Errorf("validation error: %v", err)
			}
		}

		// Display validation results
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
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}
