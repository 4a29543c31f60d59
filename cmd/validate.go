package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/tableau/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a game file",
	Long: `Validate checks that a game file only names known stacks and suits and
deals every stack at most once. Card and joker counts outside their usual
ranges are reported as warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gamePath := args[0]

		// Check if path exists
		if _, err := os.Stat(gamePath); os.IsNotExist(err) {
			return fmt.Errorf("game file not found: %s", gamePath)
		}

		// Create validator and run validation
		v := validator.NewValidator(gamePath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Game '%s' is valid.\n", gamePath)
		} else {
			fmt.Printf("❌ Game '%s' has %d validation errors:\n", gamePath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
