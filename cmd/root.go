package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// logger is shared by all commands; --debug lowers its level
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "tableau",
	Level:  log.InfoLevel,
})

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "tableau",
	Short: "Deal and draw a fruit-card tableau",
	Long: `Tableau deals a random or scripted game of fruit cards onto six stacks
and draws the resulting table as a PNG image or as a terminal preview.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	RootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
