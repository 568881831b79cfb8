package cmd

import (
	"go.uber.org/zap"

	"github.com/arcanaland/mushikago/internal/log"
	"github.com/spf13/cobra"
)

var (
	catalogFlag string
	urlFlag     string
	debugFlag   bool

	logger *zap.Logger
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "mushikago",
	Short: "Build bug, spell and boost decks that live in a shareable URL",
	Long: `mushikago builds 20-card decks and keeps them in the query string of a page URL
(c01 to c20), always in canonical order: bugs, then spells and boosts, then the rest.

The last URL is remembered between runs. Pass --url to work on another URL
without touching the remembered one.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = log.New(debugFlag)
		if err != nil {
			return err
		}
		log.SetLogger(logger.Sugar())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			// Sync can fail on terminals even when every line was written
			_ = logger.Sync()
		}
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "card catalog file (.json, .yaml, .toml); defaults to the configured or built-in catalog")
	RootCmd.PersistentFlags().StringVar(&urlFlag, "url", "", "work on this page URL instead of the remembered one (not saved)")
	RootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
