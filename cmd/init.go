package cmd

import (
	"fmt"

	"github.com/arcanaland/mushikago/internal/config"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config and state files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		state, err := config.LoadState()
		if err != nil {
			return err
		}
		if state.URL == "" {
			state.URL = cfg.PageURL
			if err := config.SaveState(state); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		fmt.Fprintln(out, "State file initialized at:", config.GetStateFilePath())
		fmt.Fprintln(out, "Deck URL:", state.URL)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
