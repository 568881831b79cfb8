package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/arcanaland/mushikago/internal/deck"
	"github.com/arcanaland/mushikago/internal/log"
	"github.com/spf13/cobra"
)

var errDeckFull = errors.New("deck is full")

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Edit the deck stored in the page URL",
	Long: `Commands for editing the deck. Every change re-sorts the deck and rewrites
the c01..c20 keys of the page URL; other query keys are left untouched.`,
}

// deckShowCmd represents the deck show command
var deckShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the 20 deck slots",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}

		displayDeck(cmd.OutOrStdout(), s.catalog, s.manager.Deck())
		return nil
	},
}

// deckAddCmd represents the deck add command
var deckAddCmd = &cobra.Command{
	Use:   "add [card_id]...",
	Short: "Add cards to the deck",
	Long: `Add one or more cards. The same card may be added several times.
Adding stops at the first card that does not fit in a full deck.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}

		var full bool
		for _, id := range args {
			if _, ok := s.catalog.Card(id); !ok {
				log.Warnf("Card %s is not in the catalog, it will sort last", id)
			}
			if !s.manager.AddCard(id) {
				full = true
				break
			}
		}

		if err := finish(cmd, s); err != nil {
			return err
		}
		if full {
			return errDeckFull
		}
		return nil
	},
}

// deckRemoveCmd represents the deck rm command
var deckRemoveCmd = &cobra.Command{
	Use:   "rm [slot]",
	Short: "Remove the card in a slot (1-20, as shown by 'deck show')",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid slot %q: %w", args[0], err)
		}

		s, err := openSession()
		if err != nil {
			return err
		}

		index := slot - 1
		if index < 0 || index >= deck.MaxCards || s.manager.Deck()[index] == "" {
			log.Warnf("Slot %d is empty, nothing removed", slot)
		}
		s.manager.RemoveCard(index)

		return finish(cmd, s)
	},
}

// deckClearCmd represents the deck clear command
var deckClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every card",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}

		s.manager.ClearDeck()

		return finish(cmd, s)
	},
}

// deckURLCmd represents the deck url command
var deckURLCmd = &cobra.Command{
	Use:   "url",
	Short: "Print the page URL holding the deck",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), s.location.String())
		return nil
	},
}

// deckOpenCmd represents the deck open command
var deckOpenCmd = &cobra.Command{
	Use:   "open [url]",
	Short: "Load a shared deck URL and remember it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSessionAt(args[0], urlFlag == "")
		if err != nil {
			return err
		}

		log.Infof("Opened deck with %d card(s)", s.manager.Len())
		if err := s.save(); err != nil {
			return err
		}

		displayDeck(cmd.OutOrStdout(), s.catalog, s.manager.Deck())
		return nil
	},
}

// finish saves the session and prints the resulting deck and URL
func finish(cmd *cobra.Command, s *session) error {
	if err := s.save(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	displayDeck(out, s.catalog, s.manager.Deck())
	fmt.Fprintln(out)
	fmt.Fprintln(out, s.location.String())
	return nil
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckShowCmd)
	deckCmd.AddCommand(deckAddCmd)
	deckCmd.AddCommand(deckRemoveCmd)
	deckCmd.AddCommand(deckClearCmd)
	deckCmd.AddCommand(deckURLCmd)
	deckCmd.AddCommand(deckOpenCmd)
}
