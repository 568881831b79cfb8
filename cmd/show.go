package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/arcanaland/mushikago/internal/card"
	"github.com/arcanaland/mushikago/internal/deck"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display information about a specific card",
	Long: `Show displays a card from the catalog.

Examples:
  mushikago show MK1-001
  mushikago show --catalog ./cards.yaml BT2-014`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}

		c, ok := s.catalog.Card(args[0])
		if !ok {
			return fmt.Errorf("card not found: %s", args[0])
		}

		displayCard(cmd.OutOrStdout(), c)
		return nil
	},
}

var cardsTypeFlag string

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List the catalog in deck order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var filter card.Type
		if cardsTypeFlag != "" {
			t, ok := card.ParseType(cardsTypeFlag)
			if !ok {
				return fmt.Errorf("unknown type %q (use bug, spell or boost)", cardsTypeFlag)
			}
			filter = t
		}

		s, err := openSession()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, c := range s.catalog.Sorted() {
			if filter != "" && !c.HasType(filter) {
				continue
			}
			fmt.Fprintln(out, cardLine(&c))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
	RootCmd.AddCommand(cardsCmd)

	cardsCmd.Flags().StringVarP(&cardsTypeFlag, "type", "t", "", "only list cards of this type (bug, spell, boost)")
}

// colorFor returns the print color of a card color
func colorFor(color string) *colorize.Color {
	switch color {
	case card.ColorRed:
		return colorize.New(colorize.FgRed)
	case card.ColorBlue:
		return colorize.New(colorize.FgBlue)
	case card.ColorGreen:
		return colorize.New(colorize.FgGreen)
	case card.ColorColorless:
		return colorize.New(colorize.FgWhite)
	default:
		return colorize.New(colorize.FgHiBlack)
	}
}

func typeLabel(types []card.Type) string {
	if len(types) == 0 {
		return "-"
	}
	labels := make([]string, len(types))
	for i, t := range types {
		labels[i] = string(t)
	}
	return strings.Join(labels, "/")
}

// cardLine formats a card on one line; the name goes last since its display
// width varies.
func cardLine(c *card.CardMeta) string {
	return colorFor(c.Color).Sprintf("%-10s %-11s %2d %-3s", c.ID, typeLabel(c.Types), c.Cost, c.Rarelity) +
		" " + colorize.HiWhiteString("%s", c.Name)
}

// terminalWidth returns the width of stdout, or 80 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// displayDeck prints the 20 slots, numbered from 1
func displayDeck(out io.Writer, lookup deck.Lookup, d deck.Deck) {
	rule := strings.Repeat("─", min(terminalWidth(), 60))

	fmt.Fprintln(out, colorize.CyanString("Deck: ")+colorize.HiWhiteString("%d/%d", d.Len(), deck.MaxCards))
	fmt.Fprintln(out, rule)
	for i, id := range d {
		slot := colorize.CyanString("%02d", i+1)
		switch c, ok := lookup.Card(id); {
		case id == "":
			fmt.Fprintf(out, "%s %s\n", slot, colorize.HiBlackString("--"))
		case ok:
			fmt.Fprintf(out, "%s %s\n", slot, cardLine(c))
		default:
			fmt.Fprintf(out, "%s %s %s\n", slot, colorize.HiBlackString("%-10s", id), colorize.YellowString("(not in catalog)"))
		}
	}
	fmt.Fprintln(out, rule)
}

// displayCard displays the card information
func displayCard(out io.Writer, c *card.CardMeta) {
	infoLines := []string{
		colorize.CyanString("Card:     ") + colorize.HiWhiteString("%s", c.Name),
		colorize.CyanString("ID:       ") + colorize.HiWhiteString("%s", c.ID),
		colorize.CyanString("Set:      ") + colorize.HiWhiteString("%s", c.Set),
		colorize.CyanString("Type:     ") + colorize.HiWhiteString("%s", typeLabel(c.Types)),
		colorize.CyanString("Color:    ") + colorFor(c.Color).Sprint(c.Color),
		colorize.CyanString("Cost:     ") + colorize.HiWhiteString("%d", c.Cost),
		colorize.CyanString("Rarelity: ") + colorize.HiWhiteString("%s", c.Rarelity),
	}

	fmt.Fprintln(out)
	for _, line := range infoLines {
		fmt.Fprintln(out, "  "+line)
	}
	fmt.Fprintln(out)
}
