package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/tableau/internal/card"
	"github.com/arcanaland/tableau/internal/config"
	"github.com/arcanaland/tableau/internal/preview"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Deal a game and preview the table in the terminal",
	Long: `Show deals a game exactly like 'tableau deal' but prints the drawn table
as ANSI terminal art next to a summary of every stack.

Examples:
  tableau show
  tableau show --fixed 17 --width 100
  tableau show --game typical`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		sel, err := selectGame(cmd, cfg)
		if err != nil {
			return err
		}

		raster, err := drawTableau(cfg, sel.Deals, showAxes(cmd, cfg))
		if err != nil {
			return err
		}

		width := cfg.Preview.Width
		if cmd.Flags().Changed("width") {
			width, _ = cmd.Flags().GetInt("width")
		}
		info := gameInfo(cfg, sel)

		// Leave room for the summary beside the art
		if limit := preview.TerminalWidth(width+40) - 40; width > limit {
			width = limit
		}
		if width < 20 {
			width = 20
		}

		img := raster.Image()
		w, h := preview.SizeFor(img, width)
		art, err := preview.ToANSI(img, w, h, cfg.Preview.TrueColor)
		if err != nil {
			return fmt.Errorf("error building preview: %v", err)
		}

		fmt.Println()
		fmt.Print(preview.SideBySide(art, info, 4))
		fmt.Println()
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	addSelectionFlags(showCmd)
	showCmd.Flags().IntP("width", "w", 80, "Preview width in terminal columns (default from config)")
	showCmd.Flags().Bool("axes", true, "Draw coordinate axes and stack markers (default from config)")
}

// getSuitSymbol returns a symbol for the fruit on a suit
func getSuitSymbol(s card.SuitID) string {
	switch s {
	case card.SuitA:
		return "🍊"
	case card.SuitB:
		return "🍉"
	case card.SuitC:
		return "🍓"
	case card.SuitD:
		return "🥑"
	default:
		return "•"
	}
}

// gameInfo builds the summary printed beside the preview
func gameInfo(cfg *config.Config, sel *selection) []string {
	var lines []string
	lines = append(lines, colorize.CyanString("Title: ")+colorize.HiWhiteString(cfg.Title))
	lines = append(lines, colorize.CyanString("Game:  ")+colorize.HiWhiteString(sel.Label))
	if sel.Seeded {
		lines = append(lines, colorize.CyanString("Seed:  ")+colorize.HiWhiteString("%d", sel.Seed))
	}
	lines = append(lines, colorize.CyanString("Cards: ")+colorize.HiWhiteString("%d", sel.Deals.Cards()))
	lines = append(lines, "")

	if len(sel.Deals) == 0 {
		lines = append(lines, colorize.YellowString("No cards dealt"))
		return lines
	}

	for _, d := range sel.Deals {
		line := colorize.CyanString("%s: ", d.Stack) +
			colorize.HiWhiteString("%2d × %s %s", d.Count, getSuitSymbol(d.Suit), d.Suit.Theme())
		if d.Extra > 0 {
			line += colorize.MagentaString(" + %d joker", d.Extra)
			if d.Extra > 1 {
				line += colorize.MagentaString("s")
			}
		}
		lines = append(lines, line)
	}
	return lines
}
