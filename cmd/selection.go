package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/arcanaland/tableau/internal/card"
	"github.com/arcanaland/tableau/internal/config"
	"github.com/arcanaland/tableau/internal/game"
)

// addSelectionFlags registers the flags choosing which game to draw
func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().Int64("seed", 0, "Seed for the random deal (default: current time)")
	cmd.Flags().IntP("fixed", "f", -1, fmt.Sprintf("Draw scripted game 0-%d instead of a random deal", game.NumFixed()-1))
	cmd.Flags().Bool("full", false, "Deal the maximum number of cards onto every stack")
	cmd.Flags().StringP("game", "g", "", "Draw a game from your game library or a TOML file")
	cmd.MarkFlagsMutuallyExclusive("fixed", "full", "game")
}

// selection is the game chosen on the command line
type selection struct {
	Label  string
	// Seeded reports whether Seed produced the deals
	Seeded bool
	Seed   int64
	Deals  card.GameDescription
}

func seedFrom(cmd *cobra.Command) int64 {
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		return seed
	}
	return time.Now().UnixNano()
}

// selectGame resolves the selection flags into a game description
func selectGame(cmd *cobra.Command, cfg *config.Config) (*selection, error) {
	fixed, _ := cmd.Flags().GetInt("fixed")
	full, _ := cmd.Flags().GetBool("full")
	gameFlag, _ := cmd.Flags().GetString("game")

	switch {
	case gameFlag != "":
		gamePath, err := config.GetGamePath(gameFlag)
		if err != nil {
			return nil, err
		}
		g, err := game.LoadGame(gamePath)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded game", "name", g.Name, "path", g.Path)
		sel := &selection{Label: g.Name, Deals: g.Deals}
		if g.Seed != nil {
			sel.Seeded, sel.Seed = true, *g.Seed
		}
		return sel, nil

	case cmd.Flags().Changed("fixed"):
		deals, err := game.Fixed(fixed)
		if err != nil {
			return nil, err
		}
		return &selection{Label: fmt.Sprintf("fixed game %d", fixed), Deals: deals}, nil

	default:
		seed := seedFrom(cmd)
		gen := game.NewGenerator(rand.New(rand.NewSource(seed)), cfg.Params())
		logger.Debug("generating game", "seed", seed, "full", full)
		if full {
			return &selection{Label: "full game", Seeded: true, Seed: seed, Deals: gen.FullGame()}, nil
		}
		return &selection{Label: "random game", Seeded: true, Seed: seed, Deals: gen.RandomGame()}, nil
	}
}
