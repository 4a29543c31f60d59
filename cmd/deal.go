package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/tableau/internal/canvas"
	"github.com/arcanaland/tableau/internal/card"
	"github.com/arcanaland/tableau/internal/config"
	"github.com/arcanaland/tableau/internal/game"
	"github.com/arcanaland/tableau/internal/layout"
	"github.com/arcanaland/tableau/internal/render"
	"github.com/arcanaland/tableau/internal/table"
)

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Deal a game and draw the table as a PNG image",
	Long: `Deal generates a game, prints it, and draws the table with every stack
dealt onto it.

By default a new random game is dealt. Use --seed to repeat a deal, --fixed
to draw one of the scripted games, --full for a table with every stack full,
or --game to draw a game file.

Examples:
  tableau deal
  tableau deal --seed 42 --out summer.png
  tableau deal --fixed 13 --axes=false
  tableau deal --game ./games/typical.toml --trace`,
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

		quiet, _ := cmd.Flags().GetBool("quiet")
		if !quiet {
			fmt.Print(game.Format(sel.Deals))
			fmt.Println()
		}

		var extra []canvas.Surface
		trace, _ := cmd.Flags().GetBool("trace")
		rec := canvas.NewRecorder()
		if trace {
			extra = append(extra, rec)
		}

		raster, err := drawTableau(cfg, sel.Deals, showAxes(cmd, cfg), extra...)
		if err != nil {
			return err
		}

		if trace {
			if err := rec.Dump(os.Stdout); err != nil {
				return err
			}
		}

		out, _ := cmd.Flags().GetString("out")
		if err := savePNG(out, raster); err != nil {
			return err
		}

		logger.Info("table drawn", "game", sel.Label, "cards", sel.Deals.Cards(), "out", out)
		if sel.Seeded {
			logger.Info("repeat this deal with", "seed", sel.Seed)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dealCmd)

	addSelectionFlags(dealCmd)
	dealCmd.Flags().StringP("out", "o", "tableau.png", "PNG file to write")
	dealCmd.Flags().Bool("axes", true, "Draw coordinate axes and stack markers (default from config)")
	dealCmd.Flags().Bool("trace", false, "Print every drawing operation")
	dealCmd.Flags().BoolP("quiet", "q", false, "Do not print the dealt game")
}

// savePNG writes the raster to path, reporting a failed close as well as a
// failed encode.
func savePNG(path string, raster *canvas.Raster) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %v", path, err)
	}
	if err := raster.WritePNG(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("error writing %s: %v", path, err)
	}
	return nil
}

// showAxes prefers the --axes flag over the configured default
func showAxes(cmd *cobra.Command, cfg *config.Config) bool {
	if cmd.Flags().Changed("axes") {
		axes, _ := cmd.Flags().GetBool("axes")
		return axes
	}
	return cfg.ShowAxes
}

// drawTableau draws the table and deals onto a fresh raster. Any extra
// surfaces receive the same drawing operations.
func drawTableau(cfg *config.Config, deals card.GameDescription, axes bool, extra ...canvas.Surface) (*canvas.Raster, error) {
	bg, err := canvas.ParseColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("error in background colour: %v", err)
	}

	w, h := canvas.CanvasSize()
	raster := canvas.NewRaster(w, h, bg)
	surfaces := append(canvas.Tee{raster}, extra...)
	dc := canvas.NewContext(surfaces)

	if err := table.Draw(dc, table.Options{ShowAxes: axes, Background: cfg.Background}); err != nil {
		return nil, err
	}

	r := render.New(layout.NewGeometry(cfg.CardSize), render.WithLogger(logger))
	if err := r.Render(dc, deals); err != nil {
		return nil, fmt.Errorf("error dealing cards: %w", err)
	}

	dc.HideCursor()
	return raster, nil
}
