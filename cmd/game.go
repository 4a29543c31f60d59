package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/tableau/internal/config"
	"github.com/arcanaland/tableau/internal/game"
)

// gameCmd represents the game command group
var gameCmd = &cobra.Command{
	Use:   "game",
	Short: "Manage games in your game library",
	Long:  `Commands for listing, generating and storing games in your game library.`,
}

// gameListCmd represents the game ls command
var gameListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List scripted games and games in your game library",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(colorize.CyanString("Scripted games (use --fixed N):"))
		for n := 0; n < game.NumFixed(); n++ {
			g, _ := game.Fixed(n)
			fmt.Printf("  %2d  %d stacks, %d cards\n", n, len(g), g.Cards())
		}
		fmt.Println()

		libraryPath := config.GetGameLibraryPath()
		if resolved, err := filepath.EvalSymlinks(libraryPath); err == nil {
			libraryPath = resolved
		}

		// Check if game library exists
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Printf("Game library at %s does not exist.\n", libraryPath)
			fmt.Println("Run 'tableau game init' to create it.")
			return
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			fmt.Printf("Error reading game library: %v\n", err)
			return
		}

		fmt.Println(colorize.CyanString("Library games (use --game NAME):"))
		found := 0
		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
				continue
			}

			g, err := game.LoadGame(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				// Not a valid game, skip
				logger.Debug("skipping library entry", "file", entry.Name(), "error", err)
				continue
			}

			found++
			name := strings.TrimSuffix(entry.Name(), ".toml")
			if g.Description != "" {
				fmt.Printf("  %s (%s) %s\n", name, g.Name, colorize.HiBlackString(g.Description))
			} else {
				fmt.Printf("  %s (%s)\n", name, g.Name)
			}
		}

		if found == 0 {
			fmt.Println("  No games found in your game library.")
			fmt.Println("  You can add games with 'tableau game new NAME'.")
		}
	},
}

// gameNewCmd represents the game new command
var gameNewCmd = &cobra.Command{
	Use:   "new [game_name]",
	Short: "Generate a random game and save it to your game library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if strings.ContainsRune(name, filepath.Separator) {
			return fmt.Errorf("game name must not contain a path separator: %s", name)
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		seed := seedFrom(cmd)
		gen := game.NewGenerator(rand.New(rand.NewSource(seed)), cfg.Params())

		full, _ := cmd.Flags().GetBool("full")
		deals := gen.RandomGame()
		if full {
			deals = gen.FullGame()
		}

		f := game.NewFile(name, deals)
		f.Seed = &seed
		f.Description, _ = cmd.Flags().GetString("description")

		gamePath := filepath.Join(config.GetGameLibraryPath(), name+".toml")
		if _, err := os.Stat(gamePath); err == nil {
			if force, _ := cmd.Flags().GetBool("force"); !force {
				return fmt.Errorf("game %s already exists, use --force to replace it", name)
			}
		}

		if err := game.SaveGame(gamePath, f); err != nil {
			return err
		}

		fmt.Print(game.Format(deals))
		fmt.Printf("\nGame saved to: %s\n", gamePath)
		return nil
	},
}

// gameInitCmd represents the game init command
var gameInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the game library",
	Run: func(cmd *cobra.Command, args []string) {
		libraryPath := config.GetGameLibraryPath()

		// Create the game library directory if it doesn't exist
		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			fmt.Printf("Error creating game library: %v\n", err)
			return
		}

		fmt.Println("Game library initialized at:", libraryPath)
		fmt.Println("You can now add games with 'tableau game new NAME' or copy TOML files here.")

		// Initialize config
		_, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("Error initializing config: %v\n", err)
			return
		}

		configPath := config.GetConfigFilePath()
		fmt.Println("Config file initialized at:", configPath)
	},
}

func init() {
	RootCmd.AddCommand(gameCmd)
	gameCmd.AddCommand(gameListCmd)
	gameCmd.AddCommand(gameNewCmd)
	gameCmd.AddCommand(gameInitCmd)

	gameNewCmd.Flags().Int64("seed", 0, "Seed for the random deal (default: current time)")
	gameNewCmd.Flags().Bool("full", false, "Deal the maximum number of cards onto every stack")
	gameNewCmd.Flags().StringP("description", "d", "", "Description stored with the game")
	gameNewCmd.Flags().Bool("force", false, "Replace an existing game of the same name")
}
