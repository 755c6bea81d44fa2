package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-miner/internal/core"
	"github.com/vovakirdan/tui-miner/internal/games/miner"
	"github.com/vovakirdan/tui-miner/internal/platform/tui"
	"github.com/vovakirdan/tui-miner/internal/registry"
	"github.com/vovakirdan/tui-miner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWorld      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a mining run",
	Long: `Start a mining run. Without flags a setup screen asks for
difficulty and world size first; passing --difficulty or --world skips it.

Controls:
  WASD/Arrows - Move
  Space       - Mine the faced tile
  I           - Inventory
  B           - Shop
  P           - Pickaxe upgrade
  Esc         - Pause
  Q/Ctrl+C    - End the run (the score is recorded)

Difficulty options:
  easy   - Plentiful ore
  normal - Baseline generation
  hard   - Scarce ore

Examples:
  miner play
  miner play --difficulty easy
  miner play --difficulty hard --world 160x80
  miner play --config ./my-miner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagWorld, "world", "", "World size as WIDTHxHEIGHT in tiles, e.g. 100x50")
}

// parseWorldSize parses a WIDTHxHEIGHT flag value like "100x50".
func parseWorldSize(s string) (int, int, error) {
	var w, h int
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("invalid world size %q (expected WIDTHxHEIGHT, e.g. 100x50)", s)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid world size %q (dimensions must be positive)", s)
	}
	return w, h, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early for the setup screen
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path before creation
	miner.SetConfigPath(flagConfig)

	if flagDifficulty != "" || flagWorld != "" {
		// Flags pre-decide the setup, skip the selector
		miner.SetDifficultyPreset(flagDifficulty)
		if flagWorld != "" {
			w, h, parseErr := parseWorldSize(flagWorld)
			if parseErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", parseErr)
				os.Exit(1)
			}
			miner.SetWorldSize(w, h)
		}
	} else {
		// Show difficulty and world size selector
		selection, updatedCfg, selErr := tui.RunMinerSetup(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		// Apply selection
		miner.SetDifficultyPreset(string(selection.Difficulty))
		miner.SetWorldSize(selection.WorldW, selection.WorldH)
	}

	// Create game instance
	game, err := registry.Create(minerGameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
