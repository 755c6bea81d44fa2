// miner is a TUI mining game played in the terminal.
//
// Usage:
//
//	miner play      - Start a mining run
//	miner menu      - Start menu to pick a run interactively
//	miner info      - Show the ore catalog, pickaxe tiers, and shop prices
//	miner serve     - Start SSH server for remote play
//	miner scores    - Show the best recorded runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible world generation
//	--db <path>     - Set database path (default: ~/.miner/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-miner/internal/games/miner"
)

// minerGameID is the registry ID of the bundled game.
const minerGameID = "miner"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "miner",
	Short: "TUI Miner - Dig for ore in your terminal",
	Long: `TUI Miner is a terminal mining game. Dig through a procedurally
generated world, collect ore, and upgrade your pickaxe and gear.

Available commands:
  play     - Start a mining run directly
  menu     - Interactive menu with scoreboard
  info     - Ore catalog, pickaxe tiers, and shop prices
  serve    - Start SSH server for remote play
  scores   - View the best recorded runs

Examples:
  miner play
  miner play --difficulty hard --world 160x80
  miner menu
  miner serve --ssh :2222
  miner scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.miner/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
