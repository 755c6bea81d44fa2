package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-miner/internal/registry"
	"github.com/vovakirdan/tui-miner/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the top 10 recorded runs with depth, ore haul, and pickaxe.

Examples:
  miner scores
  miner scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	// Get game title
	game, err := registry.Create(minerGameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	// Get top runs
	runs, err := store.TopRuns(minerGameID, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Display runs
	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'miner play' to set the first record!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %-16s  %s\n", "Rank", "Score", "Depth", "Ore", "Pickaxe", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %-16s  %s\n", "----", "-----", "-----", "---", "-------", "----")

	// Print runs
	for i, run := range runs {
		ore := run.Copper + run.Iron + run.Gold + run.Diamond
		pickaxe := run.Pickaxe
		if pickaxe == "" {
			pickaxe = "-"
		}
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %-5d  %-16s  %s\n", i+1, run.Score, run.Depth, ore, pickaxe, dateStr)
	}

	// Show aggregate stats
	fmt.Println()
	if stats, statsErr := store.GetGameStats(minerGameID); statsErr == nil && stats.RunsCount > 0 {
		fmt.Printf("Best: %d\n", stats.HighScore)
		fmt.Printf("%d runs, best depth %d, %d tiles mined in total\n",
			stats.RunsCount, stats.BestDepth, stats.TotalMined)
	}
}
