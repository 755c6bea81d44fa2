package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-miner/internal/games/miner"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the ore catalog, pickaxe tiers, and shop prices",
	Long:  `Shows the ore catalog, the pickaxe upgrade ladder, and the shop price tables.`,
	Run:   runInfo,
}

// shopLevels is how many rows each shop price table holds.
// Purchases past the last row repeat its price.
const shopLevels = 5

func runInfo(cmd *cobra.Command, args []string) {
	fmt.Println("Tile Miner reference")
	fmt.Println()

	// Ore catalog
	kinds := miner.AllOreKinds()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, k := range kinds {
		if len(k.Properties().Name) > maxNameLen {
			maxNameLen = len(k.Properties().Name)
		}
	}

	fmt.Println("Ore:")
	fmt.Printf("  %-*s  %5s  %7s  %s\n", maxNameLen, "Name", "Value", "Rarity", "Min Depth")
	fmt.Printf("  %-*s  %5s  %7s  %s\n", maxNameLen, "----", "-----", "------", "---------")
	for _, k := range kinds {
		p := k.Properties()
		fmt.Printf("  %-*s  %5d  %6.1f%%  %9d\n", maxNameLen, p.Name, p.Value, p.Rarity*100, p.MinDepth)
	}
	fmt.Println()

	// Pickaxe ladder
	maxTierLen := 4 // "Tier" header
	for t := miner.TierWooden; int(t) < miner.NumPickaxeTiers; t++ {
		if len(t.Name()) > maxTierLen {
			maxTierLen = len(t.Name())
		}
	}

	fmt.Println("Pickaxes:")
	fmt.Printf("  %-*s  %5s  %5s  %s\n", maxTierLen, "Tier", "Power", "Speed", "Upgrade Cost")
	fmt.Printf("  %-*s  %5s  %5s  %s\n", maxTierLen, "----", "-----", "-----", "------------")
	for t := miner.TierWooden; int(t) < miner.NumPickaxeTiers; t++ {
		p := miner.Pickaxe{Tier: t}
		costStr := "-"
		if cost, ok := p.UpgradeCost(); ok {
			costStr = cost.String()
		}
		fmt.Printf("  %-*s  %5.0f  %4.1fx  %s\n", maxTierLen, t.Name(), t.Power(), t.Speed(), costStr)
	}
	fmt.Println()

	// Shop price tables
	fmt.Println("Shop:")
	for t := miner.UpgradeTrack(0); int(t) < miner.NumTracks; t++ {
		var effect string
		switch t {
		case miner.TrackSpeed:
			effect = fmt.Sprintf("-%.1fs mining time per level", miner.SpeedDelta)
		case miner.TrackRange:
			effect = fmt.Sprintf("+%d reach per level", miner.RangeDelta)
		case miner.TrackMultiplier:
			effect = fmt.Sprintf("+%.1f ore yield per level", miner.MultiplierDelta)
		}
		fmt.Printf("  %s (%s)\n", t, effect)
		for lvl := 0; lvl < shopLevels; lvl++ {
			fmt.Printf("    Level %d: %s\n", lvl+1, miner.TrackCost(t, lvl))
		}
	}

	fmt.Println()
	fmt.Println("Run 'miner play' to start digging.")
}
