package miner

import (
	"math"
	"testing"
)

func TestTrackCostTables(t *testing.T) {
	// First rung of each track.
	if got := TrackCost(TrackSpeed, 0); got != (Cost{OreCopper: 10}) {
		t.Errorf("speed L0 = %v", got)
	}
	if got := TrackCost(TrackRange, 0); got != (Cost{OreCopper: 15}) {
		t.Errorf("range L0 = %v", got)
	}
	if got := TrackCost(TrackMultiplier, 0); got != (Cost{OreCopper: 25, OreIron: 5}) {
		t.Errorf("multiplier L0 = %v", got)
	}

	// Past the table end the last entry repeats.
	top := Cost{OreCopper: 200, OreIron: 50, OreGold: 20, OreDiamond: 2}
	if got := TrackCost(TrackSpeed, 4); got != top {
		t.Errorf("speed L4 = %v, want %v", got, top)
	}
	if got := TrackCost(TrackSpeed, 17); got != top {
		t.Errorf("speed L17 = %v, want the L4 price to repeat", got)
	}

	if got := TrackCost(TrackSpeed, -1); got != (Cost{OreCopper: 10}) {
		t.Errorf("negative level = %v, want the L0 price", got)
	}
	if got := TrackCost(UpgradeTrack(99), 0); !got.IsFree() {
		t.Errorf("unknown track = %v, want free", got)
	}
}

func richInventory() *Inventory {
	inv := NewInventory()
	inv.Add(OreCopper, 10000)
	inv.Add(OreIron, 10000)
	inv.Add(OreGold, 10000)
	inv.Add(OreDiamond, 10000)
	return inv
}

func TestBuyAppliesDeltas(t *testing.T) {
	shop := NewShop()
	inv := richInventory()
	stats := Stats{MiningSpeed: 1.0, MiningRange: 100, OreMultiplier: 1.0}

	if !shop.Buy(TrackSpeed, inv, &stats) {
		t.Fatal("funded speed purchase failed")
	}
	if math.Abs(stats.MiningSpeed-0.8) > 1e-9 {
		t.Errorf("MiningSpeed = %f, want 0.8", stats.MiningSpeed)
	}
	if shop.Level(TrackSpeed) != 1 {
		t.Errorf("speed level = %d, want 1", shop.Level(TrackSpeed))
	}
	if got := inv.Count(OreCopper); got != 9990 {
		t.Errorf("copper after speed L0 purchase = %d, want 9990", got)
	}

	if !shop.Buy(TrackRange, inv, &stats) {
		t.Fatal("funded range purchase failed")
	}
	if stats.MiningRange != 115 {
		t.Errorf("MiningRange = %f, want 115", stats.MiningRange)
	}

	if !shop.Buy(TrackMultiplier, inv, &stats) {
		t.Fatal("funded multiplier purchase failed")
	}
	if stats.OreMultiplier != 1.5 {
		t.Errorf("OreMultiplier = %f, want 1.5", stats.OreMultiplier)
	}

	// Each track levels independently.
	if shop.Level(TrackSpeed) != 1 || shop.Level(TrackRange) != 1 || shop.Level(TrackMultiplier) != 1 {
		t.Errorf("levels = %d/%d/%d, want 1/1/1",
			shop.Level(TrackSpeed), shop.Level(TrackRange), shop.Level(TrackMultiplier))
	}
}

func TestSpeedFloor(t *testing.T) {
	shop := NewShop()
	inv := richInventory()
	stats := Stats{MiningSpeed: 1.0, MiningRange: 100, OreMultiplier: 1.0}

	// 1.0 -> 0.8 -> 0.6 -> 0.4 -> 0.2 -> clamped to 0.1.
	for i := 0; i < 5; i++ {
		if !shop.Buy(TrackSpeed, inv, &stats) {
			t.Fatalf("purchase %d failed", i+1)
		}
	}
	if stats.MiningSpeed != SpeedFloor {
		t.Errorf("MiningSpeed after 5 buys = %f, want %f", stats.MiningSpeed, SpeedFloor)
	}

	// Further purchases still succeed but cannot go below the floor.
	if !shop.Buy(TrackSpeed, inv, &stats) {
		t.Fatal("purchase at the floor should still succeed")
	}
	if stats.MiningSpeed != SpeedFloor {
		t.Errorf("MiningSpeed after floor purchase = %f, want %f", stats.MiningSpeed, SpeedFloor)
	}
	if shop.Level(TrackSpeed) != 6 {
		t.Errorf("speed level = %d, want 6", shop.Level(TrackSpeed))
	}
}

func TestBuyInsufficient(t *testing.T) {
	shop := NewShop()
	inv := NewInventory()
	inv.Add(OreCopper, 9) // Speed L0 costs 10
	stats := Stats{MiningSpeed: 1.0, MiningRange: 100, OreMultiplier: 1.0}

	if shop.Buy(TrackSpeed, inv, &stats) {
		t.Fatal("underfunded purchase should fail")
	}
	if stats.MiningSpeed != 1.0 {
		t.Errorf("failed purchase changed MiningSpeed to %f", stats.MiningSpeed)
	}
	if shop.Level(TrackSpeed) != 0 {
		t.Errorf("failed purchase moved the level to %d", shop.Level(TrackSpeed))
	}
	if inv.Count(OreCopper) != 9 {
		t.Errorf("failed purchase spent copper: %d left", inv.Count(OreCopper))
	}
}
