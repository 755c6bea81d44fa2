package miner

import (
	"math"
	"testing"
)

func TestTierStats(t *testing.T) {
	tests := []struct {
		tier  PickaxeTier
		name  string
		power float64
		speed float64
	}{
		{TierWooden, "Wooden Pickaxe", 1, 1.0},
		{TierStone, "Stone Pickaxe", 2, 1.2},
		{TierIron, "Iron Pickaxe", 4, 1.5},
		{TierGolden, "Golden Pickaxe", 7, 2.0},
		{TierDiamond, "Diamond Pickaxe", 12, 3.0},
	}

	for _, tt := range tests {
		if got := tt.tier.Name(); got != tt.name {
			t.Errorf("tier %d name = %q, want %q", tt.tier, got, tt.name)
		}
		if got := tt.tier.Power(); got != tt.power {
			t.Errorf("%s power = %f, want %f", tt.name, got, tt.power)
		}
		if got := tt.tier.Speed(); got != tt.speed {
			t.Errorf("%s speed = %f, want %f", tt.name, got, tt.speed)
		}
	}
}

func TestUpgradeLadder(t *testing.T) {
	p := NewPickaxe()
	inv := NewInventory()

	// Exactly enough for the full ladder:
	// 5 Cu, then 8 Cu + 3 Fe, then 5 Fe + 2 Au, then 3 Au + 1 Dia.
	inv.Add(OreCopper, 13)
	inv.Add(OreIron, 8)
	inv.Add(OreGold, 5)
	inv.Add(OreDiamond, 1)

	want := []PickaxeTier{TierStone, TierIron, TierGolden, TierDiamond}
	for _, next := range want {
		if !p.CanUpgrade(inv) {
			t.Fatalf("CanUpgrade should be true before reaching %v", next)
		}
		if !p.AttemptUpgrade(inv) {
			t.Fatalf("AttemptUpgrade to %v failed", next)
		}
		if p.Tier != next {
			t.Fatalf("tier = %v, want %v", p.Tier, next)
		}
	}

	if !inv.IsEmpty() {
		t.Errorf("full ladder should drain the exact-cost inventory, %d ore left", inv.TotalCount())
	}

	// At the top there is nothing further to buy.
	if _, ok := p.UpgradeCost(); ok {
		t.Error("UpgradeCost should report false at the top tier")
	}
	if p.CanUpgrade(inv) {
		t.Error("CanUpgrade should be false at the top tier")
	}
	if p.AttemptUpgrade(inv) {
		t.Error("AttemptUpgrade should fail at the top tier")
	}
	if p.Tier != TierDiamond {
		t.Errorf("failed upgrade moved the tier to %v", p.Tier)
	}
}

func TestAttemptUpgradeInsufficient(t *testing.T) {
	p := &Pickaxe{Tier: TierStone}
	inv := NewInventory()
	inv.Add(OreCopper, 8) // Recipe also needs 3 iron

	if p.AttemptUpgrade(inv) {
		t.Fatal("upgrade should fail without the iron")
	}
	if p.Tier != TierStone {
		t.Errorf("failed upgrade changed tier to %v", p.Tier)
	}
	if inv.Count(OreCopper) != 8 {
		t.Errorf("failed upgrade spent copper: %d left", inv.Count(OreCopper))
	}
}

func TestMiningTime(t *testing.T) {
	wooden := NewPickaxe()

	// Copper ore with the base stats: 1.0 * 1.2 / 1 = 1.2 seconds.
	if got := wooden.MiningTime(1.0, 1.2); math.Abs(got-1.2) > 1e-9 {
		t.Errorf("wooden vs copper = %f, want 1.2", got)
	}

	// A fast pickaxe on soft ground hits the 0.1s floor.
	diamond := &Pickaxe{Tier: TierDiamond}
	if got := diamond.MiningTime(1.0, 0.5); got != 0.1 {
		t.Errorf("diamond vs dirt = %f, want the 0.1 floor", got)
	}

	// Non-positive power falls back to a ten-fold penalty.
	broken := &Pickaxe{Tier: PickaxeTier(-1)}
	if got := broken.MiningTime(1.0, 1.0); got != 10.0 {
		t.Errorf("zero-power time = %f, want 10", got)
	}
}

func TestCanBreak(t *testing.T) {
	wooden := NewPickaxe()
	stone := &Pickaxe{Tier: TierStone}

	// Gold ore (hardness 2.0) sits exactly at the wooden boundary.
	if !wooden.CanBreak(TileGoldOre.Hardness()) {
		t.Error("wooden pickaxe should break gold ore at the exact threshold")
	}
	// Diamond ore (hardness 3.0) needs power 1.5.
	if wooden.CanBreak(TileDiamondOre.Hardness()) {
		t.Error("wooden pickaxe should not break diamond ore")
	}
	if !stone.CanBreak(TileDiamondOre.Hardness()) {
		t.Error("stone pickaxe should break diamond ore")
	}
	// Bedrock resists everything.
	diamond := &Pickaxe{Tier: TierDiamond}
	if diamond.CanBreak(TileBedrock.Hardness()) {
		t.Error("no pickaxe should break bedrock")
	}
}
