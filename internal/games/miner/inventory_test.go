package miner

import "testing"

func TestInventoryAddAndCount(t *testing.T) {
	inv := NewInventory()

	if !inv.IsEmpty() {
		t.Error("new inventory should be empty")
	}

	inv.Add(OreCopper, 3)
	inv.Add(OreCopper, 2)
	inv.Add(OreIron, 7)

	if got := inv.Count(OreCopper); got != 5 {
		t.Errorf("Count(Copper) = %d, want 5", got)
	}
	if got := inv.Count(OreIron); got != 7 {
		t.Errorf("Count(Iron) = %d, want 7", got)
	}
	if got := inv.Count(OreGold); got != 0 {
		t.Errorf("Count(Gold) = %d, want 0", got)
	}
	if inv.IsEmpty() {
		t.Error("inventory with ore should not be empty")
	}
}

func TestInventoryAddIgnoresInvalid(t *testing.T) {
	inv := NewInventory()

	inv.Add(OreCopper, 0)
	inv.Add(OreCopper, -5)
	inv.Add(OreKind(-1), 10)
	inv.Add(OreKind(99), 10)

	if !inv.IsEmpty() {
		t.Errorf("invalid adds changed the inventory: total %d", inv.TotalCount())
	}
}

func TestInventoryRemove(t *testing.T) {
	inv := NewInventory()
	inv.Add(OreGold, 4)

	if !inv.Remove(OreGold, 3) {
		t.Fatal("Remove(Gold, 3) should succeed with 4 in stock")
	}
	if got := inv.Count(OreGold); got != 1 {
		t.Errorf("Count(Gold) after remove = %d, want 1", got)
	}

	// Removing more than held must fail without touching the count.
	if inv.Remove(OreGold, 2) {
		t.Error("Remove(Gold, 2) should fail with only 1 in stock")
	}
	if got := inv.Count(OreGold); got != 1 {
		t.Errorf("failed remove changed count to %d", got)
	}

	if inv.Remove(OreGold, 0) {
		t.Error("Remove of zero should report false")
	}
	if inv.Remove(OreKind(-1), 1) {
		t.Error("Remove of invalid kind should report false")
	}
}

func TestInventoryHas(t *testing.T) {
	inv := NewInventory()
	inv.Add(OreDiamond, 2)

	if !inv.Has(OreDiamond, 2) {
		t.Error("Has(Diamond, 2) should be true with exactly 2")
	}
	if inv.Has(OreDiamond, 3) {
		t.Error("Has(Diamond, 3) should be false with 2")
	}
	if !inv.Has(OreCopper, 0) {
		t.Error("Has(Copper, 0) should be true for an empty slot")
	}
}

func TestInventoryTotals(t *testing.T) {
	inv := NewInventory()
	inv.Add(OreCopper, 10) // value 10
	inv.Add(OreIron, 2)    // value 6
	inv.Add(OreDiamond, 1) // value 20

	if got := inv.TotalCount(); got != 13 {
		t.Errorf("TotalCount = %d, want 13", got)
	}
	if got := inv.TotalValue(); got != 36 {
		t.Errorf("TotalValue = %d, want 36", got)
	}
}

func TestInventorySpendAtomic(t *testing.T) {
	inv := NewInventory()
	inv.Add(OreCopper, 10)
	inv.Add(OreIron, 2)

	// Iron is one short: nothing may be deducted.
	cost := Cost{OreCopper: 8, OreIron: 3}
	if inv.CanAfford(cost) {
		t.Fatal("CanAfford should be false with 2 of 3 iron")
	}
	if inv.Spend(cost) {
		t.Fatal("Spend should fail with 2 of 3 iron")
	}
	if inv.Count(OreCopper) != 10 || inv.Count(OreIron) != 2 {
		t.Errorf("failed Spend changed the inventory: copper %d iron %d",
			inv.Count(OreCopper), inv.Count(OreIron))
	}

	// Topped up, the same cost goes through in full.
	inv.Add(OreIron, 1)
	if !inv.Spend(cost) {
		t.Fatal("Spend should succeed once the iron is there")
	}
	if inv.Count(OreCopper) != 2 || inv.Count(OreIron) != 0 {
		t.Errorf("Spend deducted wrong amounts: copper %d iron %d",
			inv.Count(OreCopper), inv.Count(OreIron))
	}
}

func TestCostString(t *testing.T) {
	c := Cost{OreCopper: 8, OreIron: 3}
	if got := c.String(); got != "8 Copper + 3 Iron" {
		t.Errorf("Cost.String() = %q, want %q", got, "8 Copper + 3 Iron")
	}

	var free Cost
	if !free.IsFree() {
		t.Error("zero cost should be free")
	}
	if got := free.String(); got != "free" {
		t.Errorf("free Cost.String() = %q, want %q", got, "free")
	}
}
