package miner

import (
	"fmt"
	"strings"
)

// Cost is a price expressed in ore counts, indexed by OreKind
// (copper, iron, gold, diamond).
type Cost [NumOreKinds]int

// IsFree reports whether the cost charges nothing.
func (c Cost) IsFree() bool {
	for _, n := range c {
		if n > 0 {
			return false
		}
	}
	return true
}

// String formats the cost for display, e.g. "8 Copper + 3 Iron".
func (c Cost) String() string {
	var parts []string
	for _, k := range AllOreKinds() {
		if c[k] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", c[k], k))
		}
	}
	if len(parts) == 0 {
		return "free"
	}
	return strings.Join(parts, " + ")
}

// Inventory tracks how much of each ore the player carries.
// Counts never go negative.
type Inventory struct {
	counts [NumOreKinds]int
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add deposits n units of an ore kind.
// Unknown kinds and non-positive amounts are ignored.
func (inv *Inventory) Add(k OreKind, n int) {
	if !k.Valid() || n <= 0 {
		return
	}
	inv.counts[k] += n
}

// Remove withdraws n units of an ore kind.
// Returns false without changing anything if the inventory holds fewer
// than n units, or if the kind or amount is invalid.
func (inv *Inventory) Remove(k OreKind, n int) bool {
	if !k.Valid() || n <= 0 {
		return false
	}
	if inv.counts[k] < n {
		return false
	}
	inv.counts[k] -= n
	return true
}

// Count returns how many units of an ore kind the inventory holds.
func (inv *Inventory) Count(k OreKind) int {
	if !k.Valid() {
		return 0
	}
	return inv.counts[k]
}

// Has reports whether the inventory holds at least n units of an ore kind.
func (inv *Inventory) Has(k OreKind, n int) bool {
	return k.Valid() && inv.counts[k] >= n
}

// TotalCount returns the total number of ore units across all kinds.
func (inv *Inventory) TotalCount() int {
	total := 0
	for _, n := range inv.counts {
		total += n
	}
	return total
}

// TotalValue returns the combined catalog value of everything carried.
func (inv *Inventory) TotalValue() int {
	total := 0
	for k, n := range inv.counts {
		total += n * OreKind(k).Properties().Value
	}
	return total
}

// IsEmpty reports whether the inventory holds nothing.
func (inv *Inventory) IsEmpty() bool {
	return inv.TotalCount() == 0
}

// CanAfford reports whether the inventory covers every component of a cost.
func (inv *Inventory) CanAfford(c Cost) bool {
	for k, n := range c {
		if inv.counts[k] < n {
			return false
		}
	}
	return true
}

// Spend withdraws an entire cost atomically.
// Either every component is deducted or nothing changes.
func (inv *Inventory) Spend(c Cost) bool {
	if !inv.CanAfford(c) {
		return false
	}
	for k, n := range c {
		inv.counts[k] -= n
	}
	return true
}
