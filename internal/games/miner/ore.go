// Package miner implements a 2D tile mining game.
// The player digs through a procedurally generated world, collects ore,
// and spends it on pickaxe tiers and stat upgrades.
package miner

// OreKind identifies a collectible ore type.
type OreKind int

const (
	OreCopper OreKind = iota
	OreIron
	OreGold
	OreDiamond

	// NumOreKinds is the number of ore kinds, usable as an array length.
	NumOreKinds = int(OreDiamond) + 1
)

// OreProperties describes the fixed catalog entry for an ore kind.
type OreProperties struct {
	Name     string  // Display name
	Value    int     // Score and trade value per unit
	Rarity   float64 // Base spawn chance during world generation
	MinDepth int     // Shallowest row (in tiles) where the ore can spawn
}

// oreCatalog is the fixed ore table, indexed by OreKind.
// Entries are ordered by ascending value.
var oreCatalog = [NumOreKinds]OreProperties{
	OreCopper:  {Name: "Copper", Value: 1, Rarity: 0.15, MinDepth: 5},
	OreIron:    {Name: "Iron", Value: 3, Rarity: 0.08, MinDepth: 10},
	OreGold:    {Name: "Gold", Value: 8, Rarity: 0.03, MinDepth: 15},
	OreDiamond: {Name: "Diamond", Value: 20, Rarity: 0.008, MinDepth: 25},
}

// Properties returns the catalog entry for this ore kind.
// Unknown kinds return a zero entry.
func (k OreKind) Properties() OreProperties {
	if k < 0 || int(k) >= NumOreKinds {
		return OreProperties{}
	}
	return oreCatalog[k]
}

// Valid reports whether k is a known ore kind.
func (k OreKind) Valid() bool {
	return k >= 0 && int(k) < NumOreKinds
}

// String returns the display name of the ore kind.
func (k OreKind) String() string {
	if !k.Valid() {
		return "Unknown"
	}
	return oreCatalog[k].Name
}

// AllOreKinds returns every ore kind in ascending value order.
func AllOreKinds() []OreKind {
	return []OreKind{OreCopper, OreIron, OreGold, OreDiamond}
}
