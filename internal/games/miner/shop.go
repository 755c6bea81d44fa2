package miner

// UpgradeTrack identifies one of the three stat upgrade lines sold in
// the shop. The pickaxe tier ladder is separate (see Pickaxe).
type UpgradeTrack int

const (
	TrackSpeed UpgradeTrack = iota
	TrackRange
	TrackMultiplier

	// NumTracks is the track count, usable as an array length.
	NumTracks = int(TrackMultiplier) + 1
)

// Stat deltas applied per purchase.
const (
	SpeedDelta      = 0.2 // Seconds shaved off the base mining time
	SpeedFloor      = 0.1 // Base mining time never drops below this
	RangeDelta      = 15  // World units added to mining reach
	MultiplierDelta = 0.5 // Added to the ore yield multiplier
)

// speedCosts, rangeCosts, and multiplierCosts are the level-indexed
// price tables. Levels past the table end repeat the last entry.
var (
	speedCosts = []Cost{
		{OreCopper: 10},
		{OreCopper: 20, OreIron: 5},
		{OreCopper: 50, OreIron: 15, OreGold: 3},
		{OreCopper: 100, OreIron: 30, OreGold: 10, OreDiamond: 1},
		{OreCopper: 200, OreIron: 50, OreGold: 20, OreDiamond: 2},
	}
	rangeCosts = []Cost{
		{OreCopper: 15},
		{OreCopper: 30, OreIron: 8},
		{OreCopper: 60, OreIron: 20, OreGold: 5},
		{OreCopper: 120, OreIron: 40, OreGold: 15, OreDiamond: 2},
		{OreCopper: 250, OreIron: 75, OreGold: 30, OreDiamond: 5},
	}
	multiplierCosts = []Cost{
		{OreCopper: 25, OreIron: 5},
		{OreCopper: 50, OreIron: 15, OreGold: 3},
		{OreCopper: 100, OreIron: 40, OreGold: 12, OreDiamond: 1},
		{OreCopper: 200, OreIron: 80, OreGold: 25, OreDiamond: 3},
		{OreCopper: 400, OreIron: 150, OreGold: 50, OreDiamond: 10},
	}
)

// String returns the shop display name for the track.
func (t UpgradeTrack) String() string {
	switch t {
	case TrackSpeed:
		return "Mining Speed"
	case TrackRange:
		return "Mining Range"
	case TrackMultiplier:
		return "Ore Multiplier"
	default:
		return "Unknown"
	}
}

// TrackCost returns the price of buying the given track at the given
// level (the number of purchases already made on that track).
func TrackCost(t UpgradeTrack, level int) Cost {
	var table []Cost
	switch t {
	case TrackSpeed:
		table = speedCosts
	case TrackRange:
		table = rangeCosts
	case TrackMultiplier:
		table = multiplierCosts
	default:
		return Cost{}
	}
	if level < 0 {
		level = 0
	}
	if level >= len(table) {
		level = len(table) - 1
	}
	return table[level]
}

// Shop sells stat upgrades along three independent tracks.
// Each purchase raises the track level, making the next one pricier.
type Shop struct {
	levels [NumTracks]int
}

// NewShop creates a shop with all tracks at level zero.
func NewShop() *Shop {
	return &Shop{}
}

// Level returns how many purchases have been made on a track.
func (s *Shop) Level(t UpgradeTrack) int {
	if t < 0 || int(t) >= NumTracks {
		return 0
	}
	return s.levels[t]
}

// NextCost returns the price of the next purchase on a track.
func (s *Shop) NextCost(t UpgradeTrack) Cost {
	return TrackCost(t, s.Level(t))
}

// Buy purchases one upgrade on the given track, paying from the
// inventory and applying the stat delta. The payment is all-or-nothing:
// on failure the stats, the level, and the inventory are all unchanged.
func (s *Shop) Buy(t UpgradeTrack, inv *Inventory, stats *Stats) bool {
	if t < 0 || int(t) >= NumTracks {
		return false
	}
	if !inv.Spend(s.NextCost(t)) {
		return false
	}

	switch t {
	case TrackSpeed:
		stats.MiningSpeed -= SpeedDelta
		if stats.MiningSpeed < SpeedFloor {
			stats.MiningSpeed = SpeedFloor
		}
	case TrackRange:
		stats.MiningRange += RangeDelta
	case TrackMultiplier:
		stats.OreMultiplier += MultiplierDelta
	}

	s.levels[t]++
	return true
}
