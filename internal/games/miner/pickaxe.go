package miner

// PickaxeTier identifies one rung of the pickaxe upgrade ladder.
type PickaxeTier int

const (
	TierWooden PickaxeTier = iota
	TierStone
	TierIron
	TierGolden
	TierDiamond

	// NumPickaxeTiers is the tier count, usable as an array length.
	NumPickaxeTiers = int(TierDiamond) + 1
)

// tierStats holds the fixed per-tier name, power, and speed table.
// Power gates which tiles can be mined and divides mining time; speed
// is a display stat carried for the ladder's flavor text.
var tierStats = [NumPickaxeTiers]struct {
	name  string
	power float64
	speed float64
}{
	TierWooden:  {name: "Wooden Pickaxe", power: 1, speed: 1.0},
	TierStone:   {name: "Stone Pickaxe", power: 2, speed: 1.2},
	TierIron:    {name: "Iron Pickaxe", power: 4, speed: 1.5},
	TierGolden:  {name: "Golden Pickaxe", power: 7, speed: 2.0},
	TierDiamond: {name: "Diamond Pickaxe", power: 12, speed: 3.0},
}

// upgradeRecipes maps each tier to the cost of reaching the next one.
// The top tier has no entry.
var upgradeRecipes = map[PickaxeTier]Cost{
	TierWooden: {OreCopper: 5},
	TierStone:  {OreCopper: 8, OreIron: 3},
	TierIron:   {OreIron: 5, OreGold: 2},
	TierGolden: {OreGold: 3, OreDiamond: 1},
}

// Pickaxe is the player's mining tool. Its tier determines power
// (what it can break and how fast) and is upgraded through ore recipes.
type Pickaxe struct {
	Tier PickaxeTier
}

// NewPickaxe returns a fresh wooden pickaxe.
func NewPickaxe() *Pickaxe {
	return &Pickaxe{Tier: TierWooden}
}

// Name returns the display name of the current tier.
func (p *Pickaxe) Name() string {
	return p.Tier.Name()
}

// Power returns the mining power of the current tier.
func (p *Pickaxe) Power() float64 {
	return p.Tier.Power()
}

// Speed returns the display speed stat of the current tier.
func (p *Pickaxe) Speed() float64 {
	return p.Tier.Speed()
}

// UpgradeCost returns the recipe for the next tier.
// Returns false if the pickaxe is already at the top tier.
func (p *Pickaxe) UpgradeCost() (Cost, bool) {
	c, ok := upgradeRecipes[p.Tier]
	return c, ok
}

// CanUpgrade reports whether the next tier exists and the inventory
// covers its recipe.
func (p *Pickaxe) CanUpgrade(inv *Inventory) bool {
	c, ok := p.UpgradeCost()
	return ok && inv.CanAfford(c)
}

// AttemptUpgrade advances the pickaxe one tier, paying the recipe from
// the inventory. The payment is all-or-nothing: on failure the tier and
// the inventory are both unchanged.
func (p *Pickaxe) AttemptUpgrade(inv *Inventory) bool {
	c, ok := p.UpgradeCost()
	if !ok {
		return false
	}
	if !inv.Spend(c) {
		return false
	}
	p.Tier++
	return true
}

// MiningTime returns the seconds needed to break a tile of the given
// hardness, starting from the player's base mining time.
// Time shrinks with power but never drops below 0.1 seconds.
func (p *Pickaxe) MiningTime(baseTime, hardness float64) float64 {
	power := p.Power()
	if power <= 0 {
		return baseTime * 10
	}
	t := baseTime * hardness / power
	if t < 0.1 {
		return 0.1
	}
	return t
}

// CanBreak reports whether this pickaxe is strong enough for a tile of
// the given hardness. Tiles more than twice as hard as the pickaxe's
// power resist it entirely.
func (p *Pickaxe) CanBreak(hardness float64) bool {
	return p.Power() >= hardness*0.5
}

// Name returns the display name for the tier.
func (t PickaxeTier) Name() string {
	if t < 0 || int(t) >= NumPickaxeTiers {
		return "Unknown"
	}
	return tierStats[t].name
}

// Power returns the mining power for the tier.
func (t PickaxeTier) Power() float64 {
	if t < 0 || int(t) >= NumPickaxeTiers {
		return 0
	}
	return tierStats[t].power
}

// Speed returns the display speed stat for the tier.
func (t PickaxeTier) Speed() float64 {
	if t < 0 || int(t) >= NumPickaxeTiers {
		return 0
	}
	return tierStats[t].speed
}
