package miner

// TileSize is the edge length of one tile in world units.
// Player position and mining reach are measured in the same units.
const TileSize = 32

// TileType identifies what occupies a world cell.
type TileType int

const (
	TileAir TileType = iota
	TileDirt
	TileStone
	TileBedrock
	TileCopperOre
	TileIronOre
	TileGoldOre
	TileDiamondOre
)

// Hardness returns how resistant the tile is to mining.
// Mining time scales with hardness; Bedrock is effectively unbreakable.
func (t TileType) Hardness() float64 {
	switch t {
	case TileAir:
		return 0
	case TileDirt:
		return 0.5
	case TileStone:
		return 1.0
	case TileBedrock:
		return 1000
	case TileCopperOre:
		return 1.2
	case TileIronOre:
		return 1.5
	case TileGoldOre:
		return 2.0
	case TileDiamondOre:
		return 3.0
	default:
		return 0
	}
}

// IsSolid reports whether the tile blocks player movement.
func (t TileType) IsSolid() bool {
	return t != TileAir
}

// Ore returns the ore kind this tile yields when mined.
// Non-ore tiles return false.
func (t TileType) Ore() (OreKind, bool) {
	switch t {
	case TileCopperOre:
		return OreCopper, true
	case TileIronOre:
		return OreIron, true
	case TileGoldOre:
		return OreGold, true
	case TileDiamondOre:
		return OreDiamond, true
	default:
		return 0, false
	}
}

// TileForOre returns the world tile that embeds the given ore kind.
func TileForOre(k OreKind) TileType {
	switch k {
	case OreCopper:
		return TileCopperOre
	case OreIron:
		return TileIronOre
	case OreGold:
		return TileGoldOre
	case OreDiamond:
		return TileDiamondOre
	default:
		return TileStone
	}
}

// String returns a short name for the tile type.
func (t TileType) String() string {
	switch t {
	case TileAir:
		return "Air"
	case TileDirt:
		return "Dirt"
	case TileStone:
		return "Stone"
	case TileBedrock:
		return "Bedrock"
	case TileCopperOre:
		return "Copper Ore"
	case TileIronOre:
		return "Iron Ore"
	case TileGoldOre:
		return "Gold Ore"
	case TileDiamondOre:
		return "Diamond Ore"
	default:
		return "Unknown"
	}
}
