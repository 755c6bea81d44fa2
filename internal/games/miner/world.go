package miner

import (
	"math/rand"

	"github.com/vovakirdan/tui-miner/internal/config"
	"github.com/vovakirdan/tui-miner/internal/core"
)

// BedrockRows is the number of unbreakable rows at the bottom of the world.
const BedrockRows = 2

// World is the tile grid the player digs through.
// Tiles are stored in a flat row-major array for cheap access during
// collision checks and rendering.
type World struct {
	width  int
	height int
	tiles  []TileType
}

// NewWorld allocates an all-air world of the given dimensions.
func NewWorld(width, height int) *World {
	return &World{
		width:  width,
		height: height,
		tiles:  make([]TileType, width*height),
	}
}

// Width returns the world width in tiles.
func (w *World) Width() int {
	return w.width
}

// Height returns the world height in tiles.
func (w *World) Height() int {
	return w.height
}

// InBounds reports whether (x, y) is a valid tile coordinate.
func (w *World) InBounds(x, y int) bool {
	return x >= 0 && x < w.width && y >= 0 && y < w.height
}

// TileAt returns the tile at (x, y).
// Out-of-bounds coordinates read as Bedrock, so the world edge behaves
// like an unbreakable wall.
func (w *World) TileAt(x, y int) TileType {
	if !w.InBounds(x, y) {
		return TileBedrock
	}
	return w.tiles[y*w.width+x]
}

// SetTile replaces the tile at (x, y).
// Out-of-bounds writes are silently ignored.
func (w *World) SetTile(x, y int, t TileType) {
	if !w.InBounds(x, y) {
		return
	}
	w.tiles[y*w.width+x] = t
}

// IsSolid reports whether the tile at (x, y) blocks movement.
// Out-of-bounds counts as solid.
func (w *World) IsSolid(x, y int) bool {
	return w.TileAt(x, y).IsSolid()
}

// BreakTile removes the tile at (x, y) if the pickaxe power is
// sufficient. Air and Bedrock are never broken, nor are tiles more
// than twice as hard as the power. Returns the tile that was removed
// and whether anything changed.
func (w *World) BreakTile(x, y int, power float64) (TileType, bool) {
	t := w.TileAt(x, y)
	if t == TileAir || t == TileBedrock {
		return TileAir, false
	}
	if power < t.Hardness()*0.5 {
		return TileAir, false
	}
	w.SetTile(x, y, TileAir)
	return t, true
}

// Generate builds the world in three passes: layered terrain, random
// walk caves, then depth-gated ore seeding. The same rng state always
// produces the same world.
func (w *World) Generate(rng *rand.Rand, cfg config.MinerConfig) {
	w.generateTerrain(rng)
	w.carveCaves(rng, cfg.Caves)
	w.seedOres(rng, cfg.Ores)
	w.clearSpawn()
}

// generateTerrain lays down the base layers: sky on top, a dirt band,
// stone below, and an unbreakable bedrock floor.
func (w *World) generateTerrain(rng *rand.Rand) {
	for y := 0; y < w.height; y++ {
		for x := 0; x < w.width; x++ {
			var t TileType
			switch {
			case y >= w.height-BedrockRows:
				t = TileBedrock
			case y < 2:
				t = TileAir
			case y == 2:
				// Broken surface line
				if rng.Float64() < 0.7 {
					t = TileDirt
				} else {
					t = TileAir
				}
			case y <= 7:
				if rng.Float64() < 0.8 {
					t = TileDirt
				} else {
					t = TileStone
				}
			default:
				t = TileStone
			}
			w.tiles[y*w.width+x] = t
		}
	}
}

// carveCaves runs several random walks through the underground,
// hollowing out a radius around each step. Bedrock is never carved.
func (w *World) carveCaves(rng *rand.Rand, cfg config.MinerCaves) {
	systems := cfg.MinSystems
	if cfg.MaxSystems > cfg.MinSystems {
		systems += rng.Intn(cfg.MaxSystems - cfg.MinSystems + 1)
	}

	for i := 0; i < systems; i++ {
		x := rng.Intn(w.width)
		y := 8 + rng.Intn(w.height-15)

		steps := cfg.MinWalk
		if cfg.MaxWalk > cfg.MinWalk {
			steps += rng.Intn(cfg.MaxWalk - cfg.MinWalk + 1)
		}
		radius := 1 + rng.Intn(3)

		for s := 0; s < steps; s++ {
			w.carveCircle(rng, x, y, radius, cfg.CarveChance)

			// Random cardinal step, kept inside the diggable band
			switch rng.Intn(4) {
			case 0:
				x++
			case 1:
				x--
			case 2:
				y++
			case 3:
				y--
			}
			x = core.Clamp(x, 1, w.width-2)
			y = core.Clamp(y, 8, w.height-3)
		}
	}
}

// carveCircle hollows cells within radius r of (cx, cy) to air.
// Each cell is carved with the given chance; bedrock stays.
func (w *World) carveCircle(rng *rand.Rand, cx, cy, r int, chance float64) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			x, y := cx+dx, cy+dy
			if !w.InBounds(x, y) || w.TileAt(x, y) == TileBedrock {
				continue
			}
			if rng.Float64() < chance {
				w.SetTile(x, y, TileAir)
			}
		}
	}
}

// seedOres scatters ore through the stone layer, one kind at a time in
// catalog order. Spawn chance grows with depth below the kind's minimum
// row, and each placed ore may grow a small vein into its neighbors.
// Only stone is ever replaced.
func (w *World) seedOres(rng *rand.Rand, cfg config.MinerOres) {
	for _, kind := range AllOreKinds() {
		props := kind.Properties()
		tile := TileForOre(kind)

		for y := props.MinDepth; y <= w.height-5; y++ {
			depthBonus := 1 + cfg.DepthScale*float64(y-props.MinDepth)
			chance := props.Rarity * cfg.Richness * depthBonus

			for x := 0; x < w.width; x++ {
				if w.TileAt(x, y) != TileStone {
					continue
				}
				if rng.Float64() >= chance {
					continue
				}
				w.SetTile(x, y, tile)

				if rng.Float64() < cfg.VeinChance {
					w.growVein(rng, x, y, tile, props.MinDepth, cfg.VeinSpread)
				}
			}
		}
	}
}

// growVein extends an ore deposit into the eight neighbors of (x, y).
// Veins never climb above the kind's minimum depth.
func (w *World) growVein(rng *rand.Rand, x, y int, tile TileType, minDepth int, spread float64) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if ny < minDepth || w.TileAt(nx, ny) != TileStone {
				continue
			}
			if rng.Float64() < spread {
				w.SetTile(nx, ny, tile)
			}
		}
	}
}

// clearSpawn guarantees an air pocket at the player spawn point so a
// fresh world never wedges the player inside the surface dirt.
func (w *World) clearSpawn() {
	cx := w.width / 2
	for y := 1; y <= 2; y++ {
		for x := cx - 1; x <= cx+1; x++ {
			if w.TileAt(x, y) != TileBedrock {
				w.SetTile(x, y, TileAir)
			}
		}
	}
}

// SpawnPoint returns the world-unit position where a new player starts:
// centered horizontally, just below the sky.
func (w *World) SpawnPoint() (float64, float64) {
	return float64(w.width/2) * TileSize, 2 * TileSize
}
