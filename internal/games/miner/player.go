package miner

import (
	"math"

	"github.com/vovakirdan/tui-miner/internal/core"
)

// PlayerSize is the player's square hitbox edge in world units.
const PlayerSize = 32

// Movement tuning. Terminals deliver key autorepeat instead of press and
// release events, so held keys arrive as a pulse train; friction bridges
// the gaps between pulses and stops the player shortly after the last one.
const (
	Friction    = 0.85 // Per-tick velocity decay while no movement input
	MinVelocity = 5.0  // Below this speed the player snaps to a stop
)

// Direction is a cardinal facing used to pick the mining target.
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

// Delta returns the tile-step offsets for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 1
	}
}

// String returns a short name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "down"
	}
}

// Stats are the player's upgradeable mining attributes.
type Stats struct {
	MiningSpeed   float64 // Base seconds per mining attempt, lower is faster
	MiningRange   float64 // Reach in world units, measured center to center
	OreMultiplier float64 // Ore yield multiplier, applied as floor(multiplier)
}

// Player is the miner avatar: a square that moves in world units over
// the tile grid and digs in the direction it last moved.
type Player struct {
	Pos    core.Vec2 // Top-left corner in world units
	Vel    core.Vec2 // World units per second
	Facing Direction
	Stats  Stats

	moveSpeed float64
}

// NewPlayer creates a player at the given position with base stats.
func NewPlayer(x, y float64, moveSpeed float64, stats Stats) *Player {
	return &Player{
		Pos:       core.Vec2{X: x, Y: y},
		Facing:    DirDown,
		Stats:     stats,
		moveSpeed: moveSpeed,
	}
}

// Center returns the middle of the player's hitbox in world units.
func (p *Player) Center() core.Vec2 {
	return core.Vec2{X: p.Pos.X + PlayerSize/2, Y: p.Pos.Y + PlayerSize/2}
}

// TilePos returns the tile coordinates under the player's center.
func (p *Player) TilePos() (int, int) {
	c := p.Center()
	return WorldToTile(c.X), WorldToTile(c.Y)
}

// Update advances the player by one tick. The input vector (ix, iy)
// holds the held movement axes in {-1, 0, 1}; diagonals are normalized
// so they are no faster than cardinals. Movement is resolved one axis
// at a time against solid tiles, and a blocked axis zeroes its velocity.
// Returns true if any movement input was applied.
func (p *Player) Update(dt float64, ix, iy int, w *World) bool {
	moving := ix != 0 || iy != 0

	if moving {
		dir := core.Vec2{X: float64(ix), Y: float64(iy)}.Normalized()
		p.Vel = dir.Scale(p.moveSpeed)
		p.updateFacing(ix, iy)
	} else {
		p.Vel = p.Vel.Scale(Friction)
		if p.Vel.Length() < MinVelocity {
			p.Vel = core.Vec2{}
		}
	}

	// Horizontal, then vertical. Resolving per axis lets the player
	// slide along walls instead of sticking to them.
	nx := p.Pos.X + p.Vel.X*dt
	if p.collides(w, nx, p.Pos.Y) {
		p.Vel.X = 0
	} else {
		p.Pos.X = nx
	}

	ny := p.Pos.Y + p.Vel.Y*dt
	if p.collides(w, p.Pos.X, ny) {
		p.Vel.Y = 0
	} else {
		p.Pos.Y = ny
	}

	return moving
}

// updateFacing picks the cardinal facing from the input axes.
// On diagonals the horizontal axis wins, so digging sideways while
// drifting vertically keeps its target.
func (p *Player) updateFacing(ix, iy int) {
	switch {
	case ix < 0:
		p.Facing = DirLeft
	case ix > 0:
		p.Facing = DirRight
	case iy < 0:
		p.Facing = DirUp
	case iy > 0:
		p.Facing = DirDown
	}
}

// collides reports whether the player hitbox at (x, y) overlaps any
// solid tile. The hitbox spans every tile its corners touch.
func (p *Player) collides(w *World, x, y float64) bool {
	left := WorldToTile(x)
	right := WorldToTile(x + PlayerSize - 1)
	top := WorldToTile(y)
	bottom := WorldToTile(y + PlayerSize - 1)

	for ty := top; ty <= bottom; ty++ {
		for tx := left; tx <= right; tx++ {
			if w.IsSolid(tx, ty) {
				return true
			}
		}
	}
	return false
}

// WorldToTile converts a world-unit coordinate to a tile index.
func WorldToTile(v float64) int {
	return int(math.Floor(v / TileSize))
}

// TileCenter returns the world-unit center of a tile.
func TileCenter(tx, ty int) core.Vec2 {
	return core.Vec2{
		X: float64(tx)*TileSize + TileSize/2,
		Y: float64(ty)*TileSize + TileSize/2,
	}
}
