package miner

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-miner/internal/config"
	"github.com/vovakirdan/tui-miner/internal/core"
	"github.com/vovakirdan/tui-miner/internal/registry"
)

// screenMode is which screen the game is currently showing.
// Only screenPlaying advances the simulation.
type screenMode int

const (
	screenPlaying screenMode = iota
	screenInventory
	screenShop
	screenPickaxe
	screenPaused
)

// Game implements the Tile Miner game logic.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.MinerConfig
	rng     *rand.Rand
	seed    int64
	dt      float64 // Seconds per simulation tick

	world   *World
	player  *Player
	inv     *Inventory
	pickaxe *Pickaxe
	shop    *Shop

	mode       screenMode
	score      int // Lifetime value of everything mined; spending never lowers it
	tilesMined int
	maxDepth   int
	mined      [NumOreKinds]int // Lifetime mined counts per kind
	tick       int

	mining miningState

	statusMsg   string
	statusTicks int

	showDebug bool
}

// miningState is the in-flight mining channel: which tile is being
// worked and how far along it is.
type miningState struct {
	active   bool
	tx, ty   int
	tile     TileType
	progress float64 // Seconds spent so far
	total    float64 // Seconds required
}

// Package-level variables set by the CLI before game creation.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	worldWidth       int
	worldHeight      int
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	default:
		difficultyPreset = ""
	}
}

// SetWorldSize overrides the configured world dimensions.
// Zero means use the config values.
func SetWorldSize(width, height int) {
	worldWidth = width
	worldHeight = height
}

// New creates a new Tile Miner game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("miner", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "miner"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tile Miner"
}

// Reset generates a fresh world and resets the run.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt

	// Load game config
	cfg, err := config.LoadMiner(configPath)
	if err != nil {
		cfg = config.DefaultMinerConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyMinerPreset(&cfg, difficultyPreset)
	}

	// Apply world size override from the setup screen
	if worldWidth > 0 && worldHeight > 0 {
		cfg.World.Width = worldWidth
		cfg.World.Height = worldHeight
	}
	sanitizeConfig(&cfg)
	g.cfg = cfg

	g.seed = rt.Seed
	g.rng = rand.New(rand.NewSource(rt.Seed))

	tickRate := rt.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	g.world = NewWorld(cfg.World.Width, cfg.World.Height)
	g.world.Generate(g.rng, cfg)

	sx, sy := g.world.SpawnPoint()
	g.player = NewPlayer(sx, sy, cfg.Player.MoveSpeed, Stats{
		MiningSpeed:   cfg.Player.MiningSpeed,
		MiningRange:   cfg.Player.MiningRange,
		OreMultiplier: cfg.Player.OreMultiplier,
	})
	g.inv = NewInventory()
	g.pickaxe = NewPickaxe()
	g.shop = NewShop()

	g.mode = screenPlaying
	g.score = 0
	g.tilesMined = 0
	g.maxDepth = 0
	g.mined = [NumOreKinds]int{}
	g.tick = 0
	g.mining = miningState{}
	g.statusMsg = ""
	g.statusTicks = 0
	g.showDebug = false
}

// sanitizeConfig clamps config values into ranges the generator and
// simulation can handle. Keeps a hand-edited YAML from panicking the game.
func sanitizeConfig(cfg *config.MinerConfig) {
	cfg.World.Width = core.Clamp(cfg.World.Width, 40, 500)
	cfg.World.Height = core.Clamp(cfg.World.Height, 30, 200)
	if cfg.Caves.MinSystems < 0 {
		cfg.Caves.MinSystems = 0
	}
	if cfg.Caves.MaxSystems < cfg.Caves.MinSystems {
		cfg.Caves.MaxSystems = cfg.Caves.MinSystems
	}
	if cfg.Caves.MinWalk < 1 {
		cfg.Caves.MinWalk = 1
	}
	if cfg.Caves.MaxWalk < cfg.Caves.MinWalk {
		cfg.Caves.MaxWalk = cfg.Caves.MinWalk
	}
	if cfg.Player.MoveSpeed <= 0 {
		cfg.Player.MoveSpeed = 150
	}
	if cfg.Player.MiningSpeed <= 0 {
		cfg.Player.MiningSpeed = 1.0
	}
	if cfg.Player.MiningRange <= 0 {
		cfg.Player.MiningRange = 100
	}
	if cfg.Player.OreMultiplier < 1 {
		cfg.Player.OreMultiplier = 1.0
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionDebug) {
		g.showDebug = !g.showDebug
	}

	switch g.mode {
	case screenPaused:
		g.stepPaused(in)
	case screenInventory:
		g.stepInventory(in)
	case screenShop:
		g.stepShop(in)
	case screenPickaxe:
		g.stepPickaxe(in)
	default:
		g.stepPlaying(in)
	}

	if g.statusTicks > 0 {
		g.statusTicks--
		if g.statusTicks == 0 {
			g.statusMsg = ""
		}
	}

	return core.StepResult{State: g.State()}
}

// stepPaused handles the pause screen: resume or restart.
func (g *Game) stepPaused(in core.InputFrame) {
	if in.Has(core.ActionRestart) {
		rt := g.runtime
		rt.Seed = g.rng.Int63()
		g.Reset(rt)
		return
	}
	if in.Has(core.ActionPause) || in.Has(core.ActionBack) {
		g.mode = screenPlaying
	}
}

// stepInventory handles the inventory overlay.
func (g *Game) stepInventory(in core.InputFrame) {
	switch {
	case in.Has(core.ActionInventory), in.Has(core.ActionPause), in.Has(core.ActionBack):
		g.mode = screenPlaying
	case in.Has(core.ActionShop):
		g.mode = screenShop
	case in.Has(core.ActionPickaxe):
		g.mode = screenPickaxe
	}
}

// stepPickaxe handles the pickaxe info overlay.
func (g *Game) stepPickaxe(in core.InputFrame) {
	switch {
	case in.Has(core.ActionPickaxe), in.Has(core.ActionPause), in.Has(core.ActionBack):
		g.mode = screenPlaying
	case in.Has(core.ActionInventory):
		g.mode = screenInventory
	case in.Has(core.ActionShop):
		g.mode = screenShop
	}
}

// stepShop handles the shop overlay: track purchases and the pickaxe
// tier upgrade.
func (g *Game) stepShop(in core.InputFrame) {
	switch {
	case in.Has(core.ActionShop), in.Has(core.ActionPause), in.Has(core.ActionBack):
		g.mode = screenPlaying
		return
	case in.Has(core.ActionInventory):
		g.mode = screenInventory
		return
	case in.Has(core.ActionPickaxe):
		g.mode = screenPickaxe
		return
	}

	switch {
	case in.Has(core.ActionBuy1):
		g.buyTrack(TrackSpeed)
	case in.Has(core.ActionBuy2):
		g.buyTrack(TrackRange)
	case in.Has(core.ActionBuy3):
		g.buyTrack(TrackMultiplier)
	case in.Has(core.ActionBuy4):
		if g.pickaxe.AttemptUpgrade(g.inv) {
			g.setStatus(fmt.Sprintf("Upgraded to %s", g.pickaxe.Name()))
		} else if _, ok := g.pickaxe.UpgradeCost(); !ok {
			g.setStatus("Pickaxe is already at the top tier")
		} else {
			g.setStatus("Not enough ore")
		}
	}
}

// buyTrack purchases one level on an upgrade track.
func (g *Game) buyTrack(t UpgradeTrack) {
	if g.shop.Buy(t, g.inv, &g.player.Stats) {
		g.setStatus(fmt.Sprintf("%s upgraded to Lv %d", t, g.shop.Level(t)+1))
	} else {
		g.setStatus("Not enough ore")
	}
}

// stepPlaying advances the simulation: screen switches, movement,
// depth tracking, and the mining channel.
func (g *Game) stepPlaying(in core.InputFrame) {
	switch {
	case in.Has(core.ActionPause):
		g.mode = screenPaused
		g.cancelMining()
		return
	case in.Has(core.ActionInventory):
		g.mode = screenInventory
		g.cancelMining()
		return
	case in.Has(core.ActionShop):
		g.mode = screenShop
		g.cancelMining()
		return
	case in.Has(core.ActionPickaxe):
		g.mode = screenPickaxe
		g.cancelMining()
		return
	}

	ix, iy := 0, 0
	if in.Has(core.ActionLeft) {
		ix--
	}
	if in.Has(core.ActionRight) {
		ix++
	}
	if in.Has(core.ActionUp) {
		iy--
	}
	if in.Has(core.ActionDown) {
		iy++
	}

	moving := g.player.Update(g.dt, ix, iy, g.world)
	if moving {
		g.cancelMining()
	}

	_, ty := g.player.TilePos()
	if ty > g.maxDepth {
		g.maxDepth = ty
	}

	if in.Has(core.ActionMine) && !g.mining.active && !moving {
		g.startMining()
	}
	g.updateMining()
}

// startMining acquires a mining target: the first non-air tile along
// the player's facing whose center is within reach. Reach is measured
// center to center and extended by half a tile so a tile exactly at
// the range boundary still counts.
func (g *Game) startMining() {
	cx, cy := g.player.TilePos()
	dx, dy := g.player.Facing.Delta()
	center := g.player.Center()
	reach := g.player.Stats.MiningRange + TileSize/2

	for i := 1; ; i++ {
		tx, ty := cx+dx*i, cy+dy*i
		if core.Dist(center, TileCenter(tx, ty)) > reach {
			return
		}

		t := g.world.TileAt(tx, ty)
		if t == TileAir {
			continue
		}
		if t == TileBedrock {
			g.setStatus("Bedrock is unbreakable")
			return
		}
		if !g.pickaxe.CanBreak(t.Hardness()) {
			g.setStatus(fmt.Sprintf("%s needs a stronger pickaxe", t))
			return
		}

		g.mining = miningState{
			active: true,
			tx:     tx,
			ty:     ty,
			tile:   t,
			total:  g.pickaxe.MiningTime(g.player.Stats.MiningSpeed, t.Hardness()),
		}
		return
	}
}

// updateMining advances the active mining channel and breaks the tile
// once enough time has accumulated. The channel drops if the target
// tile changed under it.
func (g *Game) updateMining() {
	if !g.mining.active {
		return
	}
	if g.world.TileAt(g.mining.tx, g.mining.ty) != g.mining.tile {
		g.mining = miningState{}
		return
	}

	g.mining.progress += g.dt
	if g.mining.progress < g.mining.total {
		return
	}

	tx, ty := g.mining.tx, g.mining.ty
	g.mining = miningState{}

	broken, ok := g.world.BreakTile(tx, ty, g.pickaxe.Power())
	if !ok {
		return
	}
	g.tilesMined++

	kind, isOre := broken.Ore()
	if !isOre {
		return
	}
	qty := int(math.Floor(g.player.Stats.OreMultiplier))
	if qty < 1 {
		qty = 1
	}
	g.inv.Add(kind, qty)
	g.mined[kind] += qty
	g.score += kind.Properties().Value * qty
	g.setStatus(fmt.Sprintf("+%d %s", qty, kind))
}

// cancelMining drops the active mining channel, if any.
func (g *Game) cancelMining() {
	g.mining = miningState{}
}

// setStatus shows a transient message on the HUD for about two seconds.
func (g *Game) setStatus(msg string) {
	g.statusMsg = msg
	tickRate := g.runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.statusTicks = 2 * tickRate
}

// State returns the current game state.
// A mining run has no fail state, so GameOver is always false. Paused
// reports the pause screen only; other overlay screens freeze the
// simulation without surfacing as paused to the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: false,
		Paused:   g.mode == screenPaused,
	}
}

// RunStats reports the run statistics persisted alongside the score.
func (g *Game) RunStats() core.RunStats {
	return core.RunStats{
		Depth:      g.maxDepth,
		TilesMined: g.tilesMined,
		Copper:     g.mined[OreCopper],
		Iron:       g.mined[OreIron],
		Gold:       g.mined[OreGold],
		Diamond:    g.mined[OreDiamond],
		Pickaxe:    g.pickaxe.Name(),
	}
}
