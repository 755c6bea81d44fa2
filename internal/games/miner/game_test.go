package miner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-miner/internal/core"
)

// newTestGame builds a game pinned to the hardcoded default config, so
// a developer's ~/.miner/configs cannot change test worlds.
func newTestGame(seed int64) *Game {
	SetConfigPath("miner-test-missing.yaml")
	SetDifficultyPreset("")
	SetWorldSize(0, 0)

	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and input script must stay in
	// lockstep: same world, same position, same loot.
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	script := func(i int) core.InputFrame {
		switch {
		case i < 100:
			return frame(core.ActionMine)
		case i < 160:
			return frame(core.ActionDown)
		case i < 300:
			return frame(core.ActionMine)
		default:
			return frame()
		}
	}

	for i := 0; i < 360; i++ {
		in := script(i)
		g1.Step(in)
		g2.Step(in)
	}

	for i := range g1.world.tiles {
		if g1.world.tiles[i] != g2.world.tiles[i] {
			t.Fatalf("world tiles diverged at index %d", i)
		}
	}
	if g1.player.Pos != g2.player.Pos {
		t.Errorf("position mismatch: %v vs %v", g1.player.Pos, g2.player.Pos)
	}
	if g1.score != g2.score {
		t.Errorf("score mismatch: %d vs %d", g1.score, g2.score)
	}
	if g1.maxDepth != g2.maxDepth {
		t.Errorf("depth mismatch: %d vs %d", g1.maxDepth, g2.maxDepth)
	}
	for _, k := range AllOreKinds() {
		if g1.inv.Count(k) != g2.inv.Count(k) {
			t.Errorf("%v count mismatch: %d vs %d", k, g1.inv.Count(k), g2.inv.Count(k))
		}
	}
}

func TestGameIDAndTitle(t *testing.T) {
	g := New()
	if g.ID() != "miner" {
		t.Errorf("ID = %q, want miner", g.ID())
	}
	if g.Title() != "Tile Miner" {
		t.Errorf("Title = %q, want Tile Miner", g.Title())
	}
}

func TestMiningYieldsOre(t *testing.T) {
	g := newTestGame(1)

	// Plant copper directly below the spawn pocket; the player faces
	// down by default.
	g.world.SetTile(50, 3, TileCopperOre)

	// Wooden pickaxe vs copper: 1.0 * 1.2 / 1 = 1.2s, 72 ticks at 60fps.
	for i := 0; i < 90; i++ {
		g.Step(frame(core.ActionMine))
	}

	if g.world.TileAt(50, 3) != TileAir {
		t.Fatalf("target tile = %v, want Air after mining", g.world.TileAt(50, 3))
	}
	if got := g.inv.Count(OreCopper); got != 1 {
		t.Errorf("copper count = %d, want 1", got)
	}
	if g.score != 1 {
		t.Errorf("score = %d, want 1 (copper value)", g.score)
	}
	if g.tilesMined != 1 {
		t.Errorf("tilesMined = %d, want 1", g.tilesMined)
	}
	if g.State().GameOver {
		t.Error("a mining run never reports game over")
	}

	stats := g.RunStats()
	if stats.Copper != 1 || stats.TilesMined != 1 {
		t.Errorf("RunStats = %+v, want 1 copper and 1 tile", stats)
	}
	if stats.Pickaxe != "Wooden Pickaxe" {
		t.Errorf("RunStats.Pickaxe = %q", stats.Pickaxe)
	}
}

func TestMiningRequiresStrongEnoughPickaxe(t *testing.T) {
	g := newTestGame(1)
	g.world.SetTile(50, 3, TileDiamondOre) // Needs power 1.5, wooden has 1

	g.Step(frame(core.ActionMine))

	if g.mining.active {
		t.Error("channel should not start on a tile the pickaxe cannot break")
	}
	if g.world.TileAt(50, 3) != TileDiamondOre {
		t.Error("tile should be untouched")
	}
	if g.statusMsg == "" {
		t.Error("player should be told why mining failed")
	}
}

func TestMiningReachBoundary(t *testing.T) {
	g := newTestGame(1)

	// A clear shaft below the player with stone at tile row 5.
	for y := 2; y <= 4; y++ {
		g.world.SetTile(50, y, TileAir)
	}
	g.world.SetTile(50, 5, TileStone)
	g.world.SetTile(50, 6, TileStone)

	// Center-to-center distance to (50,5) is exactly range + half a
	// tile: 100 + 16 = 116. The boundary tile must still be mineable.
	g.player.Pos = core.Vec2{X: 1600, Y: 44}
	g.Step(frame(core.ActionMine))

	if !g.mining.active {
		t.Fatal("tile exactly at the reach boundary should be targetable")
	}
	if g.mining.tx != 50 || g.mining.ty != 5 {
		t.Fatalf("target = (%d, %d), want (50, 5)", g.mining.tx, g.mining.ty)
	}

	// One unit further and the same tile is out of reach.
	g.cancelMining()
	g.player.Pos = core.Vec2{X: 1600, Y: 43}
	g.Step(frame(core.ActionMine))

	if g.mining.active {
		t.Error("tile past the reach boundary should not be targetable")
	}
}

func TestMovementCancelsMining(t *testing.T) {
	g := newTestGame(1)
	g.world.SetTile(50, 3, TileStone)

	g.Step(frame(core.ActionMine))
	if !g.mining.active {
		t.Fatal("channel should start")
	}

	g.Step(frame(core.ActionRight))
	if g.mining.active {
		t.Error("movement input should cancel the mining channel")
	}
}

func TestScreenChangeCancelsMining(t *testing.T) {
	g := newTestGame(1)
	g.world.SetTile(50, 3, TileStone)

	g.Step(frame(core.ActionMine))
	if !g.mining.active {
		t.Fatal("channel should start")
	}

	g.Step(frame(core.ActionInventory))
	if g.mining.active {
		t.Error("opening a screen should cancel the mining channel")
	}
	if g.mode != screenInventory {
		t.Errorf("mode = %v, want inventory", g.mode)
	}
}

func TestPauseBlocksSimulation(t *testing.T) {
	g := newTestGame(1)

	g.Step(frame(core.ActionPause))
	if g.mode != screenPaused {
		t.Fatalf("mode = %v, want paused", g.mode)
	}
	if !g.State().Paused {
		t.Error("State should report paused")
	}

	pos := g.player.Pos
	for i := 0; i < 10; i++ {
		g.Step(frame(core.ActionRight))
	}
	if g.player.Pos != pos {
		t.Error("movement must not apply while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.mode != screenPlaying {
		t.Fatalf("mode = %v, want playing after resume", g.mode)
	}
	g.Step(frame(core.ActionRight))
	if g.player.Pos.X <= pos.X {
		t.Error("movement should resume after unpausing")
	}
}

func TestScreenToggles(t *testing.T) {
	g := newTestGame(1)

	g.Step(frame(core.ActionInventory))
	if g.mode != screenInventory {
		t.Fatalf("mode = %v, want inventory", g.mode)
	}
	g.Step(frame(core.ActionPickaxe))
	if g.mode != screenPickaxe {
		t.Fatalf("mode = %v, want pickaxe", g.mode)
	}
	g.Step(frame(core.ActionShop))
	if g.mode != screenShop {
		t.Fatalf("mode = %v, want shop", g.mode)
	}
	g.Step(frame(core.ActionPause))
	if g.mode != screenPlaying {
		t.Fatalf("mode = %v, want playing after closing with esc", g.mode)
	}
}

func TestShopPurchases(t *testing.T) {
	g := newTestGame(1)
	g.Step(frame(core.ActionShop))

	// Fund exactly one speed upgrade.
	g.inv.Add(OreCopper, 10)
	g.Step(frame(core.ActionBuy1))

	if got := g.player.Stats.MiningSpeed; got != 0.8 {
		t.Errorf("MiningSpeed = %f, want 0.8", got)
	}
	if g.inv.Count(OreCopper) != 0 {
		t.Errorf("copper after purchase = %d, want 0", g.inv.Count(OreCopper))
	}

	// Broke now: a range purchase must change nothing.
	g.Step(frame(core.ActionBuy2))
	if g.player.Stats.MiningRange != 100 {
		t.Errorf("MiningRange = %f, want 100 after failed purchase", g.player.Stats.MiningRange)
	}

	// Key 4 buys the pickaxe tier.
	g.inv.Add(OreCopper, 5)
	g.Step(frame(core.ActionBuy4))
	if g.pickaxe.Tier != TierStone {
		t.Errorf("tier = %v, want Stone after upgrade", g.pickaxe.Tier)
	}
}

func TestRestartFromPause(t *testing.T) {
	g := newTestGame(777)
	originalSeed := g.seed

	g.inv.Add(OreCopper, 50)
	g.score = 123
	g.tilesMined = 9

	g.Step(frame(core.ActionPause))
	g.Step(frame(core.ActionRestart))

	if g.mode != screenPlaying {
		t.Errorf("mode = %v, want playing after restart", g.mode)
	}
	if g.seed == originalSeed {
		t.Error("restart should reseed the world")
	}
	if g.score != 0 || g.tilesMined != 0 || !g.inv.IsEmpty() {
		t.Errorf("restart should reset the run: score %d, mined %d, ore %d",
			g.score, g.tilesMined, g.inv.TotalCount())
	}
}

func TestScoreSurvivesSpending(t *testing.T) {
	g := newTestGame(1)
	g.world.SetTile(50, 3, TileCopperOre)
	for i := 0; i < 90; i++ {
		g.Step(frame(core.ActionMine))
	}
	if g.score != 1 {
		t.Fatalf("score = %d, want 1 before spending", g.score)
	}

	// Spending ore in the shop must not reduce the score.
	g.inv.Add(OreCopper, 9) // Top up to afford speed L0
	g.Step(frame(core.ActionShop))
	g.Step(frame(core.ActionBuy1))

	if g.score != 1 {
		t.Errorf("score = %d after spending, want 1", g.score)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(444)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Tile Miner") {
		t.Error("HUD should contain the game title")
	}
	if !strings.Contains(content, "@") {
		t.Error("player glyph should be visible")
	}

	// Each overlay renders with its title.
	g.Step(frame(core.ActionShop))
	g.Render(screen)
	if !strings.Contains(screen.String(), "Shop") {
		t.Error("shop screen should render its title")
	}
}
