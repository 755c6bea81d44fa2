package miner

import (
	"fmt"

	"github.com/vovakirdan/tui-miner/internal/core"
)

// hudRows is the number of screen rows reserved at the top for the HUD.
const hudRows = 2

// Minimum terminal size needed to fit the HUD, viewport, and overlay panels.
const (
	minScreenW = 40
	minScreenH = 12
)

// tileGlyph maps a tile to its screen rune and color.
func tileGlyph(t TileType) (rune, core.Color) {
	switch t {
	case TileDirt:
		return '░', core.ColorBrown
	case TileStone:
		return '▒', core.ColorGray
	case TileBedrock:
		return '█', core.ColorDarkGray
	case TileCopperOre:
		return '◆', core.ColorOrange
	case TileIronOre:
		return '◆', core.ColorBrightWhite
	case TileGoldOre:
		return '◆', core.ColorBrightYellow
	case TileDiamondOre:
		return '◆', core.ColorBrightCyan
	default:
		return ' ', core.ColorDefault
	}
}

// Render draws the world viewport, HUD, and whichever overlay screen
// is open.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		msg := fmt.Sprintf("Terminal too small (need %dx%d)", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2, msg)
		return
	}

	g.renderHUD(dst)
	g.renderWorld(dst)
	g.renderStatus(dst)

	switch g.mode {
	case screenInventory:
		g.renderInventory(dst)
	case screenShop:
		g.renderShop(dst)
	case screenPickaxe:
		g.renderPickaxe(dst)
	case screenPaused:
		g.renderPanel(dst, "Paused", []string{
			"Esc  resume",
			"R    restart with a new world",
			"Q    quit and save score",
		})
	}

	if g.showDebug {
		g.renderDebug(dst)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	_, depth := g.player.TilePos()
	hud := fmt.Sprintf(" Tile Miner — Score: %d  Depth: %d  Ore: %d  %s",
		g.score, depth, g.inv.TotalCount(), g.pickaxe.Name())

	dst.DrawText(0, 0, hud)
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderWorld draws the visible slice of the tile grid with the player
// and the active mining target. The camera follows the player and
// clamps to the world edges; worlds smaller than the view are centered.
func (g *Game) renderWorld(dst *core.Screen) {
	viewW := dst.Width()
	viewH := dst.Height() - hudRows - 1 // Bottom row is the status line
	if viewW <= 0 || viewH <= 0 {
		return
	}

	pcx, pcy := g.player.TilePos()
	camX := cameraOffset(pcx, viewW, g.world.Width())
	camY := cameraOffset(pcy, viewH, g.world.Height())

	for vy := 0; vy < viewH; vy++ {
		ty := camY + vy
		for vx := 0; vx < viewW; vx++ {
			tx := camX + vx
			if !g.world.InBounds(tx, ty) {
				continue
			}
			r, c := tileGlyph(g.world.TileAt(tx, ty))
			if r != ' ' {
				dst.SetCell(vx, hudRows+vy, r, c)
			}
		}
	}

	drawInView := func(tx, ty int, r rune, c core.Color) {
		vx, vy := tx-camX, ty-camY
		if vx >= 0 && vx < viewW && vy >= 0 && vy < viewH {
			dst.SetCell(vx, hudRows+vy, r, c)
		}
	}

	if g.mining.active {
		drawInView(g.mining.tx, g.mining.ty, '╳', core.ColorBrightRed)
	}
	drawInView(pcx, pcy, '@', core.ColorBrightBlue)
}

// cameraOffset returns the first visible tile column/row so the focus
// stays centered without showing past the world edge. A world smaller
// than the view gets a negative offset, which centers it.
func cameraOffset(focus, view, world int) int {
	if world <= view {
		return -(view - world) / 2
	}
	return core.Clamp(focus-view/2, 0, world-view)
}

// renderStatus draws the bottom line: mining progress, a transient
// message, or the controls hint.
func (g *Game) renderStatus(dst *core.Screen) {
	y := dst.Height() - 1

	switch {
	case g.mining.active && g.mining.total > 0:
		pct := int(100 * g.mining.progress / g.mining.total)
		if pct > 100 {
			pct = 100
		}
		dst.DrawTextColor(0, y, fmt.Sprintf(" Mining %s... %d%%", g.mining.tile, pct), core.ColorYellow)
	case g.statusMsg != "":
		dst.DrawTextColor(0, y, " "+g.statusMsg, core.ColorBrightGreen)
	default:
		dst.DrawText(0, y, " WASD move  Space mine  I inventory  B shop  P pickaxe  Esc pause")
	}
}

// renderInventory draws the inventory overlay.
func (g *Game) renderInventory(dst *core.Screen) {
	lines := make([]string, 0, NumOreKinds+2)
	for _, k := range AllOreKinds() {
		p := k.Properties()
		n := g.inv.Count(k)
		lines = append(lines, fmt.Sprintf("%-8s %5d   worth %5d", p.Name, n, n*p.Value))
	}
	lines = append(lines, "")
	if g.inv.IsEmpty() {
		lines = append(lines, "Nothing yet. Go dig!")
	} else {
		lines = append(lines, fmt.Sprintf("Total: %d ore worth %d", g.inv.TotalCount(), g.inv.TotalValue()))
	}
	g.renderPanel(dst, "Inventory", lines)
}

// renderShop draws the shop overlay with the three upgrade tracks and
// the pickaxe tier upgrade.
func (g *Game) renderShop(dst *core.Screen) {
	st := g.player.Stats
	lines := []string{
		fmt.Sprintf("Speed %.1fs   Range %.0f   Yield x%d", st.MiningSpeed, st.MiningRange, yieldFor(st.OreMultiplier)),
		"",
	}

	for i, track := range []UpgradeTrack{TrackSpeed, TrackRange, TrackMultiplier} {
		cost := g.shop.NextCost(track)
		lines = append(lines, fmt.Sprintf("[%d] %-15s Lv %d   %s%s",
			i+1, track, g.shop.Level(track), cost, affordMark(g.inv.CanAfford(cost))))
	}

	if cost, ok := g.pickaxe.UpgradeCost(); ok {
		lines = append(lines, fmt.Sprintf("[4] %-15s        %s%s",
			"Pickaxe Tier", cost, affordMark(g.inv.CanAfford(cost))))
	} else {
		lines = append(lines, "[4] Pickaxe Tier        maxed out")
	}

	lines = append(lines, "", fmt.Sprintf("You carry: %d Copper, %d Iron, %d Gold, %d Diamond",
		g.inv.Count(OreCopper), g.inv.Count(OreIron), g.inv.Count(OreGold), g.inv.Count(OreDiamond)))

	g.renderPanel(dst, "Shop", lines)
}

// renderPickaxe draws the pickaxe info overlay.
func (g *Game) renderPickaxe(dst *core.Screen) {
	lines := []string{
		fmt.Sprintf("Power %.0f   Speed x%.1f", g.pickaxe.Power(), g.pickaxe.Speed()),
		"",
	}
	if cost, ok := g.pickaxe.UpgradeCost(); ok {
		next := g.pickaxe.Tier + 1
		lines = append(lines,
			fmt.Sprintf("Next: %s (power %.0f)", next.Name(), next.Power()),
			fmt.Sprintf("Cost: %s", cost))
	} else {
		lines = append(lines, "This is the best pickaxe there is.")
	}
	g.renderPanel(dst, g.pickaxe.Name(), lines)
}

// renderPanel draws a centered bordered panel with a title row, a
// separator, and the given lines.
func (g *Game) renderPanel(dst *core.Screen, title string, lines []string) {
	w, h := dst.Width(), dst.Height()

	boxW := len(title)
	for _, l := range lines {
		if n := len([]rune(l)); n > boxW {
			boxW = n
		}
	}
	boxW += 4
	if boxW > w {
		boxW = w
	}
	boxH := len(lines) + 4
	if boxH > h {
		boxH = h
	}

	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, title)
	dst.DrawHLine(box.X+1, box.Y+2, boxW-2, '─')

	for i, l := range lines {
		y := box.Y + 3 + i
		if y >= box.Bottom()-1 {
			break
		}
		dst.DrawText(box.X+2, y, l)
	}
}

// renderDebug draws a one-line diagnostic readout above the status line.
func (g *Game) renderDebug(dst *core.Screen) {
	p := g.player
	tx, ty := p.TilePos()
	line := fmt.Sprintf(" seed %d  pos %.1f,%.1f  vel %.0f,%.0f  face %s  on %s  inv %d  tick %d",
		g.seed, p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y, p.Facing, g.world.TileAt(tx, ty), g.inv.TotalValue(), g.tick)
	if g.mining.active {
		line += fmt.Sprintf("  target %d,%d", g.mining.tx, g.mining.ty)
	}
	dst.DrawTextColor(0, dst.Height()-2, line, core.ColorMagenta)
}

// yieldFor converts the multiplier stat into the whole units actually
// granted per ore tile.
func yieldFor(multiplier float64) int {
	n := int(multiplier)
	if n < 1 {
		return 1
	}
	return n
}

// affordMark flags a price the current inventory can cover.
func affordMark(ok bool) string {
	if ok {
		return "  *"
	}
	return ""
}
