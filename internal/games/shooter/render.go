package shooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter/sim"
)

// Glyphs used by the sprite style.
const (
	PlayerGlyph = '@'
	NPCGlyph    = 'X'
	BulletGlyph = '•'
	QuadGlyph   = '█'
)

type look struct {
	glyph rune
	color core.Color
}

var spriteLooks = map[sim.Kind]look{
	sim.KindPlayer: {PlayerGlyph, core.ColorBrightBlue},
	sim.KindNPC:    {NPCGlyph, core.ColorBrightRed},
	sim.KindBullet: {BulletGlyph, core.ColorYellow},
}

var quadLooks = map[sim.Kind]look{
	sim.KindPlayer: {QuadGlyph, core.ColorWhite},
	sim.KindNPC:    {QuadGlyph, core.ColorOrange},
	sim.KindBullet: {QuadGlyph, core.ColorCyan},
}

// Render draws the world into the play field and the labels into the HUD rows.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	looks := spriteLooks
	if g.cfg.Render.Style == config.StyleQuads {
		looks = quadLooks
	}

	rows := dst.Height() - HUDRows
	for _, e := range g.sim.World().Live() {
		g.drawEntity(dst, e, looks[e.Kind], rows)
	}
	// Keep the player on top of anything overlapping it.
	if p := g.sim.Player(); p != nil {
		g.drawEntity(dst, p, looks[sim.KindPlayer], rows)
	}

	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.State().Score))
	}
}

// CellOf maps a world position to a screen cell. World y grows upward,
// screen rows grow downward, so rows are counted from the bottom of the
// play field.
func (g *Game) CellOf(p core.Vec2, rows int) (int, int) {
	col := int(math.Floor(p.X / g.cfg.World.CellWidth))
	row := rows - 1 - int(math.Floor(p.Y/g.cfg.World.CellHeight))
	return col, row
}

// drawEntity fills the entity's footprint. The position is the bottom-left
// corner; the footprint extends right and up.
func (g *Game) drawEntity(dst *core.Screen, e *sim.Entity, l look, rows int) {
	col, row := g.CellOf(e.Pos, rows)
	w := max(int(math.Round(e.Size/g.cfg.World.CellWidth)), 1)
	h := max(int(math.Round(e.Size/g.cfg.World.CellHeight)), 1)

	for dy := 0; dy < h; dy++ {
		y := row - dy
		if y < 0 || y >= rows {
			continue
		}
		for dx := 0; dx < w; dx++ {
			dst.SetColor(col+dx, y, l.glyph, l.color)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	base := dst.Height() - HUDRows
	dst.DrawHLine(0, base, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextCentered(base, fmt.Sprintf("NPCs spawned: %d", g.sim.Score()), core.ColorGray)
	dst.DrawTextCentered(base+1, fmt.Sprintf("Ammo: %d", g.sim.Ammo()), core.ColorYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextColor(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightRed)
	dst.DrawTextColor(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, core.ColorDefault)
}
