package marble

import (
	"fmt"
	"math"

	"github.com/arcadekit/marblestorm/internal/core"
	"github.com/arcadekit/marblestorm/internal/sim"
)

// Visual characters for rendering
const (
	PathChar       = '·'
	CoreChar       = '◉'
	MarbleChar     = '●'
	WildcardChar   = '★'
	BombChar       = '◎'
	IceChar        = '❄'
	CoinChar       = '$'
	ProjectileChar = '•'
	ShooterChar    = '◍'
	AimChar        = '∙'
	ParticleChar   = '·'
)

// paletteColors maps simulation color indices to screen colors.
var paletteColors = []core.Color{
	core.ColorRed,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorCyan,
}

// paletteColor returns the screen color for a marble color index.
func paletteColor(c sim.Color) core.Color {
	if int(c) < 0 || int(c) >= len(paletteColors) {
		return core.ColorWhite
	}
	return paletteColors[c]
}

// worldToCell maps world coordinates to a screen cell. World y runs at
// double resolution to compensate for tall terminal cells, so it is
// halved here; a shake offset jitters the view after explosions.
func (g *Game) worldToCell(v core.Vec2) (int, int) {
	x := int(math.Round(v.X))
	y := int(math.Round(v.Y / 2))
	if g.shake > 0 && g.tickCount%2 == 0 {
		y++
	}
	return x, y
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderPath(dst)
	g.renderMarbles(dst)
	g.renderProjectiles(dst)
	g.renderShooter(dst)
	g.renderParticles(dst)
	g.renderTexts(dst)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderPath draws the track as dots with a marked core at the end.
func (g *Game) renderPath(dst *core.Screen) {
	points := g.sim.Path().Points
	for _, p := range points {
		x, y := g.worldToCell(p)
		if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
			dst.SetWithColor(x, y, PathChar, core.ColorGray)
		}
	}
	if len(points) > 0 {
		x, y := g.worldToCell(points[len(points)-1])
		if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
			dst.SetWithColor(x, y, CoreChar, core.ColorRed)
		}
	}
}

// renderMarbles draws the chain, glyph and color per kind.
func (g *Game) renderMarbles(dst *core.Screen) {
	path := g.sim.Path()
	for _, m := range g.sim.Marbles() {
		x, y := g.worldToCell(path.PointAt(m.Offset))
		if x < 0 || x >= dst.Width() || y < 0 || y >= dst.Height() {
			continue
		}
		switch m.Kind {
		case sim.KindWildcard:
			dst.SetWithColor(x, y, WildcardChar, core.ColorWhite)
		case sim.KindBomb:
			dst.SetWithColor(x, y, BombChar, core.ColorBrightRed)
		case sim.KindIce:
			dst.SetWithColor(x, y, IceChar, core.ColorBrightCyan)
		case sim.KindCoin:
			dst.SetWithColor(x, y, CoinChar, core.ColorBrightYellow)
		default:
			dst.SetWithColor(x, y, MarbleChar, paletteColor(m.Color))
		}
	}
}

// renderProjectiles draws marbles in flight.
func (g *Game) renderProjectiles(dst *core.Screen) {
	for _, p := range g.sim.Projectiles() {
		x, y := g.worldToCell(p.Pos)
		if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
			ch := ProjectileChar
			color := paletteColor(p.Color)
			if p.EMP {
				ch = '✦'
				color = core.ColorBrightMagenta
			}
			dst.SetWithColor(x, y, ch, color)
		}
	}
}

// renderShooter draws the launcher, a short aim ray, and the loaded color.
func (g *Game) renderShooter(dst *core.Screen) {
	sh := g.sim.Shooter()
	x, y := g.worldToCell(sh.Pos)

	// Aim ray: a few dots along the current angle.
	dir := core.V(math.Cos(g.aim), math.Sin(g.aim))
	for i := 1; i <= 4; i++ {
		rx, ry := g.worldToCell(sh.Pos.Add(dir.Scale(float64(i) * 2.2)))
		if rx >= 0 && rx < dst.Width() && ry >= 0 && ry < dst.Height() {
			dst.SetWithColor(rx, ry, AimChar, core.ColorGray)
		}
	}

	if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
		color := paletteColor(sh.Current)
		if g.sim.EMPArmed() {
			color = core.ColorBrightMagenta
		}
		dst.SetWithColor(x, y, ShooterChar, color)
	}
}

// renderParticles draws debris bursts.
func (g *Game) renderParticles(dst *core.Screen) {
	for _, p := range g.sim.Particles() {
		x, y := g.worldToCell(p.Pos)
		if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
			ch := ParticleChar
			if p.Life > 12 {
				ch = '*'
			}
			dst.SetWithColor(x, y, ch, paletteColor(p.Color))
		}
	}
}

// renderTexts draws floating score labels.
func (g *Game) renderTexts(dst *core.Screen) {
	for _, t := range g.sim.Texts() {
		x, y := g.worldToCell(t.Pos)
		if y >= 0 && y < dst.Height() {
			dst.DrawTextColored(x-len(t.Text)/2, y, t.Text, core.ColorBrightWhite)
		}
	}
}

// renderHUD draws score, level, progress, streak and powerup inventory.
func (g *Game) renderHUD(dst *core.Screen) {
	score := g.carriedScore + g.sim.Score()
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", score))

	def := g.currentLevelDef()
	var levelText string
	if g.mode == ModeEndless {
		total := g.endlessCycle*LevelCount() + g.levelIndex + 1
		levelText = fmt.Sprintf("%s (%d)", def.Name, total)
	} else {
		levelText = fmt.Sprintf("%s (%d/%d)", def.Name, g.levelIndex+1, LevelCount())
	}
	dst.DrawTextCentered(0, levelText)

	progressText := fmt.Sprintf("%3.0f%%", g.progress)
	dst.DrawText(dst.Width()-len(progressText)-1, 0, progressText)

	// Second row: next color, streak, credits, powerups, active effects.
	dst.DrawText(1, 1, "Next:")
	dst.SetWithColor(6, 1, MarbleChar, paletteColor(g.sim.Shooter().Next))

	info := fmt.Sprintf("x%d streak  $%d", g.sim.Streak(), g.credits)
	dst.DrawText(9, 1, info)

	inv := fmt.Sprintf("1:slow %d  2:rev %d  3:emp %d",
		g.sim.PowerupCount(sim.PowerupSlowMo),
		g.sim.PowerupCount(sim.PowerupReverse),
		g.sim.PowerupCount(sim.PowerupEMP))
	dst.DrawText(dst.Width()-len(inv)-1, 1, inv)

	effects := ""
	if g.sim.Frozen() {
		effects += "FROZEN "
	} else if g.sim.SlowMoActive() {
		effects += "SLOW "
	}
	if g.sim.ReverseActive() {
		effects += "REVERSE "
	}
	if g.sim.EMPArmed() {
		effects += "EMP ARMED "
	}
	if effects != "" {
		dst.DrawTextColored(1, 2, effects, core.ColorBrightCyan)
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateLevelClear:
		subtitle := fmt.Sprintf("Score: %d  |  SPACE for next level", g.carriedScore+g.sim.Score())
		g.drawCenteredBox(dst, "LEVEL CLEAR!", subtitle)

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.carriedScore+g.sim.Score())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.carriedScore)
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
