package descent

import (
	"fmt"
	"math"

	"github.com/vovakirdan/descent/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlayerHead   = '▀'
	PlatformChar = '▬'
	CeilingChar  = '▼'
	StarChar     = '·'
)

// Render draws the current game state to the screen.
// World units are scaled so the logical canvas fills the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil || dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	snap := g.Snapshot()
	viewW, viewH := g.view()
	sx := float64(dst.Width()) / viewW
	sy := float64(dst.Height()) / viewH
	camY := snap.Camera.Y

	toRect := func(b core.Box) core.Rect {
		x0 := int(math.Floor(b.Left() * sx))
		y0 := int(math.Floor((b.Top() - camY) * sy))
		x1 := int(math.Ceil(b.Right() * sx))
		y1 := int(math.Ceil((b.Bottom() - camY) * sy))
		return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
	}

	for _, s := range snap.Stars {
		dst.SetColored(int(s[0]*sx), int(s[1]*sy), StarChar, core.ColorSky)
	}

	for _, p := range snap.Platforms {
		dst.DrawRectColored(toRect(p), PlatformChar, core.ColorPlatform)
	}

	g.drawPlayer(dst, toRect(snap.Player))

	// Ceiling
	dst.DrawHLine(0, 0, dst.Width(), CeilingChar, core.ColorCeiling)

	// HUD
	scoreText := fmt.Sprintf(" Score: %d ", snap.Score)
	dst.DrawTextColored(2, 0, scoreText, core.ColorHUD)

	speedText := fmt.Sprintf(" Spd: %.1f ", snap.Speed)
	if g.difficulty.Active() {
		speedText = fmt.Sprintf(" Lv %.0f%% Spd: %.1f ", snap.Level*100, snap.Speed)
	}
	dst.DrawTextColored(dst.Width()-len([]rune(speedText))-2, 0, speedText, core.ColorHUD)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Depth: %d  |  Press R to restart", g.score))
	}
}

// drawPlayer renders the player with a lighter head row.
func (g *Game) drawPlayer(dst *core.Screen, r core.Rect) {
	dst.DrawRectColored(r, PlayerChar, core.ColorPlayer)
	if r.H > 1 {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, r.Y, PlayerHead, core.ColorPlayer)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
