package game

import (
	"fmt"

	"github.com/vovakirdan/flappy-tui/internal/core"
)

// Visual characters for rendering
const (
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
	birdBody      = '●'
	birdUp        = '◤'
	birdLevel     = '►'
	birdDown      = '◢'
)

// Render draws the current state into the screen buffer. The logical
// 400x600 surface is scaled onto however many cells the terminal offers.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w := dst.Width()
	h := dst.Height()
	if w <= 0 || h <= 0 {
		return
	}
	sx := float64(w) / g.cfg.Surface.Width
	sy := float64(h) / g.cfg.Surface.Height

	for _, p := range g.pipes.All() {
		g.drawPipe(dst, p, sx, sy)
	}
	g.drawBird(dst, sx, sy)

	// HUD
	dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d ", g.score), core.ColorBrightYellow)
	best := fmt.Sprintf(" Best: %d ", g.high)
	dst.DrawTextColor(w-len(best)-2, 0, best, core.ColorGray)

	switch g.phase {
	case core.PhaseIdle:
		g.drawCenteredMessage(dst, "FLAPPY BIRD", "Press Space to start")
	case core.PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d  |  Press R to restart", g.score, g.high))
	default:
		if g.paused {
			g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
		}
	}
}

// drawPipe renders both segments of a pipe with cap decorations.
func (g *Game) drawPipe(dst *core.Screen, p Pipe, sx, sy float64) {
	x := int(p.X * sx)
	pw := core.Max(int(g.cfg.Pipes.Width*sx), 1)
	gapTopY := int(p.GapTop * sy)
	gapBottomY := int((p.GapTop + g.cfg.Pipes.Gap) * sy)

	for y := 0; y < gapTopY; y++ {
		for dx := 0; dx < pw; dx++ {
			dst.SetCell(x+dx, y, pipeChar, core.ColorGreen)
		}
	}
	if gapTopY > 0 {
		for dx := 0; dx < pw; dx++ {
			dst.SetCell(x+dx, gapTopY-1, pipeCapTop, core.ColorBrightGreen)
		}
	}

	for y := gapBottomY + 1; y < dst.Height(); y++ {
		for dx := 0; dx < pw; dx++ {
			dst.SetCell(x+dx, y, pipeChar, core.ColorGreen)
		}
	}
	if gapBottomY < dst.Height() {
		for dx := 0; dx < pw; dx++ {
			dst.SetCell(x+dx, gapBottomY, pipeCapBottom, core.ColorBrightGreen)
		}
	}
}

// drawBird renders the bird as a block with a beak glyph picked by tilt.
func (g *Game) drawBird(dst *core.Screen, sx, sy float64) {
	x := int(g.cfg.Bird.X * sx)
	y := int(g.bird.Y * sy)
	bw := core.Max(int(g.cfg.Bird.Width*sx), 1)
	bh := core.Max(int(g.cfg.Bird.Height*sy), 1)

	beak := birdLevel
	if g.bird.Tilt < -5 {
		beak = birdUp
	} else if g.bird.Tilt > 15 {
		beak = birdDown
	}

	for dy := 0; dy < bh; dy++ {
		for dx := 0; dx < bw; dx++ {
			if dx == bw-1 && dy == 0 {
				dst.SetCell(x+dx, y+dy, beak, core.ColorBrightYellow)
			} else {
				dst.SetCell(x+dx, y+dy, birdBody, core.ColorYellow)
			}
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBorder(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
