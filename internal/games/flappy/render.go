package flappy

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '░'
	GrassChar     = '═'
	BirdChar      = '█'
	CloudChar     = '▒'
)

// Render draws the game into dst. The game-over panel is drawn only when
// showGameOver is set; the caller owns the reveal delay.
func (g *Game) Render(dst *core.Screen, showGameOver bool) {
	Render(dst, g.Snapshot(), showGameOver)
}

// Render draws snap into dst, scaling the field to the screen.
func Render(dst *core.Screen, snap Snapshot, showGameOver bool) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	v := newViewport(dst, snap)

	for _, c := range snap.Clouds {
		v.drawCloud(dst, c)
	}
	for _, p := range snap.Pipes {
		v.drawPipe(dst, p, snap)
	}
	v.drawGround(dst)
	for _, p := range snap.Particles {
		v.drawParticle(dst, p)
	}
	v.drawBird(dst, snap.Bird, snap.Tilt)

	switch snap.Phase {
	case PhaseStart:
		drawPanel(dst, core.ColorHighlight,
			"FLAPPY BIRD",
			"",
			"Press SPACE to start",
			fmt.Sprintf("Best: %d", snap.HighScore),
		)
	case PhasePlaying:
		dst.DrawTextCentered(0, fmt.Sprintf(" %d ", snap.Score), core.ColorWhite)
		if snap.Paused {
			drawPanel(dst, core.ColorWhite, "PAUSED", "", "Press P to resume")
		}
	case PhaseGameOver:
		if !showGameOver {
			return
		}
		lines := []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.HighScore),
		}
		if snap.NewHighScore {
			lines = append(lines, "NEW BEST!")
		}
		lines = append(lines, "", "Press SPACE to restart")
		drawPanel(dst, core.ColorHighlight, lines...)
	}
}

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy    float64
	groundRow int
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	v := viewport{
		sx: float64(dst.Width()) / snap.Field.Width,
		sy: float64(dst.Height()) / snap.Field.Height,
	}
	v.groundRow = core.Min(v.row(snap.Field.GroundY()), dst.Height()-1)
	return v
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y * v.sy))
}

// span converts [a, a+n) in world units to cells, at least one cell wide.
func span(a, n float64, scale func(float64) int) (int, int) {
	lo := scale(a)
	hi := scale(a + n)
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

func (v viewport) drawPipe(dst *core.Screen, p Pipe, snap Snapshot) {
	x0, x1 := span(p.X, snap.PipeWidth, v.col)
	topEnd := v.row(p.GapTop)
	bottomStart := int(math.Ceil((p.GapTop + snap.PipeGap) * v.sy))

	for x := x0; x < x1; x++ {
		// Top section, from the top of the screen to the gap
		for y := 0; y < topEnd; y++ {
			dst.SetColor(x, y, PipeChar, core.ColorPipe)
		}
		if topEnd > 0 {
			dst.SetColor(x, topEnd-1, PipeCapTop, core.ColorPipeCap)
		}

		// Bottom section, from the gap to the ground
		for y := bottomStart; y < v.groundRow; y++ {
			dst.SetColor(x, y, PipeChar, core.ColorPipe)
		}
		if bottomStart < v.groundRow {
			dst.SetColor(x, bottomStart, PipeCapBottom, core.ColorPipeCap)
		}
	}
}

// drawCloud draws a wide base row and a narrower crown above it.
func (v viewport) drawCloud(dst *core.Screen, c Cloud) {
	x0, x1 := span(c.X-c.Size, c.Size*3, v.col)
	dst.DrawHLine(x0, v.row(c.Y), x1-x0, CloudChar, core.ColorCloud)
	if top := v.row(c.Y - c.Size*0.6); top < v.row(c.Y) {
		x0, x1 = span(c.X-c.Size*0.2, c.Size*1.6, v.col)
		dst.DrawHLine(x0, top, x1-x0, CloudChar, core.ColorCloud)
	}
}

func (v viewport) drawGround(dst *core.Screen) {
	dst.DrawHLine(0, v.groundRow, dst.Width(), GrassChar, core.ColorGrass)
	for y := v.groundRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), GroundChar, core.ColorGround)
	}
}

func (v viewport) drawParticle(dst *core.Screen, p Particle) {
	glyph := '·'
	if p.Size >= 5 && p.Life > 0.3 {
		glyph = '*'
	}
	dst.SetColor(v.col(p.X), v.row(p.Y), glyph, particleColor(p))
}

func particleColor(p Particle) core.Color {
	c, _ := colorful.MakeColor(p.Color)
	return core.Color(c.Hex())
}

func (v viewport) drawBird(dst *core.Screen, b Bird, tilt float64) {
	x0, x1 := span(b.X, b.Width, v.col)
	y0, y1 := span(b.Y, b.Height, v.row)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColor(x, y, BirdChar, core.ColorBird)
		}
	}
	dst.SetColor(x1-1, y0+(y1-y0)/2, beakGlyph(tilt), core.ColorBeak)
}

// beakGlyph shows the tilt: climbing, level or diving.
func beakGlyph(tilt float64) rune {
	switch {
	case tilt < -10:
		return '/'
	case tilt > 30:
		return '\\'
	default:
		return '>'
	}
}

// drawPanel draws a bordered message box in the center of the screen.
func drawPanel(dst *core.Screen, c core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}

	boxW := w + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)

	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColor(x, boxY+1+i, l, core.ColorWhite)
	}
}
