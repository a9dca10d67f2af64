package main

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// The window shares the terminal palette.
var (
	colorSky     = paletteColor(core.ColorSky)
	colorPipe    = paletteColor(core.ColorPipe)
	colorPipeCap = paletteColor(core.ColorPipeCap)
	colorGround  = paletteColor(core.ColorGround)
	colorGrass   = paletteColor(core.ColorGrass)
	colorBird    = paletteColor(core.ColorBird)
	colorBeak    = paletteColor(core.ColorBeak)
	colorShade   = color.RGBA{0, 0, 0, 0xa0}
	colorCloud   = color.NRGBA{0xff, 0xff, 0xff, 0xcc}
)

func paletteColor(c core.Color) color.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return color.White
	}
	return col
}

const (
	pipeCapHeight = 20
	pipeCapLip    = 3
	grassHeight   = 6
	titleSize     = 24
	bodySize      = 12
)

// loadFont parses the arcade face. A nil result selects the debug font.
func loadFont(logger *log.Logger) *text.GoTextFaceSource {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		logger.Warn("font unavailable, using debug font", "err", err)
		return nil
	}
	return s
}

func (w *window) draw(screen *ebiten.Image, snap flappy.Snapshot) {
	screen.Fill(colorSky)

	for _, c := range snap.Clouds {
		drawCloud(screen, c)
	}
	for _, p := range snap.Pipes {
		drawPipe(screen, p, snap)
	}
	drawGround(screen, snap)
	for _, p := range snap.Particles {
		drawParticle(screen, p)
	}
	w.drawBird(screen, snap.Bird, snap.Tilt)

	switch snap.Phase {
	case flappy.PhaseStart:
		w.drawPanel(screen, snap, "FLAPPY BIRD", "Press SPACE to start", fmt.Sprintf("Best: %d", snap.HighScore))
	case flappy.PhasePlaying:
		w.drawText(screen, fmt.Sprintf("%d", snap.Score), snap.Field.Width/2, 30, titleSize)
		if snap.Paused {
			w.drawPanel(screen, snap, "PAUSED", "Press P to resume")
		}
	case flappy.PhaseGameOver:
		if !w.revealed {
			return
		}
		lines := []string{"GAME OVER", fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.HighScore)}
		if snap.NewHighScore {
			lines = append(lines, "NEW BEST!")
		}
		lines = append(lines, "Press SPACE to restart")
		w.drawPanel(screen, snap, lines...)
	}
}

func drawPipe(screen *ebiten.Image, p flappy.Pipe, snap flappy.Snapshot) {
	x := float32(p.X)
	pw := float32(snap.PipeWidth)
	top := float32(p.GapTop)
	bottom := float32(p.GapTop + snap.PipeGap)
	ground := float32(snap.Field.GroundY())

	vector.DrawFilledRect(screen, x, 0, pw, top, colorPipe, false)
	vector.DrawFilledRect(screen, x, bottom, pw, ground-bottom, colorPipe, false)

	vector.DrawFilledRect(screen, x-pipeCapLip, top-pipeCapHeight, pw+2*pipeCapLip, pipeCapHeight, colorPipeCap, false)
	vector.DrawFilledRect(screen, x-pipeCapLip, bottom, pw+2*pipeCapLip, pipeCapHeight, colorPipeCap, false)
}

// drawCloud draws three overlapping lobes.
func drawCloud(screen *ebiten.Image, c flappy.Cloud) {
	x, y, s := float32(c.X), float32(c.Y), float32(c.Size)
	vector.DrawFilledCircle(screen, x, y, s, colorCloud, true)
	vector.DrawFilledCircle(screen, x+s*0.6, y-s*0.2, s*0.7, colorCloud, true)
	vector.DrawFilledCircle(screen, x+s*1.2, y, s*0.8, colorCloud, true)
}

func drawGround(screen *ebiten.Image, snap flappy.Snapshot) {
	y := float32(snap.Field.GroundY())
	w := float32(snap.Field.Width)
	vector.DrawFilledRect(screen, 0, y, w, float32(snap.Field.GroundHeight), colorGround, false)
	vector.DrawFilledRect(screen, 0, y, w, grassHeight, colorGrass, false)
}

// drawParticle fades the particle with its remaining life.
func drawParticle(screen *ebiten.Image, p flappy.Particle) {
	a := math.Max(0, math.Min(1, p.Life))
	c := color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: uint8(255 * a)}
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size/2), c, true)
}

// drawBird draws the cached sprite rotated by tilt degrees about its center.
func (w *window) drawBird(screen *ebiten.Image, b flappy.Bird, tilt float64) {
	bw, bh := int(b.Width), int(b.Height)
	if w.bird == nil || w.bird.Bounds().Dx() != bw || w.bird.Bounds().Dy() != bh {
		w.bird = birdSprite(bw, bh)
	}

	w.birdOpts.GeoM.Reset()
	w.birdOpts.GeoM.Translate(-b.Width/2, -b.Height/2)
	w.birdOpts.GeoM.Rotate(tilt * math.Pi / 180)
	w.birdOpts.GeoM.Translate(b.X+b.Width/2, b.Y+b.Height/2)
	screen.DrawImage(w.bird, &w.birdOpts)
}

func birdSprite(width, height int) *ebiten.Image {
	img := ebiten.NewImage(width, height)
	fw, fh := float32(width), float32(height)

	vector.DrawFilledRect(img, 0, 0, fw*0.8, fh, colorBird, false)
	vector.DrawFilledRect(img, fw*0.8, fh*0.4, fw*0.2, fh*0.3, colorBeak, false)
	vector.DrawFilledCircle(img, fw*0.6, fh*0.3, fh*0.15, color.White, true)
	vector.DrawFilledCircle(img, fw*0.65, fh*0.3, fh*0.07, color.Black, true)
	return img
}

// drawPanel shades the field and stacks the lines in the middle; the first
// line is the title.
func (w *window) drawPanel(screen *ebiten.Image, snap flappy.Snapshot, lines ...string) {
	fw, fh := snap.Field.Width, snap.Field.Height
	vector.DrawFilledRect(screen, 0, 0, float32(fw), float32(fh), colorShade, false)

	y := fh/2 - float64(len(lines))*bodySize
	for i, l := range lines {
		size := float64(bodySize)
		if i == 0 {
			size = titleSize
		}
		w.drawText(screen, l, fw/2, y, size)
		y += size * 2
	}
}

// drawText centers str horizontally on cx with its top at y.
func (w *window) drawText(screen *ebiten.Image, str string, cx, y, size float64) {
	if w.font == nil {
		ebitenutil.DebugPrintAt(screen, str, int(cx)-len(str)*3, int(y))
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(color.White)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, str, &text.GoTextFace{Source: w.font, Size: size}, op)
}
