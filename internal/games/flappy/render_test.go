package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRenderGround(t *testing.T) {
	g := newTestGame()
	scr := core.NewScreen(80, 24)
	g.Render(scr, false)

	// Ground line 550 of 600 maps to row 22 of 24.
	for x := 0; x < 80; x++ {
		if c := scr.GetCell(x, 22); c.Rune != GrassChar || c.Color != core.ColorGrass {
			t.Fatalf("row 22 col %d = %q, want grass", x, c.Rune)
		}
		if scr.Get(x, 23) != GroundChar {
			t.Fatalf("row 23 col %d = %q, want ground", x, scr.Get(x, 23))
		}
	}
}

func TestRenderStartPanel(t *testing.T) {
	g := newTestGame()
	scr := core.NewScreen(80, 24)
	g.Render(scr, false)

	out := scr.String()
	if !strings.Contains(out, "FLAPPY BIRD") || !strings.Contains(out, "Press SPACE to start") {
		t.Errorf("start panel missing:\n%s", out)
	}
}

func TestRenderBird(t *testing.T) {
	g := newTestGame()
	scr := core.NewScreen(80, 24)
	g.Render(scr, false)

	// Bird at (80, 300) in a 400x600 field lands on col 16, row 12.
	if c := scr.GetCell(16, 12); c.Rune != BirdChar || c.Color != core.ColorBird {
		t.Errorf("bird cell = %+v", c)
	}
}

func TestRenderPipes(t *testing.T) {
	g := newTestGame()
	g.Start()
	for i := 0; i < 100; i++ {
		holdInGap(g)
		g.Step(empty())
	}
	scr := core.NewScreen(80, 24)
	g.Render(scr, false)

	p := g.World().Pipes()[0]
	col := int(p.X*0.2) + 1
	if c := scr.GetCell(col, 0); c.Rune != PipeChar || c.Color != core.ColorPipe {
		t.Errorf("top of pipe at col %d = %+v", col, c)
	}
	// Gap 195..355 covers rows 8..13.
	if got := scr.Get(col, 10); got == PipeChar {
		t.Errorf("pipe drawn inside the gap at col %d", col)
	}
	if c := scr.GetCell(col, 20); c.Rune != PipeChar {
		t.Errorf("bottom pipe at col %d row 20 = %+v", col, c)
	}
}

func TestRenderGameOverReveal(t *testing.T) {
	g := newTestGame()
	g.Step(frame(core.ActionActivate))
	if !fallUntilOver(g, 1000) {
		t.Fatal("game never ended")
	}
	scr := core.NewScreen(80, 24)

	g.Render(scr, false)
	if strings.Contains(scr.String(), "GAME OVER") {
		t.Error("game-over panel shown before reveal")
	}

	g.Render(scr, true)
	out := scr.String()
	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Press SPACE to restart") {
		t.Errorf("game-over panel missing:\n%s", out)
	}
}

func TestRenderPaused(t *testing.T) {
	g := newTestGame()
	g.Step(frame(core.ActionActivate))
	g.Step(frame(core.ActionPause))

	scr := core.NewScreen(80, 24)
	g.Render(scr, false)
	if !strings.Contains(scr.String(), "PAUSED") {
		t.Error("pause panel missing")
	}
}

func TestRenderEmptyScreen(t *testing.T) {
	g := newTestGame()
	g.Render(core.NewScreen(0, 0), true)
}

func TestBeakGlyph(t *testing.T) {
	tests := []struct {
		tilt float64
		want rune
	}{
		{-30, '/'},
		{0, '>'},
		{90, '\\'},
	}
	for _, tt := range tests {
		if got := beakGlyph(tt.tilt); got != tt.want {
			t.Errorf("beakGlyph(%v) = %q, want %q", tt.tilt, got, tt.want)
		}
	}
}

func TestRenderClouds(t *testing.T) {
	g := newTestGame()
	g.Start()
	scr := core.NewScreen(80, 24)
	g.Render(scr, false)

	// Every cloud sits at (200, 150) with size 50: base row 6 spans cols 30..59.
	for _, col := range []int{30, 45, 59} {
		if c := scr.GetCell(col, 6); c.Rune != CloudChar || c.Color != core.ColorCloud {
			t.Errorf("cloud base at col %d = %+v", col, c)
		}
	}
	if got := scr.Get(29, 6); got == CloudChar {
		t.Error("cloud drawn left of its base")
	}
	// Crown at y 120 lands on row 4.
	if got := scr.Get(40, 4); got != CloudChar {
		t.Errorf("cloud crown at row 4 = %q", got)
	}
}
