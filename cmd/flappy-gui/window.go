package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// scoreHistory records finished sessions.
type scoreHistory interface {
	SaveScore(score, steps int, cause string) (int64, error)
}

// window implements ebiten.Game. Ebitengine calls Update at a fixed 60 TPS,
// one game step per call.
type window struct {
	game    *flappy.Game
	history scoreHistory
	logger  *log.Logger
	font    *text.GoTextFaceSource // nil falls back to the debug font

	touches  []ebiten.TouchID
	overAt   time.Time
	revealed bool

	bird     *ebiten.Image
	birdOpts ebiten.DrawImageOptions
}

var activateKeys = []ebiten.Key{
	ebiten.KeySpace,
	ebiten.KeyEnter,
	ebiten.KeyArrowUp,
	ebiten.KeyW,
}

// readInput collects this frame's just-pressed inputs. quit is true when
// the player asked to close the window.
func (w *window) readInput() (in core.InputFrame, quit bool) {
	in = core.NewInputFrame()
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return in, true
	}

	for _, k := range activateKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.Push(core.ActionActivate)
			break
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Push(core.ActionPause)
	}

	w.touches = inpututil.AppendJustPressedTouchIDs(w.touches[:0])
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(w.touches) > 0 {
		in.Push(core.ActionTap)
	}
	return in, false
}

// Update steps the game once and tracks the game-over reveal.
func (w *window) Update() error {
	in, quit := w.readInput()
	if quit {
		return ebiten.Termination
	}

	wasOver := w.game.Phase() == flappy.PhaseGameOver
	w.game.Step(in)
	now := time.Now()

	switch over := w.game.Phase() == flappy.PhaseGameOver; {
	case over && !wasOver:
		w.overAt = now
		w.revealed = false
		w.saveScore()
	case !over:
		w.overAt = time.Time{}
		w.revealed = false
	}

	if !w.overAt.IsZero() && now.Sub(w.overAt) >= w.game.Config().Presentation.GameOverDelay() {
		w.revealed = true
	}
	return nil
}

func (w *window) saveScore() {
	if w.history == nil {
		return
	}
	ws := w.game.World()
	if _, err := w.history.SaveScore(ws.Score, ws.Steps, w.game.Cause().String()); err != nil {
		w.logger.Warn("score not recorded", "score", ws.Score, "err", err)
	}
}

// Draw renders the current snapshot at field resolution.
func (w *window) Draw(screen *ebiten.Image) {
	w.draw(screen, w.game.Snapshot())
}

// Layout keeps the logical screen at field size; Ebitengine scales it to
// the window.
func (w *window) Layout(_, _ int) (int, int) {
	f := w.game.Config().Field
	return int(f.Width), int(f.Height)
}
