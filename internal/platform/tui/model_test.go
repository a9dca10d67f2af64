package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

type fakeHistory struct {
	saved  []int
	causes []string
	err    error
}

func (h *fakeHistory) SaveScore(score, steps int, cause string) (int64, error) {
	h.saved = append(h.saved, score)
	h.causes = append(h.causes, cause)
	return int64(len(h.saved)), h.err
}

func newTestModel(hist ScoreHistory) Model {
	game := flappy.New(config.DefaultFlappyConfig(), flappy.WithRand(flappy.NewRand(1)))
	return NewModel(game, Options{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60},
		History: hist,
	})
}

func update(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

var space = tea.KeyMsg{Type: tea.KeySpace}

// playToGameOver starts a session and ticks without input until it ends.
// Returns the tick time of the collision.
func playToGameOver(t *testing.T, m Model, start time.Time) (Model, time.Time) {
	t.Helper()
	m = update(m, space)
	now := start
	for i := 0; i < 1000; i++ {
		m = update(m, TickMsg(now))
		if m.game.Phase() == flappy.PhaseGameOver {
			return m, now
		}
		now = now.Add(16 * time.Millisecond)
	}
	t.Fatal("session never ended")
	return m, now
}

func TestModelStartsOnTick(t *testing.T) {
	m := newTestModel(nil)

	m = update(m, space)
	if m.game.Phase() != flappy.PhaseStart {
		t.Fatal("input applied before the tick")
	}
	m = update(m, TickMsg(time.Now()))
	if m.game.Phase() != flappy.PhasePlaying {
		t.Errorf("phase = %v, want playing", m.game.Phase())
	}
}

func TestModelAppliesActionsInOrder(t *testing.T) {
	m := newTestModel(nil)

	m = update(m, space)
	m = update(m, runeKey('p'))
	m = update(m, TickMsg(time.Now()))

	if m.game.Phase() != flappy.PhasePlaying || !m.game.Paused() {
		t.Errorf("phase=%v paused=%v, want playing and paused", m.game.Phase(), m.game.Paused())
	}
}

func TestModelClickDoesNotStart(t *testing.T) {
	m := newTestModel(nil)

	m = update(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(m, TickMsg(time.Now()))
	if m.game.Phase() != flappy.PhaseStart {
		t.Errorf("click started the game")
	}
}

func TestModelGameOverRevealDelay(t *testing.T) {
	m := newTestModel(nil)
	m, overAt := playToGameOver(t, m, time.Unix(1000, 0))

	if m.GameOverRevealed() || strings.Contains(m.View(), "GAME OVER") {
		t.Fatal("panel shown on the collision tick")
	}

	m = update(m, TickMsg(overAt.Add(499*time.Millisecond)))
	if m.GameOverRevealed() {
		t.Fatal("panel shown before the delay")
	}

	m = update(m, TickMsg(overAt.Add(500*time.Millisecond)))
	if !m.GameOverRevealed() {
		t.Fatal("panel hidden after the delay")
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("view lacks the game-over panel")
	}

	// Restart hides it again.
	m = update(m, space)
	m = update(m, TickMsg(overAt.Add(600*time.Millisecond)))
	if m.game.Phase() != flappy.PhasePlaying || m.GameOverRevealed() {
		t.Errorf("after restart: phase=%v revealed=%v", m.game.Phase(), m.GameOverRevealed())
	}
}

func TestModelSavesEachSessionOnce(t *testing.T) {
	hist := &fakeHistory{}
	m := newTestModel(hist)
	m, overAt := playToGameOver(t, m, time.Unix(1000, 0))

	for i := 1; i <= 10; i++ {
		m = update(m, TickMsg(overAt.Add(time.Duration(i)*time.Second)))
	}
	if len(hist.saved) != 1 {
		t.Fatalf("saved %d times, want 1", len(hist.saved))
	}
	if hist.causes[0] != "ground" {
		t.Errorf("cause = %q, want ground", hist.causes[0])
	}

	m, _ = playToGameOver(t, m, overAt.Add(time.Minute))
	if len(hist.saved) != 2 {
		t.Errorf("saved %d times after second session, want 2", len(hist.saved))
	}
}

func TestModelHistoryErrorDoesNotStopPlay(t *testing.T) {
	hist := &fakeHistory{err: errors.New("disk full")}
	m := newTestModel(hist)
	m, overAt := playToGameOver(t, m, time.Unix(1000, 0))

	m = update(m, space)
	m = update(m, TickMsg(overAt.Add(time.Second)))
	if m.game.Phase() != flappy.PhasePlaying {
		t.Errorf("phase = %v, want playing", m.game.Phase())
	}
}

func TestModelConfigReload(t *testing.T) {
	m := newTestModel(nil)

	next := config.DefaultFlappyConfig()
	next.Bird.Gravity = 1
	next.Presentation.GameOverDelayMS = 0
	m = update(m, ConfigReloadedMsg{Config: next})

	if m.game.Config().Bird.Gravity != 0.5 {
		t.Fatal("reload applied mid-session")
	}

	m = update(m, space)
	m = update(m, TickMsg(time.Now()))
	if m.game.Config().Bird.Gravity != 1 {
		t.Errorf("gravity = %v after start, want 1", m.game.Config().Bird.Gravity)
	}

	bad := config.DefaultFlappyConfig()
	bad.Field.Height = 10
	m = update(m, ConfigReloadedMsg{Config: bad})
	m = update(m, ConfigErrorMsg{Err: errors.New("parse error")})
	if m.game.Phase() != flappy.PhasePlaying {
		t.Error("rejected reload disturbed the session")
	}
}

// tickUntilOver ticks without input until the running session ends.
func tickUntilOver(t *testing.T, m Model, start time.Time) (Model, time.Time) {
	t.Helper()
	now := start
	for i := 0; i < 1000; i++ {
		m = update(m, TickMsg(now))
		if m.game.Phase() == flappy.PhaseGameOver {
			return m, now
		}
		now = now.Add(16 * time.Millisecond)
	}
	t.Fatal("session never ended")
	return m, now
}

func TestModelReloadedDelayWaitsForRestart(t *testing.T) {
	m := newTestModel(nil)
	start := time.Unix(1000, 0)
	m = update(m, space)
	m = update(m, TickMsg(start))

	next := config.DefaultFlappyConfig()
	next.Presentation.GameOverDelayMS = 2000
	m = update(m, ConfigReloadedMsg{Config: next})

	// The running session keeps the delay it started with.
	m, overAt := tickUntilOver(t, m, start.Add(16*time.Millisecond))
	m = update(m, TickMsg(overAt.Add(500*time.Millisecond)))
	if !m.GameOverRevealed() {
		t.Fatal("reloaded delay applied mid-session")
	}

	// The restarted session uses the reloaded delay.
	restart := overAt.Add(time.Second)
	m = update(m, space)
	m = update(m, TickMsg(restart))
	m, overAt = tickUntilOver(t, m, restart.Add(16*time.Millisecond))
	m = update(m, TickMsg(overAt.Add(500*time.Millisecond)))
	if m.GameOverRevealed() {
		t.Fatal("panel shown before the reloaded delay")
	}
	m = update(m, TickMsg(overAt.Add(2000*time.Millisecond)))
	if !m.GameOverRevealed() {
		t.Error("panel hidden after the reloaded delay")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(nil)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if next.(Model).View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m := newTestModel(nil)
	m = update(m, space)
	m = update(m, TickMsg(time.Now()))

	m = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 120x40", m.screen.Width(), m.screen.Height())
	}
	if m.game.Phase() != flappy.PhasePlaying || m.game.World().Steps != 1 {
		t.Error("resize reset the session")
	}
}
