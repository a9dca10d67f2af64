package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// ScoreHistory records finished sessions.
type ScoreHistory interface {
	SaveScore(score, steps int, cause string) (int64, error)
}

// Options configures a Model.
type Options struct {
	Runtime core.RuntimeConfig
	History ScoreHistory    // Optional
	Watcher *config.Watcher // Optional; reloads apply at the next restart
	Logger  *log.Logger
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       *flappy.Game
	screen     *core.Screen
	history    ScoreHistory
	watcher    *config.Watcher
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	overAt     time.Time // Tick at which the session ended; zero while alive
	revealed   bool      // Game-over panel visible
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *flappy.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		history:    opts.History,
		watcher:    opts.Watcher,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop and, if configured, the config watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), waitForReload(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.inputFrame.Push(m.keys.MapMouse(msg))
		return m, nil

	case tea.WindowSizeMsg:
		// The field is scaled to the screen, so a resize keeps the session.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case ConfigReloadedMsg:
		if err := m.game.SetConfig(msg.Config); err != nil {
			m.logger.Warn("config reload rejected", "err", err)
		} else {
			m.logger.Info("config reloaded, applies on next restart")
		}
		return m, waitForReload(m.watcher)

	case ConfigErrorMsg:
		m.logger.Warn("config reload failed", "err", msg.Err)
		return m, waitForReload(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick applies queued input, steps the game and tracks the
// game-over reveal. The delay comes from the active config, so a reload
// changes it at the same reset as the geometry.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	wasOver := m.game.Phase() == flappy.PhaseGameOver
	m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	switch over := m.game.Phase() == flappy.PhaseGameOver; {
	case over && !wasOver:
		m.overAt = now
		m.revealed = false
		m.scoreSaved = false
		m.saveScore()
	case !over:
		m.overAt = time.Time{}
		m.revealed = false
	}

	if !m.overAt.IsZero() && now.Sub(m.overAt) >= m.game.Config().Presentation.GameOverDelay() {
		m.revealed = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished session once. Best-effort.
func (m *Model) saveScore() {
	if m.scoreSaved || m.history == nil {
		return
	}
	m.scoreSaved = true

	w := m.game.World()
	if _, err := m.history.SaveScore(w.Score, w.Steps, m.game.Cause().String()); err != nil {
		m.logger.Warn("score not recorded", "score", w.Score, "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen, m.revealed)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot not saved", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// GameOverRevealed reports whether the game-over panel is visible.
func (m Model) GameOverRevealed() bool {
	return m.revealed
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen, m.revealed)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game *flappy.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click to flap
	)

	_, err := p.Run()
	return err
}
