// Package flappy implements a Flappy Bird simulation core.
// The player controls a bird that must navigate through gaps in vertical
// pipes. The package is pure logic: rendering targets core.Screen, sound is
// a cue sink and persistence is a narrow key-value interface.
package flappy

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// HighScoreKey is the persistence key for the best score.
const HighScoreKey = "flappyHighScore"

// Phase is the top-level game state.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// ScoreStore persists the high score. A missing key reports ok == false.
type ScoreStore interface {
	Get(key string) (value int, ok bool, err error)
	Set(key string, value int) error
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the random source. Defaults to a time-seeded source.
func WithRand(r Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithStore sets the high score store. Without one the high score lives
// in memory only.
func WithStore(s ScoreStore) Option {
	return func(g *Game) { g.store = s }
}

// WithAudio sets the cue sink. Defaults to audio.Mute.
func WithAudio(p audio.Player) Option {
	return func(g *Game) { g.audio = p }
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// Game implements the Flappy Bird state machine.
type Game struct {
	cfg       config.FlappyConfig
	pending   *config.FlappyConfig // Installed at the next reset
	rng       Rand
	world     *World
	sky       *Sky
	phase     Phase
	paused    bool
	highScore int
	newHigh   bool      // Last session beat the previous best
	cause     Collision // What ended the last session
	sessions  int
	store     ScoreStore
	audio     audio.Player
	logger    *log.Logger
}

// New creates a game in the Start phase and reads the persisted high score.
// It panics if cfg is invalid; validate untrusted configs first.
func New(cfg config.FlappyConfig, opts ...Option) *Game {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("flappy: %v", err))
	}

	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = NewRand(time.Now().UnixNano())
	}
	if g.audio == nil {
		g.audio = audio.Mute{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.world = NewWorld(cfg)
	g.sky = NewSky(g.rng, cfg.Field)
	g.highScore = g.loadHighScore()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

func (g *Game) loadHighScore() int {
	if g.store == nil {
		return 0
	}
	v, ok, err := g.store.Get(HighScoreKey)
	if err != nil {
		g.logger.Warn("high score unreadable, starting from 0", "err", err)
		return 0
	}
	if !ok {
		return 0
	}
	if v < 0 {
		g.logger.Warn("high score out of range, starting from 0", "value", v)
		return 0
	}
	return v
}

// Step applies the frame's actions in order, then advances the world one
// step if playing and not paused. Clouds and particles move in every
// phase unless paused.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions {
		switch a {
		case core.ActionActivate:
			g.Activate()
		case core.ActionTap:
			g.Flap()
		case core.ActionPause:
			g.TogglePause()
		}
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.sky.Update()
	if g.phase != PhasePlaying {
		g.world.StepParticles()
		return core.StepResult{State: g.State()}
	}

	ev := g.world.Step(g.rng)
	for i := 0; i < ev.Passed; i++ {
		g.audio.Play(audio.CueScore)
	}
	if ev.Collision != CollisionNone {
		g.gameOver(ev.Collision)
	}

	return core.StepResult{State: g.State()}
}

// Activate routes the primary action by phase: start, flap or restart.
func (g *Game) Activate() {
	switch g.phase {
	case PhaseStart:
		g.Start()
	case PhasePlaying:
		g.Flap()
	case PhaseGameOver:
		g.Restart()
	}
}

// Start begins the first session. Returns false outside the Start phase.
func (g *Game) Start() bool {
	if g.phase != PhaseStart {
		return false
	}
	g.reset()
	return true
}

// Restart begins a new session after a game over. The high score is kept.
// Returns false outside the GameOver phase.
func (g *Game) Restart() bool {
	if g.phase != PhaseGameOver {
		return false
	}
	g.reset()
	return true
}

// Flap gives the bird an upward impulse. It has no effect unless playing
// and unpaused.
func (g *Game) Flap() bool {
	if g.phase != PhasePlaying || g.paused {
		return false
	}
	g.world.Flap(g.rng)
	g.audio.Play(audio.CueFlap)
	return true
}

// TogglePause pauses or resumes an active session.
func (g *Game) TogglePause() {
	if g.phase != PhasePlaying {
		return
	}
	g.paused = !g.paused
	g.logger.Debug("pause toggled", "paused", g.paused)
}

// SetConfig installs cfg for the next reset. The running session keeps the
// geometry it was started with.
func (g *Game) SetConfig(cfg config.FlappyConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("flappy: set config: %w", err)
	}
	g.pending = &cfg
	return nil
}

// Config returns the config of the current session.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

func (g *Game) reset() {
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
	}
	g.world = NewWorld(g.cfg)
	if g.sky.width != g.cfg.Field.Width {
		g.sky = NewSky(g.rng, g.cfg.Field)
	}
	g.phase = PhasePlaying
	g.paused = false
	g.newHigh = false
	g.cause = CollisionNone
	g.sessions++
	g.logger.Info("session started", "session", g.sessions, "high_score", g.highScore)
}

func (g *Game) gameOver(cause Collision) {
	g.phase = PhaseGameOver
	g.cause = cause
	g.audio.Play(audio.CueHit)
	g.world.Explode(g.rng)

	score := g.world.Score
	g.logger.Info("game over", "score", score, "cause", cause, "steps", g.world.Steps)

	if score <= g.highScore {
		return
	}
	g.highScore = score
	g.newHigh = true
	if g.store == nil {
		return
	}
	if err := g.store.Set(HighScoreKey, score); err != nil {
		g.logger.Warn("high score not saved", "score", score, "err", err)
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Paused reports whether the session is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Cause returns what ended the last session, or CollisionNone.
func (g *Game) Cause() Collision {
	return g.cause
}

// Score returns the current session score.
func (g *Game) Score() int {
	return g.world.Score
}

// HighScore returns the best score seen, including the current session.
func (g *Game) HighScore() int {
	return g.highScore
}

// World returns the current session.
func (g *Game) World() *World {
	return g.world
}

// State returns the summary used by the platform layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.world.Score,
		HighScore: g.highScore,
		GameOver:  g.phase == PhaseGameOver,
		Paused:    g.paused,
	}
}

// Snapshot is a read-only view of the game for renderers.
// Slices alias live state and must not be modified.
type Snapshot struct {
	Field        config.FlappyField
	PipeWidth    float64
	PipeGap      float64
	Bird         Bird
	Tilt         float64 // Degrees, positive is nose down
	Pipes        []Pipe
	Particles    []Particle
	Clouds       []Cloud
	Score        int
	HighScore    int
	Phase        Phase
	NewHighScore bool
	Paused       bool
}

// Snapshot captures the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Field:        g.cfg.Field,
		PipeWidth:    g.cfg.Pipes.Width,
		PipeGap:      g.cfg.Pipes.Gap,
		Bird:         g.world.Bird,
		Tilt:         g.world.Bird.Tilt(g.cfg.Bird),
		Pipes:        g.world.Pipes(),
		Particles:    g.world.Particles(),
		Clouds:       g.sky.Clouds(),
		Score:        g.world.Score,
		HighScore:    g.highScore,
		Phase:        g.phase,
		NewHighScore: g.newHigh,
		Paused:       g.paused,
	}
}
