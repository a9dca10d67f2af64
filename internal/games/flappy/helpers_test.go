package flappy

import (
	"errors"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// constRand always returns the same value.
type constRand float64

func (r constRand) Float64() float64 { return float64(r) }

// memStore is an in-memory ScoreStore.
type memStore struct {
	vals   map[string]int
	getErr error
	setErr error
	sets   int
}

func newMemStore() *memStore {
	return &memStore{vals: make(map[string]int)}
}

func (s *memStore) Get(key string) (int, bool, error) {
	if s.getErr != nil {
		return 0, false, s.getErr
	}
	v, ok := s.vals[key]
	return v, ok, nil
}

func (s *memStore) Set(key string, v int) error {
	s.sets++
	if s.setErr != nil {
		return s.setErr
	}
	s.vals[key] = v
	return nil
}

var errStore = errors.New("store unavailable")

// cueRecorder collects played cues.
type cueRecorder struct {
	cues []audio.Cue
}

func (r *cueRecorder) Play(c audio.Cue) { r.cues = append(r.cues, c) }

func (r *cueRecorder) count(c audio.Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

func empty() core.InputFrame {
	return core.NewInputFrame()
}

func frame(actions ...core.Action) core.InputFrame {
	return core.NewInputFrame(actions...)
}

func newTestGame(opts ...Option) *Game {
	opts = append([]Option{WithRand(constRand(0.5))}, opts...)
	return New(config.DefaultFlappyConfig(), opts...)
}

// groundStep returns the step on which a bird that never flaps first
// reaches the ground.
func groundStep(cfg config.FlappyConfig) int {
	b := newBird(cfg.Bird)
	for n := 1; ; n++ {
		b.Integrate(cfg.Bird.Gravity)
		if b.Y+b.Height >= cfg.Field.GroundY() {
			return n
		}
	}
}

// holdInGap keeps the bird level inside the gap sampled by constRand(0.5).
func holdInGap(g *Game) {
	g.world.Bird.Y = 250
	g.world.Bird.Velocity = -g.cfg.Bird.Gravity
}

// playUntil steps with the bird held in the gap until cond holds.
func playUntil(g *Game, limit int, cond func() bool) int {
	for i := 1; i <= limit; i++ {
		holdInGap(g)
		g.Step(empty())
		if cond() {
			return i
		}
	}
	return -1
}

// fallUntilOver steps without input until the session ends.
func fallUntilOver(g *Game, limit int) bool {
	for i := 0; i < limit && g.Phase() == PhasePlaying; i++ {
		g.Step(empty())
	}
	return g.Phase() == PhaseGameOver
}
