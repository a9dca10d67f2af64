package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Pipe is a pair of columns with a passable gap between them.
type Pipe struct {
	X      float64 // Left edge
	GapTop float64 // Top of the gap, fixed at spawn
	Passed bool    // Set once the bird has cleared the pipe
}

// PipeManager handles spawning, movement, scoring and removal of pipes.
// Pipes are kept in spawn order, which is also left-to-right order.
type PipeManager struct {
	pipes []Pipe
	timer int // Steps since the last spawn
	cfg   config.FlappyPipes
	field config.FlappyField
}

// NewPipeManager creates an empty pipe manager.
func NewPipeManager(cfg config.FlappyPipes, field config.FlappyField) *PipeManager {
	return &PipeManager{
		pipes: make([]Pipe, 0, 8),
		cfg:   cfg,
		field: field,
	}
}

// Update advances the pipes by one step: spawn on the timer, scroll,
// mark passes, and drop pipes that left the field.
// Returns the number of pipes passed this step (for scoring).
func (pm *PipeManager) Update(rng Rand, birdX float64) (passed int) {
	pm.timer++
	if pm.timer >= pm.cfg.SpawnInterval {
		pm.spawn(rng)
		pm.timer = 0
	}

	w := pm.cfg.Width
	for i := range pm.pipes {
		p := &pm.pipes[i]
		p.X -= pm.cfg.Speed

		if !p.Passed && p.X+w < birdX {
			p.Passed = true
			passed++
		}
	}

	// Only the leftmost pipes can be off-screen, so trim from the head.
	drop := 0
	for drop < len(pm.pipes) && pm.pipes[drop].X+w < 0 {
		drop++
	}
	if drop > 0 {
		pm.pipes = append(pm.pipes[:0], pm.pipes[drop:]...)
	}

	return passed
}

// spawn appends a pipe at the right edge with a uniformly sampled gap.
// The range is recomputed on every spawn.
func (pm *PipeManager) spawn(rng Rand) {
	lo, hi := pm.cfg.GapTopRange(pm.field)
	pm.pipes = append(pm.pipes, Pipe{
		X:      pm.field.Width,
		GapTop: uniform(rng, lo, hi),
	})
}

// Pipes returns the current pipes, oldest first.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// Timer returns the steps elapsed since the last spawn.
func (pm *PipeManager) Timer() int {
	return pm.timer
}
