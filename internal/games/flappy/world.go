package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// World holds one session: the bird, its pipes, particles and score.
// A restart discards the World and builds a new one.
type World struct {
	Bird      Bird
	Score     int
	Steps     int // Simulation steps taken while playing
	pipes     *PipeManager
	particles *ParticleSystem
	cfg       config.FlappyConfig
}

// StepEvents reports what happened during one World step.
type StepEvents struct {
	Passed    int       // Pipes cleared this step
	Collision Collision // CollisionNone if the bird survived
}

// NewWorld creates a session in its initial arrangement.
func NewWorld(cfg config.FlappyConfig) *World {
	return &World{
		Bird:      newBird(cfg.Bird),
		pipes:     NewPipeManager(cfg.Pipes, cfg.Field),
		particles: NewParticleSystem(cfg.Particles),
		cfg:       cfg,
	}
}

// Step advances the session by one fixed step. Order matters: bird, spawn
// and pipes, particles, then collision against the updated positions.
func (w *World) Step(rng Rand) StepEvents {
	w.Steps++
	w.Bird.Integrate(w.cfg.Bird.Gravity)

	passed := w.pipes.Update(rng, w.Bird.X)
	for i := 0; i < passed; i++ {
		w.Score++
		w.particles.Add(ScoreBurst(rng, w.cfg.Particles, w.cfg.Field.Width/2, ScoreBurstY)...)
	}

	w.particles.Update()

	return StepEvents{
		Passed:    passed,
		Collision: Detect(w.Bird, w.pipes.Pipes(), w.cfg),
	}
}

// StepParticles advances only the particles. Used outside active play so
// bursts keep animating.
func (w *World) StepParticles() {
	w.particles.Update()
}

// Flap applies the jump impulse and emits the flap burst under the bird.
func (w *World) Flap(rng Rand) {
	w.Bird.Flap(w.cfg.Bird.JumpVelocity)
	w.particles.Add(FlapBurst(rng, w.cfg.Particles, w.Bird.X, w.Bird.Y+w.Bird.Height/2)...)
}

// Explode emits the death burst at the bird centre.
func (w *World) Explode(rng Rand) {
	cx, cy := w.Bird.Bounds().Center()
	w.particles.Add(ExplosionBurst(rng, w.cfg.Particles, cx, cy)...)
}

// Pipes returns the live pipes, oldest first.
func (w *World) Pipes() []Pipe {
	return w.pipes.Pipes()
}

// Particles returns the live particles.
func (w *World) Particles() []Particle {
	return w.particles.Particles()
}

// SpawnTimer returns the steps since the last pipe spawn.
func (w *World) SpawnTimer() int {
	return w.pipes.Timer()
}
