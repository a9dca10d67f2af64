package flappy

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// ParticleKind selects how a particle moves.
type ParticleKind uint8

const (
	ParticleNormal    ParticleKind = iota
	ParticleExplosion              // Falls under its own gravity
)

// ScoreBurstY is the height of the score readout the score burst comes from.
const ScoreBurstY = 50

// Particle is a short-lived cosmetic dot. It never affects gameplay.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  color.RGBA
	Kind   ParticleKind
	Life   float64 // 1 at birth, removed at <= 0
	Decay  float64 // Life lost per step, fixed at creation
}

func (p *Particle) update(gravity float64) {
	p.X += p.VX
	p.Y += p.VY
	p.Life -= p.Decay
	if p.Kind == ParticleExplosion {
		p.VY += gravity
	}
}

// explosionPalette is the fixed set of death-burst colors.
var explosionPalette = []color.RGBA{
	{R: 0xff, G: 0x6b, B: 0x6b, A: 0xff},
	{R: 0xff, G: 0xd9, B: 0x3d, A: 0xff},
	{R: 0xff, G: 0x8c, B: 0x42, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// FlapBurst returns the cyan puff emitted when the bird flaps.
func FlapBurst(rng Rand, cfg config.FlappyParticles, x, y float64) []Particle {
	return burst(rng, cfg, cfg.FlapCount, x, y, ParticleNormal, hueRange(180, 40, 0.7))
}

// ScoreBurst returns the gold sparkle emitted when a pipe is passed.
func ScoreBurst(rng Rand, cfg config.FlappyParticles, x, y float64) []Particle {
	return burst(rng, cfg, cfg.ScoreCount, x, y, ParticleNormal, hueRange(50, 20, 0.6))
}

// ExplosionBurst returns the falling debris emitted on death.
func ExplosionBurst(rng Rand, cfg config.FlappyParticles, x, y float64) []Particle {
	return burst(rng, cfg, cfg.ExplosionCount, x, y, ParticleExplosion, func(r Rand) color.RGBA {
		return explosionPalette[int(r.Float64()*float64(len(explosionPalette)))%len(explosionPalette)]
	})
}

func burst(rng Rand, cfg config.FlappyParticles, n int, x, y float64, kind ParticleKind, pick func(Rand) color.RGBA) []Particle {
	spread := cfg.Spread
	if kind == ParticleExplosion {
		spread = cfg.ExplosionSpread
	}

	out := make([]Particle, 0, n)
	for i := 0; i < n; i++ {
		c := pick(rng)
		out = append(out, Particle{
			X:     x,
			Y:     y,
			Color: c,
			Kind:  kind,
			Size:  uniform(rng, cfg.MinSize, cfg.MaxSize),
			VX:    (rng.Float64() - 0.5) * spread,
			VY:    (rng.Float64() - 0.5) * spread,
			Life:  1,
			Decay: uniform(rng, cfg.MinDecay, cfg.MaxDecay),
		})
	}
	return out
}

// hueRange picks a fully saturated color with hue in [base, base+span).
func hueRange(base, span, lightness float64) func(Rand) color.RGBA {
	return func(r Rand) color.RGBA {
		c := colorful.Hsl(uniform(r, base, base+span), 1, lightness).Clamped()
		cr, cg, cb := c.RGB255()
		return color.RGBA{R: cr, G: cg, B: cb, A: 0xff}
	}
}

// ParticleSystem owns the live particles. There is no cap; particles
// leave only by decaying.
type ParticleSystem struct {
	p       []Particle
	gravity float64
}

// NewParticleSystem creates an empty particle system.
func NewParticleSystem(cfg config.FlappyParticles) *ParticleSystem {
	return &ParticleSystem{
		p:       make([]Particle, 0, 64),
		gravity: cfg.ExplosionGravity,
	}
}

// Add appends particles.
func (ps *ParticleSystem) Add(p ...Particle) {
	ps.p = append(ps.p, p...)
}

// Update moves every particle one step and removes the dead ones.
func (ps *ParticleSystem) Update() {
	live := ps.p[:0]
	for _, p := range ps.p {
		p.update(ps.gravity)
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	ps.p = live
}

// Particles returns the live particles.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.p
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.p)
}
