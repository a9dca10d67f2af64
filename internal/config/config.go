// Package config provides YAML-based game configuration loading,
// validation, and hot reload for the game.
package config

import "time"

// FlappyConfig contains all configuration for the Flappy Bird game.
// Distances are in world units; the field is 400x600 by default and
// renderers scale it to their surface.
type FlappyConfig struct {
	Field        FlappyField        `yaml:"field"`
	Bird         FlappyBird         `yaml:"bird"`
	Pipes        FlappyPipes        `yaml:"pipes"`
	Particles    FlappyParticles    `yaml:"particles"`
	Presentation FlappyPresentation `yaml:"presentation"`
}

// FlappyField defines the playfield geometry.
type FlappyField struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// GroundY returns the y coordinate of the ground line.
func (f FlappyField) GroundY() float64 {
	return f.Height - f.GroundHeight
}

// FlappyBird defines bird physics and hitbox parameters.
type FlappyBird struct {
	X            float64 `yaml:"x"`
	StartY       float64 `yaml:"start_y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Gravity      float64 `yaml:"gravity"`       // Added to velocity every step
	JumpVelocity float64 `yaml:"jump_velocity"` // Velocity set by a flap (negative = up)
	HitboxInset  float64 `yaml:"hitbox_inset"`  // Trimmed from every side for collisions
	TiltFactor   float64 `yaml:"tilt_factor"`   // Degrees of tilt per unit of velocity
	MinTilt      float64 `yaml:"min_tilt"`
	MaxTilt      float64 `yaml:"max_tilt"`
}

// FlappyPipes defines obstacle parameters.
type FlappyPipes struct {
	Width         float64 `yaml:"width"`
	Gap           float64 `yaml:"gap"`
	Speed         float64 `yaml:"speed"`          // Scroll per step
	SpawnInterval int     `yaml:"spawn_interval"` // Steps between spawns
	TopMargin     float64 `yaml:"top_margin"`     // Smallest gap top
	BottomMargin  float64 `yaml:"bottom_margin"`  // Clearance between gap bottom and ground
}

// GapTopRange returns the half-open range [min, max) that gap tops are
// sampled from.
func (p FlappyPipes) GapTopRange(f FlappyField) (min, max float64) {
	return p.TopMargin, f.GroundY() - p.Gap - p.BottomMargin
}

// FlappyParticles defines the cosmetic particle bursts.
type FlappyParticles struct {
	FlapCount        int     `yaml:"flap_count"`
	ScoreCount       int     `yaml:"score_count"`
	ExplosionCount   int     `yaml:"explosion_count"`
	Spread           float64 `yaml:"spread"`
	ExplosionSpread  float64 `yaml:"explosion_spread"`
	ExplosionGravity float64 `yaml:"explosion_gravity"`
	MinDecay         float64 `yaml:"min_decay"`
	MaxDecay         float64 `yaml:"max_decay"`
	MinSize          float64 `yaml:"min_size"`
	MaxSize          float64 `yaml:"max_size"`
}

// FlappyPresentation holds render-side timing.
type FlappyPresentation struct {
	GameOverDelayMS int `yaml:"game_over_delay_ms"`
}

// GameOverDelay is how long the game-over panel waits after the collision.
func (p FlappyPresentation) GameOverDelay() time.Duration {
	return time.Duration(p.GameOverDelayMS) * time.Millisecond
}
