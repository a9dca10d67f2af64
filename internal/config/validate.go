package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid flappy config")

// Validate checks that the geometry admits a playable game. In particular
// the gap-top sampling range must be non-empty.
func (c FlappyConfig) Validate() error {
	f, b, p := c.Field, c.Bird, c.Pipes

	switch {
	case f.Width <= 0 || f.Height <= 0:
		return fmt.Errorf("%w: field must be positive, got %vx%v", ErrInvalidConfig, f.Width, f.Height)
	case f.GroundHeight < 0 || f.GroundHeight >= f.Height:
		return fmt.Errorf("%w: ground height %v outside field height %v", ErrInvalidConfig, f.GroundHeight, f.Height)
	case b.Width <= 0 || b.Height <= 0:
		return fmt.Errorf("%w: bird size must be positive", ErrInvalidConfig)
	case b.HitboxInset < 0 || 2*b.HitboxInset >= b.Width || 2*b.HitboxInset >= b.Height:
		return fmt.Errorf("%w: hitbox inset %v leaves no hitbox", ErrInvalidConfig, b.HitboxInset)
	case b.StartY < 0 || b.StartY+b.Height >= f.GroundY():
		return fmt.Errorf("%w: bird start y %v is outside the sky", ErrInvalidConfig, b.StartY)
	case b.MinTilt > b.MaxTilt:
		return fmt.Errorf("%w: min tilt %v above max tilt %v", ErrInvalidConfig, b.MinTilt, b.MaxTilt)
	case p.Width <= 0 || p.Gap <= 0 || p.Speed <= 0:
		return fmt.Errorf("%w: pipe width, gap and speed must be positive", ErrInvalidConfig)
	case p.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn interval must be positive, got %d", ErrInvalidConfig, p.SpawnInterval)
	}

	lo, hi := p.GapTopRange(f)
	if hi <= lo {
		return fmt.Errorf("%w: empty gap range [%v, %v)", ErrInvalidConfig, lo, hi)
	}

	pt := c.Particles
	if pt.MinDecay <= 0 || pt.MaxDecay < pt.MinDecay {
		return fmt.Errorf("%w: particle decay range [%v, %v)", ErrInvalidConfig, pt.MinDecay, pt.MaxDecay)
	}
	switch {
	case pt.FlapCount < 0 || pt.ScoreCount < 0 || pt.ExplosionCount < 0:
		return fmt.Errorf("%w: negative particle count", ErrInvalidConfig)
	case pt.Spread < 0 || pt.ExplosionSpread < 0:
		return fmt.Errorf("%w: negative particle spread", ErrInvalidConfig)
	case pt.MinSize < 0 || pt.MaxSize < pt.MinSize:
		return fmt.Errorf("%w: particle size range [%v, %v)", ErrInvalidConfig, pt.MinSize, pt.MaxSize)
	}
	if c.Presentation.GameOverDelayMS < 0 {
		return fmt.Errorf("%w: negative game over delay", ErrInvalidConfig)
	}
	return nil
}
