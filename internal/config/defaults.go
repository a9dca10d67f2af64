package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Field: FlappyField{
			Width:        400,
			Height:       600,
			GroundHeight: 50,
		},
		Bird: FlappyBird{
			X:            80,
			StartY:       300,
			Width:        40,
			Height:       30,
			Gravity:      0.5,
			JumpVelocity: -9,
			HitboxInset:  5,
			TiltFactor:   3,
			MinTilt:      -30,
			MaxTilt:      90,
		},
		Pipes: FlappyPipes{
			Width:         60,
			Gap:           160,
			Speed:         3,
			SpawnInterval: 90,
			TopMargin:     80,
			BottomMargin:  80,
		},
		Particles: FlappyParticles{
			FlapCount:        5,
			ScoreCount:       10,
			ExplosionCount:   30,
			Spread:           4,
			ExplosionSpread:  10,
			ExplosionGravity: 0.2,
			MinDecay:         0.02,
			MaxDecay:         0.04,
			MinSize:          2,
			MaxSize:          8,
		},
		Presentation: FlappyPresentation{
			GameOverDelayMS: 500,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
