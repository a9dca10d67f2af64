package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Collision names what the bird hit.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionGround
	CollisionCeiling
	CollisionPipe
)

// String returns a short name for logs.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionGround:
		return "ground"
	case CollisionCeiling:
		return "ceiling"
	case CollisionPipe:
		return "pipe"
	default:
		return "unknown"
	}
}

// Detect tests the bird against the world bounds and every pipe.
//
// World bounds use the full bird rectangle: the bottom edge at or below the
// ground line, or the top edge above the field, is a hit. Pipes use the
// inset hitbox with strict comparisons, so an edge resting exactly on a gap
// boundary is a miss.
func Detect(b Bird, pipes []Pipe, cfg config.FlappyConfig) Collision {
	if b.Y+b.Height >= cfg.Field.GroundY() {
		return CollisionGround
	}
	if b.Y < 0 {
		return CollisionCeiling
	}

	hb := b.Hitbox(cfg.Bird.HitboxInset)
	for _, p := range pipes {
		if !hb.OverlapsSpan(p.X, p.X+cfg.Pipes.Width) {
			continue
		}
		if hb.Y < p.GapTop || hb.Bottom() > p.GapTop+cfg.Pipes.Gap {
			return CollisionPipe
		}
	}
	return CollisionNone
}

// Collides reports whether Detect finds any collision.
func Collides(b Bird, pipes []Pipe, cfg config.FlappyConfig) bool {
	return Detect(b, pipes, cfg) != CollisionNone
}
