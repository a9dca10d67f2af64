package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player entity. X never changes; the world scrolls instead.
type Bird struct {
	X, Y     float64 // Top-left corner
	Velocity float64 // Vertical, positive is down
	Width    float64
	Height   float64
}

func newBird(cfg config.FlappyBird) Bird {
	return Bird{
		X:      cfg.X,
		Y:      cfg.StartY,
		Width:  cfg.Width,
		Height: cfg.Height,
	}
}

// Integrate advances the bird by one step under constant gravity.
// Bounds are not enforced here; that is the collision detector's job.
func (b *Bird) Integrate(gravity float64) {
	b.Velocity += gravity
	b.Y += b.Velocity
}

// Flap sets the velocity to the jump velocity. It replaces, never adds.
func (b *Bird) Flap(jumpVelocity float64) {
	b.Velocity = jumpVelocity
}

// Bounds returns the nominal rectangle used for drawing.
func (b Bird) Bounds() core.Box {
	return core.Box{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}

// Hitbox returns the bounds trimmed by inset on every side.
func (b Bird) Hitbox(inset float64) core.Box {
	return b.Bounds().Inset(inset)
}

// Tilt returns the display rotation in degrees. Render-only.
func (b Bird) Tilt(cfg config.FlappyBird) float64 {
	return core.ClampF(b.Velocity*cfg.TiltFactor, cfg.MinTilt, cfg.MaxTilt)
}
