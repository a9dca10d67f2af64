package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// Cloud layout. Clouds are scenery: they never collide and are not part of
// a session, so they keep drifting across restarts.
const (
	cloudCount    = 5
	cloudMinY     = 50
	cloudYSpan    = 200
	cloudMinSize  = 30
	cloudSizeSpan = 40
	cloudMinSpeed = 0.2
	cloudSpeedMax = 0.7
)

// Cloud is a background puff. X, Y is the centre of its left lobe; the
// puff extends about 2·Size to the right.
type Cloud struct {
	X, Y  float64
	Size  float64
	Speed float64 // Leftward drift per step
}

// Sky scrolls the background clouds.
type Sky struct {
	clouds []Cloud
	width  float64
}

// NewSky scatters the clouds over the field.
func NewSky(rng Rand, field config.FlappyField) *Sky {
	s := &Sky{
		clouds: make([]Cloud, cloudCount),
		width:  field.Width,
	}
	for i := range s.clouds {
		s.clouds[i] = Cloud{
			X:     uniform(rng, 0, field.Width),
			Y:     uniform(rng, cloudMinY, cloudMinY+cloudYSpan),
			Size:  uniform(rng, cloudMinSize, cloudMinSize+cloudSizeSpan),
			Speed: uniform(rng, cloudMinSpeed, cloudSpeedMax),
		}
	}
	return s
}

// Update drifts every cloud left; one that has fully left the field
// re-enters from the right.
func (s *Sky) Update() {
	for i := range s.clouds {
		c := &s.clouds[i]
		c.X -= c.Speed
		if c.X < -c.Size*2 {
			c.X = s.width + c.Size
		}
	}
}

// Clouds returns the clouds. The slice aliases live state.
func (s *Sky) Clouds() []Cloud {
	return s.clouds
}
