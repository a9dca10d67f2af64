// Package audio defines the named sound cues the game emits and
// synthesizes them into PCM. Playback devices live in the platform layer.
package audio

// Cue names a sound effect.
type Cue int

const (
	CueFlap Cue = iota
	CueScore
	CueHit
)

// Cues lists every cue, in declaration order.
var Cues = []Cue{CueFlap, CueScore, CueHit}

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueFlap:
		return "flap"
	case CueScore:
		return "score"
	case CueHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Player receives cues from the game. Implementations must not block.
type Player interface {
	Play(c Cue)
}

// Mute is a Player that drops every cue.
type Mute struct{}

// Play implements Player.
func (Mute) Play(Cue) {}
