package main

import (
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/tui-flappy/internal/audio"
)

// cueSounds plays synthesized cues through Ebitengine's audio context.
// Each Play gets its own player so cues overlap.
type cueSounds struct {
	ctx    *eaudio.Context
	pcm    map[audio.Cue][]byte
	volume float64
}

func newCueSounds(volume float64) *cueSounds {
	s := &cueSounds{
		ctx:    eaudio.NewContext(audio.SampleRate),
		pcm:    make(map[audio.Cue][]byte, len(audio.Cues)),
		volume: volume,
	}
	for _, c := range audio.Cues {
		s.pcm[c] = audio.EncodeInt16Stereo(audio.Synthesize(c, audio.SampleRate))
	}
	return s
}

// Play implements audio.Player.
func (s *cueSounds) Play(c audio.Cue) {
	buf, ok := s.pcm[c]
	if !ok || len(buf) == 0 {
		return
	}
	p := s.ctx.NewPlayerFromBytes(buf)
	p.SetVolume(s.volume)
	p.Play()
}
