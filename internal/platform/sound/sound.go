// Package sound plays audio cues on the local sound device through oto.
package sound

import (
	"bytes"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/tui-flappy/internal/audio"
)

const (
	channelCount = 2
	maxVoices    = 4 // Cues beyond this are dropped
)

// Player plays cues on the default output device.
// Play never blocks; each cue runs on its own goroutine.
type Player struct {
	ctx     *oto.Context
	ready   chan struct{}
	buffers map[audio.Cue][]byte
	volume  float64
	active  int32
	logger  *log.Logger
}

// NewPlayer opens the output device and renders every cue up front.
// volume is in [0, 1].
func NewPlayer(volume float64, logger *log.Logger) (*Player, error) {
	ctx, ready, err := oto.NewContext(audio.SampleRate, channelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("sound: cannot open audio device: %w", err)
	}

	p := &Player{
		ctx:     ctx,
		ready:   ready,
		buffers: make(map[audio.Cue][]byte, len(audio.Cues)),
		volume:  volume,
		logger:  logger,
	}
	for _, c := range audio.Cues {
		p.buffers[c] = audio.EncodeFloat32Stereo(audio.Synthesize(c, audio.SampleRate))
	}
	return p, nil
}

// Play implements audio.Player. Cues arriving before the device is ready
// are dropped.
func (p *Player) Play(c audio.Cue) {
	select {
	case <-p.ready:
	default:
		return
	}

	buf, ok := p.buffers[c]
	if !ok || len(buf) == 0 {
		return
	}
	if atomic.AddInt32(&p.active, 1) > maxVoices {
		atomic.AddInt32(&p.active, -1)
		p.logger.Debug("cue dropped", "cue", c)
		return
	}

	go func() {
		defer atomic.AddInt32(&p.active, -1)
		player := p.ctx.NewPlayer(bytes.NewReader(buf))
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			p.logger.Debug("cue player close failed", "cue", c, "err", err)
		}
	}()
}
