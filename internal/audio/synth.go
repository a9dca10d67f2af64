package audio

import (
	"encoding/binary"
	"math"
)

// SampleRate is the rate every cue is rendered at.
const SampleRate = 44100

// voice describes one cue as an oscillator with a frequency and gain
// envelope.
type voice struct {
	duration  float64 // seconds
	wave      func(phase float64) float64
	freq      func(t float64) float64
	gainStart float64
	gainEnd   float64
}

var voices = map[Cue]voice{
	// Rising chirp.
	CueFlap: {
		duration:  0.1,
		wave:      sine,
		freq:      expRamp(400, 600, 0.1),
		gainStart: 0.1,
		gainEnd:   0.01,
	},
	// C5 E5 G5 arpeggio.
	CueScore: {
		duration:  0.3,
		wave:      sine,
		freq:      steps(0.1, 523, 659, 784),
		gainStart: 0.1,
		gainEnd:   0.01,
	},
	// Falling buzz.
	CueHit: {
		duration:  0.3,
		wave:      sawtooth,
		freq:      expRamp(200, 50, 0.3),
		gainStart: 0.2,
		gainEnd:   0.01,
	},
}

// Synthesize renders a cue as mono samples in [-1, 1] at the given rate.
// Unknown cues render as silence of zero length.
func Synthesize(c Cue, sampleRate int) []float64 {
	v, ok := voices[c]
	if !ok || sampleRate <= 0 {
		return nil
	}

	n := int(v.duration * float64(sampleRate))
	out := make([]float64, n)
	gain := expRamp(v.gainStart, v.gainEnd, v.duration)
	phase := 0.0
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = v.wave(phase) * gain(t)
		phase += v.freq(t) / float64(sampleRate)
		phase -= math.Floor(phase)
	}
	return out
}

// EncodeFloat32Stereo packs mono samples as interleaved stereo float32 LE.
func EncodeFloat32Stereo(samples []float64) []byte {
	buf := make([]byte, len(samples)*8)
	for i, s := range samples {
		bits := math.Float32bits(float32(s))
		binary.LittleEndian.PutUint32(buf[i*8:], bits)
		binary.LittleEndian.PutUint32(buf[i*8+4:], bits)
	}
	return buf
}

// EncodeInt16Stereo packs mono samples as interleaved stereo signed 16-bit LE.
func EncodeInt16Stereo(samples []float64) []byte {
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		v := uint16(int16(math.Max(-1, math.Min(1, s)) * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], v)
		binary.LittleEndian.PutUint16(buf[i*4+2:], v)
	}
	return buf
}

// sine takes a phase in cycles.
func sine(phase float64) float64 {
	return math.Sin(2 * math.Pi * phase)
}

func sawtooth(phase float64) float64 {
	return 2*phase - 1
}

// expRamp moves exponentially from a to b over d seconds and holds b after.
func expRamp(a, b, d float64) func(t float64) float64 {
	return func(t float64) float64 {
		if t >= d {
			return b
		}
		return a * math.Pow(b/a, t/d)
	}
}

// steps holds each frequency for step seconds.
func steps(step float64, freqs ...float64) func(t float64) float64 {
	return func(t float64) float64 {
		i := int(t / step)
		if i >= len(freqs) {
			i = len(freqs) - 1
		}
		return freqs[i]
	}
}
