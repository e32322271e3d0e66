package beeper

import (
	"encoding/binary"
	"math"
	"sync/atomic"
)

// bytesPerSample is the size of one mono float32 sample.
const bytesPerSample = 4

// Tone generates a square wave as a stream of little-endian float32
// samples. It produces silence while switched off.
//
// Read is called from the audio library's goroutine; Set may be called
// from any goroutine.
type Tone struct {
	on        atomic.Bool
	step      float64 // Phase increment per sample.
	phase     float64 // Position within the current period, in [0, 1).
	amplitude float32
}

// NewTone creates a tone of the given frequency for the given sample rate.
func NewTone(frequency float64, sampleRate int, amplitude float32) *Tone {
	return &Tone{
		step:      frequency / float64(sampleRate),
		amplitude: amplitude,
	}
}

// Set switches the tone on or off.
func (t *Tone) Set(on bool) {
	t.on.Store(on)
}

// On returns true if the tone is switched on.
func (t *Tone) On() bool {
	return t.on.Load()
}

// Read fills p with whole samples and returns the number of bytes written.
func (t *Tone) Read(p []byte) (int, error) {
	n := len(p) / bytesPerSample

	if !t.on.Load() {
		t.phase = 0
		for i := range p[:n*bytesPerSample] {
			p[i] = 0
		}
		return n * bytesPerSample, nil
	}

	for i := 0; i < n; i++ {
		v := t.amplitude
		if t.phase >= 0.5 {
			v = -v
		}

		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(v))

		t.phase += t.step
		if t.phase >= 1 {
			t.phase -= math.Floor(t.phase)
		}
	}

	return n * bytesPerSample, nil
}
