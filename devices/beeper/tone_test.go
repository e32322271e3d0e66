package beeper

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func samples(t *testing.T, tone *Tone, count int) []float32 {
	t.Helper()

	p := make([]byte, count*bytesPerSample)
	n, err := tone.Read(p)
	assert.NoError(t, err)
	assert.Equal(t, len(p), n)

	out := make([]float32, count)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(p[i*bytesPerSample:]))
	}
	return out
}

func TestToneSilent(t *testing.T) {
	tone := NewTone(1, 4, 0.5)

	for _, v := range samples(t, tone, 8) {
		assert.Equal(t, float32(0), v)
	}
}

func TestToneSquare(t *testing.T) {
	// One period every four samples.
	tone := NewTone(1, 4, 0.5)
	tone.Set(true)
	assert.Equal(t, true, tone.On())

	want := []float32{0.5, 0.5, -0.5, -0.5, 0.5, 0.5, -0.5, -0.5}
	got := samples(t, tone, len(want))
	for i := range want {
		assert.Equal(t, want[i], got[i])
	}

	tone.Set(false)
	for _, v := range samples(t, tone, 4) {
		assert.Equal(t, float32(0), v)
	}
}

func TestTonePartialSample(t *testing.T) {
	tone := NewTone(440, 44100, 0.25)
	tone.Set(true)

	n, err := tone.Read(make([]byte, 7))
	assert.NoError(t, err)
	assert.Equal(t, bytesPerSample, n)
}
