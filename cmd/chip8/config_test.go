package main

import (
	"flag"
	"io"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/hexaflex/chip8/devices/cpu"
	"github.com/hexaflex/chip8/devices/display"
)

func parseTestFlags(args ...string) (*Config, error) {
	fs := flag.NewFlagSet("chip8", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return parseFlags(fs, args)
}

func TestParseFlagsDefaults(t *testing.T) {
	c, err := parseTestFlags("pong.ch8")
	assert.NoError(t, err)

	assert.Equal(t, "pong.ch8", c.Program)
	assert.Equal(t, 10, c.ScaleFactor)
	assert.Equal(t, 700, c.CPUFrequency)
	assert.Equal(t, false, c.Debug)
	assert.Equal(t, int64(0), c.Seed)
	assert.Equal(t, cpu.Quirks{}, c.Quirks)
	assert.Equal(t, display.DefaultForeground, c.Foreground)
}

func TestParseFlags(t *testing.T) {
	c, err := parseTestFlags(
		"-cpu-hz", "1000",
		"-debug",
		"-mute",
		"-seed", "42",
		"-fg", "#33ff66",
		"-quirk-shift-vy",
		"-quirk-load-store-i",
		"-quirk-logic-vf",
		"pong.ch8",
	)
	assert.NoError(t, err)

	assert.Equal(t, 1000, c.CPUFrequency)
	assert.Equal(t, true, c.Debug)
	assert.Equal(t, true, c.Mute)
	assert.Equal(t, int64(42), c.Seed)
	assert.Equal(t, "#33ff66", c.Foreground.String())
	assert.Equal(t, cpu.Original(), c.Quirks)
}

func TestParseFlagsErrors(t *testing.T) {
	_, err := parseTestFlags()
	assert.Equal(t, errNoProgram, err)

	_, err = parseTestFlags("-version")
	assert.Equal(t, errVersion, err)

	_, err = parseTestFlags("-bg", "nope", "pong.ch8")
	if err == nil {
		t.Fatal("expected error for invalid color")
	}
}

func TestParseFlagsClamps(t *testing.T) {
	c, err := parseTestFlags("-scale-factor", "0", "-cpu-hz", "-5", "pong.ch8")
	assert.NoError(t, err)
	assert.Equal(t, 1, c.ScaleFactor)
	assert.Equal(t, 1, c.CPUFrequency)
}

func TestLetterbox(t *testing.T) {
	tests := []struct {
		width, height int
		x, y, w, h    int32
	}{
		{640, 320, 0, 0, 640, 320},
		{640, 480, 0, 80, 640, 320},
		{1000, 320, 180, 0, 640, 320},
	}

	for _, tt := range tests {
		x, y, w, h := letterbox(tt.width, tt.height)
		assert.Equal(t, tt.x, x)
		assert.Equal(t, tt.y, y)
		assert.Equal(t, tt.w, w)
		assert.Equal(t, tt.h, h)
	}
}

func TestPrettyFrequency(t *testing.T) {
	assert.Equal(t, "700.00 Hz", prettyFrequency(700))
	assert.Equal(t, "1.50 KHz", prettyFrequency(1500))
	assert.Equal(t, "2.00 MHz", prettyFrequency(2e6))
}

func TestVersion(t *testing.T) {
	if v := Version(); len(v) == 0 {
		t.Fatal("empty version")
	}
}

func TestExitStatus(t *testing.T) {
	_, err := parseTestFlags("-no-such-flag", "pong.ch8")
	assert.Equal(t, 1, exitStatus(err))

	_, err = parseTestFlags("-fg", "#xyz", "pong.ch8")
	assert.Equal(t, 1, exitStatus(err))

	_, err = parseTestFlags("-cpu-hz", "fast", "pong.ch8")
	assert.Equal(t, 1, exitStatus(err))

	_, err = parseTestFlags()
	assert.Equal(t, 1, exitStatus(err))

	_, err = parseTestFlags("-h")
	assert.Equal(t, flag.ErrHelp, err)
	assert.Equal(t, 0, exitStatus(err))

	_, err = parseTestFlags("-version")
	assert.Equal(t, 0, exitStatus(err))

	_, err = parseTestFlags("pong.ch8")
	assert.Equal(t, 0, exitStatus(err))
}
