// Package beeper implements the sound timer's buzzer.
package beeper

import (
	"log"

	"github.com/ebitengine/oto/v3"
	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/devices"
)

// Output properties.
const (
	SampleRate = 44100 // Samples per second.
	Frequency  = 440   // Tone frequency in herz.
	Amplitude  = 0.25  // Peak sample value.
)

// Device plays a fixed tone while switched on.
type Device struct {
	tone   *Tone
	ctx    *oto.Context
	player *oto.Player
	muted  bool
}

var _ devices.Device = &Device{}

// New creates a new beeper. A muted beeper never opens an audio device.
func New(muted bool) *Device {
	return &Device{
		tone:  NewTone(Frequency, SampleRate, Amplitude),
		muted: muted,
	}
}

// ID returns the device id.
func (d *Device) ID() devices.ID {
	return devices.NewID(devices.Manufacturer, 0x0004)
}

// Startup opens the audio output and starts streaming the tone.
func (d *Device) Startup() error {
	if d.muted {
		log.Println(d.ID(), "muted")
		return nil
	}

	if d.ctx == nil {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: 1,
			Format:       oto.FormatFloat32LE,
		})
		if err != nil {
			return errors.Wrapf(err, "failed to open audio output")
		}
		<-ready
		d.ctx = ctx
	}

	d.player = d.ctx.NewPlayer(d.tone)
	d.player.Play()
	return nil
}

// Shutdown stops the audio stream.
func (d *Device) Shutdown() error {
	d.tone.Set(false)

	if d.player == nil {
		return nil
	}

	err := d.player.Close()
	d.player = nil
	return errors.Wrapf(err, "failed to close audio player")
}

// Set switches the tone on or off.
func (d *Device) Set(on bool) {
	d.tone.Set(on)
}
