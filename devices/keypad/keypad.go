// Package keypad maps keyboard and gamepad input onto the hex keypad.
package keypad

import (
	"log"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hexaflex/chip8/arch"
	"github.com/hexaflex/chip8/devices"
)

// KeySetter receives keypad state changes.
type KeySetter interface {
	SetKey(index int, pressed bool) error
}

// keyboard maps the left hand block of a QWERTY keyboard onto the
// keypad in its original layout:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
var keyboard = map[glfw.Key]int{
	glfw.Key1: 0x1, glfw.Key2: 0x2, glfw.Key3: 0x3, glfw.Key4: 0xc,
	glfw.KeyQ: 0x4, glfw.KeyW: 0x5, glfw.KeyE: 0x6, glfw.KeyR: 0xd,
	glfw.KeyA: 0x7, glfw.KeyS: 0x8, glfw.KeyD: 0x9, glfw.KeyF: 0xe,
	glfw.KeyZ: 0xa, glfw.KeyX: 0x0, glfw.KeyC: 0xb, glfw.KeyV: 0xf,
}

// gamepad maps gamepad buttons onto the keypad. The directional pad
// covers 2, 4, 6 and 8, which most programs use for movement.
var gamepad = map[glfw.GamepadButton]int{
	glfw.ButtonDpadUp:      0x2,
	glfw.ButtonDpadLeft:    0x4,
	glfw.ButtonDpadRight:   0x6,
	glfw.ButtonDpadDown:    0x8,
	glfw.ButtonA:           0x5,
	glfw.ButtonB:           0x0,
	glfw.ButtonX:           0x7,
	glfw.ButtonY:           0x9,
	glfw.ButtonLeftBumper:  0x1,
	glfw.ButtonRightBumper: 0x3,
	glfw.ButtonBack:        0xa,
	glfw.ButtonStart:       0xb,
	glfw.ButtonLeftThumb:   0xc,
	glfw.ButtonRightThumb:  0xd,
}

// KeyIndex returns the keypad index for the given keyboard key.
func KeyIndex(key glfw.Key) (int, bool) {
	index, ok := keyboard[key]
	return index, ok
}

// ButtonIndex returns the keypad index for the given gamepad button.
func ButtonIndex(btn glfw.GamepadButton) (int, bool) {
	index, ok := gamepad[btn]
	return index, ok
}

// Device combines keyboard and gamepad state into keypad state.
// A keypad key is down while either of its sources holds it down.
type Device struct {
	target      KeySetter
	joy         glfw.Joystick
	keys        [arch.KeyCount]bool
	buttons     [arch.KeyCount]bool
	initialized bool
}

var _ devices.Device = &Device{}

// New creates a keypad which reports to the given target.
func New(target KeySetter) *Device {
	return &Device{target: target}
}

// ID returns the device id.
func (d *Device) ID() devices.ID {
	return devices.NewID(devices.Manufacturer, 0x0003)
}

// Startup detects any connected gamepad.
func (d *Device) Startup() error {
	glfw.SetJoystickCallback(d.configure)

	for joy := glfw.Joystick1; joy <= glfw.JoystickLast; joy++ {
		if joy.Present() && joy.IsGamepad() {
			d.configure(joy, glfw.Connected)
			break
		}
	}

	return nil
}

// Shutdown clears up device resources.
func (d *Device) Shutdown() error {
	glfw.SetJoystickCallback(nil)
	d.Release()
	return nil
}

// KeyCallback handles a keyboard event. It returns false if the key
// is not mapped to the keypad.
func (d *Device) KeyCallback(key glfw.Key, action glfw.Action) bool {
	index, ok := KeyIndex(key)
	if !ok {
		return false
	}

	switch action {
	case glfw.Press:
		d.keys[index] = true
	case glfw.Release:
		d.keys[index] = false
	default:
		return true
	}

	d.report(index)
	return true
}

// Update polls the gamepad, if one is connected.
func (d *Device) Update() {
	if !d.initialized {
		return
	}

	state := d.joy.GetGamepadState()
	if state == nil {
		return
	}

	for btn, action := range state.Buttons {
		d.SetButton(glfw.GamepadButton(btn), action == glfw.Press)
	}
}

// SetButton sets the state of a gamepad button.
func (d *Device) SetButton(btn glfw.GamepadButton, pressed bool) {
	index, ok := ButtonIndex(btn)
	if !ok || d.buttons[index] == pressed {
		return
	}

	d.buttons[index] = pressed
	d.report(index)
}

// Release lets go of every key.
func (d *Device) Release() {
	for index := range d.keys {
		d.keys[index] = false
		d.buttons[index] = false
		d.report(index)
	}
}

// report sends the combined state of the given keypad key to the target.
func (d *Device) report(index int) {
	if d.target == nil {
		return
	}

	if err := d.target.SetKey(index, d.keys[index] || d.buttons[index]); err != nil {
		log.Println(d.ID(), err)
	}
}

// configure is called whenever a joystick is connected or disconnected from the system.
func (d *Device) configure(joy glfw.Joystick, event glfw.PeripheralEvent) {
	d.initialized = event == glfw.Connected && joy.IsGamepad()
	d.joy = joy

	if d.initialized {
		log.Println(d.ID(), "gamepad connected:", joy.GetGamepadName())
	} else {
		log.Println(d.ID(), "gamepad disconnected")
	}

	for index := range d.buttons {
		if d.buttons[index] {
			d.buttons[index] = false
			d.report(index)
		}
	}
}
