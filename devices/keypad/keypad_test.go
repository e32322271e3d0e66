package keypad

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/retroenv/retrogolib/assert"

	"github.com/hexaflex/chip8/arch"
)

type keys [arch.KeyCount]bool

func (k *keys) SetKey(index int, pressed bool) error {
	k[index] = pressed
	return nil
}

func TestKeyIndex(t *testing.T) {
	layout := []struct {
		key   glfw.Key
		index int
	}{
		{glfw.Key1, 0x1}, {glfw.Key2, 0x2}, {glfw.Key3, 0x3}, {glfw.Key4, 0xc},
		{glfw.KeyQ, 0x4}, {glfw.KeyW, 0x5}, {glfw.KeyE, 0x6}, {glfw.KeyR, 0xd},
		{glfw.KeyA, 0x7}, {glfw.KeyS, 0x8}, {glfw.KeyD, 0x9}, {glfw.KeyF, 0xe},
		{glfw.KeyZ, 0xa}, {glfw.KeyX, 0x0}, {glfw.KeyC, 0xb}, {glfw.KeyV, 0xf},
	}

	var seen keys
	for _, l := range layout {
		index, ok := KeyIndex(l.key)
		assert.Equal(t, true, ok)
		assert.Equal(t, l.index, index)
		seen[index] = true
	}

	for index, ok := range seen {
		if !ok {
			t.Errorf("keypad key %X has no keyboard key", index)
		}
	}

	_, ok := KeyIndex(glfw.KeyEscape)
	assert.Equal(t, false, ok)
}

func TestButtonIndexUnique(t *testing.T) {
	var seen keys
	for btn := glfw.ButtonA; btn <= glfw.ButtonLast; btn++ {
		index, ok := ButtonIndex(btn)
		if !ok {
			continue
		}
		if seen[index] {
			t.Errorf("keypad key %X mapped twice", index)
		}
		seen[index] = true
	}
}

func TestKeyCallback(t *testing.T) {
	var k keys
	d := New(&k)

	assert.Equal(t, true, d.KeyCallback(glfw.KeyW, glfw.Press))
	assert.Equal(t, true, k[0x5])

	assert.Equal(t, true, d.KeyCallback(glfw.KeyW, glfw.Repeat))
	assert.Equal(t, true, k[0x5])

	assert.Equal(t, true, d.KeyCallback(glfw.KeyW, glfw.Release))
	assert.Equal(t, false, k[0x5])

	assert.Equal(t, false, d.KeyCallback(glfw.KeyF1, glfw.Press))
}

func TestCombinedSources(t *testing.T) {
	var k keys
	d := New(&k)

	d.KeyCallback(glfw.KeyW, glfw.Press)
	d.SetButton(glfw.ButtonA, true)
	assert.Equal(t, true, k[0x5])

	// Still held down on the gamepad.
	d.KeyCallback(glfw.KeyW, glfw.Release)
	assert.Equal(t, true, k[0x5])

	d.SetButton(glfw.ButtonA, false)
	assert.Equal(t, false, k[0x5])
}

func TestRelease(t *testing.T) {
	var k keys
	d := New(&k)

	d.KeyCallback(glfw.Key1, glfw.Press)
	d.SetButton(glfw.ButtonDpadUp, true)
	d.Release()

	assert.Equal(t, keys{}, k)
}
