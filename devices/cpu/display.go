package cpu

import (
	"strings"

	"github.com/hexaflex/chip8/arch"
)

// Display holds the monochrome frame buffer.
//
// The dirty flag is raised by every mutation and only lowered by
// the renderer through ConsumeDirty.
type Display struct {
	cells [arch.DisplaySize]bool
	dirty bool
}

// Clear turns every pixel off.
func (d *Display) Clear() {
	d.cells = [arch.DisplaySize]bool{}
	d.dirty = true
}

// Pixel returns the state of the pixel at x, y.
// Returns false for coordinates outside the display.
func (d *Display) Pixel(x, y int) bool {
	if x < 0 || x >= arch.DisplayWidth || y < 0 || y >= arch.DisplayHeight {
		return false
	}
	return d.cells[y*arch.DisplayWidth+x]
}

// Draw XORs the given sprite rows onto the display with its top left
// corner at x, y and returns true if any pixel that was on got turned off.
//
// The origin wraps around the display edges. Pixels extending past the
// right or bottom edge are clipped, unless wrap is set, in which case
// they continue on the opposite edge.
func (d *Display) Draw(sprite []byte, x, y int, wrap bool) bool {
	x %= arch.DisplayWidth
	y %= arch.DisplayHeight
	collision := false

	for row, bits := range sprite {
		py := y + row
		if py >= arch.DisplayHeight {
			if !wrap {
				break
			}
			py %= arch.DisplayHeight
		}

		for col := 0; col < arch.SpriteWidth; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}

			px := x + col
			if px >= arch.DisplayWidth {
				if !wrap {
					break
				}
				px %= arch.DisplayWidth
			}

			cell := &d.cells[py*arch.DisplayWidth+px]
			if *cell {
				collision = true
			}
			*cell = !*cell
		}
	}

	d.dirty = true
	return collision
}

// Dirty returns true if the display changed since the last ConsumeDirty call.
func (d *Display) Dirty() bool {
	return d.dirty
}

// ConsumeDirty returns the dirty flag and lowers it.
func (d *Display) ConsumeDirty() bool {
	dirty := d.dirty
	d.dirty = false
	return dirty
}

// Snapshot writes one byte per pixel into dst, row by row: 0xff for lit
// pixels, 0x00 otherwise. dst must hold at least arch.DisplaySize bytes.
func (d *Display) Snapshot(dst []byte) {
	for i, on := range d.cells {
		if on {
			dst[i] = 0xff
		} else {
			dst[i] = 0
		}
	}
}

// String renders the display as text, one line per row,
// with '#' for lit pixels and '.' otherwise.
func (d *Display) String() string {
	var sb strings.Builder
	sb.Grow((arch.DisplayWidth + 1) * arch.DisplayHeight)

	for y := 0; y < arch.DisplayHeight; y++ {
		for x := 0; x < arch.DisplayWidth; x++ {
			if d.cells[y*arch.DisplayWidth+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
