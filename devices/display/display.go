// Package display renders the monochrome frame buffer through OpenGL.
package display

import (
	"github.com/go-gl/gl/v4.2-core/gl"
	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/arch"
	"github.com/hexaflex/chip8/devices"
)

// Source provides frame buffer contents.
type Source interface {
	// ConsumeDirty returns true if the frame buffer changed since
	// the last call and lowers the flag.
	ConsumeDirty() bool

	// Snapshot writes one byte per pixel into dst.
	Snapshot(dst []byte)
}

// Device defines all internal doodads for the display.
type Device struct {
	source      Source
	pixels      [arch.DisplaySize]byte
	palette     [2]Color
	shader      uint32
	vao         uint32
	vbo         uint32
	texture     uint32
	initialized bool
}

var _ devices.Device = &Device{}

// New creates a display showing the contents of the given source
// with the default colors.
func New(source Source) *Device {
	return &Device{
		source:  source,
		palette: [2]Color{DefaultBackground, DefaultForeground},
	}
}

// SetColors sets the colors of unlit and lit pixels.
func (d *Device) SetColors(background, foreground Color) {
	d.palette = [2]Color{background, foreground}
	if d.initialized {
		d.uploadPalette()
	}
}

// ID returns the device identifier.
func (d *Device) ID() devices.ID {
	return devices.NewID(devices.Manufacturer, 0x0002)
}

// Startup initializes device resources.
// It requires a current OpenGL context.
func (d *Device) Startup() error {
	var err error

	d.shader, err = compileProgram(vertex, fragment)
	if err != nil {
		return errors.Wrapf(err, "failed to compile shaders")
	}

	gl.UseProgram(d.shader)

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	vertAttrib := uint32(gl.GetAttribLocation(d.shader, glStr("vertPos")))
	texCoordAttrib := uint32(gl.GetAttribLocation(d.shader, glStr("vertTexCoord")))

	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(0))

	gl.EnableVertexAttribArray(texCoordAttrib)
	gl.VertexAttribPointer(texCoordAttrib, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(3*4))

	// Rows of the texture are one byte wide per pixel.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	d.texture = makeTexture()

	d.initialized = true
	d.uploadPalette()
	d.upload()
	return nil
}

// Shutdown clears up device resources.
func (d *Device) Shutdown() error {
	if !d.initialized {
		return nil
	}

	d.initialized = false
	gl.DeleteTextures(1, &d.texture)
	gl.DeleteBuffers(1, &d.vbo)
	gl.DeleteVertexArrays(1, &d.vao)
	gl.DeleteProgram(d.shader)
	return nil
}

// Draw renders the display contents. The texture is only refreshed
// when the source reports a change.
func (d *Device) Draw() {
	if !d.initialized {
		return
	}

	if d.source.ConsumeDirty() {
		d.upload()
	}

	gl.UseProgram(d.shader)
	gl.BindVertexArray(d.vao)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, d.texture)

	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// upload copies the current frame buffer into the texture.
func (d *Device) upload() {
	d.source.Snapshot(d.pixels[:])
	uploadTexture(d.texture, gl.R8, arch.DisplayWidth, arch.DisplayHeight, gl.RED, gl.UNSIGNED_BYTE, d.pixels[:])
}

func (d *Device) uploadPalette() {
	gl.UseProgram(d.shader)
	palette := gl.GetUniformLocation(d.shader, glStr("palette"))
	gl.Uniform4fv(palette, 2, &d.palette[0][0])
}

var quadVertices = []float32{
	//  X, Y, Z, U, V
	-1.0, -1.0, 0.0, 0.0, 1.0,
	1.0, -1.0, 0.0, 1.0, 1.0,
	-1.0, 1.0, 0.0, 0.0, 0.0,
	1.0, -1.0, 0.0, 1.0, 1.0,
	1.0, 1.0, 0.0, 1.0, 0.0,
	-1.0, 1.0, 0.0, 0.0, 0.0,
}
