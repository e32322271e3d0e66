package cpu

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"

	"github.com/hexaflex/chip8/arch"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		size int
		want error
	}{
		{"empty", 0, nil},
		{"small", 10, nil},
		{"largest", arch.MaxProgramSize, nil},
		{"too large", arch.MaxProgramSize + 1, ErrRomTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rom := bytes.Repeat([]byte{0xa5}, tt.size)

			c := New()
			err := c.Load(bytes.NewReader(rom))

			if tt.want != nil {
				assert.Equal(t, tt.want, errors.Cause(err))
				assert.Equal(t, 0, len(c.Program()))
				expectMem(t, c, arch.ProgramStart, 0)
				return
			}

			assert.NoError(t, err)
			if diff := cmp.Diff(rom, c.Memory[arch.ProgramStart:arch.ProgramStart+tt.size]); diff != "" {
				t.Errorf("program: (-want, +got)\n%s", diff)
			}
			expectPC(t, c, arch.ProgramStart)
		})
	}
}

func TestLoadUnreadable(t *testing.T) {
	c := New()
	err := c.Load(iotest.ErrReader(errors.New("disk on fire")))
	assert.Equal(t, ErrRomUnreadable, errors.Cause(err))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "test.ch8")
	assert.NoError(t, os.WriteFile(file, []byte{0x12, 0x00}, 0644))

	c := New()
	assert.NoError(t, c.LoadFile(file))
	assert.Equal(t, uint16(0x1200), c.Memory.U16(arch.ProgramStart))

	err := c.LoadFile(filepath.Join(dir, "missing.ch8"))
	assert.Equal(t, ErrRomUnreadable, errors.Cause(err))
}

func TestResetKeepsProgram(t *testing.T) {
	//   LD V1, $42
	//   LD I, $202
	//   LD [I], V1
	ct := newCodeTest()
	ct.emit(0x6142, 0xa202, 0xf155)

	c := ct.run(t, 3)
	expectMem(t, c, 0x202, 0x00)
	expectMem(t, c, 0x203, 0x42)

	c.Reset()
	expectPC(t, c, arch.ProgramStart)
	expectV(t, c, 1, 0)
	expectMem(t, c, 0x202, 0xa2)
	expectMem(t, c, 0x203, 0x02)
}
