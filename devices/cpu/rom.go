package cpu

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/arch"
)

// Load reads a program image from r, copies it into memory at the
// program start address and resets the machine. Nothing is loaded
// if the image is unreadable or does not fit.
func (c *CPU) Load(r io.Reader) error {
	program, err := io.ReadAll(io.LimitReader(r, arch.MaxProgramSize+1))
	if err != nil {
		return errors.Wrapf(ErrRomUnreadable, "%v", err)
	}

	if len(program) > arch.MaxProgramSize {
		return errors.Wrapf(ErrRomTooLarge, "more than %d bytes", arch.MaxProgramSize)
	}

	c.program = program
	c.Reset()
	return nil
}

// LoadFile loads the program image stored in the given file.
func (c *CPU) LoadFile(file string) error {
	fd, err := os.Open(file)
	if err != nil {
		return errors.Wrapf(ErrRomUnreadable, "%v", err)
	}

	defer fd.Close()

	return errors.Wrapf(c.Load(fd), "%s", file)
}

// Program returns the currently loaded program image.
func (c *CPU) Program() []byte {
	return c.program
}
