package cpu

import (
	"fmt"

	"github.com/pkg/errors"
)

// Known error conditions.
var (
	ErrRomTooLarge    = errors.New("program does not fit in memory")
	ErrRomUnreadable  = errors.New("program can not be read")
	ErrStackOverflow  = errors.New("stack overflow")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrUnknownOpcode  = errors.New("unknown opcode")
	ErrInvalidKey     = errors.New("invalid key index")
)

// Error defines a runtime error raised by a specific instruction.
type Error struct {
	Instruction
	Err error
}

// NewError creates a new error for the given instruction.
func NewError(instr Instruction, err error) *Error {
	return &Error{
		Instruction: instr,
		Err:         err,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%03x: %04x: %v", e.IP, e.Word, e.Err)
}

// Cause returns the underlying error condition.
func (e *Error) Cause() error {
	return e.Err
}

// Unwrap returns the underlying error condition.
func (e *Error) Unwrap() error {
	return e.Err
}
