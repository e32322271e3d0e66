package cpu

import "github.com/hexaflex/chip8/arch"

// Instruction defines decoded instruction data.
type Instruction struct {
	arch.Instruction
	IP     int         // Instruction address.
	Opcode arch.Opcode // Operation encoded by the instruction word.
}

// Decode fetches and decodes the instruction at the given address.
func (i *Instruction) Decode(m *Memory, addr int) {
	i.IP = addr & arch.AddressMask
	i.Instruction = arch.Decode(m.U16(i.IP))
	i.Opcode = arch.Lookup(i.Word)
}

// String returns the disassembled instruction.
func (i *Instruction) String() string {
	return arch.Disassemble(i.Word)
}
