package cpu

import "github.com/hexaflex/chip8/arch"

// Memory defines the system's memory bank.
// Every address is masked to 12 bits before access, so no
// address computed by a program can fall outside the bank.
type Memory [arch.MemorySize]byte

// U8 returns the byte at the given address.
func (m *Memory) U8(addr int) byte {
	return m[addr&arch.AddressMask]
}

// SetU8 sets the byte at the given address.
func (m *Memory) SetU8(addr int, value byte) {
	m[addr&arch.AddressMask] = value
}

// U16 returns the big-endian 16-bit value at the given address.
func (m *Memory) U16(addr int) uint16 {
	return uint16(m.U8(addr))<<8 | uint16(m.U8(addr+1))
}

// SetU16 sets the big-endian 16-bit value at the given address.
func (m *Memory) SetU16(addr int, value uint16) {
	m.SetU8(addr, byte(value>>8))
	m.SetU8(addr+1, byte(value))
}

// Write writes len(p) bytes from p into memory, starting at the given address.
// Writes past the end of memory wrap around to address 0.
func (m *Memory) Write(addr int, p []byte) {
	for i, b := range p {
		m.SetU8(addr+i, b)
	}
}

// Read reads len(p) bytes from memory into p, starting at the given address.
// Reads past the end of memory wrap around to address 0.
func (m *Memory) Read(addr int, p []byte) {
	for i := range p {
		p[i] = m.U8(addr + i)
	}
}
