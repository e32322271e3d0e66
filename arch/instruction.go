package arch

// Instruction holds the operand fields of a decoded instruction word.
type Instruction struct {
	Word uint16 // Raw instruction word.
	Op   int    // Highest nibble; selects the instruction group.
	X    int    // Second nibble; usually a register index.
	Y    int    // Third nibble; usually a register index.
	N    int    // Lowest nibble.
	NN   int    // Lowest byte; an immediate value.
	NNN  int    // Lowest 12 bits; an address.
}

// Decode splits the given instruction word into its operand fields.
// Every word decodes to some field layout. Whether it is a valid
// instruction is decided by Lookup.
func Decode(word uint16) Instruction {
	return Instruction{
		Word: word,
		Op:   int(word>>12) & 0xf,
		X:    int(word>>8) & 0xf,
		Y:    int(word>>4) & 0xf,
		N:    int(word) & 0xf,
		NN:   int(word) & 0xff,
		NNN:  int(word) & 0xfff,
	}
}

// Opcode returns the operation the instruction encodes.
func (i Instruction) Opcode() Opcode {
	return Lookup(i.Word)
}

// Word builds an instruction word from its four nibbles.
func Word(op, x, y, n int) uint16 {
	return uint16(op&0xf)<<12 | uint16(x&0xf)<<8 | uint16(y&0xf)<<4 | uint16(n&0xf)
}
