package arch

// Opcode identifies a single operation of the instruction set.
type Opcode int

// Known opcodes. Comments list the encoding.
const (
	Unknown Opcode = iota // Any word not listed below.

	CLS   // 00E0
	RET   // 00EE
	JP    // 1NNN
	CALL  // 2NNN
	SEVB  // 3XNN
	SNEVB // 4XNN
	SEVV  // 5XY0
	LDVB  // 6XNN
	ADDVB // 7XNN

	LDVV  // 8XY0
	OR    // 8XY1
	AND   // 8XY2
	XOR   // 8XY3
	ADDVV // 8XY4
	SUB   // 8XY5
	SHR   // 8XY6
	SUBN  // 8XY7
	SHL   // 8XYE

	SNEVV // 9XY0
	LDI   // ANNN
	JPV0  // BNNN
	RND   // CXNN
	DRW   // DXYN
	SKP   // EX9E
	SKNP  // EXA1

	LDVDT // FX07
	LDVK  // FX0A
	LDDTV // FX15
	LDSTV // FX18
	ADDIV // FX1E
	LDFV  // FX29
	LDBV  // FX33
	LDIV  // FX55
	LDVI  // FX65

	opcodeCount
)

// Lookup returns the opcode for the given instruction word.
// Returns Unknown if the word does not encode a known instruction.
func Lookup(word uint16) Opcode {
	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00e0:
			return CLS
		case 0x00ee:
			return RET
		}
		return Unknown
	case 0x1:
		return JP
	case 0x2:
		return CALL
	case 0x3:
		return SEVB
	case 0x4:
		return SNEVB
	case 0x5:
		if word&0xf == 0 {
			return SEVV
		}
		return Unknown
	case 0x6:
		return LDVB
	case 0x7:
		return ADDVB
	case 0x8:
		return lookupALU(word & 0xf)
	case 0x9:
		if word&0xf == 0 {
			return SNEVV
		}
		return Unknown
	case 0xa:
		return LDI
	case 0xb:
		return JPV0
	case 0xc:
		return RND
	case 0xd:
		return DRW
	case 0xe:
		switch word & 0xff {
		case 0x9e:
			return SKP
		case 0xa1:
			return SKNP
		}
		return Unknown
	case 0xf:
		return lookupMisc(word & 0xff)
	}
	return Unknown
}

// lookupALU resolves the 8XYN group by its lowest nibble.
func lookupALU(n uint16) Opcode {
	switch n {
	case 0x0:
		return LDVV
	case 0x1:
		return OR
	case 0x2:
		return AND
	case 0x3:
		return XOR
	case 0x4:
		return ADDVV
	case 0x5:
		return SUB
	case 0x6:
		return SHR
	case 0x7:
		return SUBN
	case 0xe:
		return SHL
	}
	return Unknown
}

// lookupMisc resolves the FXNN group by its lowest byte.
func lookupMisc(nn uint16) Opcode {
	switch nn {
	case 0x07:
		return LDVDT
	case 0x0a:
		return LDVK
	case 0x15:
		return LDDTV
	case 0x18:
		return LDSTV
	case 0x1e:
		return ADDIV
	case 0x29:
		return LDFV
	case 0x33:
		return LDBV
	case 0x55:
		return LDIV
	case 0x65:
		return LDVI
	}
	return Unknown
}

// Name returns the assembler mnemonic for the given opcode.
// Returns false if the opcode is not recognized.
func Name(op Opcode) (string, bool) {
	switch op {
	case CLS:
		return "CLS", true
	case RET:
		return "RET", true
	case JP, JPV0:
		return "JP", true
	case CALL:
		return "CALL", true
	case SEVB, SEVV:
		return "SE", true
	case SNEVB, SNEVV:
		return "SNE", true
	case LDVB, LDVV, LDI, LDVDT, LDVK, LDDTV, LDSTV, LDFV, LDBV, LDIV, LDVI:
		return "LD", true
	case ADDVB, ADDVV, ADDIV:
		return "ADD", true
	case OR:
		return "OR", true
	case AND:
		return "AND", true
	case XOR:
		return "XOR", true
	case SUB:
		return "SUB", true
	case SHR:
		return "SHR", true
	case SUBN:
		return "SUBN", true
	case SHL:
		return "SHL", true
	case RND:
		return "RND", true
	case DRW:
		return "DRW", true
	case SKP:
		return "SKP", true
	case SKNP:
		return "SKNP", true
	}
	return "", false
}

// String returns the mnemonic, or "???" for unknown opcodes.
func (op Opcode) String() string {
	if name, ok := Name(op); ok {
		return name
	}
	return "???"
}
