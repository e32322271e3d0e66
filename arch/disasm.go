package arch

import "fmt"

// Disassemble returns the assembler text for the given instruction word.
// Unknown words are rendered as a data directive.
func Disassemble(word uint16) string {
	i := Decode(word)
	op := Lookup(word)
	name := op.String()

	switch op {
	case CLS, RET:
		return name
	case JP, CALL:
		return fmt.Sprintf("%s $%03X", name, i.NNN)
	case JPV0:
		return fmt.Sprintf("%s V0, $%03X", name, i.NNN)
	case SEVB, SNEVB, LDVB, ADDVB, RND:
		return fmt.Sprintf("%s V%X, $%02X", name, i.X, i.NN)
	case SEVV, SNEVV, LDVV, OR, AND, XOR, ADDVV, SUB, SHR, SUBN, SHL:
		return fmt.Sprintf("%s V%X, V%X", name, i.X, i.Y)
	case LDI:
		return fmt.Sprintf("%s I, $%03X", name, i.NNN)
	case DRW:
		return fmt.Sprintf("%s V%X, V%X, %d", name, i.X, i.Y, i.N)
	case SKP, SKNP:
		return fmt.Sprintf("%s V%X", name, i.X)
	case LDVDT:
		return fmt.Sprintf("%s V%X, DT", name, i.X)
	case LDVK:
		return fmt.Sprintf("%s V%X, K", name, i.X)
	case LDDTV:
		return fmt.Sprintf("%s DT, V%X", name, i.X)
	case LDSTV:
		return fmt.Sprintf("%s ST, V%X", name, i.X)
	case ADDIV:
		return fmt.Sprintf("%s I, V%X", name, i.X)
	case LDFV:
		return fmt.Sprintf("%s F, V%X", name, i.X)
	case LDBV:
		return fmt.Sprintf("%s B, V%X", name, i.X)
	case LDIV:
		return fmt.Sprintf("%s [I], V%X", name, i.X)
	case LDVI:
		return fmt.Sprintf("%s V%X, [I]", name, i.X)
	}

	return fmt.Sprintf("DW $%04X", word)
}
