package cpu

// Quirks selects between behaviours on which historical
// interpreters disagree. The zero value selects the behaviour
// most programs expect.
type Quirks struct {
	ShiftUsesVY          bool // 8XY6 and 8XYE shift VY into VX instead of shifting VX in place.
	WrapSprites          bool // Sprite pixels past the display edge wrap instead of being clipped.
	LoadStoreIncrementsI bool // FX55 and FX65 leave I pointing past the last register transferred.
	JumpUsesVX           bool // BNNN jumps to NNN + VX instead of NNN + V0.
	LogicResetsVF        bool // 8XY1, 8XY2 and 8XY3 clear VF.
}

// Original returns the quirks of the COSMAC VIP interpreter.
func Original() Quirks {
	return Quirks{
		ShiftUsesVY:          true,
		LoadStoreIncrementsI: true,
		LogicResetsVF:        true,
	}
}
