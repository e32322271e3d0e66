// Package arch defines the CHIP-8 instruction set along with
// the machine's fixed dimensions and some related helper functions.
package arch

// Machine dimensions.
const (
	MemorySize     = 0x1000                    // Addressable memory in bytes.
	AddressMask    = MemorySize - 1            // Mask applied to every memory address.
	ProgramStart   = 0x200                     // Load and entry address for programs.
	MaxProgramSize = MemorySize - ProgramStart // Largest program image that fits in memory.
	StackSize      = 16                        // Number of return addresses the stack can hold.
	RegisterCount  = 16                        // Number of V registers.
	FlagRegister   = 0xf                       // VF holds carry, borrow and collision flags.
	KeyCount       = 16                        // Number of keys on the hex keypad.
	TimerFrequency = 60                        // Delay and sound timer rate in herz.
	InstrSize      = 2                         // Size of an instruction word in bytes.
)

// Display properties.
const (
	DisplayWidth  = 64                           // Display width in pixels.
	DisplayHeight = 32                           // Display height in pixels.
	DisplaySize   = DisplayWidth * DisplayHeight // Number of display cells.
	SpriteWidth   = 8                            // Sprite width in pixels; one byte per row.
)

// Font table layout.
const (
	FontBase      = 0x050                    // Address of the built-in hex font.
	FontGlyphSize = 5                        // Bytes per font glyph.
	FontSize      = FontGlyphSize * KeyCount // Size of the font table in bytes.
	FontEnd       = FontBase + FontSize      // First address past the font table.
)

// Font holds the 4x5 glyphs for the hex digits 0-F.
var Font = [FontSize]byte{
	0xf0, 0x90, 0x90, 0x90, 0xf0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xf0, 0x10, 0xf0, 0x80, 0xf0, // 2
	0xf0, 0x10, 0xf0, 0x10, 0xf0, // 3
	0x90, 0x90, 0xf0, 0x10, 0x10, // 4
	0xf0, 0x80, 0xf0, 0x10, 0xf0, // 5
	0xf0, 0x80, 0xf0, 0x90, 0xf0, // 6
	0xf0, 0x10, 0x20, 0x40, 0x40, // 7
	0xf0, 0x90, 0xf0, 0x90, 0xf0, // 8
	0xf0, 0x90, 0xf0, 0x10, 0xf0, // 9
	0xf0, 0x90, 0xf0, 0x90, 0x90, // A
	0xe0, 0x90, 0xe0, 0x90, 0xe0, // B
	0xf0, 0x80, 0x80, 0x80, 0xf0, // C
	0xe0, 0x90, 0x90, 0x90, 0xe0, // D
	0xf0, 0x80, 0xf0, 0x80, 0xf0, // E
	0xf0, 0x80, 0xf0, 0x80, 0x80, // F
}

// GlyphAddress returns the address of the font glyph for the given hex digit.
func GlyphAddress(digit int) int {
	return FontBase + (digit&0xf)*FontGlyphSize
}
