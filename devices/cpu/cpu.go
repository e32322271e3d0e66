// Package cpu implements the CHIP-8 interpreter core.
package cpu

import (
	"log"
	"math/rand"
	"time"

	"github.com/hexaflex/chip8/arch"
	"github.com/hexaflex/chip8/devices"
)

// TraceFunc represents a callback handler for debug trace output.
// It is called with each instruction before it executes.
type TraceFunc func(*Instruction)

// State holds the complete machine state.
type State struct {
	Memory  Memory                   // System memory.
	Display Display                  // Frame buffer.
	V       [arch.RegisterCount]byte // General purpose registers V0-VF.
	Stack   [arch.StackSize]uint16   // Return addresses.
	Keys    [arch.KeyCount]bool      // Keypad state.
	I       uint16                   // Index register.
	PC      uint16                   // Program counter.
	SP      int                      // Number of return addresses on the stack.
	DT      byte                     // Delay timer.
	ST      byte                     // Sound timer.
}

// CPU implements the runtime.
type CPU struct {
	State
	devices devices.Map // Connected peripherals.
	trace   TraceFunc   // Handler for debug trace output.
	quirks  Quirks      // Behaviour selected at construction.
	rng     *rand.Rand  // Random number generator; seeded once.
	instr   Instruction // Decoded instruction data.
	program []byte      // Loaded program image, kept for Reset.
	err     error       // Fatal error that halted the cpu.
	unknown uint64      // Number of unknown opcodes encountered.
}

// Option configures a CPU at construction.
type Option func(*CPU)

// WithQuirks selects the given interpreter quirks.
func WithQuirks(q Quirks) Option {
	return func(c *CPU) { c.quirks = q }
}

// WithRand makes the RND instruction draw from the given source.
func WithRand(src rand.Source) Option {
	return func(c *CPU) { c.rng = rand.New(src) }
}

// WithTrace installs the given debug trace handler.
func WithTrace(trace TraceFunc) Option {
	return func(c *CPU) { c.trace = trace }
}

// New creates a new CPU with cleared state, the font loaded
// and the program counter at the program start address.
func New(opts ...Option) *CPU {
	c := &CPU{
		trace: func(*Instruction) { /* nop */ },
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.trace == nil {
		c.trace = func(*Instruction) { /* nop */ }
	}

	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	c.Reset()
	return c
}

// ID returns the cpu's device ID.
func (c *CPU) ID() devices.ID {
	return devices.NewID(devices.Manufacturer, 0x0001)
}

// Quirks returns the quirks the cpu was created with.
func (c *CPU) Quirks() Quirks {
	return c.quirks
}

// Connect connects the given hardware peripheral to the system.
// Returns false if the given device type is already connected.
func (c *CPU) Connect(dev devices.Device) bool {
	return c.devices.Connect(dev)
}

// Startup initializes connected peripherals.
func (c *CPU) Startup() error {
	return c.devices.Startup()
}

// Shutdown cleans up connected peripherals.
func (c *CPU) Shutdown() error {
	return c.devices.Shutdown()
}

// Reset re-initializes the machine state and reloads the current program.
// The keypad state is owned by the input devices and survives a reset.
// The random number generator is not reseeded.
func (c *CPU) Reset() {
	c.State = State{Keys: c.Keys}
	c.Memory.Write(arch.FontBase, arch.Font[:])
	c.Memory.Write(arch.ProgramStart, c.program)
	c.PC = arch.ProgramStart
	c.Display.Clear()
	c.err = nil
	c.unknown = 0
}

// Err returns the error that halted the cpu, if any.
func (c *CPU) Err() error {
	return c.err
}

// UnknownCount returns the number of unknown opcodes skipped since the last reset.
func (c *CPU) UnknownCount() uint64 {
	return c.unknown
}

// SetKey updates the state of the keypad key with the given index.
func (c *CPU) SetKey(index int, pressed bool) error {
	if index < 0 || index >= arch.KeyCount {
		return ErrInvalidKey
	}
	c.Keys[index] = pressed
	return nil
}

// Tick advances the delay and sound timers by one 60 Hz period.
func (c *CPU) Tick() {
	if c.DT > 0 {
		c.DT--
	}
	if c.ST > 0 {
		c.ST--
	}
}

// Sounding returns true while the sound timer is running.
func (c *CPU) Sounding() bool {
	return c.ST > 0
}

// Step performs a single execution step.
//
// Stack faults halt the cpu: the returned *Error is returned again by
// every following Step until Reset is called.
func (c *CPU) Step() error {
	if c.err != nil {
		return c.err
	}

	instr := &c.instr
	instr.Decode(&c.Memory, int(c.PC))
	c.trace(instr)

	if err := c.exec(instr); err != nil {
		c.err = NewError(*instr, err)
		return c.err
	}

	return nil
}

// exec executes the given instruction. Every case leaves the program
// counter at the next instruction to run.
func (c *CPU) exec(instr *Instruction) error {
	v := &c.V
	x, y := instr.X, instr.Y

	switch instr.Opcode {
	case arch.CLS:
		c.Display.Clear()
		c.next()

	case arch.RET:
		if c.SP == 0 {
			return ErrStackUnderflow
		}
		c.SP--
		c.jump(int(c.Stack[c.SP]) + arch.InstrSize)

	case arch.JP:
		c.jump(instr.NNN)

	case arch.CALL:
		if c.SP == arch.StackSize {
			return ErrStackOverflow
		}
		c.Stack[c.SP] = c.PC
		c.SP++
		c.jump(instr.NNN)

	case arch.SEVB:
		c.skipIf(v[x] == byte(instr.NN))
	case arch.SNEVB:
		c.skipIf(v[x] != byte(instr.NN))
	case arch.SEVV:
		c.skipIf(v[x] == v[y])
	case arch.SNEVV:
		c.skipIf(v[x] != v[y])

	case arch.LDVB:
		v[x] = byte(instr.NN)
		c.next()
	case arch.ADDVB:
		v[x] += byte(instr.NN)
		c.next()

	case arch.LDVV:
		v[x] = v[y]
		c.next()
	case arch.OR:
		v[x] |= v[y]
		c.logicFlag()
		c.next()
	case arch.AND:
		v[x] &= v[y]
		c.logicFlag()
		c.next()
	case arch.XOR:
		v[x] ^= v[y]
		c.logicFlag()
		c.next()

	case arch.ADDVV:
		sum := int(v[x]) + int(v[y])
		v[x] = byte(sum)
		v[arch.FlagRegister] = flag(sum > 0xff)
		c.next()
	case arch.SUB:
		a, b := v[x], v[y]
		v[x] = a - b
		v[arch.FlagRegister] = flag(a >= b)
		c.next()
	case arch.SUBN:
		a, b := v[x], v[y]
		v[x] = b - a
		v[arch.FlagRegister] = flag(b >= a)
		c.next()
	case arch.SHR:
		src := c.shiftSource(instr)
		v[x] = src >> 1
		v[arch.FlagRegister] = src & 1
		c.next()
	case arch.SHL:
		src := c.shiftSource(instr)
		v[x] = src << 1
		v[arch.FlagRegister] = src >> 7
		c.next()

	case arch.LDI:
		c.I = uint16(instr.NNN)
		c.next()
	case arch.JPV0:
		offset := v[0]
		if c.quirks.JumpUsesVX {
			offset = v[x]
		}
		c.jump(instr.NNN + int(offset))
	case arch.RND:
		v[x] = byte(c.rng.Intn(0x100)) & byte(instr.NN)
		c.next()
	case arch.DRW:
		c.draw(instr)
		c.next()

	case arch.SKP:
		c.skipIf(c.Keys[v[x]&0xf])
	case arch.SKNP:
		c.skipIf(!c.Keys[v[x]&0xf])

	case arch.LDVDT:
		v[x] = c.DT
		c.next()
	case arch.LDVK:
		for key, pressed := range c.Keys {
			if pressed {
				v[x] = byte(key)
				c.next()
				break
			}
		}
	case arch.LDDTV:
		c.DT = v[x]
		c.next()
	case arch.LDSTV:
		c.ST = v[x]
		c.next()
	case arch.ADDIV:
		c.I += uint16(v[x])
		c.next()
	case arch.LDFV:
		c.I = uint16(arch.GlyphAddress(int(v[x])))
		c.next()
	case arch.LDBV:
		n := v[x]
		c.Memory.SetU8(int(c.I), n/100)
		c.Memory.SetU8(int(c.I)+1, n/10%10)
		c.Memory.SetU8(int(c.I)+2, n%10)
		c.next()
	case arch.LDIV:
		c.Memory.Write(int(c.I), v[:x+1])
		c.transferFlag(x)
		c.next()
	case arch.LDVI:
		c.Memory.Read(int(c.I), v[:x+1])
		c.transferFlag(x)
		c.next()

	default:
		c.unknown++
		log.Println(c.ID(), NewError(*instr, ErrUnknownOpcode))
		c.next()
	}

	return nil
}

// draw blits the sprite at I onto the display and sets VF on collision.
func (c *CPU) draw(instr *Instruction) {
	var sprite [0xf]byte
	rows := sprite[:instr.N]
	c.Memory.Read(int(c.I), rows)

	x := int(c.V[instr.X])
	y := int(c.V[instr.Y])
	hit := c.Display.Draw(rows, x, y, c.quirks.WrapSprites)
	c.V[arch.FlagRegister] = flag(hit)
}

// shiftSource returns the register value shifted by SHR and SHL.
func (c *CPU) shiftSource(instr *Instruction) byte {
	if c.quirks.ShiftUsesVY {
		return c.V[instr.Y]
	}
	return c.V[instr.X]
}

// logicFlag applies the VF side effect of the bitwise operations.
func (c *CPU) logicFlag() {
	if c.quirks.LogicResetsVF {
		c.V[arch.FlagRegister] = 0
	}
}

// transferFlag applies the I side effect of register load and store.
func (c *CPU) transferFlag(x int) {
	if c.quirks.LoadStoreIncrementsI {
		c.I += uint16(x + 1)
	}
}

// next advances the program counter to the following instruction.
func (c *CPU) next() {
	c.jump(int(c.PC) + arch.InstrSize)
}

// skipIf advances the program counter past the following instruction
// if cond is true and to the following instruction otherwise.
func (c *CPU) skipIf(cond bool) {
	if cond {
		c.jump(int(c.PC) + 2*arch.InstrSize)
	} else {
		c.next()
	}
}

// jump sets the program counter, keeping it inside addressable memory.
func (c *CPU) jump(addr int) {
	c.PC = uint16(addr & arch.AddressMask)
}

func flag(v bool) byte {
	if v {
		return 1
	}
	return 0
}
