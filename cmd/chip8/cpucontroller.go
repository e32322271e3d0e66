package main

import (
	"time"

	"github.com/hexaflex/chip8/arch"
	"github.com/hexaflex/chip8/devices"
	"github.com/hexaflex/chip8/devices/clock"
	"github.com/hexaflex/chip8/devices/cpu"
)

// CPUController controls the execution of a CPU.
//
// Instructions run at the configured frequency and the timers tick at
// 60 Hz, both measured against the wall clock, from a single goroutine.
type CPUController struct {
	cpu        *cpu.CPU
	cycles     *clock.Clock     // Instruction clock.
	timers     *clock.Clock     // Delay and sound timer clock.
	now        func() time.Time // Time source.
	start      time.Time
	cycleCount uint64
	running    bool
}

// NewCPUController creates a new CPU controller executing frequency
// instructions per second.
func NewCPUController(frequency int, opts ...cpu.Option) *CPUController {
	c := &CPUController{
		cpu: cpu.New(opts...),
		// Allow catching up on a quarter second worth of work at most.
		cycles: clock.New(0x0005, frequency, frequency/4+1),
		timers: clock.New(0x0006, arch.TimerFrequency, arch.TimerFrequency/4),
		now:    time.Now,
	}

	c.Connect(c.cycles, c.timers)
	return c
}

// CPU returns the controlled cpu.
func (c *CPUController) CPU() *cpu.CPU {
	return c.cpu
}

// Connect attaches the given peripherals to the cpu.
func (c *CPUController) Connect(devices ...devices.Device) {
	for _, dev := range devices {
		c.cpu.Connect(dev)
	}
}

// Running returns true if the CPU is currently running.
func (c *CPUController) Running() bool {
	return c.running
}

// Frequency returns the measured instruction rate in herz.
func (c *CPUController) Frequency() float64 {
	if !c.running {
		return 0
	}

	elapsed := c.now().Sub(c.start).Seconds()
	if elapsed <= 0 {
		return 0
	}

	return float64(c.cycleCount) / elapsed
}

// ToggleRun starts or stops program execution.
func (c *CPUController) ToggleRun() {
	c.setRunning(!c.running)
}

// Start begins execution of the program.
func (c *CPUController) Start() {
	c.setRunning(true)
}

// Stop pauses execution of the program.
func (c *CPUController) Stop() {
	c.setRunning(false)
}

// Update runs all instructions and timer ticks that became due since
// the previous call. Nothing happens while execution is paused.
// A cpu error stops execution and is returned.
func (c *CPUController) Update() error {
	if !c.running {
		return nil
	}

	now := c.now()

	for n := c.cycles.Advance(now); n > 0; n-- {
		if err := c.Step(); err != nil {
			return err
		}
	}

	for n := c.timers.Advance(now); n > 0; n-- {
		c.cpu.Tick()
	}

	return nil
}

// Step performs a single execution step.
func (c *CPUController) Step() error {
	c.cycleCount++

	err := c.cpu.Step()
	if err != nil {
		c.setRunning(false)
	}

	return err
}

// Sounding returns true if the beeper should be on.
func (c *CPUController) Sounding() bool {
	return c.running && c.cpu.Sounding()
}

// Load loads the given program file and resets the cpu.
func (c *CPUController) Load(file string) error {
	return c.cpu.LoadFile(file)
}

// Reset restarts the loaded program.
func (c *CPUController) Reset() {
	c.cpu.Reset()
	c.setRunning(c.running)
}

// Startup initializes the cpu and connected peripherals.
func (c *CPUController) Startup() error {
	return c.cpu.Startup()
}

// Shutdown disposes of CPU and peripheral resources.
func (c *CPUController) Shutdown() error {
	return c.cpu.Shutdown()
}

// setRunning determines if the CPU is running or is paused.
func (c *CPUController) setRunning(v bool) {
	now := c.now()
	c.running = v
	c.start = now
	c.cycleCount = 0
	c.cycles.Reset(now)
	c.timers.Reset(now)
}
