package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/devices/cpu"
	"github.com/hexaflex/chip8/devices/display"
)

// Config defines program configuration.
type Config struct {
	Program      string        // Path to the program file to load.
	ScaleFactor  int           // Amount by which each pixel is scaled.
	Fullscreen   bool          // Run in fullscreen?
	CPUFrequency int           // Instructions executed per second.
	Debug        bool          // Start with execution paused.
	PrintTrace   bool          // Print instruction trace data?
	Mute         bool          // Disable audio output.
	Seed         int64         // Random number seed; 0 picks one from the clock.
	Quirks       cpu.Quirks    // Interpreter behaviour variants.
	Background   display.Color // Color of unlit pixels.
	Foreground   display.Color // Color of lit pixels.
}

// colorFlag adapts a display.Color to flag.Value.
type colorFlag struct {
	c *display.Color
}

func (f colorFlag) String() string {
	if f.c == nil {
		return ""
	}
	return f.c.String()
}

func (f colorFlag) Set(s string) error {
	c, err := display.ParseColor(s)
	if err != nil {
		return err
	}
	*f.c = c
	return nil
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	c, err := parseFlags(fs, os.Args[1:])
	switch err {
	case nil:
		return c
	case errVersion:
		fmt.Println(Version())
	case errNoProgram:
		fs.Usage()
	}

	// The flag set has already reported parse errors along with the usage.
	os.Exit(exitStatus(err))
	return nil
}

// exitStatus returns the process exit status for an error returned by parseFlags.
func exitStatus(err error) int {
	switch err {
	case nil, errVersion, flag.ErrHelp:
		return 0
	}
	return 1
}

// errVersion is returned by parseFlags when version information is requested.
var errVersion = errors.New("version requested")

// errNoProgram is returned by parseFlags when no program file is named.
var errNoProgram = errors.New("missing program file")

// parseFlags fills a Config from the given arguments.
func parseFlags(fs *flag.FlagSet, args []string) (*Config, error) {
	var c Config
	c.ScaleFactor = 10
	c.CPUFrequency = 700
	c.Background = display.DefaultBackground
	c.Foreground = display.DefaultForeground

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "%s [options] <program file>\n", fs.Name())
		fs.PrintDefaults()
	}

	fs.IntVar(&c.ScaleFactor, "scale-factor", c.ScaleFactor, "Pixel scale factor for the display.")
	fs.BoolVar(&c.Fullscreen, "fullscreen", c.Fullscreen, "Run the display in fullscreen or windowed mode.")
	fs.IntVar(&c.CPUFrequency, "cpu-hz", c.CPUFrequency, "Number of instructions executed per second.")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Start with execution paused.")
	fs.BoolVar(&c.PrintTrace, "trace", c.PrintTrace, "Print instruction trace data.")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "Disable sound.")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "Seed for the random number generator. 0 seeds from the clock.")
	fs.Var(colorFlag{&c.Background}, "bg", "Color of unlit pixels, as rrggbb.")
	fs.Var(colorFlag{&c.Foreground}, "fg", "Color of lit pixels, as rrggbb.")

	fs.BoolVar(&c.Quirks.ShiftUsesVY, "quirk-shift-vy", false, "SHR and SHL shift VY into VX.")
	fs.BoolVar(&c.Quirks.WrapSprites, "quirk-wrap", false, "Sprites wrap around the display edges instead of clipping.")
	fs.BoolVar(&c.Quirks.LoadStoreIncrementsI, "quirk-load-store-i", false, "Register load and store advance I.")
	fs.BoolVar(&c.Quirks.JumpUsesVX, "quirk-jump-vx", false, "BXNN jumps to XNN + VX.")
	fs.BoolVar(&c.Quirks.LogicResetsVF, "quirk-logic-vf", false, "OR, AND and XOR reset VF.")

	version := fs.Bool("version", false, "Display version information.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *version {
		return nil, errVersion
	}

	if fs.NArg() == 0 {
		return nil, errNoProgram
	}

	if c.ScaleFactor < 1 {
		c.ScaleFactor = 1
	}

	if c.CPUFrequency < 1 {
		c.CPUFrequency = 1
	}

	c.Program = fs.Arg(0)
	return &c, nil
}
