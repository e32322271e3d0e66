package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/buildinfo"

	"github.com/hexaflex/chip8/arch"
)

// Set through linker flags by release builds.
var (
	version = "v1.0.0"
	commit  = ""
	date    = ""
)

// Config defines program configuration.
type Config struct {
	Input  string // Program file to disassemble.
	Output string // Path to store output in; stdout if empty.
	Origin int    // Load address of the first program byte.
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config
	c.Origin = arch.ProgramStart

	flag.Usage = func() {
		fmt.Printf("%s [options] <program file>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.StringVar(&c.Output, "out", c.Output, "Output file.")
	flag.IntVar(&c.Origin, "origin", c.Origin, "Load address of the program.")
	showVersion := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *showVersion {
		fmt.Println("hexaflex chip8-dis", buildinfo.Version(version, commit, date))
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	c.Input = flag.Arg(0)
	return &c
}
