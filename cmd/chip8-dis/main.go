package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/arch"
)

func main() {
	config := parseArgs()

	program, err := readProgram(config.Input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	w, close := makeWriter(config)
	defer close()

	if err := disassemble(w, program, config.Origin); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// readProgram reads the program image in the given file.
func readProgram(file string) ([]byte, error) {
	program, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	if len(program) > arch.MaxProgramSize {
		return nil, errors.Errorf("%s: program exceeds %d bytes", file, arch.MaxProgramSize)
	}

	return program, nil
}

// disassemble writes one line per instruction word in program to w:
// the address, the raw word and its assembler text. A trailing odd
// byte is written as a data byte.
func disassemble(w io.Writer, program []byte, origin int) error {
	bw := bufio.NewWriter(w)

	for i := 0; i+1 < len(program); i += arch.InstrSize {
		word := uint16(program[i])<<8 | uint16(program[i+1])
		fmt.Fprintf(bw, "%03X  %04X  %s\n", (origin+i)&arch.AddressMask, word, arch.Disassemble(word))
	}

	if len(program)%arch.InstrSize != 0 {
		i := len(program) - 1
		fmt.Fprintf(bw, "%03X  %02X    DB $%02X\n", (origin+i)&arch.AddressMask, program[i], program[i])
	}

	return bw.Flush()
}

// makeWriter creates an output writer and a cleanup function for it.
func makeWriter(c *Config) (io.Writer, func()) {
	if c.Output == "" {
		return os.Stdout, func() {}
	}

	dir, _ := filepath.Split(c.Output)
	if dir != "" {
		if err := os.MkdirAll(dir, 0744); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	fd, err := os.Create(c.Output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return fd, func() { fd.Close() }
}
