package main

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrogolib/assert"
)

func TestDisassemble(t *testing.T) {
	program := []byte{
		0x00, 0xe0, // CLS
		0x6a, 0x02, // LD VA, $02
		0xa2, 0x2a, // LD I, $22A
		0xd0, 0x15, // DRW V0, V1, 5
		0x12, 0x08, // JP $208
		0xff, 0xff, // data
		0x42,
	}

	var buf bytes.Buffer
	assert.NoError(t, disassemble(&buf, program, 0x200))

	want := "" +
		"200  00E0  CLS\n" +
		"202  6A02  LD VA, $02\n" +
		"204  A22A  LD I, $22A\n" +
		"206  D015  DRW V0, V1, 5\n" +
		"208  1208  JP $208\n" +
		"20A  FFFF  DW $FFFF\n" +
		"20C  42    DB $42\n"

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("disassembly: (-want, +got)\n%s", diff)
	}
}

func TestDisassembleEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, disassemble(&buf, nil, 0x200))
	assert.Equal(t, "", buf.String())
}
