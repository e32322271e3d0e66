package cpu

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/hexaflex/chip8/devices"
)

type nopDevice struct {
	id devices.ID
}

func (d *nopDevice) ID() devices.ID  { return d.id }
func (d *nopDevice) Startup() error  { return nil }
func (d *nopDevice) Shutdown() error { return nil }

func TestStartupLogsOncePerDevice(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	c := New()
	c.Connect(&nopDevice{id: devices.NewID(devices.Manufacturer, 0x0010)})
	c.Connect(&nopDevice{id: devices.NewID(devices.Manufacturer, 0x0011)})

	assert.NoError(t, c.Startup())
	assert.Equal(t, 2, strings.Count(buf.String(), "startup"))
	assert.Equal(t, false, strings.Contains(buf.String(), c.ID().String()))

	buf.Reset()
	assert.NoError(t, c.Shutdown())
	assert.Equal(t, 2, strings.Count(buf.String(), "shutdown"))
	assert.Equal(t, false, strings.Contains(buf.String(), c.ID().String()))
}

func TestResetKeepsKeys(t *testing.T) {
	//   LD V1, $07
	ct := newCodeTest()
	ct.emit(0x6107)

	c := ct.run(t, 1)
	assert.NoError(t, c.SetKey(0x5, true))

	c.Reset()
	expectV(t, c, 1, 0)
	assert.Equal(t, true, c.Keys[0x5])
	assert.Equal(t, false, c.Keys[0x4])

	assert.NoError(t, c.Load(bytes.NewReader(ct.code)))
	assert.Equal(t, true, c.Keys[0x5])
}
