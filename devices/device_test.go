package devices

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"
)

var errBroken = errors.New("broken")

type stubDevice struct {
	id       ID
	fail     bool
	started  int
	shutdown int
	order    *[]ID
}

func (d *stubDevice) ID() ID { return d.id }

func (d *stubDevice) Startup() error {
	d.started++
	if d.fail {
		return errBroken
	}
	return nil
}

func (d *stubDevice) Shutdown() error {
	d.shutdown++
	if d.order != nil {
		*d.order = append(*d.order, d.id)
	}
	return nil
}

func TestMapConnect(t *testing.T) {
	var dm Map
	a := &stubDevice{id: NewID(Manufacturer, 1)}
	b := &stubDevice{id: NewID(Manufacturer, 2)}

	assert.Equal(t, true, dm.Connect(a))
	assert.Equal(t, true, dm.Connect(b))
	assert.Equal(t, false, dm.Connect(&stubDevice{id: a.id}))
	assert.Equal(t, 2, len(dm))
	assert.Equal(t, 1, dm.Find(b.id))
	assert.Equal(t, -1, dm.Find(NewID(Manufacturer, 3)))
}

func TestMapStartupErrors(t *testing.T) {
	var dm Map
	ok := &stubDevice{id: NewID(Manufacturer, 1)}
	bad := &stubDevice{id: NewID(Manufacturer, 2), fail: true}
	dm.Connect(ok)
	dm.Connect(bad)

	err := dm.Startup()
	if err == nil {
		t.Fatalf("expected startup error")
	}

	set, isSet := err.(ErrorSet)
	assert.Equal(t, true, isSet)
	assert.Equal(t, 1, set.Len())
	assert.Equal(t, true, errors.Is(err, errBroken))
	assert.Equal(t, 1, ok.started)
	assert.Equal(t, 1, bad.started)
}

func TestMapShutdownOrder(t *testing.T) {
	var order []ID
	var dm Map
	dm.Connect(&stubDevice{id: NewID(Manufacturer, 1), order: &order})
	dm.Connect(&stubDevice{id: NewID(Manufacturer, 2), order: &order})

	assert.NoError(t, dm.Shutdown())
	want := []ID{NewID(Manufacturer, 2), NewID(Manufacturer, 1)}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("shutdown order: (-want, +got)\n%s", diff)
	}
}

func TestID(t *testing.T) {
	id := NewID(0x00c8, 0x0102)
	assert.Equal(t, 0x00c8, id.Manufacturer())
	assert.Equal(t, 0x0102, id.Serial())
	assert.Equal(t, "00c8:0102", id.String())
}
