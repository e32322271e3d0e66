package display

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		err  error
	}{
		{"#000000", Color{0, 0, 0, 1}, nil},
		{"ffffff", Color{1, 1, 1, 1}, nil},
		{"#ff0000", Color{1, 0, 0, 1}, nil},
		{"#00ff00", Color{0, 1, 0, 1}, nil},
		{"#fff", Color{}, ErrInvalidColor},
		{"#gg0000", Color{}, ErrInvalidColor},
		{"", Color{}, ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.err != nil {
				assert.Equal(t, tt.err, errors.Cause(err))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorString(t *testing.T) {
	for _, s := range []string{"#000000", "#ffffff", "#33ff66", "#0a0b0c"} {
		c, err := ParseColor(s)
		assert.NoError(t, err)
		assert.Equal(t, s, c.String())
	}
}
