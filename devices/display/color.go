package display

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Color defines an RGBA color with components in the range [0, 1].
type Color [4]float32

// Default display colors.
var (
	DefaultBackground = Color{0, 0, 0, 1}
	DefaultForeground = Color{1, 1, 1, 1}
)

// ErrInvalidColor is returned for malformed color strings.
var ErrInvalidColor = errors.New("invalid color")

// ParseColor parses a color in the form "rrggbb" or "#rrggbb".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, errors.Wrapf(ErrInvalidColor, "%q", s)
	}

	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, errors.Wrapf(ErrInvalidColor, "%q", s)
	}

	return Color{
		float32((n>>16)&0xff) / 255,
		float32((n>>8)&0xff) / 255,
		float32(n&0xff) / 255,
		1,
	}, nil
}

// String returns the color in the form "#rrggbb".
func (c Color) String() string {
	var sb strings.Builder
	sb.WriteByte('#')
	for _, v := range c[:3] {
		n := strconv.FormatUint(uint64(v*255+0.5)&0xff, 16)
		if len(n) < 2 {
			sb.WriteByte('0')
		}
		sb.WriteString(n)
	}
	return sb.String()
}
