// Package hue converts human-entered hex colours into the hue fraction the
// controller's SetHue command expects.
package hue

import (
	"errors"
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex marks input that is not a 3, 4, 6, or 8 digit hex colour.
var ErrInvalidHex = errors.New("invalid hex colour")

// FromHex parses a hex colour such as "#ff8800", "ff8800", or "#f80" and
// returns its HSV hue as a fraction in [0, 1). An alpha channel, if present,
// is ignored. Greys have no hue and map to 0.
func FromHex(input string) (float32, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(input), "#")
	switch len(digits) {
	case 3, 6:
	case 4, 8:
		digits = digits[:len(digits)*3/4]
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidHex, input)
	}
	if strings.Trim(digits, "0123456789abcdefABCDEF") != "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHex, input)
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidHex, input, err)
	}
	if c.R == c.G && c.G == c.B {
		return 0, nil
	}

	h, _, _ := c.Hsv()
	fraction := float32(math.Mod(h, 360) / 360)
	if fraction >= 1 || fraction < 0 {
		fraction = 0
	}
	return fraction, nil
}
