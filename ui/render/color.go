package render

import (
	"fmt"
	"image/color"
)

// ParseHexColor parses "#rgb" and "#rrggbb" color strings as used in the
// configuration file.
func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("render: invalid color %q", s)
	}
	return c, err
}

// MustColor parses a hex color, falling back to the given default on error.
func MustColor(s string, fallback color.RGBA) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		return fallback
	}
	return c
}
