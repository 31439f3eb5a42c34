package fb

import (
	"fmt"
	"image/color"
	"strconv"
)

// Color is a straight (non-premultiplied) RGBA color. A is the opacity
// used when compositing: 255 overwrites, 0 leaves the pixel untouched.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Black = Color{0, 0, 0, 255}
	White = Color{255, 255, 255, 255}
	Green = Color{0, 255, 0, 255}

	// Transparent is fully transparent black.
	Transparent = Color{0, 0, 0, 0}
)

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color with the given alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// NRGBA converts c to the standard library color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Hex parses a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without '#'.
func Hex(hex string) (Color, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	switch len(s) {
	case 3, 4:
		expanded := make([]byte, 0, 8)
		for i := 0; i < len(s); i++ {
			expanded = append(expanded, s[i], s[i])
		}
		s = string(expanded)
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("fb: invalid hex color %q", hex)
	}
	if len(s) == 6 {
		s += "ff"
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("fb: invalid hex color %q: %w", hex, err)
	}
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
