package core

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a hex color string such as "#aa3f00". The empty string means
// "terminal default".
type Color string

// NoColor leaves the terminal's own color in place.
const NoColor Color = ""

// ParseColor validates a hex color.
func ParseColor(hex string) (Color, error) {
	if _, err := colorful.Hex(hex); err != nil {
		return NoColor, fmt.Errorf("core: invalid color %q: %w", hex, err)
	}
	return Color(hex), nil
}

// Blend mixes c over bg with the given opacity in [0, 1].
// Opacity 0 returns bg, opacity 1 returns c. Invalid colors fall back to the other side.
func Blend(c, bg Color, opacity float64) Color {
	opacity = ClampF(opacity, 0, 1)
	fg, errFG := colorful.Hex(string(c))
	back, errBG := colorful.Hex(string(bg))
	switch {
	case errFG != nil && errBG != nil:
		return NoColor
	case errFG != nil:
		return bg
	case errBG != nil:
		return c
	}
	return Color(back.BlendRgb(fg, opacity).Clamped().Hex())
}

// Luminance returns the perceived lightness of c in [0, 1], or 0 for invalid colors.
func Luminance(c Color) float64 {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return 0
	}
	l, _, _ := col.Lab()
	return ClampF(l, 0, 1)
}
