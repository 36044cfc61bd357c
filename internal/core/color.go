package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB color for a screen cell.
// The zero value is the terminal's default color.
type Color struct {
	R, G, B uint8
	set     bool
}

// RGB returns an explicit color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, set: true}
}

// ColorDefault leaves the cell to the terminal's own color.
var ColorDefault = Color{}

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return !c.set
}

// Lighten adds step to every channel, clamping at 255.
// The default color stays default.
func (c Color) Lighten(step int) Color {
	if !c.set {
		return c
	}
	return RGB(addChannel(c.R, step), addChannel(c.G, step), addChannel(c.B, step))
}

func addChannel(v uint8, step int) uint8 {
	return uint8(Clamp(int(v)+step, 0, 255))
}

// Hex returns the color as "#rrggbb", or "" for the default color.
func (c Color) Hex() string {
	if !c.set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	if !c.set {
		return "default"
	}
	return c.Hex()
}

// ParseColor converts "#rrggbb", "rrggbb" or "default" to a Color.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "default" {
		return ColorDefault, nil
	}
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return ColorDefault, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return ColorDefault, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
