package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a straight (non-premultiplied) RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// Predefined colors used by the editor overlays and text commands.
var (
	ColorTransparent = Color{}
	ColorBlack       = RGB(0x00, 0x00, 0x00)
	ColorWhite       = RGB(0xff, 0xff, 0xff)
	ColorRed         = RGB(0xff, 0x00, 0x00)
	ColorGreen       = RGB(0x00, 0xff, 0x00)
	ColorBlue        = RGB(0x00, 0x00, 0xff)
	ColorYellow      = RGB(0xff, 0xff, 0x00)
	ColorCyan        = RGB(0x00, 0xff, 0xff)
	ColorMagenta     = RGB(0xff, 0x00, 0xff)
	ColorOrange      = RGB(0xff, 0x8c, 0x00)
	ColorGray        = RGB(0x80, 0x80, 0x80)
)

// Opaque reports whether the color has any coverage at all.
func (c Color) Opaque() bool {
	return c.A != 0
}

// Scale returns the color with its RGB channels multiplied by num/den.
// Alpha is preserved.
func (c Color) Scale(num, den int) Color {
	if den <= 0 {
		return c
	}
	ch := func(v uint8) uint8 {
		return uint8(Clamp(int(v)*num/den, 0, 0xff))
	}
	return Color{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}

// Hex formats the color as #rrggbb, the form lipgloss accepts.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses #rrggbb or #rrggbbaa. A missing alpha means opaque.
func ParseColor(s string) (Color, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, false
	}
	if len(s) == 6 {
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), true
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
}
