package chroma

import (
	"fmt"
	"math"
)

// SRGBColor is an sRGB color with channels normalized between 0 and 1.
// It is the hub representation of the conversion graph.
type SRGBColor struct {
	R, G, B float32
}

// NewSRGB creates a normalized sRGB color. Channels are expected in [0,1];
// out-of-range values propagate unchanged into any conversion.
func NewSRGB(r, g, b float32) SRGBColor {
	return SRGBColor{r, g, b}
}

// SRGB returns the color itself.
func (c SRGBColor) SRGB() SRGBColor { return c }

// SRGB24 quantizes to 8 bits per channel by truncation.
func (c SRGBColor) SRGB24() SRGB24Color {
	return SRGB24Color{quantize8(c.R), quantize8(c.G), quantize8(c.B)}
}

// LinRGB decodes the gamma-encoded channels into the linear color space.
func (c SRGBColor) LinRGB() LinRGBColor {
	return NewLinRGB(SRGBToLinear(c.R), SRGBToLinear(c.G), SRGBToLinear(c.B))
}

// HSV converts to the HSV representation using the standard 60°-per-sector
// piecewise formula.
func (c SRGBColor) HSV() HSVColor {
	maxc := max(c.R, c.G, c.B)
	minc := min(c.R, c.G, c.B)
	delta := maxc - minc

	value := maxc
	var saturation float32
	if maxc != 0 {
		saturation = delta / maxc
	}

	var hue float32
	switch {
	case delta == 0:
		// achromatic, hue is arbitrary
	case maxc == c.R:
		hue = 60 * float32(math.Mod(float64((c.G-c.B)/delta), 6))
	case maxc == c.G:
		hue = 60 * ((c.B-c.R)/delta + 2)
	default: // maxc == c.B
		hue = 60 * ((c.R-c.G)/delta + 4)
	}

	// NewHSV wraps a negative hue into [0, 360)
	return NewHSV(hue, saturation, value)
}

func (c SRGBColor) String() string {
	return fmt.Sprintf("%5.1f%%, %5.1f%%, %5.1f%%", c.R*100, c.G*100, c.B*100)
}

// SRGB24Color is a 24-bit sRGB color, the usual display and storage form.
type SRGB24Color struct {
	R, G, B uint8
}

// NewSRGB24 creates a 24-bit sRGB color.
func NewSRGB24(r, g, b uint8) SRGB24Color {
	return SRGB24Color{r, g, b}
}

// ParseHex parses a 6-digit hexadecimal color such as "80FF37" or
// "#80ff37". Anything but an optional leading '#' followed by exactly six
// characters of [0-9a-fA-F] is an error.
func ParseHex(s string) (SRGB24Color, error) {
	hex := s
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	if len(hex) != 6 {
		return SRGB24Color{}, fmt.Errorf("chroma: invalid hex color %q: want 6 hex digits", s)
	}
	var ch [6]uint8
	for i := 0; i < 6; i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return SRGB24Color{}, fmt.Errorf("chroma: invalid hex color %q: bad digit %q", s, hex[i])
		}
		ch[i] = d
	}
	return SRGB24Color{ch[0]<<4 | ch[1], ch[2]<<4 | ch[3], ch[4]<<4 | ch[5]}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// SRGB returns the normalized form of the color.
func (c SRGB24Color) SRGB() SRGBColor {
	return SRGBColor{float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0}
}

// SRGB24 returns the color itself.
func (c SRGB24Color) SRGB24() SRGB24Color { return c }

// Hex returns the color as an uppercase 6-digit hex string.
func (c SRGB24Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA implements the standard library's image/color.Color interface.
func (c SRGB24Color) RGBA() (r, g, b, a uint32) {
	return uint32(c.R) * 0x101, uint32(c.G) * 0x101, uint32(c.B) * 0x101, 0xFFFF
}

func (c SRGB24Color) String() string {
	return fmt.Sprintf("%3d, %3d, %3d", c.R, c.G, c.B)
}
