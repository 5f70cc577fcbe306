package chroma

import "fmt"

// LinRGBColor is an RGB color with channels normalized between 0 and 1 in
// the linear color space, i.e. proportional to actual light intensity.
//
// Channels are clamped into [0,1] on construction: out-of-range values are
// an expected result of arithmetic on light, not a caller mistake, so they
// are corrected rather than rejected.
type LinRGBColor struct {
	r, g, b float32
}

// NewLinRGB creates a linear RGB color, clamping each channel into [0,1].
func NewLinRGB(r, g, b float32) LinRGBColor {
	return LinRGBColor{clamp01(r), clamp01(g), clamp01(b)}
}

// R returns the red channel.
func (c LinRGBColor) R() float32 { return c.r }

// G returns the green channel.
func (c LinRGBColor) G() float32 { return c.g }

// B returns the blue channel.
func (c LinRGBColor) B() float32 { return c.b }

// RGB returns all three channels.
func (c LinRGBColor) RGB() (r, g, b float32) { return c.r, c.g, c.b }

// SRGB gamma-encodes the channels into the sRGB color space.
func (c LinRGBColor) SRGB() SRGBColor {
	return SRGBColor{LinearToSRGB(c.r), LinearToSRGB(c.g), LinearToSRGB(c.b)}
}

// LinRGB returns the color itself.
func (c LinRGBColor) LinRGB() LinRGBColor { return c }

// LinRGB24 quantizes to 8 bits per channel by truncation.
func (c LinRGBColor) LinRGB24() LinRGB24Color {
	return LinRGB24Color{quantize8(c.r), quantize8(c.g), quantize8(c.b)}
}

// LinRGB48 quantizes to 16 bits per channel by truncation.
func (c LinRGBColor) LinRGB48() LinRGB48Color {
	return LinRGB48Color{quantize16(c.r), quantize16(c.g), quantize16(c.b)}
}

// Add returns the channel-wise sum. Light adds linearly, so this is a
// physical combination of two light sources; the result clamps at full
// intensity.
func (c LinRGBColor) Add(o LinRGBColor) LinRGBColor {
	return NewLinRGB(c.r+o.r, c.g+o.g, c.b+o.b)
}

// Sub returns the channel-wise difference, clamped at zero.
func (c LinRGBColor) Sub(o LinRGBColor) LinRGBColor {
	return NewLinRGB(c.r-o.r, c.g-o.g, c.b-o.b)
}

// Scale multiplies every channel by k.
func (c LinRGBColor) Scale(k float32) LinRGBColor {
	return NewLinRGB(c.r*k, c.g*k, c.b*k)
}

// Blend alpha-blends src over c: src·α + c·(1−α). Blending in linear space
// gives physically correct mixing, unlike blending gamma-encoded values.
func (c LinRGBColor) Blend(src LinRGBColor, alpha float32) LinRGBColor {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1 - alpha
	return NewLinRGB(
		src.r*alpha+c.r*inv,
		src.g*alpha+c.g*inv,
		src.b*alpha+c.b*inv,
	)
}

func (c LinRGBColor) String() string {
	return fmt.Sprintf("%5.1f%%, %5.1f%%, %5.1f%%", c.r*100, c.g*100, c.b*100)
}

// LinRGB24Color is a 24-bit RGB color in the linear color space.
type LinRGB24Color struct {
	R, G, B uint8
}

// NewLinRGB24 creates a 24-bit linear RGB color.
func NewLinRGB24(r, g, b uint8) LinRGB24Color {
	return LinRGB24Color{r, g, b}
}

// SRGB routes through the normalized linear form.
func (c LinRGB24Color) SRGB() SRGBColor { return c.LinRGB().SRGB() }

// LinRGB returns the normalized form of the color.
func (c LinRGB24Color) LinRGB() LinRGBColor {
	return NewLinRGB(float32(c.R)/255.0, float32(c.G)/255.0, float32(c.B)/255.0)
}

// LinRGB24 returns the color itself.
func (c LinRGB24Color) LinRGB24() LinRGB24Color { return c }

func (c LinRGB24Color) String() string {
	return fmt.Sprintf("%3d, %3d, %3d", c.R, c.G, c.B)
}

// LinRGB48Color is a 48-bit RGB color in the linear color space.
type LinRGB48Color struct {
	R, G, B uint16
}

// NewLinRGB48 creates a 48-bit linear RGB color.
func NewLinRGB48(r, g, b uint16) LinRGB48Color {
	return LinRGB48Color{r, g, b}
}

// SRGB routes through the normalized linear form.
func (c LinRGB48Color) SRGB() SRGBColor { return c.LinRGB().SRGB() }

// LinRGB returns the normalized form of the color.
func (c LinRGB48Color) LinRGB() LinRGBColor {
	const maxv = float32(0xFFFF)
	return NewLinRGB(float32(c.R)/maxv, float32(c.G)/maxv, float32(c.B)/maxv)
}

// LinRGB48 returns the color itself.
func (c LinRGB48Color) LinRGB48() LinRGB48Color { return c }

func (c LinRGB48Color) String() string {
	return fmt.Sprintf("%5d, %5d, %5d", c.R, c.G, c.B)
}
