package chroma

// Color is implemented by every color representation. The single required
// method converts to normalized sRGB, the hub of the conversion graph; all
// other conversions are derived from it by the package-level To* functions.
type Color interface {
	// SRGB returns the color in the normalized sRGB color space.
	SRGB() SRGBColor
}

// Optional direct legs. A representation that can compute a target natively
// implements the matching method and the To* functions use it instead of
// routing through the hub.
type (
	srgb24Conv   interface{ SRGB24() SRGB24Color }
	linRGBConv   interface{ LinRGB() LinRGBColor }
	linRGB24Conv interface{ LinRGB24() LinRGB24Color }
	linRGB48Conv interface{ LinRGB48() LinRGB48Color }
	hsvConv      interface{ HSV() HSVColor }
)

// ToSRGB24 returns c in the 24-bit sRGB color space.
func ToSRGB24(c Color) SRGB24Color {
	if n, ok := c.(srgb24Conv); ok {
		return n.SRGB24()
	}
	return c.SRGB().SRGB24()
}

// ToLinRGB returns c as normalized RGB in the linear color space.
func ToLinRGB(c Color) LinRGBColor {
	if n, ok := c.(linRGBConv); ok {
		return n.LinRGB()
	}
	return c.SRGB().LinRGB()
}

// ToLinRGB24 returns c as 24-bit RGB in the linear color space.
func ToLinRGB24(c Color) LinRGB24Color {
	if n, ok := c.(linRGB24Conv); ok {
		return n.LinRGB24()
	}
	return ToLinRGB(c).LinRGB24()
}

// ToLinRGB48 returns c as 48-bit RGB in the linear color space.
func ToLinRGB48(c Color) LinRGB48Color {
	if n, ok := c.(linRGB48Conv); ok {
		return n.LinRGB48()
	}
	return ToLinRGB(c).LinRGB48()
}

// ToHSV returns the HSV representation of c.
func ToHSV(c Color) HSVColor {
	if n, ok := c.(hsvConv); ok {
		return n.HSV()
	}
	return c.SRGB().HSV()
}

// Luminance returns the relative luminance of c between 0 and 1.
//
// It tells the whiteness of the color as perceived by humans: values nearer
// 0 are darker, values nearer 1 are lighter. The perceptual weights apply
// to linear-light channels, so c is converted to linear RGB first.
func Luminance(c Color) float32 {
	l := ToLinRGB(c)
	return 0.2126*l.R() + 0.7152*l.G() + 0.0722*l.B()
}

func clamp01(v float32) float32 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}

// quantize8 maps a normalized channel to [0,255] by truncation.
// Out-of-range input saturates; float-to-integer conversion of an
// out-of-range value is not defined in Go, so clamp first.
func quantize8(v float32) uint8 {
	q := v * 255.0
	if q <= 0 {
		return 0
	}
	if q >= 255 {
		return 255
	}
	return uint8(q)
}

// quantize16 maps a normalized channel to [0,65535] by truncation.
func quantize16(v float32) uint16 {
	q := v * 0xFFFF
	if q <= 0 {
		return 0
	}
	if q >= 0xFFFF {
		return 0xFFFF
	}
	return uint16(q)
}
