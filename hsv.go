package chroma

import (
	"fmt"
	"math"
)

// HSVColor is a color in the cylindrical hue/saturation/value
// representation. Hue is a bounded angle in [0, 360); saturation and value
// are percentages in [0, 1].
type HSVColor struct {
	h    Deg[float32]
	s, v float32
}

// NewHSV creates an HSV color.
//
// Hue is given in degrees and wraps into [0, 360); any finite value is
// accepted. Saturation and value must be between 0 and 1 or NewHSV panics:
// unlike hue, an out-of-range saturation or value is a caller mistake, not
// a wrap-around.
func NewHSV(h, s, v float32) HSVColor {
	if s < 0 || s > 1 || math.IsNaN(float64(s)) {
		panic(fmt.Sprintf("chroma: invalid HSV saturation %v", s))
	}
	if v < 0 || v > 1 || math.IsNaN(float64(v)) {
		panic(fmt.Sprintf("chroma: invalid HSV value %v", v))
	}
	return HSVColor{NewDeg(h), s, v}
}

// H returns the hue in degrees, in [0, 360).
func (c HSVColor) H() float32 { return c.h.Value() }

// Hue returns the hue as a bounded angle.
func (c HSVColor) Hue() Deg[float32] { return c.h }

// S returns the saturation in [0, 1].
func (c HSVColor) S() float32 { return c.s }

// V returns the value in [0, 1].
func (c HSVColor) V() float32 { return c.v }

// HSV returns the color itself.
func (c HSVColor) HSV() HSVColor { return c }

// SRGB converts to normalized sRGB with the piecewise sector algorithm:
// the hue picks one of six (r,g,b) orderings of the chroma and secondary
// components, then the achromatic offset lifts all channels.
func (c HSVColor) SRGB() SRGBColor {
	h := c.h.Value() / 60.0

	// chroma, secondary component and the achromatic offset
	cc := c.s * c.v
	x := cc * (1 - float32(math.Abs(math.Mod(float64(h), 2)-1)))
	m := c.v - cc

	var r, g, b float32
	switch int(h) {
	case 0:
		r, g, b = cc, x, 0
	case 1:
		r, g, b = x, cc, 0
	case 2:
		r, g, b = 0, cc, x
	case 3:
		r, g, b = 0, x, cc
	case 4:
		r, g, b = x, 0, cc
	default:
		// sector 5, and sector 6 when rounding puts a hue just below
		// 360° on the boundary
		r, g, b = cc, 0, x
	}

	return SRGBColor{r + m, g + m, b + m}
}

func (c HSVColor) String() string {
	return fmt.Sprintf("%5.1f°, %5.1f%%, %5.1f%%", c.h.Value(), c.s*100, c.v*100)
}
