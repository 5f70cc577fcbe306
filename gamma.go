package chroma

import "math"

// Gamma is the sRGB gamma exponent, shared by both transfer directions.
const Gamma = 2.4

// Transition points of the piecewise sRGB transfer function. The linear
// segment below the cutoff avoids the power law's poor conditioning near
// black; the constants make the two pieces meet continuously.
const (
	srgbCutoff    = 0.0031308 // linear side
	srgbInvCutoff = 0.04045   // encoded side
)

// SRGBToLinear converts a gamma-encoded sRGB component in [0,1] to linear
// light (the sRGB EOTF).
func SRGBToLinear(s float32) float32 {
	if s <= srgbInvCutoff {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), Gamma))
}

// LinearToSRGB converts a linear-light component in [0,1] to gamma-encoded
// sRGB (the sRGB OETF). Inverse of SRGBToLinear up to floating rounding.
func LinearToSRGB(l float32) float32 {
	if l <= srgbCutoff {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/Gamma)) - 0.055
}

// sRGBToLinearLUT gives O(1) 8-bit sRGB to linear conversion.
// 256 entries, 1KB.
var sRGBToLinearLUT [256]float32

// linearToSRGBLUT gives O(1) linear to 8-bit sRGB conversion.
// 4096 entries for 12-bit precision, sufficient for 8-bit output.
var linearToSRGBLUT [4096]uint8

func init() {
	for i := range sRGBToLinearLUT {
		sRGBToLinearLUT[i] = SRGBToLinear(float32(i) / 255.0)
	}
	for i := range linearToSRGBLUT {
		s := LinearToSRGB(float32(i) / 4095.0)
		v := int(s*255.0 + 0.5)
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		linearToSRGBLUT[i] = uint8(v)
	}
}

// SRGBToLinearFast converts an 8-bit sRGB component to linear float32 using
// a lookup table. Much faster than math.Pow; intended for per-pixel loops.
func SRGBToLinearFast(s uint8) float32 {
	return sRGBToLinearLUT[s]
}

// LinearToSRGBFast converts a linear component to an 8-bit sRGB value using
// a lookup table. Input is clamped to [0,1]; output rounds to the nearest
// 8-bit value, so it is a display-oriented approximation of LinearToSRGB.
func LinearToSRGBFast(l float32) uint8 {
	if l < 0 {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	i := int(l*4095.0 + 0.5)
	if i > 4095 {
		i = 4095
	}
	return linearToSRGBLUT[i]
}
