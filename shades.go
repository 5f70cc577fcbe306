package chroma

import "sort"

// Shade pairs a base color with the weight of its contribution to a
// classification. Weights in a Shades result sum to 1.
type Shade struct {
	Color  BaseColor
	Weight float32
}

// Classification thresholds. These borders were picked by what looks nice
// rather than derived from anything; treat them as tunable configuration.
const (
	// how many degrees from the main hue a shade can sit
	hueMargin = 60.0 * 0.75

	// relative luminance under this is considered just black
	blackCutoffLuminance = 0.005

	// saturation under this is considered greyscale without any color
	greyscaleSaturation = 0.05

	// borders for the greyscale shades
	whiteSaturation  = 0.35
	whiteLuminance   = 0.40
	greySaturation   = 0.45
	greyLuminanceMax = 0.80
	greyLuminanceMin = 0.03
	blackLuminance   = 0.045
)

var colorHues = [...]struct {
	hue   float32
	color BaseColor
}{
	{60, Yellow},
	{120, Green},
	{180, Cyan},
	{240, Blue},
	{300, Magenta},
}

// Shades categorizes the most prominent base-color shades of c.
//
// The result is sorted by descending weight and the weights are normalized
// to sum to 1. This is a heuristic scorer, not an exact partition: a color
// can be both grey and near a hue, and the thresholds carry no formal
// derivation.
func Shades(c Color) []Shade {
	hsv := ToHSV(c)
	h, s := hsv.H(), hsv.S()
	lum := Luminance(c)

	if lum < blackCutoffLuminance {
		return []Shade{{Black, 1}}
	}

	shades := make([]Shade, 0, 3)
	var sum float32

	if s > greyscaleSaturation {
		// red wraps around the 0°/360° seam
		redDist := h
		if h > 180 {
			redDist = 360 - h
		}
		if redDist <= hueMargin {
			amount := 1 - redDist/hueMargin
			sum += amount
			shades = append(shades, Shade{Red, amount})
		}
		for _, ch := range colorHues {
			dist := h - ch.hue
			if dist < 0 {
				dist = -dist
			}
			if dist <= hueMargin {
				amount := 1 - dist/hueMargin
				sum += amount
				shades = append(shades, Shade{ch.color, amount})
			}
		}
	}

	if lum <= blackLuminance {
		sum++
		shades = append(shades, Shade{Black, 1})
	} else if lum >= whiteLuminance && s <= whiteSaturation {
		sum++
		shades = append(shades, Shade{White, 1})
	}

	if s <= greySaturation && lum >= greyLuminanceMin && lum <= greyLuminanceMax {
		sum++
		shades = append(shades, Shade{Grey, 1})
	}

	sort.SliceStable(shades, func(i, j int) bool {
		return shades[i].Weight > shades[j].Weight
	})
	for i := range shades {
		shades[i].Weight /= sum
	}
	return shades
}
