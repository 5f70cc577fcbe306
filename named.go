package chroma

import (
	"strings"

	"golang.org/x/image/colornames"
)

// Named looks up an SVG 1.1 color name such as "rebeccapurple" and returns
// its 24-bit sRGB value. The lookup is case-insensitive; ok reports whether
// the name is known.
func Named(name string) (c SRGB24Color, ok bool) {
	rgba, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return SRGB24Color{}, false
	}
	return SRGB24Color{rgba.R, rgba.G, rgba.B}, true
}

// Names returns the sorted list of color names understood by Named.
func Names() []string {
	out := make([]string, len(colornames.Names))
	copy(out, colornames.Names)
	return out
}
