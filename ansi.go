package chroma

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

const csi = "\x1b["

// ForegroundFor returns Black or White, whichever is legible on bg.
//
// The split point is the gamma-decoded midpoint: a background whose linear
// luminance falls below the linearized 50% grey reads as dark, so white
// text goes on top of it.
func ForegroundFor(bg Color) BaseColor {
	if Luminance(bg) < SRGBToLinear(0.5) {
		return White
	}
	return Black
}

// ANSIBackground returns text with c as its background color using 24-bit
// ANSI escape sequences. The foreground is chosen with ForegroundFor so the
// text stays readable, and the sequence resets all attributes at the end.
func ANSIBackground(text string, c Color) string {
	bg := ToSRGB24(c)
	fg := ForegroundFor(c).SRGB24()
	return fmt.Sprintf("%s38;2;%d;%d;%dm%s48;2;%d;%d;%dm%s%s0m",
		csi, fg.R, fg.G, fg.B,
		csi, bg.R, bg.G, bg.B,
		text, csi)
}

// ContrastRatio returns the WCAG contrast ratio between two colors, from 1
// (identical luminance) to 21 (black on white).
func ContrastRatio(a, b Color) float32 {
	l1, l2 := Luminance(a), Luminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// TcellColor converts c to a tcell truecolor value for cell-based UIs.
func TcellColor(c Color) tcell.Color {
	rgb := ToSRGB24(c)
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// FromTcell converts a tcell color to 24-bit sRGB. Palette-indexed tcell
// colors resolve through tcell's own palette table; ok is false for colors
// with no RGB value at all (tcell.ColorDefault, tcell.ColorNone), which
// come back as black.
func FromTcell(tc tcell.Color) (c SRGB24Color, ok bool) {
	r, g, b := tc.RGB()
	if r < 0 || g < 0 || b < 0 {
		return SRGB24Color{}, false
	}
	return SRGB24Color{uint8(r), uint8(g), uint8(b)}, true
}
