package chroma

import (
	"testing"

	"github.com/crazy3lf/colorconv"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Cross-checks against independent implementations of the same math.

func TestHSV_AgainstColorful(t *testing.T) {
	tests := []SRGB24Color{
		{128, 255, 55},
		{255, 0, 0},
		{12, 34, 56},
		{200, 100, 50},
		{0, 128, 255},
		{1, 2, 3},
	}

	for _, c := range tests {
		t.Run(c.Hex(), func(t *testing.T) {
			got := ToHSV(c)

			oracle := colorful.Color{
				R: float64(c.R) / 255.0,
				G: float64(c.G) / 255.0,
				B: float64(c.B) / 255.0,
			}
			h, s, v := oracle.Hsv()

			if absf(got.H()-float32(h)) > 0.01 {
				t.Errorf("hue = %v, colorful says %v", got.H(), h)
			}
			if absf(got.S()-float32(s)) > 1e-4 {
				t.Errorf("saturation = %v, colorful says %v", got.S(), s)
			}
			if absf(got.V()-float32(v)) > 1e-4 {
				t.Errorf("value = %v, colorful says %v", got.V(), v)
			}
		})
	}
}

func TestParseHex_AgainstColorful(t *testing.T) {
	for _, s := range []string{"#80FF37", "#000000", "#FFFFFF", "#123ABC"} {
		got, err := ParseHex(s)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", s, err)
		}
		oracle, err := colorful.Hex(s)
		if err != nil {
			t.Fatalf("colorful.Hex(%q): %v", s, err)
		}
		r, g, b := oracle.RGB255()
		if got != (SRGB24Color{r, g, b}) {
			t.Errorf("ParseHex(%q) = %v, colorful says (%d, %d, %d)", s, got, r, g, b)
		}
	}
}

func TestHSVToRGB_AgainstColorconv(t *testing.T) {
	tests := []struct {
		h, s, v float32
	}{
		{0, 1, 1},
		{95.6, 0.784, 1},
		{210, 0.5, 0.8},
		{359, 1, 0.5},
		{42, 0.1, 0.9},
	}

	for _, tt := range tests {
		got := ToSRGB24(NewHSV(tt.h, tt.s, tt.v))

		r, g, b, err := colorconv.HSVToRGB(float64(tt.h), float64(tt.s), float64(tt.v))
		if err != nil {
			t.Fatalf("colorconv.HSVToRGB(%v, %v, %v): %v", tt.h, tt.s, tt.v, err)
		}

		// colorconv rounds where this package truncates; allow one count
		if diff8(got.R, r) > 1 || diff8(got.G, g) > 1 || diff8(got.B, b) > 1 {
			t.Errorf("HSV(%v, %v, %v) = %v, colorconv says (%d, %d, %d)",
				tt.h, tt.s, tt.v, got, r, g, b)
		}
	}
}

func TestRGBToHSV_AgainstColorconv(t *testing.T) {
	for _, c := range []SRGB24Color{{128, 255, 55}, {255, 128, 0}, {10, 20, 250}} {
		got := ToHSV(c)
		h, s, v := colorconv.RGBToHSV(c.R, c.G, c.B)

		if absf(got.H()-float32(h)) > 0.5 ||
			absf(got.S()-float32(s)) > 1e-3 ||
			absf(got.V()-float32(v)) > 1e-3 {
			t.Errorf("ToHSV(%v) = %v, colorconv says (%v, %v, %v)", c, got, h, s, v)
		}
	}
}
