package chroma

import "testing"

func TestNewLinRGB_Clamps(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float32
		want    [3]float32
	}{
		{"in range", 0.2, 0.5, 0.9, [3]float32{0.2, 0.5, 0.9}},
		{"below zero", -0.5, 0.5, -0.0001, [3]float32{0, 0.5, 0}},
		{"above one", 1.5, 0.5, 100, [3]float32{1, 0.5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewLinRGB(tt.r, tt.g, tt.b)
			r, g, b := c.RGB()
			if r != tt.want[0] || g != tt.want[1] || b != tt.want[2] {
				t.Errorf("NewLinRGB(%v, %v, %v) = (%v, %v, %v), want %v",
					tt.r, tt.g, tt.b, r, g, b, tt.want)
			}
		})
	}
}

func TestLinRGB_Arithmetic(t *testing.T) {
	a := NewLinRGB(0.5, 0.25, 1)
	b := NewLinRGB(0.25, 0.25, 0.5)

	if got, want := a.Add(b), NewLinRGB(0.75, 0.5, 1); got != want {
		t.Errorf("Add = %v, want %v (sum clamps at full intensity)", got, want)
	}
	if got, want := a.Sub(b), NewLinRGB(0.25, 0, 0.5); got != want {
		t.Errorf("Sub = %v, want %v", got, want)
	}
	if got, want := b.Scale(2), NewLinRGB(0.5, 0.5, 1); got != want {
		t.Errorf("Scale = %v, want %v", got, want)
	}
	if got, want := b.Scale(-1), NewLinRGB(0, 0, 0); got != want {
		t.Errorf("Scale(-1) = %v, want %v (clamped at zero)", got, want)
	}
}

func TestLinRGB_Blend(t *testing.T) {
	dst := NewLinRGB(0, 0, 0)
	src := NewLinRGB(1, 0.5, 0)

	if got := dst.Blend(src, 0); got != dst {
		t.Errorf("Blend alpha 0 = %v, want dst %v", got, dst)
	}
	if got := dst.Blend(src, 1); got != src {
		t.Errorf("Blend alpha 1 = %v, want src %v", got, src)
	}

	mid := dst.Blend(src, 0.5)
	r, g, b := mid.RGB()
	if absf(r-0.5) > 1e-6 || absf(g-0.25) > 1e-6 || b != 0 {
		t.Errorf("Blend alpha 0.5 = (%v, %v, %v), want (0.5, 0.25, 0)", r, g, b)
	}
}

func TestLinRGB24RoundTrip(t *testing.T) {
	for v := 0; v <= 255; v++ {
		c := NewLinRGB24(uint8(v), uint8(v), uint8(v))
		if got := ToLinRGB24(c.LinRGB()); got != c {
			t.Fatalf("dequantize/quantize moved %v to %v", c, got)
		}
	}
}

func TestLinRGB48_SRGBRoundTrip(t *testing.T) {
	// passing through the 16-bit quantized linear form loses up to one
	// truncation step per channel, which final 8-bit truncation can
	// amplify to exactly one count
	srgb := NewSRGB24(128, 255, 55)
	back := ToSRGB24(ToLinRGB48(srgb).SRGB())

	if diff8(back.R, srgb.R) > 1 || diff8(back.G, srgb.G) > 1 || diff8(back.B, srgb.B) > 1 {
		t.Errorf("sRGB24 -> linear 48-bit -> sRGB24: got %v, want %v ±1", back, srgb)
	}
}

func diff8(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
