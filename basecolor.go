package chroma

// BaseColor is one of nine named hues and shades. It is a symbolic category
// rather than a coordinate, but it implements Color with its canonical
// 24-bit value, so it can be used anywhere a color is expected.
type BaseColor uint8

const (
	Black BaseColor = iota
	Grey
	White
	Red
	Yellow
	Green
	Cyan
	Blue
	Magenta
)

var baseColorNames = [...]string{
	Black:   "black",
	Grey:    "grey",
	White:   "white",
	Red:     "red",
	Yellow:  "yellow",
	Green:   "green",
	Cyan:    "cyan",
	Blue:    "blue",
	Magenta: "magenta",
}

func (bc BaseColor) String() string {
	if int(bc) >= len(baseColorNames) {
		return "invalid"
	}
	return baseColorNames[bc]
}

// SRGB routes through the canonical 24-bit value.
func (bc BaseColor) SRGB() SRGBColor { return bc.SRGB24().SRGB() }

// SRGB24 returns the canonical 24-bit sRGB value of the base color.
func (bc BaseColor) SRGB24() SRGB24Color {
	switch bc {
	case Black:
		return SRGB24Color{0, 0, 0}
	case Grey:
		return SRGB24Color{128, 128, 128}
	case White:
		return SRGB24Color{255, 255, 255}
	case Red:
		return SRGB24Color{255, 0, 0}
	case Yellow:
		return SRGB24Color{255, 255, 0}
	case Green:
		return SRGB24Color{0, 255, 0}
	case Cyan:
		return SRGB24Color{0, 255, 255}
	case Blue:
		return SRGB24Color{0, 0, 255}
	case Magenta:
		return SRGB24Color{255, 0, 255}
	}
	return SRGB24Color{}
}

// HSV returns the canonical HSV value of the base color.
func (bc BaseColor) HSV() HSVColor {
	switch bc {
	case Grey:
		return NewHSV(0, 0, 0.5)
	case White:
		return NewHSV(0, 0, 1)
	case Red:
		return NewHSV(0, 1, 1)
	case Yellow:
		return NewHSV(60, 1, 1)
	case Green:
		return NewHSV(120, 1, 1)
	case Cyan:
		return NewHSV(180, 1, 1)
	case Blue:
		return NewHSV(240, 1, 1)
	case Magenta:
		return NewHSV(300, 1, 1)
	}
	return NewHSV(0, 0, 0) // Black
}
