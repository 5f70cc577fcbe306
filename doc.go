// Package chroma provides single-pixel color representation and conversion.
//
// # Overview
//
// chroma models color in several coordinate systems — normalized and 24-bit
// sRGB, normalized and 8/16-bit linear RGB, and HSV — and converts between
// any of them. All types are small immutable values; conversions are pure
// functions with no shared state, so concurrent use requires no
// synchronization.
//
// # Quick Start
//
//	import "github.com/gogpu/chroma"
//
//	c, err := chroma.ParseHex("#80FF37")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	hsv := chroma.ToHSV(c)        // hue, saturation, value
//	lum := chroma.Luminance(c)    // perceived brightness in [0,1]
//	fmt.Println(chroma.Shades(c)) // weighted base-color categories
//	fmt.Println(chroma.ANSIBackground("hello", c))
//
// # Conversion Graph
//
// Every representation implements the Color interface by converting itself
// to normalized sRGB, the hub of the conversion graph. The package-level
// functions (ToSRGB24, ToLinRGB, ToHSV, ...) route through the hub by
// default and take a direct leg whenever the concrete type can compute the
// target natively, so adding a representation costs one hand-written
// conversion, not one per pair.
//
// # Color Spaces
//
// sRGB values are gamma-encoded the way displays expect them; linear RGB
// values are proportional to actual light intensity. Arithmetic on light
// (blending, scaling, luminance) is only physically meaningful in linear
// space, which is why Luminance and LinRGBColor.Blend operate there.
// SRGBToLinear and LinearToSRGB implement the standard piecewise sRGB
// transfer function.
//
// # Terminal Output
//
// ANSIBackground emits 24-bit SGR escape sequences with a foreground picked
// for legibility, and TcellColor bridges to gdamore/tcell for cell-based
// UIs.
package chroma
