// Command chromaswatch demonstrates the chroma color library in a terminal.
//
// It prints the base-color palette, classifies a color into its shades, and
// shows the representations of a single color side by side.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/chroma"
)

func main() {
	var (
		hex   = flag.String("hex", "", "classify a hex color, e.g. #80FF37")
		name  = flag.String("name", "", "classify an SVG color name, e.g. rebeccapurple")
		ramp  = flag.Bool("ramp", false, "print a greyscale luminance ramp")
		plain = flag.Bool("plain", false, "use raw ANSI escapes instead of lipgloss")
	)
	flag.Parse()

	switch {
	case *hex != "":
		c, err := chroma.ParseHex(*hex)
		if err != nil {
			log.Fatalf("Bad -hex value: %v", err)
		}
		describe(c, *plain)
	case *name != "":
		c, ok := chroma.Named(*name)
		if !ok {
			log.Fatalf("Unknown color name %q", *name)
		}
		describe(c, *plain)
	case *ramp:
		printRamp()
	default:
		printPalette(*plain)
	}
}

// describe prints every representation of c plus its shade classification.
func describe(c chroma.SRGB24Color, plain bool) {
	fmt.Printf("%s  #%s\n\n", swatch("  ", c, plain), c.Hex())

	fmt.Printf("  sRGB 24-bit   %v\n", c)
	fmt.Printf("  sRGB          %v\n", c.SRGB())
	fmt.Printf("  linear RGB    %v\n", chroma.ToLinRGB(c))
	fmt.Printf("  linear 48-bit %v\n", chroma.ToLinRGB48(c))
	fmt.Printf("  HSV           %v\n", chroma.ToHSV(c))
	fmt.Printf("  luminance     %.4f\n\n", chroma.Luminance(c))

	fmt.Println("  shades:")
	for _, s := range chroma.Shades(c) {
		fmt.Printf("    %-8s %5.1f%%  %s\n",
			s.Color, s.Weight*100, swatch("    ", s.Color.SRGB24(), plain))
	}
}

// printPalette renders the nine base colors with readable labels.
func printPalette(plain bool) {
	for _, bc := range []chroma.BaseColor{
		chroma.Black, chroma.Grey, chroma.White,
		chroma.Red, chroma.Yellow, chroma.Green,
		chroma.Cyan, chroma.Blue, chroma.Magenta,
	} {
		label := fmt.Sprintf(" %-8s %v ", bc, bc.SRGB24())
		if plain {
			fmt.Println(chroma.ANSIBackground(label, bc))
			continue
		}
		style := lipgloss.NewStyle().
			Background(lipgloss.Color("#" + bc.SRGB24().Hex())).
			Foreground(lipgloss.Color("#" + chroma.ForegroundFor(bc).SRGB24().Hex()))
		fmt.Println(style.Render(label))
	}
}

// printRamp shows that perceived brightness tracks relative luminance, not
// the encoded channel value.
func printRamp() {
	for v := 0; v <= 255; v += 17 {
		c := chroma.NewSRGB24(uint8(v), uint8(v), uint8(v))
		bar := strings.Repeat("█", 1+int(chroma.Luminance(c)*40))
		fmt.Printf("%3d  lum %.4f  %s\n", v, chroma.Luminance(c), bar)
	}
}

// swatch renders a small colored block.
func swatch(block string, c chroma.SRGB24Color, plain bool) string {
	if plain {
		return chroma.ANSIBackground(block, c)
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color("#" + c.Hex())).
		Render(block)
}
