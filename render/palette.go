package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
)

// goldenFraction spaces successive hues by the golden angle.
var goldenFraction = (math.Sqrt(5) - 1) / 2

// categorical is a fixed color list satisfying palette.Palette.
type categorical []color.Color

func (c categorical) Colors() []color.Color { return c }

// grainPalette returns n distinct colors; at least two so the heatmap range
// never collapses.
func grainPalette(n int) categorical {
	if n < 2 {
		n = 2
	}
	out := make(categorical, n)
	for k := range out {
		h := math.Mod(float64(k)*goldenFraction, 1)
		out[k] = palette.HSVA{H: h, S: 0.55, V: 0.95, A: 1}
	}
	return out
}

// grainColor returns the color for id within a palette of n grains.
// Negative ids are drawn black.
func grainColor(pal categorical, id int) color.Color {
	if id < 0 {
		return color.Black
	}
	return pal[id%len(pal)]
}

var maskPalette = categorical{color.White, color.Black}
