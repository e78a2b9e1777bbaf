package core

import (
	"image/color"
	"math"
)

// intensity keeps channel values strictly below 1 so 256*c never reaches 256
var intensity = Interval{Min: 0.000, Max: 0.999}

// LinearToGamma converts a linear channel value to gamma 2 space
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// ColorToRGB gamma-corrects and clamps a linear color to 8-bit channels.
// NaN channels are treated as black.
func ColorToRGB(c Vec3) [3]uint8 {
	channel := func(v float64) uint8 {
		if math.IsNaN(v) {
			return 0
		}
		return uint8(256 * intensity.Clamp(LinearToGamma(v)))
	}
	return [3]uint8{channel(c.X), channel(c.Y), channel(c.Z)}
}

// ColorToRGBA converts a linear color to an opaque image color
func ColorToRGBA(c Vec3) color.RGBA {
	rgb := ColorToRGB(c)
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}
