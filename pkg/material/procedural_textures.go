package material

import (
	"github.com/df07/weekend-raytracer/pkg/core"
)

// pixelGrid is an in-memory PixelSource built from linear colors
type pixelGrid struct {
	width, height int
	pixels        [][3]uint8 // Row-major: pixels[y*width + x]
}

func newPixelGrid(width, height int, colorAt func(x, y int) core.Vec3) *pixelGrid {
	grid := &pixelGrid{width: width, height: height, pixels: make([][3]uint8, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := colorAt(x, y)
			grid.pixels[y*width+x] = [3]uint8{
				uint8(unitInterval.Clamp(c.X)*255 + 0.5),
				uint8(unitInterval.Clamp(c.Y)*255 + 0.5),
				uint8(unitInterval.Clamp(c.Z)*255 + 0.5),
			}
		}
	}
	return grid
}

func (g *pixelGrid) Width() int  { return g.width }
func (g *pixelGrid) Height() int { return g.height }

func (g *pixelGrid) PixelAt(x, y int) [3]uint8 {
	return g.pixels[y*g.width+x]
}

// NewUVDebugTexture creates a texture showing UV coordinates as colors
// U maps to red channel, V maps to green channel
func NewUVDebugTexture(width, height int) *ImageTexture {
	return NewImageTexture(newPixelGrid(width, height, func(x, y int) core.Vec3 {
		u := float64(x) / float64(max(width-1, 1))
		v := 1.0 - float64(y)/float64(max(height-1, 1))
		return core.NewVec3(u, v, 0.0)
	}))
}

// NewGradientTexture creates a vertical gradient from color1 (top) to color2 (bottom)
func NewGradientTexture(width, height int, color1, color2 core.Vec3) *ImageTexture {
	return NewImageTexture(newPixelGrid(width, height, func(x, y int) core.Vec3 {
		t := float64(y) / float64(max(height-1, 1))
		return color1.Multiply(1.0 - t).Add(color2.Multiply(t))
	}))
}
