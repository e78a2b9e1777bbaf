package material

import (
	"github.com/df07/weekend-raytracer/pkg/core"
)

// PixelSource is a decoded image that textures can sample
type PixelSource interface {
	Width() int
	Height() int
	// PixelAt returns the 8-bit RGB channels at (x, y), origin top-left
	PixelAt(x, y int) [3]uint8
}

// debugCyan is the visible color of a missing texture: a nil image or one with no
// pixels, such as the placeholder returned for a failed load
var debugCyan = core.NewVec3(0, 1, 1)

var unitInterval = core.NewInterval(0, 1)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Image PixelSource
}

// NewImageTexture creates a new image texture
func NewImageTexture(image PixelSource) *ImageTexture {
	return &ImageTexture{Image: image}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering.
// UVs outside [0, 1] are clamped to the image edge.
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Image == nil || t.Image.Width() <= 0 || t.Image.Height() <= 0 {
		return debugCyan
	}

	u := unitInterval.Clamp(uv.X)
	v := 1.0 - unitInterval.Clamp(uv.Y) // V=0 is bottom, image rows start at the top

	x := min(int(u*float64(t.Image.Width())), t.Image.Width()-1)
	y := min(int(v*float64(t.Image.Height())), t.Image.Height()-1)

	pixel := t.Image.PixelAt(x, y)
	const colorScale = 1.0 / 255.0
	return core.NewVec3(
		colorScale*float64(pixel[0]),
		colorScale*float64(pixel[1]),
		colorScale*float64(pixel[2]),
	)
}
