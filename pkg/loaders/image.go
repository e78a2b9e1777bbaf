package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/material"
)

// MaxTextureSize bounds the longer side of a loaded texture; larger images are downsampled
const MaxTextureSize = 4096

// magenta marks lookups into an ImageData whose pixel buffer does not cover its
// dimensions. A placeholder with no dimensions at all never gets here: ImageTexture
// shows cyan for it before sampling.
var magenta = [3]uint8{255, 0, 255}

var _ material.PixelSource = (*ImageData)(nil)

// ImageData is a decoded image stored as 8-bit RGB triples, row-major from the top-left
type ImageData struct {
	width  int
	height int
	pixels []uint8
}

// Width returns the image width in pixels
func (d *ImageData) Width() int {
	return d.width
}

// Height returns the image height in pixels
func (d *ImageData) Height() int {
	return d.height
}

// Empty reports whether the image holds no pixels
func (d *ImageData) Empty() bool {
	return d.width <= 0 || d.height <= 0 || len(d.pixels) < d.width*d.height*3
}

// PixelAt returns the RGB value at (x, y). Coordinates are clamped to the image;
// an empty image yields magenta.
func (d *ImageData) PixelAt(x, y int) [3]uint8 {
	if d.Empty() {
		return magenta
	}

	x = min(max(x, 0), d.width-1)
	y = min(max(y, 0), d.height-1)

	i := (y*d.width + x) * 3
	return [3]uint8{d.pixels[i], d.pixels[i+1], d.pixels[i+2]}
}

// FromImage copies any image into RGB storage, dropping alpha
func FromImage(img image.Image) *ImageData {
	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	pixels := make([]uint8, 0, width*height*3)
	for y := 0; y < height; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		for x := 0; x < width; x++ {
			pixels = append(pixels, row[x*4], row[x*4+1], row[x*4+2])
		}
	}

	return &ImageData{width: width, height: height, pixels: pixels}
}

// LoadImage loads a PNG, JPEG, BMP, TIFF or WebP image, honouring EXIF orientation.
// Images larger than MaxTextureSize are downsampled, keeping their aspect ratio.
func LoadImage(filename string) (*ImageData, error) {
	img, err := imaging.Open(filename, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", filename, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > MaxTextureSize || bounds.Dy() > MaxTextureSize {
		img = resize.Thumbnail(MaxTextureSize, MaxTextureSize, img, resize.Bilinear)
	}

	return FromImage(img), nil
}

// LoadImageOrPlaceholder loads filename, or logs the failure and returns an
// empty image. An ImageTexture over the empty image renders cyan.
func LoadImageOrPlaceholder(filename string, logger core.Logger) *ImageData {
	if logger == nil {
		logger = core.NopLogger()
	}
	data, err := LoadImage(filename)
	if err != nil {
		logger.Printf("Using placeholder texture: %v\n", err)
		return &ImageData{}
	}
	return data
}
