package renderer

import (
	"image"
	"image/color"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/integrator"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetWorld() geometry.Hittable
	GetCamera() *Camera
	GetSamplingConfig() core.SamplingConfig
	GetBackground() integrator.Background
}

// Raytracer renders a scene with a path tracing integrator
type Raytracer struct {
	scene        Scene
	width        int
	height       int
	config       core.SamplingConfig
	tileRenderer *TileRenderer
}

// NewRaytracer creates a new raytracer using the scene's sampling configuration
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	config := scene.GetSamplingConfig()
	pt := integrator.NewPathTracingIntegrator(config, scene.GetBackground())

	return &Raytracer{
		scene:        scene,
		width:        width,
		height:       height,
		config:       config,
		tileRenderer: NewTileRenderer(scene.GetWorld(), scene.GetCamera(), pt, config.MaxDepth),
	}
}

// RenderBounds tops up every pixel within bounds to the configured samples per pixel
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, pixelStats [][]PixelStats, sampler core.Sampler) RenderStats {
	return rt.tileRenderer.RenderTileBounds(bounds, pixelStats, sampler, rt.config.SamplesPerPixel)
}

// RenderPass renders the whole image in one pass on the calling goroutine
func (rt *Raytracer) RenderPass(sampler core.Sampler) (*image.RGBA, RenderStats) {
	pixelStats := newPixelStatsGrid(rt.width, rt.height)
	stats := rt.RenderBounds(image.Rect(0, 0, rt.width, rt.height), pixelStats, sampler)
	return imageFromPixelStats(pixelStats, rt.width, rt.height), stats
}

// vec3ToColor converts a linear color to gamma-corrected, clamped RGBA
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	return core.ColorToRGBA(colorVec)
}

// imageFromPixelStats writes the averaged color of every pixel, top row first
func imageFromPixelStats(pixelStats [][]PixelStats, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, vec3ToColor(pixelStats[y][x].GetColor()))
		}
	}
	return img
}
