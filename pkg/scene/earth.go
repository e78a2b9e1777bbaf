package scene

import (
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/loaders"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/df07/weekend-raytracer/pkg/renderer"
)

// DefaultEarthTexture is the texture used when no path is configured
const DefaultEarthTexture = "assets/earthmap.jpg"

// NewEarthScene creates a globe wrapped in an equirectangular image. A missing
// or unreadable image renders with the placeholder color instead of failing.
func NewEarthScene(opts Options) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(0, 0, 12),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		DefocusAngle:  0.0,
		FocusDistance: 12.0,
	}
	s := newScene(cameraConfig, core.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50}, opts)

	path := opts.TexturePath
	if path == "" {
		path = DefaultEarthTexture
	}
	earthMap := loaders.LoadImageOrPlaceholder(path, opts.Logger)

	surface := material.NewTexturedLambertian(material.NewImageTexture(earthMap))
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, surface))
	return s
}
