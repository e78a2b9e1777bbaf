package scene

import (
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/df07/weekend-raytracer/pkg/renderer"
)

// NewTextureScene creates a row of spheres demonstrating each texture type
func NewTextureScene(opts Options) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(0, 2, 10),
		LookAt:        core.NewVec3(0, 1, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         800,
		AspectRatio:   16.0 / 9.0,
		VFov:          50.0, // Wide enough for the whole row
		DefocusAngle:  0.0,  // No blur for texture clarity
		FocusDistance: 0.0,
	}
	s := newScene(cameraConfig, core.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 10}, opts)

	noise := material.NewPerlin(sceneSampler(opts))

	textures := []material.Texture{
		material.NewCheckerTextureFromColors(0.25,
			core.NewVec3(0.9, 0.9, 0.9), // White
			core.NewVec3(0.2, 0.2, 0.8), // Blue
		),
		material.NewGradientTexture(256, 256,
			core.NewVec3(1.0, 0.2, 0.2), // Red (top)
			core.NewVec3(0.2, 1.0, 0.2), // Green (bottom)
		),
		material.NewUVDebugTexture(256, 256),
		material.NewNoiseTexture(noise, 4),
		material.NewStyledNoiseTexture(noise, 4, material.NoiseTurbulent),
		material.NewStyledNoiseTexture(noise, 4, material.NoiseMarble),
	}

	// All spheres in a single row, left to right
	spacing := 2.2
	start := -spacing * float64(len(textures)-1) / 2
	for i, texture := range textures {
		center := core.NewVec3(start+float64(i)*spacing, 1, 0)
		s.Add(geometry.NewSphere(center, 1.0, material.NewTexturedLambertian(texture)))
	}

	// Nested checkers: the odd cells are themselves checkered
	fine := material.NewCheckerTextureFromColors(0.1,
		core.NewVec3(0.7, 0.3, 0.1),  // Orange
		core.NewVec3(0.5, 0.2, 0.05), // Dark brown
	)
	groundTexture := material.NewCheckerTexture(1.0, material.NewSolidColorRGB(0.8, 0.8, 0.8), fine)
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(groundTexture)))

	return s
}
