package scene

import (
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/df07/weekend-raytracer/pkg/renderer"
)

// bookCamera is the wide establishing shot shared by the book scenes
func bookCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		DefocusAngle:  0.0,
		FocusDistance: 10.0,
	}
}

// NewBouncingSpheresScene creates the final scene of the first book with the
// small spheres moving upward during the shutter interval
func NewBouncingSpheresScene(opts Options) *Scene {
	cameraConfig := bookCamera()
	cameraConfig.DefocusAngle = 0.6

	s := newScene(cameraConfig, core.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50}, opts)
	sampler := sceneSampler(opts)

	checker := material.NewCheckerTextureFromColors(0.32,
		core.NewVec3(0.2, 0.3, 0.1), // Dark green
		core.NewVec3(0.9, 0.9, 0.9), // Off-white
	)
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				0.2,
				float64(b)+0.9*sampler.Get1D(),
			)

			// Keep the large glass sphere unobstructed
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(sampler, 0, 1).MultiplyVec(core.RandomVec3(sampler, 0, 1))
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := core.RandomVec3(sampler, 0.5, 1)
				fuzz := core.RandomFloat(sampler, 0, 0.5)
				mat = material.NewMetal(albedo, fuzz)
			default:
				mat = material.NewDielectric(1.5)
			}

			center2 := center.Add(core.NewVec3(0, core.RandomFloat(sampler, 0, 0.5), 0))
			s.Add(geometry.NewMovingSphere(center, center2, 0.2, mat))
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}

// NewCheckeredSpheresScene creates two large spheres sharing one spatial checker
// texture, so the pattern continues across both surfaces
func NewCheckeredSpheresScene(opts Options) *Scene {
	s := newScene(bookCamera(), core.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50}, opts)

	checker := material.NewTexturedLambertian(material.NewCheckerTextureFromColors(0.32,
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)
	return s
}

// NewPerlinSpheresScene creates a marbled sphere resting on a marbled ground
func NewPerlinSpheresScene(opts Options) *Scene {
	s := newScene(bookCamera(), core.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50}, opts)

	noise := material.NewPerlin(sceneSampler(opts))
	marble := material.NewTexturedLambertian(material.NewStyledNoiseTexture(noise, 4, material.NoiseMarble))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)
	return s
}
