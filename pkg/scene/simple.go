package scene

import (
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/material"
	"github.com/df07/weekend-raytracer/pkg/renderer"
)

// NewSimpleScene creates one white diffuse sphere in front of the default camera
func NewSimpleScene(opts Options) *Scene {
	s := newScene(renderer.DefaultCameraConfig(), core.SamplingConfig{SamplesPerPixel: 50, MaxDepth: 20}, opts)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(1, 1, 1))))
	return s
}

// NewGlassScene creates the materials showcase: a diffuse sphere between a
// hollow glass sphere and a fuzzy gold sphere, seen through a wide aperture
func NewGlassScene(opts Options) *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(-2, 2, 1),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20.0,
		DefocusAngle:  10.0,
		FocusDistance: 3.4,
	}
	s := newScene(cameraConfig, core.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50}, opts)

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	bubble := material.NewDielectric(1.0 / 1.5) // Air inside the glass
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, bubble),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)
	return s
}
