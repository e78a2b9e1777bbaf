package renderer

import (
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/integrator"
	"github.com/df07/weekend-raytracer/pkg/material"
)

// testScene is a minimal Scene for renderer tests
type testScene struct {
	world      geometry.Hittable
	camera     *Camera
	config     core.SamplingConfig
	background integrator.Background
}

func (s *testScene) GetWorld() geometry.Hittable            { return s.world }
func (s *testScene) GetCamera() *Camera                     { return s.camera }
func (s *testScene) GetSamplingConfig() core.SamplingConfig { return s.config }
func (s *testScene) GetBackground() integrator.Background   { return s.background }

// newTestScene builds one diffuse sphere in front of a small camera
func newTestScene(width int) *testScene {
	cameraConfig := CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       width,
		AspectRatio: 1.0,
		VFov:        90.0,
	}

	lambertian := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertian)

	return &testScene{
		world:      geometry.NewBVH([]geometry.Hittable{sphere}),
		camera:     NewCamera(cameraConfig),
		config:     core.SamplingConfig{SamplesPerPixel: 4, MaxDepth: 10},
		background: integrator.DefaultBackground(),
	}
}

// MockIntegrator returns a fixed color and counts calls
type MockIntegrator struct {
	returnColor core.Vec3
	callCount   int
}

func (m *MockIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Vec3 {
	m.callCount++
	return m.returnColor
}

// seqSampler replays fixed 2D values in order and returns a constant for 1D draws
type seqSampler struct {
	twoD   []core.Vec2
	next   int
	oneD   float64
	threeD core.Vec3
}

func (s *seqSampler) Get1D() float64 { return s.oneD }

func (s *seqSampler) Get2D() core.Vec2 {
	v := s.twoD[s.next%len(s.twoD)]
	s.next++
	return v
}

func (s *seqSampler) Get3D() core.Vec3 { return s.threeD }
