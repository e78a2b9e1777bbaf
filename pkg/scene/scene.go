package scene

import (
	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/integrator"
	"github.com/df07/weekend-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	World          geometry.Hittable      // Acceleration structure built by Preprocess
	Objects        *geometry.HittableList // Objects in the scene
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	SamplingConfig core.SamplingConfig
	Background     integrator.Background // Sky seen by rays that escape
}

// Options adjust a built-in scene at construction time
type Options struct {
	Camera      renderer.CameraConfig // Non-zero fields override the scene's camera
	Sampling    core.SamplingConfig   // Non-zero fields override the scene's sampling
	TexturePath string                // Image used by textured scenes
	Seed        int64                 // Seeds random scene layout and noise tables
	Logger      core.Logger
}

// newScene applies the option overrides to a scene's defaults and builds its camera
func newScene(defaultCamera renderer.CameraConfig, defaultSampling core.SamplingConfig, opts Options) *Scene {
	cameraConfig := renderer.MergeCameraConfig(defaultCamera, opts.Camera)

	samplingConfig := defaultSampling
	fallback := core.DefaultSamplingConfig()
	if samplingConfig.SamplesPerPixel <= 0 {
		samplingConfig.SamplesPerPixel = fallback.SamplesPerPixel
	}
	if samplingConfig.MaxDepth <= 0 {
		samplingConfig.MaxDepth = fallback.MaxDepth
	}
	if opts.Sampling.SamplesPerPixel > 0 {
		samplingConfig.SamplesPerPixel = opts.Sampling.SamplesPerPixel
	}
	if opts.Sampling.MaxDepth > 0 {
		samplingConfig.MaxDepth = opts.Sampling.MaxDepth
	}

	return &Scene{
		Objects:        geometry.NewHittableList(),
		Camera:         renderer.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		SamplingConfig: samplingConfig,
		Background:     integrator.DefaultBackground(),
	}
}

// Add appends objects to the scene. Call Preprocess afterwards to rebuild the BVH.
func (s *Scene) Add(objects ...geometry.Hittable) {
	for _, object := range objects {
		s.Objects.Add(object)
	}
}

// Preprocess builds the BVH over the scene's objects
func (s *Scene) Preprocess() {
	s.World = geometry.NewBVHFromList(s.Objects)
}

// GetWorld returns the BVH, falling back to the flat object list before Preprocess
func (s *Scene) GetWorld() geometry.Hittable {
	if s.World == nil {
		return s.Objects
	}
	return s.World
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetSamplingConfig returns the scene's sampling configuration
func (s *Scene) GetSamplingConfig() core.SamplingConfig {
	return s.SamplingConfig
}

// GetBackground returns the sky gradient
func (s *Scene) GetBackground() integrator.Background {
	return s.Background
}

// BVHStats reports the shape of the scene's BVH. ok is false before Preprocess.
func (s *Scene) BVHStats() (stats geometry.BVHStats, ok bool) {
	bvh, ok := s.World.(*geometry.BVHNode)
	if !ok {
		return geometry.BVHStats{}, false
	}
	return bvh.Stats(), true
}

// ObjectCount returns the number of top-level objects in the scene
func (s *Scene) ObjectCount() int {
	return s.Objects.Len()
}

// sceneSampler returns the generator for random scene layout
func sceneSampler(opts Options) *core.RandomSampler {
	return core.NewSeededSampler(opts.Seed)
}
