package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
	"github.com/df07/weekend-raytracer/pkg/material"
)

// absorber never scatters
type absorber struct{}

func (absorber) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

// skyward always scatters straight up with a fixed attenuation
type skyward struct {
	attenuation core.Vec3
}

func (s skyward) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{
		Scattered:   core.NewRayAtTime(hit.Point, core.NewVec3(0, 1, 0), rayIn.Time),
		Attenuation: s.attenuation,
	}, true
}

func newTestIntegrator(maxDepth int) *PathTracingIntegrator {
	return NewPathTracingIntegrator(core.SamplingConfig{SamplesPerPixel: 1, MaxDepth: maxDepth}, DefaultBackground())
}

func TestPathTracingDepthTermination(t *testing.T) {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))),
	)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	integrator := newTestIntegrator(10)

	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), // hits the sphere
		core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),  // misses everything
	}
	for _, ray := range rays {
		for _, depth := range []int{0, -1} {
			if c := integrator.RayColor(ray, world, sampler, depth); c != (core.Vec3{}) {
				t.Errorf("Expected black for depth %d, got %v", depth, c)
			}
		}
	}
}

func TestPathTracingMissReturnsBackground(t *testing.T) {
	integrator := newTestIntegrator(10)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -3), 1, absorber{}))

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"Straight up", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"Straight down", core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)},
		{"Horizon", core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.direction)
			got := integrator.RayColor(ray, world, sampler, 10)
			if got.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPathTracingAbsorptionIsBlack(t *testing.T) {
	integrator := newTestIntegrator(10)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -3), 1, absorber{}))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if c := integrator.RayColor(ray, world, sampler, 10); c != (core.Vec3{}) {
		t.Errorf("Expected black, got %v", c)
	}
}

func TestPathTracingAttenuationMultipliesBounce(t *testing.T) {
	attenuation := core.NewVec3(0.5, 0.5, 0.5)
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, skyward{attenuation: attenuation}))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	// One bounce then the sky straight above
	got := newTestIntegrator(2).RayColor(ray, world, sampler, 2)
	expected := core.NewVec3(0.25, 0.35, 0.5)
	if got.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	// Budget runs out before the scattered ray reaches the sky
	got = newTestIntegrator(1).RayColor(ray, world, sampler, 1)
	if got != (core.Vec3{}) {
		t.Errorf("Expected black with depth 1, got %v", got)
	}
}

func TestPathTracingWhiteDiffuseSphereIsDarkerThanSky(t *testing.T) {
	world := geometry.NewBVH([]geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertian(core.NewVec3(1, 1, 1))),
	})
	integrator := newTestIntegrator(50)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	const seeds = 20
	const samples = 200
	sum := core.Vec3{}
	for seed := int64(0); seed < seeds; seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		for i := 0; i < samples; i++ {
			sum = sum.Add(integrator.RayColor(ray, world, sampler, 50))
		}
	}
	avg := sum.Divide(seeds * samples)

	// A white convex surface sees only sky, so it is never brighter than the brightest sky
	// and the cosine-weighted hemisphere at +Z averages close to the horizon color
	horizon := DefaultBackground().Evaluate(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)))
	if avg.X > 1+1e-9 || avg.Y > 1+1e-9 || avg.Z > 1+1e-9 {
		t.Errorf("Average %v exceeds the sky", avg)
	}
	if avg.Subtract(horizon).Length() > 0.05 {
		t.Errorf("Expected average near %v, got %v", horizon, avg)
	}
	if math.Abs(avg.Z-1) > 1e-9 {
		t.Errorf("Blue channel of a white surface under a blue-saturated sky should stay 1, got %f", avg.Z)
	}
}

func TestPathTracingZeroRadiusSphereShowsBackground(t *testing.T) {
	world := geometry.NewBVH([]geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, 0, 0), -0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	})
	integrator := newTestIntegrator(10)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	c := integrator.RayColor(ray, world, sampler, 10)
	if math.IsNaN(c.X) || math.IsNaN(c.Y) || math.IsNaN(c.Z) {
		t.Fatalf("Expected a finite color, got %v", c)
	}
	expected := DefaultBackground().Evaluate(ray)
	if c != expected {
		t.Errorf("Expected background %v, got %v", expected, c)
	}
}
