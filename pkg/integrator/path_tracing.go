package integrator

import (
	"fmt"
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
	"github.com/df07/weekend-raytracer/pkg/geometry"
)

// shadowAcneEpsilon keeps scattered rays from re-hitting the surface they leave
const shadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	config     core.SamplingConfig
	background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config core.SamplingConfig, background Background) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config:     config,
		background: background,
	}
}

// MaxDepth returns the configured bounce limit
func (pt *PathTracingIntegrator) MaxDepth() int {
	return pt.config.MaxDepth
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(shadowAcneEpsilon, math.Inf(1)))
	if !isHit {
		return pt.background.Evaluate(ray)
	}

	if hit.Material == nil {
		panic(fmt.Sprintf("integrator: hit at %v has no material", hit.Point))
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	return scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, sampler, depth-1))
}
