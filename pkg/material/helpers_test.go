package material

import (
	"github.com/df07/weekend-raytracer/pkg/core"
)

// fixedSampler returns the same values on every call
type fixedSampler struct {
	value float64
	vec   core.Vec3
}

func (s fixedSampler) Get1D() float64   { return s.value }
func (s fixedSampler) Get2D() core.Vec2 { return core.NewVec2(s.value, s.value) }
func (s fixedSampler) Get3D() core.Vec3 { return s.vec }

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}
