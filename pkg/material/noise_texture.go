package material

import (
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
)

// NoiseStyle selects how a NoiseTexture turns Perlin noise into a color
type NoiseStyle int

const (
	// NoiseSmooth is plain scaled noise
	NoiseSmooth NoiseStyle = iota
	// NoiseTurbulent sums several octaves of noise
	NoiseTurbulent
	// NoiseMarble phase-shifts a sine wave along Z with turbulence
	NoiseMarble
)

// String returns the style name
func (s NoiseStyle) String() string {
	switch s {
	case NoiseTurbulent:
		return "turbulent"
	case NoiseMarble:
		return "marble"
	default:
		return "smooth"
	}
}

const turbulenceDepth = 7

// NoiseTexture is a grey procedural texture driven by Perlin noise
type NoiseTexture struct {
	Noise *Perlin
	Scale float64 // Frequency multiplier applied to the hit point
	Style NoiseStyle
}

// NewNoiseTexture creates a smooth noise texture
func NewNoiseTexture(noise *Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{Noise: noise, Scale: scale, Style: NoiseSmooth}
}

// NewStyledNoiseTexture creates a noise texture with an explicit style
func NewStyledNoiseTexture(noise *Perlin, scale float64, style NoiseStyle) *NoiseTexture {
	return &NoiseTexture{Noise: noise, Scale: scale, Style: style}
}

// Evaluate returns white scaled by the noise value at point
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	white := core.NewVec3(1, 1, 1)

	switch n.Style {
	case NoiseTurbulent:
		return white.Multiply(n.Noise.Turbulence(point.Multiply(n.Scale), turbulenceDepth))
	case NoiseMarble:
		phase := n.Scale*point.Z + 10*n.Noise.Turbulence(point, turbulenceDepth)
		return white.Multiply(0.5 * (1 + math.Sin(phase)))
	default:
		return white.Multiply(n.Noise.Noise(point.Multiply(n.Scale)))
	}
}
