package material

import (
	"math"

	"github.com/df07/weekend-raytracer/pkg/core"
)

const perlinPointCount = 256

// Perlin generates smooth lattice noise from a table of random values
// indexed through three independent permutations.
type Perlin struct {
	randFloat [perlinPointCount]float64
	permX     [perlinPointCount]int
	permY     [perlinPointCount]int
	permZ     [perlinPointCount]int
}

// NewPerlin creates a noise generator whose tables are drawn from sampler.
// The same sampler sequence always yields the same noise field.
func NewPerlin(sampler core.Sampler) *Perlin {
	p := &Perlin{}
	for i := range p.randFloat {
		p.randFloat[i] = sampler.Get1D()
	}
	generatePerm(&p.permX, sampler)
	generatePerm(&p.permY, sampler)
	generatePerm(&p.permZ, sampler)
	return p
}

// Noise returns a smoothly varying value in [0, 1] for point
func (p *Perlin) Noise(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	// Hermite smoothing removes grid artifacts at cell boundaries
	u = u * u * (3 - 2*u)
	v = v * v * (3 - 2*v)
	w = w * w * (3 - 2*w)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]float64
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.randFloat[p.permX[(i+di)&255]^p.permY[(j+dj)&255]^p.permZ[(k+dk)&255]]
			}
		}
	}

	return trilinearInterp(&c, u, v, w)
}

// Turbulence sums depth octaves of noise, each at double the frequency and half the weight
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	temp := point
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(temp)
		weight *= 0.5
		temp = temp.Multiply(2)
	}

	return math.Abs(accum)
}

// generatePerm fills perm with 0..n-1 and shuffles it in place (Fisher-Yates)
func generatePerm(perm *[perlinPointCount]int, sampler core.Sampler) {
	for i := range perm {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		target := int(sampler.Get1D() * float64(i+1))
		if target > i {
			target = i
		}
		perm[i], perm[target] = perm[target], perm[i]
	}
}

func trilinearInterp(c *[2][2][2]float64, u, v, w float64) float64 {
	accum := 0.0
	for i := 0; i < 2; i++ {
		fi := float64(i)
		for j := 0; j < 2; j++ {
			fj := float64(j)
			for k := 0; k < 2; k++ {
				fk := float64(k)
				accum += (fi*u + (1-fi)*(1-u)) *
					(fj*v + (1-fj)*(1-v)) *
					(fk*w + (1-fk)*(1-w)) *
					c[i][j][k]
			}
		}
	}
	return accum
}
