package noise

import (
	"github.com/aquilax/go-perlin"
)

const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
)

// Perlin wraps classic Perlin noise; octaves map to the generator's
// iteration count.
type Perlin struct {
	gen    *perlin.Perlin
	period float64
}

// NewPerlin creates a Perlin field.
func NewPerlin(seed int64, p Params) *Perlin {
	p = p.normalized()
	return &Perlin{
		gen:    perlin.NewPerlin(perlinAlpha, perlinBeta, int32(p.Octaves), seed),
		period: p.Period,
	}
}

// Sample evaluates the noise at (x, z).
func (p *Perlin) Sample(x, z int) float64 {
	return clamp(p.gen.Noise2D(float64(x)/p.period, float64(z)/p.period))
}
