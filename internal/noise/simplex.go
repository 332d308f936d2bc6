package noise

import (
	"github.com/ojrac/opensimplex-go"
)

// Simplex is fractal OpenSimplex noise. Octave i is seeded with seed+i and
// contributes with amplitude persistence^i at frequency lacunarity^i.
type Simplex struct {
	seed    int64
	params  Params
	octaves []opensimplex.Noise
}

// NewSimplex creates a fractal simplex field.
func NewSimplex(seed int64, p Params) *Simplex {
	p = p.normalized()
	s := &Simplex{
		seed:    seed,
		params:  p,
		octaves: make([]opensimplex.Noise, p.Octaves),
	}
	for i := range s.octaves {
		s.octaves[i] = opensimplex.New(seed + int64(i))
	}
	return s
}

// Seed returns the seed the field was created with.
func (s *Simplex) Seed() int64 {
	return s.seed
}

// Sample evaluates the fractal sum at (x, z).
func (s *Simplex) Sample(x, z int) float64 {
	fx := float64(x) / s.params.Period
	fz := float64(z) / s.params.Period

	amp := 1.0
	norm := 1.0
	sum := s.octaves[0].Eval2(fx, fz)
	for i := 1; i < len(s.octaves); i++ {
		fx *= s.params.Lacunarity
		fz *= s.params.Lacunarity
		amp *= s.params.Persistence
		norm += amp
		sum += s.octaves[i].Eval2(fx, fz) * amp
	}
	return clamp(sum / norm)
}
