// Package noise provides the seeded 2D fields terrain heights are sampled from.
package noise

import (
	"fmt"
)

// Field is a deterministic 2D function sampled once per grid column.
// Sample must return a value in [-1, 1] and must be pure for a fixed seed.
type Field interface {
	Sample(x, z int) float64
}

// Backend names accepted by New.
const (
	BackendSimplex  = "simplex"
	BackendPerlin   = "perlin"
	BackendValue    = "value"
	BackendConstant = "constant"
)

// Params holds the fractal settings shared by all backends.
type Params struct {
	Octaves     int
	Period      float64
	Persistence float64
	Lacunarity  float64
	// Value is the output of the constant backend.
	Value float64
}

// DefaultParams mirrors the engine's stock simplex settings.
func DefaultParams() Params {
	return Params{
		Octaves:     3,
		Period:      64,
		Persistence: 0.5,
		Lacunarity:  2,
	}
}

// New builds the named backend for seed.
func New(backend string, seed int64, p Params) (Field, error) {
	switch backend {
	case BackendSimplex, "":
		return NewSimplex(seed, p), nil
	case BackendPerlin:
		return NewPerlin(seed, p), nil
	case BackendValue:
		return NewValue(seed, p), nil
	case BackendConstant:
		return Constant(p.Value), nil
	default:
		return nil, fmt.Errorf("noise: unknown backend %q", backend)
	}
}

// Constant is a field with the same value everywhere.
type Constant float64

// Sample returns the constant, clamped to [-1, 1].
func (c Constant) Sample(int, int) float64 {
	return clamp(float64(c))
}

// Func adapts a plain function to Field. Results are clamped to [-1, 1].
type Func func(x, z int) float64

// Sample calls f.
func (f Func) Sample(x, z int) float64 {
	return clamp(f(x, z))
}

// normalized replaces unusable octave counts and periods with 1.
func (p Params) normalized() Params {
	if p.Octaves <= 0 {
		p.Octaves = 1
	}
	if p.Period <= 0 {
		p.Period = 1
	}
	return p
}

func clamp(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
