package physics

import (
	"testing"

	"gridterrain/internal/grid"

	"github.com/go-gl/mathgl/mgl32"
)

func makeGridForPhysics() *grid.Sparse {
	g := grid.NewSparse(1)
	// Build a simple wall
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			g.Set(x, y, 5, 0, 0)
		}
	}
	return g
}

func BenchmarkCollides(b *testing.B) {
	g := makeGridForPhysics()
	pos := mgl32.Vec3{4, 4, 4.5}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Collides(pos, 0.3, 1.8, g, 1)
	}
}

func BenchmarkRaycast(b *testing.B) {
	g := makeGridForPhysics()
	start := mgl32.Vec3{0, 8, 0}
	dir := mgl32.Vec3{0, 0, 1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Raycast(start, dir, MinReachDistance, MaxReachDistance, g, 1)
	}
}
