package physics_test

import (
	"testing"

	"gridterrain/internal/grid"
	"gridterrain/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCollides(t *testing.T) {
	g := grid.NewSparse(1)
	g.Set(0, 0, 0, 0, 0)

	tests := []struct {
		name string
		pos  mgl32.Vec3
		want bool
	}{
		{"standing on top", mgl32.Vec3{0.5, 1, 0.5}, false},
		{"sunk into cell", mgl32.Vec3{0.5, 0.5, 0.5}, true},
		{"beside cell", mgl32.Vec3{1.4, 0, 0.5}, false},
		{"overlapping side", mgl32.Vec3{1.2, 0, 0.5}, true},
		{"far away", mgl32.Vec3{10, 0, 10}, false},
	}
	for _, tt := range tests {
		if got := physics.Collides(tt.pos, 0.3, 1.8, g, 1); got != tt.want {
			t.Errorf("%s: Collides(%v) = %v, want %v", tt.name, tt.pos, got, tt.want)
		}
	}
}

func TestGroundLevel(t *testing.T) {
	g := grid.NewSparse(1)
	g.Set(0, 12, 0, 0, 0)
	g.Set(1, 14, 0, 0, 0)

	level, ok := physics.GroundLevel(0.5, 0.5, 0.1, 20, g, 1)
	if !ok || level != 13 {
		t.Errorf("Expected ground 13, got %v (ok=%v)", level, ok)
	}

	// Footprint straddles both columns; the higher one wins
	level, ok = physics.GroundLevel(0.95, 0.5, 0.1, 20, g, 1)
	if !ok || level != 15 {
		t.Errorf("Expected ground 15, got %v (ok=%v)", level, ok)
	}

	// Cells above fromY are ignored
	level, ok = physics.GroundLevel(1.5, 0.5, 0.1, 13.5, g, 1)
	if ok {
		t.Errorf("Expected no ground below 13.5, got %v", level)
	}

	_, ok = physics.GroundLevel(50, 50, 0.3, 20, g, 1)
	if ok {
		t.Errorf("Expected empty column")
	}
}

func TestGroundLevelScaled(t *testing.T) {
	g := grid.NewSparse(2)
	g.Set(0, 3, 0, 0, 0)

	level, ok := physics.GroundLevel(1, 1, 0.3, 20, g, 2)
	if !ok || level != 8 {
		t.Errorf("Expected ground 8, got %v (ok=%v)", level, ok)
	}
}
