package physics_test

import (
	"testing"

	"gridterrain/internal/grid"
	"gridterrain/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRaycast(t *testing.T) {
	g := grid.NewSparse(1)

	// Place a block at (5, 0, 0)
	g.Set(5, 0, 0, 3, 0)

	// Test 1: Raycast hitting the block
	start := mgl32.Vec3{0.5, 0.5, 0.5}
	dir := mgl32.Vec3{1, 0, 0}
	minDist := float32(0.1)
	maxDist := float32(10.0)

	result := physics.Raycast(start, dir, minDist, maxDist, g, 1)

	if !result.Hit {
		t.Fatalf("Expected hit, got miss")
	}
	if result.HitPosition != (grid.Pos{X: 5}) {
		t.Errorf("Expected hit at {5,0,0}, got %v", result.HitPosition)
	}
	if result.AdjacentPosition != (grid.Pos{X: 4}) {
		t.Errorf("Expected adjacent at {4,0,0}, got %v", result.AdjacentPosition)
	}
	// Ray starts at X=0.5 and enters the cell at X=5.0. One step of slack.
	if result.Distance < 4.49 || result.Distance > 4.53 {
		t.Errorf("Expected distance 4.5, got %f", result.Distance)
	}

	// Test 2: Raycast missing (max dist)
	resultShort := physics.Raycast(start, dir, minDist, 4.0, g, 1)
	if resultShort.Hit {
		t.Errorf("Expected miss due to maxDist, got hit at %v", resultShort.HitPosition)
	}

	// Test 3: Raycast missing (wrong direction)
	resultWrong := physics.Raycast(start, mgl32.Vec3{0, 1, 0}, minDist, maxDist, g, 1)
	if resultWrong.Hit {
		t.Errorf("Expected miss, got hit")
	}

	// Test 4: diagonal ray reaches (2,2,2)
	g.Set(2, 2, 2, 3, 0)
	dirDiag := mgl32.Vec3{1, 1, 1}.Normalize()
	resultDiag := physics.Raycast(start, dirDiag, minDist, maxDist, g, 1)
	if !resultDiag.Hit {
		t.Errorf("Expected hit at {2,2,2}, got miss")
	} else if resultDiag.HitPosition != (grid.Pos{X: 2, Y: 2, Z: 2}) {
		t.Errorf("Expected hit at {2,2,2}, got %v", resultDiag.HitPosition)
	}
}

func TestRaycastScaledCells(t *testing.T) {
	g := grid.NewSparse(2)
	g.Set(0, 0, 3, 1, 0)

	// Cell z=3 spans world z [6, 8)
	result := physics.Raycast(mgl32.Vec3{1, 1, 0}, mgl32.Vec3{0, 0, 1}, 0, 10, g, 2)
	if !result.Hit {
		t.Fatalf("Expected hit")
	}
	if result.HitPosition != (grid.Pos{Z: 3}) {
		t.Errorf("Expected hit at {0,0,3}, got %v", result.HitPosition)
	}
	if result.AdjacentPosition != (grid.Pos{Z: 2}) {
		t.Errorf("Expected adjacent at {0,0,2}, got %v", result.AdjacentPosition)
	}
}

func TestRaycastLookingDownHitsFloorTop(t *testing.T) {
	g := grid.NewSparse(1)
	g.Set(0, 12, 0, 0, 0)

	result := physics.Raycast(mgl32.Vec3{0.5, 14.5, 0.5}, mgl32.Vec3{0, -1, 0}, 0.1, 5, g, 1)
	if !result.Hit {
		t.Fatalf("Expected hit")
	}
	if result.HitPosition != (grid.Pos{Y: 12}) {
		t.Errorf("Expected floor hit, got %v", result.HitPosition)
	}
	if want := (grid.Pos{Y: 13}); result.AdjacentPosition != want {
		t.Errorf("Expected adjacent %v, got %v", want, result.AdjacentPosition)
	}
}
