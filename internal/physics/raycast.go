package physics

import (
	"gridterrain/internal/grid"
	"gridterrain/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinReachDistance = 0.1
	MaxReachDistance = 5.0

	rayStep = float32(0.02)
)

// RaycastResult stores the result of a raycast operation
type RaycastResult struct {
	HitPosition      grid.Pos
	AdjacentPosition grid.Pos
	Distance         float32
	Hit              bool
}

// Raycast marches from start along direction and returns the first occupied
// cell between minDist and maxDist. Cells span [n, n+1) * cellSize on each axis.
func Raycast(start, direction mgl32.Vec3, minDist, maxDist float32, g grid.Grid, cellSize float32) RaycastResult {
	defer profiling.Track("physics.Raycast")()
	if cellSize <= 0 {
		cellSize = 1
	}
	steps := int(maxDist / rayStep)

	result := RaycastResult{}
	lastEmpty := grid.WorldToMap(start, cellSize)

	for i := 0; i <= steps; i++ {
		dist := float32(i) * rayStep
		if dist < minDist {
			continue
		}

		cell := grid.WorldToMap(start.Add(direction.Mul(dist)), cellSize)
		if grid.Occupied(g, cell.X, cell.Y, cell.Z) {
			result.HitPosition = cell
			result.AdjacentPosition = lastEmpty
			result.Distance = dist
			result.Hit = true
			return result
		}
		lastEmpty = cell
	}

	return result
}
