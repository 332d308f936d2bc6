package physics

import (
	"math"

	"gridterrain/internal/grid"

	"github.com/go-gl/mathgl/mgl32"
)

// groundScanDepth limits how many cells GroundLevel walks down.
const groundScanDepth = 64

func cellRange(lo, hi, cellSize float32) (int, int) {
	return int(math.Floor(float64(lo / cellSize))), int(math.Floor(float64(hi / cellSize)))
}

// Collides reports whether a box of the given half-width and height, standing
// with its feet at pos, overlaps any occupied cell.
func Collides(pos mgl32.Vec3, halfWidth, height float32, g grid.Grid, cellSize float32) bool {
	if cellSize <= 0 {
		cellSize = 1
	}
	// Shrink slightly so a box resting on a face does not count as inside.
	const eps = 1e-4
	minX, maxX := cellRange(pos.X()-halfWidth+eps, pos.X()+halfWidth-eps, cellSize)
	minY, maxY := cellRange(pos.Y()+eps, pos.Y()+height-eps, cellSize)
	minZ, maxZ := cellRange(pos.Z()-halfWidth+eps, pos.Z()+halfWidth-eps, cellSize)

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				if grid.Occupied(g, x, y, z) {
					return true
				}
			}
		}
	}
	return false
}

// GroundLevel finds the top surface of the highest occupied cell under a box
// of the given half-width, scanning down from fromY. ok is false when the
// column is empty within the scan depth.
func GroundLevel(x, z, halfWidth, fromY float32, g grid.Grid, cellSize float32) (level float32, ok bool) {
	if cellSize <= 0 {
		cellSize = 1
	}
	minX, maxX := cellRange(x-halfWidth, x+halfWidth, cellSize)
	minZ, maxZ := cellRange(z-halfWidth, z+halfWidth, cellSize)
	top := int(math.Floor(float64(fromY / cellSize)))

	best := math.MinInt
	for bx := minX; bx <= maxX; bx++ {
		for bz := minZ; bz <= maxZ; bz++ {
			for by := top; by > top-groundScanDepth && by > best; by-- {
				if grid.Occupied(g, bx, by, bz) {
					best = by
					break
				}
			}
		}
	}
	if best == math.MinInt {
		return 0, false
	}
	return float32(best+1) * cellSize, true
}
