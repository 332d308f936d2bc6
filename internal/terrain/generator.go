package terrain

import (
	"math"

	"gridterrain/internal/grid"
	"gridterrain/internal/noise"
	"gridterrain/internal/profiling"
)

// MaxHeight bounds generated floor heights to [0, MaxHeight).
const MaxHeight = 25

// GenerateHeightColumn samples one floor point per column of b, x-major.
// The result depends only on b and the field.
func GenerateHeightColumn(b Bounds, f noise.Field) []grid.Pos {
	defer profiling.Track("terrain.GenerateHeightColumn")()
	b.mustValid()

	points := make([]grid.Pos, 0, b.Area())
	for x := b.MinX; x < b.MaxX; x++ {
		for z := b.MinZ; z < b.MaxZ; z++ {
			points = append(points, grid.Pos{X: x, Y: heightAt(f, x, z), Z: z})
		}
	}
	return points
}

func heightAt(f noise.Field, x, z int) int {
	n := f.Sample(x, z)
	weight := (n + 1) / 2
	y := int(math.Floor(lerp(0, MaxHeight, weight)))
	return min(max(y, 0), MaxHeight-1)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// PlaceFloor writes a floor cell at every height point.
func PlaceFloor(g grid.Grid, heights []grid.Pos) {
	defer profiling.Track("terrain.PlaceFloor")()
	for _, p := range heights {
		g.Set(p.X, p.Y, p.Z, FloorItem, 0)
	}
}

// PlaceWalls replaces floor cells with wall variants chosen from their
// cardinal neighbors. Cells with anything directly above a cardinal neighbor
// are left as they are.
func PlaceWalls(g grid.Grid, heights []grid.Pos) {
	defer profiling.Track("terrain.PlaceWalls")()
	for _, p := range heights {
		x, y, z := p.X, p.Y, p.Z

		if grid.Occupied(g, x-1, y+1, z) || grid.Occupied(g, x+1, y+1, z) ||
			grid.Occupied(g, x, y+1, z-1) || grid.Occupied(g, x, y+1, z+1) {
			continue
		}

		pattern := wallPattern{
			sideOf(g, x-1, y, z),
			sideOf(g, x+1, y, z),
			sideOf(g, x, y, z-1),
			sideOf(g, x, y, z+1),
		}
		if tile, ok := classifyWall(pattern); ok {
			g.Set(x, y, z, tile.Item, tile.Orientation)
		}
	}
}

// ApplyCustomBlocks writes every override whose column b covers. The y
// coordinate is not checked and orientation is always 0.
func ApplyCustomBlocks(g grid.Grid, blocks []CustomBlock, b Bounds) {
	defer profiling.Track("terrain.ApplyCustomBlocks")()
	for _, cb := range blocks {
		if !b.Covers(cb.Pos.X, cb.Pos.Z) {
			continue
		}
		g.Set(cb.Pos.X, cb.Pos.Y, cb.Pos.Z, cb.Item, 0)
	}
}

// Generate clears g and rebuilds c from scratch: heights, floor, walls, then
// custom blocks.
func Generate(g grid.Grid, c *Chunk, f noise.Field) {
	defer profiling.Track("terrain.Generate")()
	g.Clear()
	c.Heights = GenerateHeightColumn(c.Bounds, f)
	PlaceFloor(g, c.Heights)
	PlaceWalls(g, c.Heights)
	ApplyCustomBlocks(g, c.CustomBlocks, c.Bounds)
}

// Redraw re-applies only the custom blocks of c.
func Redraw(g grid.Grid, c *Chunk) {
	ApplyCustomBlocks(g, c.CustomBlocks, c.Bounds)
}
