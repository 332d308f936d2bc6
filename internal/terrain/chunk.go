package terrain

import (
	"fmt"
	"slices"

	"gridterrain/internal/grid"
)

// Bounds is the chunk footprint in cell units. Generation covers
// [MinX, MaxX) × [MinZ, MaxZ).
type Bounds struct {
	MinX, MaxX int
	MinZ, MaxZ int
}

// NewBounds validates and returns a footprint. Empty or inverted ranges are
// programming errors and panic.
func NewBounds(minX, maxX, minZ, maxZ int) Bounds {
	b := Bounds{MinX: minX, MaxX: maxX, MinZ: minZ, MaxZ: maxZ}
	b.mustValid()
	return b
}

// Centered returns [cx-radius, cx+radius) × [cz-radius, cz+radius).
func Centered(cx, cz, radius int) Bounds {
	return NewBounds(cx-radius, cx+radius, cz-radius, cz+radius)
}

func (b Bounds) mustValid() {
	if b.MinX >= b.MaxX || b.MinZ >= b.MaxZ {
		panic(fmt.Sprintf("terrain: malformed bounds %v", b))
	}
}

// Area is the number of columns in the footprint.
func (b Bounds) Area() int {
	return (b.MaxX - b.MinX) * (b.MaxZ - b.MinZ)
}

// Contains reports whether column (x, z) is generated for this footprint.
func (b Bounds) Contains(x, z int) bool {
	return x >= b.MinX && x < b.MaxX && z >= b.MinZ && z < b.MaxZ
}

// Covers is the custom block check; both max edges are included.
func (b Bounds) Covers(x, z int) bool {
	return x >= b.MinX && x <= b.MaxX && z >= b.MinZ && z <= b.MaxZ
}

func (b Bounds) String() string {
	return fmt.Sprintf("x[%d,%d) z[%d,%d)", b.MinX, b.MaxX, b.MinZ, b.MaxZ)
}

// CustomBlock is a placed override that survives regeneration.
type CustomBlock struct {
	Pos  grid.Pos
	Item int
}

// Chunk is the generated window of terrain currently materialized in the grid.
type Chunk struct {
	Bounds Bounds

	// Heights holds one floor point per column, x-major then z.
	Heights []grid.Pos

	// CustomBlocks keeps insertion order; positions may repeat.
	CustomBlocks []CustomBlock
}

// NewChunk creates an ungenerated chunk.
func NewChunk(b Bounds) *Chunk {
	b.mustValid()
	return &Chunk{Bounds: b}
}

// InsertBlock records an override. The grid is untouched until Redraw.
func (c *Chunk) InsertBlock(pos grid.Pos, item int) {
	c.CustomBlocks = append(c.CustomBlocks, CustomBlock{Pos: pos, Item: item})
}

// ReplaceBlock drops earlier overrides at pos, then records the new one.
func (c *Chunk) ReplaceBlock(pos grid.Pos, item int) {
	c.CustomBlocks = slices.DeleteFunc(c.CustomBlocks, func(b CustomBlock) bool {
		return b.Pos == pos
	})
	c.InsertBlock(pos, item)
}

// PruneOutside drops overrides whose column the bounds no longer cover and
// returns how many were removed.
func (c *Chunk) PruneOutside() int {
	before := len(c.CustomBlocks)
	c.CustomBlocks = slices.DeleteFunc(c.CustomBlocks, func(b CustomBlock) bool {
		return !c.Bounds.Covers(b.Pos.X, b.Pos.Z)
	})
	return before - len(c.CustomBlocks)
}
