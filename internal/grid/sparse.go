package grid

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sparse is an in-memory Grid keyed by cell coordinate. It stands in for
// the engine grid in headless runs and tests.
type Sparse struct {
	cells    map[Pos]Cell
	cellSize float32
	modCount uint64 // Increases on every effective write or clear
}

// NewSparse creates an empty grid whose cells measure cellSize world units
// along every axis. Non-positive sizes fall back to 1.
func NewSparse(cellSize float32) *Sparse {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Sparse{
		cells:    make(map[Pos]Cell),
		cellSize: cellSize,
	}
}

// Set writes a cell; a negative item removes it.
func (s *Sparse) Set(x, y, z, item, orientation int) {
	p := Pos{X: x, Y: y, Z: z}
	if item < 0 {
		if _, ok := s.cells[p]; ok {
			delete(s.cells, p)
			s.modCount++
		}
		return
	}
	next := Cell{Item: item, Orientation: orientation}
	if old, ok := s.cells[p]; ok && old == next {
		return
	}
	s.cells[p] = next
	s.modCount++
}

// Cell returns the cell at (x, y, z).
func (s *Sparse) Cell(x, y, z int) (Cell, bool) {
	c, ok := s.cells[Pos{X: x, Y: y, Z: z}]
	return c, ok
}

// Clear drops every cell.
func (s *Sparse) Clear() {
	if len(s.cells) == 0 {
		return
	}
	clear(s.cells)
	s.modCount++
}

// Len returns the number of occupied cells.
func (s *Sparse) Len() int {
	return len(s.cells)
}

// ModCount returns the modification counter.
func (s *Sparse) ModCount() uint64 {
	return s.modCount
}

// CellSize returns the edge length of one cell in world units.
func (s *Sparse) CellSize() float32 {
	return s.cellSize
}

// WorldToMap converts a world position into the cell containing it.
func (s *Sparse) WorldToMap(p mgl32.Vec3) Pos {
	return WorldToMap(p, s.cellSize)
}

// Snapshot returns a copy of all occupied cells.
func (s *Sparse) Snapshot() map[Pos]Cell {
	out := make(map[Pos]Cell, len(s.cells))
	for p, c := range s.cells {
		out[p] = c
	}
	return out
}

// ActiveCells returns world-space origins of all occupied cells.
func (s *Sparse) ActiveCells() []mgl32.Vec3 {
	positions := make([]mgl32.Vec3, 0, len(s.cells))
	for p := range s.cells {
		positions = append(positions, mgl32.Vec3{
			float32(p.X) * s.cellSize,
			float32(p.Y) * s.cellSize,
			float32(p.Z) * s.cellSize,
		})
	}
	return positions
}

// WorldToMap floors p / cellSize on every axis.
func WorldToMap(p mgl32.Vec3, cellSize float32) Pos {
	if cellSize <= 0 {
		cellSize = 1
	}
	return Pos{
		X: int(math.Floor(float64(p.X() / cellSize))),
		Y: int(math.Floor(float64(p.Y() / cellSize))),
		Z: int(math.Floor(float64(p.Z() / cellSize))),
	}
}
