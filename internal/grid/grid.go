package grid

// Empty is the item id reported for cells that hold nothing. Hosts that
// speak the engine's grid API expect it in place of an item.
const Empty = -1

// Pos is an integer cell coordinate.
type Pos struct {
	X, Y, Z int
}

// Add returns p offset by (dx, dy, dz).
func (p Pos) Add(dx, dy, dz int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

// Cell is the content of one occupied grid cell.
type Cell struct {
	Item        int
	Orientation int
}

// Grid is the voxel storage the terrain writes into. It is owned by the
// host; callers never assume they are its only user across frames.
type Grid interface {
	// Set writes item with the given orientation at (x, y, z). A negative
	// item clears the cell.
	Set(x, y, z, item, orientation int)
	// Cell returns the content at (x, y, z) and whether the cell is occupied.
	Cell(x, y, z int) (Cell, bool)
	// Clear empties the whole grid.
	Clear()
}

// Item returns the item id at (x, y, z), or Empty.
func Item(g Grid, x, y, z int) int {
	c, ok := g.Cell(x, y, z)
	if !ok {
		return Empty
	}
	return c.Item
}

// Occupied reports whether (x, y, z) holds any item.
func Occupied(g Grid, x, y, z int) bool {
	_, ok := g.Cell(x, y, z)
	return ok
}
