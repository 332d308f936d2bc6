package terrain

import (
	"gridterrain/internal/grid"
)

// Item ids written by generation.
const (
	FloorItem = 0
	// BuildItem is what the player places in build mode.
	BuildItem = 4
)

// Neighbor items up to this id count as a short wall.
const lowWallMax = 10

// side is the state of one cardinal neighbor.
type side uint8

const (
	sideOpen side = iota
	sideLow
	sideOther
)

func sideOf(g grid.Grid, x, y, z int) side {
	c, ok := g.Cell(x, y, z)
	switch {
	case !ok:
		return sideOpen
	case c.Item >= 0 && c.Item <= lowWallMax:
		return sideLow
	default:
		return sideOther
	}
}

// wallPattern is (ant_x, pos_x, ant_z, pos_z).
type wallPattern [4]side

// Tile is an item with its grid orientation.
type Tile struct {
	Item        int
	Orientation int
}

// wallTiles maps neighbor patterns to wall variants. The values are fixed by
// the mesh library; changing any entry changes the shape of existing worlds.
var wallTiles = map[wallPattern]Tile{
	{sideLow, sideOpen, sideOpen, sideOpen}: {3, 19},
	{sideOpen, sideLow, sideOpen, sideOpen}: {3, 16},
	{sideOpen, sideOpen, sideLow, sideOpen}: {3, 4},
	{sideOpen, sideOpen, sideOpen, sideLow}: {3, 0},

	{sideLow, sideLow, sideOpen, sideOpen}: {2, 0},
	{sideLow, sideOpen, sideLow, sideOpen}: {2, 4},
	{sideLow, sideOpen, sideOpen, sideLow}: {2, 0},
	{sideOpen, sideLow, sideLow, sideOpen}: {2, 5},
	{sideOpen, sideLow, sideOpen, sideLow}: {2, 1},
	{sideOpen, sideOpen, sideLow, sideLow}: {2, 0},

	{sideOpen, sideLow, sideLow, sideLow}: {1, 1},
	{sideLow, sideOpen, sideLow, sideLow}: {1, 0},
	{sideLow, sideLow, sideOpen, sideLow}: {1, 13},
	{sideLow, sideLow, sideLow, sideOpen}: {1, 5},

	{sideOpen, sideOpen, sideOpen, sideOpen}: {4, 0},
}

// classifyWall returns the wall tile for a neighbor pattern, if any.
func classifyWall(p wallPattern) (Tile, bool) {
	t, ok := wallTiles[p]
	return t, ok
}
