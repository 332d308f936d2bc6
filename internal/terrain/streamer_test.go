package terrain

import (
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"gridterrain/internal/grid"
)

func TestNeedsRegenerationAtMargin(t *testing.T) {
	s := DefaultStreamer()
	c := NewChunk(NewBounds(-32, 32, -32, 32))

	tests := []struct {
		name string
		pos  mgl32.Vec3
		want bool
	}{
		{"center", mgl32.Vec3{0, 10, 0}, false},
		{"min x margin-1", mgl32.Vec3{-17, 0, 0}, true},
		{"min x margin+1", mgl32.Vec3{-15, 0, 0}, false},
		{"max x margin-1", mgl32.Vec3{17, 0, 0}, true},
		{"max x margin+1", mgl32.Vec3{15, 0, 0}, false},
		{"min z margin-1", mgl32.Vec3{0, 0, -17}, true},
		{"min z margin+1", mgl32.Vec3{0, 0, -15}, false},
		{"max z margin-1", mgl32.Vec3{0, 0, 17}, true},
		{"max z margin+1", mgl32.Vec3{0, 0, 15}, false},
		{"exactly margin", mgl32.Vec3{16, 0, -16}, false},
		{"outside", mgl32.Vec3{500, 0, 0}, true},
		{"fraction truncates", mgl32.Vec3{16.9, 0, 0}, false},
	}
	for _, tt := range tests {
		if got := s.NeedsRegeneration(c, tt.pos); got != tt.want {
			t.Errorf("%s: NeedsRegeneration(%v) = %v, want %v", tt.name, tt.pos, got, tt.want)
		}
	}
}

func TestShiftChunkPreservesCustomBlocks(t *testing.T) {
	s := DefaultStreamer()
	old := s.InitialChunk()
	old.Heights = []grid.Pos{{X: 0, Y: 1, Z: 0}}
	old.InsertBlock(grid.Pos{X: 1, Y: 2, Z: 3}, 4)
	old.InsertBlock(grid.Pos{X: -100, Y: 2, Z: 3}, 5)
	old.InsertBlock(grid.Pos{X: 1, Y: 2, Z: 3}, 6)

	next := s.ShiftChunk(old, 40, -8)

	if !slices.Equal(next.CustomBlocks, old.CustomBlocks) {
		t.Errorf("Expected custom blocks carried in order, got %v", next.CustomBlocks)
	}
	want := Bounds{MinX: 8, MaxX: 72, MinZ: -40, MaxZ: 24}
	if next.Bounds != want {
		t.Errorf("Expected bounds %v, got %v", want, next.Bounds)
	}
	if len(next.Heights) != 0 {
		t.Errorf("Expected empty height column, got %d points", len(next.Heights))
	}

	// The new chunk owns its own list
	next.InsertBlock(grid.Pos{}, 1)
	if len(old.CustomBlocks) != 3 {
		t.Errorf("Expected old chunk untouched, got %d blocks", len(old.CustomBlocks))
	}
}

func TestNewBoundsPanicsOnMalformed(t *testing.T) {
	cases := [][4]int{
		{0, 0, 0, 1},
		{5, 1, 0, 1},
		{0, 1, 3, 3},
	}
	for _, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for bounds %v", c)
				}
			}()
			NewBounds(c[0], c[1], c[2], c[3])
		}()
	}
}

func TestChunkPruneAndReplace(t *testing.T) {
	c := NewChunk(NewBounds(0, 10, 0, 10))
	c.InsertBlock(grid.Pos{X: 1, Y: 0, Z: 1}, 4)
	c.InsertBlock(grid.Pos{X: 11, Y: 0, Z: 1}, 4)
	c.InsertBlock(grid.Pos{X: 10, Y: 0, Z: 10}, 4)

	if n := c.PruneOutside(); n != 1 {
		t.Errorf("Expected 1 pruned block, got %d", n)
	}
	if len(c.CustomBlocks) != 2 {
		t.Fatalf("Expected 2 blocks left, got %d", len(c.CustomBlocks))
	}

	c.ReplaceBlock(grid.Pos{X: 1, Y: 0, Z: 1}, 7)
	if len(c.CustomBlocks) != 2 {
		t.Errorf("Expected replace to keep count at 2, got %d", len(c.CustomBlocks))
	}
	last := c.CustomBlocks[len(c.CustomBlocks)-1]
	if last.Pos != (grid.Pos{X: 1, Y: 0, Z: 1}) || last.Item != 7 {
		t.Errorf("Expected replaced block appended last, got %+v", last)
	}
}
