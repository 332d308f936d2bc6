package terrain

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"gridterrain/internal/grid"
	"gridterrain/internal/noise"
)

type fixedSource struct {
	pos mgl32.Vec3
}

func (s *fixedSource) Position() mgl32.Vec3 {
	return s.pos
}

func newFlatTerrain(t *testing.T, opts Options) (*Terrain, *grid.Sparse, *fixedSource) {
	t.Helper()
	g := grid.NewSparse(1)
	src := &fixedSource{}
	tr, err := New(g, noise.Constant(0), src, opts, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tr.Ready()
	return tr, g, src
}

func TestNewReportsMissingCollaborators(t *testing.T) {
	g := grid.NewSparse(1)
	src := &fixedSource{}
	f := noise.Constant(0)

	if _, err := New(nil, f, src, Options{}, nil); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable for missing grid, got %v", err)
	}
	if _, err := New(g, nil, src, Options{}, nil); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable for missing noise, got %v", err)
	}
	if _, err := New(g, f, nil, Options{}, nil); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable for missing source, got %v", err)
	}

	var nilGrid *grid.Sparse
	if _, err := New(nilGrid, f, src, Options{}, nil); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable for typed nil grid, got %v", err)
	}
	var nilFunc noise.Func
	if _, err := New(g, nilFunc, src, Options{}, nil); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable for nil noise func, got %v", err)
	}
	var nilSource *fixedSource
	if _, err := New(g, f, nilSource, Options{}, nil); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable for typed nil source, got %v", err)
	}
}

func TestReadyGeneratesInitialChunk(t *testing.T) {
	tr, g, _ := newFlatTerrain(t, Options{})

	want := Bounds{MinX: -32, MaxX: 32, MinZ: -32, MaxZ: 32}
	if tr.Chunk().Bounds != want {
		t.Errorf("Expected initial bounds %v, got %v", want, tr.Chunk().Bounds)
	}
	if len(tr.Chunk().Heights) != 64*64 {
		t.Errorf("Expected %d height points, got %d", 64*64, len(tr.Chunk().Heights))
	}
	if !grid.Occupied(g, 0, 12, 0) {
		t.Errorf("Expected floor at (0,12,0)")
	}
}

func TestOnTickOnlyTracksPosition(t *testing.T) {
	tr, g, src := newFlatTerrain(t, Options{})
	before := g.ModCount()

	src.pos = mgl32.Vec3{30, 12, 30}
	tr.OnTick(0.016)
	tr.OnPhysicsTick(0.016)

	if tr.Position() != src.pos {
		t.Errorf("Expected tracked position %v, got %v", src.pos, tr.Position())
	}
	if g.ModCount() != before {
		t.Errorf("Expected no grid writes on tick")
	}
	if tr.Shifts() != 0 {
		t.Errorf("Expected no shift on tick")
	}
}

func TestTimerShiftsChunkAndKeepsCustomBlocks(t *testing.T) {
	tr, g, src := newFlatTerrain(t, Options{})
	tr.PlaceBlock(grid.Pos{X: 5, Y: 13, Z: 5}, BuildItem)
	if it := grid.Item(g, 5, 13, 5); it != BuildItem {
		t.Fatalf("Expected placed block drawn, got %d", it)
	}

	// Inside the margin: nothing happens
	src.pos = mgl32.Vec3{10, 12, 0}
	tr.OnTimer()
	if tr.Shifts() != 0 {
		t.Fatalf("Expected no shift at x=10")
	}

	src.pos = mgl32.Vec3{20.5, 12, 0}
	tr.OnTimer()
	if tr.Shifts() != 1 {
		t.Fatalf("Expected one shift, got %d", tr.Shifts())
	}
	want := Bounds{MinX: -12, MaxX: 52, MinZ: -32, MaxZ: 32}
	if tr.Chunk().Bounds != want {
		t.Errorf("Expected bounds %v, got %v", want, tr.Chunk().Bounds)
	}
	if tr.Position() != src.pos {
		t.Errorf("Expected tracked position updated on timer")
	}
	if it := grid.Item(g, 5, 13, 5); it != BuildItem {
		t.Errorf("Expected custom block redrawn after shift, got %d", it)
	}
	if grid.Occupied(g, -20, 12, 0) {
		t.Errorf("Expected old columns cleared after shift")
	}
	if !grid.Occupied(g, 51, 12, 0) {
		t.Errorf("Expected new columns generated after shift")
	}
}

func TestCellSizeMapsShiftCenter(t *testing.T) {
	g := grid.NewSparse(2)
	src := &fixedSource{pos: mgl32.Vec3{-21, 0, 0}}
	tr, err := New(g, noise.Constant(0), src, Options{CellSize: 2}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tr.Ready()
	if !tr.CheckBoundary() {
		t.Fatalf("Expected shift at x=-21")
	}
	// floor(-21 / 2) = -11
	if got := tr.Chunk().Bounds.MinX; got != -43 {
		t.Errorf("Expected MinX -43, got %d", got)
	}
}

func TestPruneCustomBlocksOnShift(t *testing.T) {
	tr, _, src := newFlatTerrain(t, Options{PruneCustomBlocks: true})
	tr.PlaceBlock(grid.Pos{X: -30, Y: 13, Z: 0}, BuildItem)
	tr.PlaceBlock(grid.Pos{X: 30, Y: 13, Z: 0}, BuildItem)

	src.pos = mgl32.Vec3{40, 12, 0}
	tr.OnTimer()

	blocks := tr.Chunk().CustomBlocks
	if len(blocks) != 1 || blocks[0].Pos.X != 30 {
		t.Errorf("Expected only the in-bounds block kept, got %+v", blocks)
	}
}

func TestCarryForwardWithoutPrune(t *testing.T) {
	tr, _, src := newFlatTerrain(t, Options{})
	tr.PlaceBlock(grid.Pos{X: -30, Y: 13, Z: 0}, BuildItem)

	src.pos = mgl32.Vec3{200, 12, 0}
	tr.OnTimer()

	if len(tr.Chunk().CustomBlocks) != 1 {
		t.Errorf("Expected out-of-bounds block carried forward, got %d", len(tr.Chunk().CustomBlocks))
	}
}

func TestDedupeCustomBlocks(t *testing.T) {
	tr, g, _ := newFlatTerrain(t, Options{DedupeCustomBlocks: true})
	p := grid.Pos{X: 1, Y: 13, Z: 1}
	tr.PlaceBlock(p, 4)
	tr.PlaceBlock(p, 6)
	if n := len(tr.Chunk().CustomBlocks); n != 1 {
		t.Errorf("Expected 1 custom block after dedupe, got %d", n)
	}
	if it := grid.Item(g, 1, 13, 1); it != 6 {
		t.Errorf("Expected latest item drawn, got %d", it)
	}
}

func TestRandomSeedRange(t *testing.T) {
	for range 100 {
		s := RandomSeed()
		if s < 0 || s >= MaxSeed {
			t.Fatalf("seed %d outside [0,%d)", s, MaxSeed)
		}
	}
}
