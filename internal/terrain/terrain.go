package terrain

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"reflect"

	"github.com/go-gl/mathgl/mgl32"

	"gridterrain/internal/grid"
	"gridterrain/internal/noise"
)

// MaxSeed bounds randomly chosen seeds to [0, MaxSeed).
const MaxSeed = 75_000_000

// ErrUnavailable is returned when a collaborator the terrain needs is missing.
var ErrUnavailable = errors.New("terrain: collaborator unavailable")

// PositionSource supplies the position the chunk window follows. It is
// polled; the terrain never receives pushes.
type PositionSource interface {
	Position() mgl32.Vec3
}

// Options tunes a Terrain.
type Options struct {
	Seed     int64
	Streamer Streamer
	CellSize float32

	// PruneCustomBlocks drops overrides outside the new bounds on shift.
	PruneCustomBlocks bool
	// DedupeCustomBlocks replaces earlier overrides at the same position.
	DedupeCustomBlocks bool
}

// RandomSeed picks a seed in [0, MaxSeed).
func RandomSeed() int64 {
	return rand.Int64N(MaxSeed)
}

// Terrain owns the active chunk and the tracked position. It is driven by
// host callbacks and is not safe for concurrent use.
type Terrain struct {
	grid   grid.Grid
	field  noise.Field
	source PositionSource
	opts   Options
	log    *slog.Logger

	chunk    *Chunk
	position mgl32.Vec3
	shifts   int
}

// missing reports a nil collaborator, including a nil pointer, map or func
// stored in a non-nil interface.
func missing(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// New wires a terrain to its collaborators. The field must already be
// seeded with opts.Seed. A nil collaborator, typed or not, gives
// ErrUnavailable.
func New(g grid.Grid, f noise.Field, source PositionSource, opts Options, log *slog.Logger) (*Terrain, error) {
	switch {
	case missing(g):
		return nil, fmt.Errorf("%w: grid", ErrUnavailable)
	case missing(f):
		return nil, fmt.Errorf("%w: noise field", ErrUnavailable)
	case missing(source):
		return nil, fmt.Errorf("%w: position source", ErrUnavailable)
	}
	if opts.Streamer.Radius <= 0 {
		opts.Streamer = DefaultStreamer()
	}
	if opts.CellSize <= 0 {
		opts.CellSize = 1
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Terrain{
		grid:   g,
		field:  f,
		source: source,
		opts:   opts,
		log:    log,
		chunk:  opts.Streamer.InitialChunk(),
	}, nil
}

// Ready generates the initial chunk around the origin.
func (t *Terrain) Ready() {
	t.log.Info("terrain ready", "seed", t.opts.Seed, "bounds", t.chunk.Bounds.String())
	Generate(t.grid, t.chunk, t.field)
}

// OnTick records the tracked position.
func (t *Terrain) OnTick(float64) {
	t.position = t.source.Position()
}

// OnPhysicsTick does nothing; terrain work happens on the timer.
func (t *Terrain) OnPhysicsTick(float64) {}

// OnTimer runs the boundary check.
func (t *Terrain) OnTimer() {
	t.CheckBoundary()
}

// CheckBoundary shifts and regenerates the chunk when the tracked position
// is inside the margin. It reports whether a shift happened.
func (t *Terrain) CheckBoundary() bool {
	pos := t.source.Position()
	shifted := false
	if t.opts.Streamer.NeedsRegeneration(t.chunk, pos) {
		cell := grid.WorldToMap(pos, t.opts.CellSize)
		t.shift(cell.X, cell.Z)
		shifted = true
	}
	t.position = pos
	return shifted
}

func (t *Terrain) shift(cx, cz int) {
	next := t.opts.Streamer.ShiftChunk(t.chunk, cx, cz)
	pruned := 0
	if t.opts.PruneCustomBlocks {
		pruned = next.PruneOutside()
	}
	t.chunk = next
	Generate(t.grid, t.chunk, t.field)
	Redraw(t.grid, t.chunk)
	t.shifts++

	t.log.Info("chunk shifted",
		"bounds", next.Bounds.String(),
		"custom_blocks", len(next.CustomBlocks),
		"pruned", pruned)
}

// PlaceBlock records a custom block and redraws overrides.
func (t *Terrain) PlaceBlock(pos grid.Pos, item int) {
	if t.opts.DedupeCustomBlocks {
		t.chunk.ReplaceBlock(pos, item)
	} else {
		t.chunk.InsertBlock(pos, item)
	}
	Redraw(t.grid, t.chunk)
	t.log.Debug("block placed", "pos", pos, "item", item)
}

// Chunk returns the active chunk.
func (t *Terrain) Chunk() *Chunk {
	return t.chunk
}

// Position returns the last polled tracked position.
func (t *Terrain) Position() mgl32.Vec3 {
	return t.position
}

// Seed returns the seed the noise field was created with.
func (t *Terrain) Seed() int64 {
	return t.opts.Seed
}

// Shifts returns how many times the chunk window has moved.
func (t *Terrain) Shifts() int {
	return t.shifts
}
