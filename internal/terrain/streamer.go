package terrain

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// ChunkRadius is the half-width of a chunk in cells.
	ChunkRadius = 32
	// RegenMargin is how close to an edge the tracked position may get
	// before the chunk is shifted.
	RegenMargin = 16
)

// Streamer decides when the chunk window moves and where it moves to.
type Streamer struct {
	Radius int
	Margin int
}

// DefaultStreamer uses ChunkRadius and RegenMargin.
func DefaultStreamer() Streamer {
	return Streamer{Radius: ChunkRadius, Margin: RegenMargin}
}

// InitialChunk is the chunk generated at startup, centered on the origin.
func (s Streamer) InitialChunk() *Chunk {
	return NewChunk(Centered(0, 0, s.Radius))
}

// NeedsRegeneration reports whether pos is closer than the margin to any
// edge of c. Positions are truncated toward zero.
func (s Streamer) NeedsRegeneration(c *Chunk, pos mgl32.Vec3) bool {
	x := int(pos.X())
	z := int(pos.Z())
	b := c.Bounds
	nearX := x-b.MinX < s.Margin || b.MaxX-x < s.Margin
	nearZ := z-b.MinZ < s.Margin || b.MaxZ-z < s.Margin
	return nearX || nearZ
}

// ShiftChunk returns a fresh chunk centered on cell (cx, cz) carrying the
// custom blocks of old in order. Heights are empty until Generate runs.
func (s Streamer) ShiftChunk(old *Chunk, cx, cz int) *Chunk {
	next := NewChunk(Centered(cx, cz, s.Radius))
	next.CustomBlocks = slices.Clone(old.CustomBlocks)
	return next
}
