package game

import (
	"fmt"
	"io"
	"log/slog"

	"gridterrain/internal/config"
	"gridterrain/internal/grid"
	"gridterrain/internal/input"
	"gridterrain/internal/noise"
	"gridterrain/internal/physics"
	"gridterrain/internal/player"
	"gridterrain/internal/terrain"

	"github.com/go-gl/mathgl/mgl32"
)

// Session is a headless world: grid, terrain, one player and the loop that
// drives them.
type Session struct {
	Grid    *grid.Sparse
	Input   *input.Manager
	Body    *player.KinematicBody
	Terrain *terrain.Terrain
	Player  *player.Player
	Loop    *Loop

	Seed int64
	log  *slog.Logger
}

// NewSession builds every component from cfg, generates the first chunk and
// drops the player on the ground at the origin. Script events, if any, are
// replayed ahead of the player each frame.
func NewSession(cfg config.Config, events []Event, log *slog.Logger) (*Session, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	seed := cfg.Terrain.ResolveSeed()
	cellSize := cfg.Terrain.CellSize

	field, err := noise.New(cfg.Noise.Backend, seed, cfg.Noise.NoiseParams())
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	g := grid.NewSparse(cellSize)
	im := input.NewManager()
	if err := cfg.Input.Apply(im); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	body := player.NewKinematicBody(g, cellSize, mgl32.Vec3{0.5 * cellSize, 0, 0.5 * cellSize})

	t, err := terrain.New(g, field, body, cfg.Terrain.TerrainOptions(seed), log.With("component", "terrain"))
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	t.Ready()

	// Find ground level at the spawn column
	spawn := body.Position()
	top := float32(terrain.MaxHeight+2) * cellSize
	if ground, ok := physics.GroundLevel(spawn.X(), spawn.Z(), body.HalfWidth, top, g, cellSize); ok {
		spawn[1] = ground
	} else {
		spawn[1] = top
	}
	body.SetPosition(spawn)

	p, err := player.New(player.Options{
		Body:        body,
		Input:       im,
		Grid:        g,
		CellSize:    cellSize,
		Builder:     t,
		FrameRate:   float64(cfg.Loop.FrameRate),
		PhysicsRate: cfg.Loop.PhysicsRate,
		Log:         log.With("component", "player"),
	})
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	loop := NewLoop(cfg.Loop, log)
	if len(events) > 0 {
		loop.Add(NewScript(im, events))
	}
	loop.Add(p, t)
	loop.OnEndOfFrame(im.PostUpdate)

	return &Session{
		Grid:    g,
		Input:   im,
		Body:    body,
		Terrain: t,
		Player:  p,
		Loop:    loop,
		Seed:    seed,
		log:     log,
	}, nil
}

// Stats is a summary of a session for reporting.
type Stats struct {
	Seed         int64
	Frames       int
	PhysicsTicks int
	Shifts       int
	Cells        int
	CustomBlocks int
	BagItems     int
	Position     mgl32.Vec3
	Bounds       string
	// TopY is the world-space base of the highest occupied cell.
	TopY float32
}

// Stats reads the current counters of every component.
func (s *Session) Stats() Stats {
	var top float32
	for i, c := range s.Grid.ActiveCells() {
		if i == 0 || c.Y() > top {
			top = c.Y()
		}
	}
	return Stats{
		Seed:         s.Seed,
		Frames:       s.Loop.Frames(),
		PhysicsTicks: s.Loop.PhysicsTicks(),
		Shifts:       s.Terrain.Shifts(),
		Cells:        s.Grid.Len(),
		CustomBlocks: len(s.Terrain.Chunk().CustomBlocks),
		BagItems:     s.Player.Bag.Total(),
		Position:     s.Player.Position(),
		Bounds:       s.Terrain.Chunk().Bounds.String(),
		TopY:         top,
	}
}

// LogValue lets Stats be passed straight to slog.
func (st Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("seed", st.Seed),
		slog.Int("frames", st.Frames),
		slog.Int("physics_ticks", st.PhysicsTicks),
		slog.Int("shifts", st.Shifts),
		slog.Int("cells", st.Cells),
		slog.Int("custom_blocks", st.CustomBlocks),
		slog.Int("bag_items", st.BagItems),
		slog.String("bounds", st.Bounds),
		slog.Float64("top_y", float64(st.TopY)),
		slog.Any("position", st.Position),
	)
}
