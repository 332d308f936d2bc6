package player

import (
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"

	"gridterrain/internal/grid"
	"gridterrain/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	EyeHeight = 1.62
	Width     = 0.6
	Height    = 1.8

	Gravity         = 20.0
	Speed           = 8.0
	AngularVelocity = 30.0
	AccelDefault    = 10.0
	AccelAir        = 1.0
	Jump            = 10.0

	MouseSensitivity = 0.25 // degrees per pixel
	MaxPitch         = 89.0 // degrees

	// SmoothingFactor scales dt for camera and graphics interpolation.
	SmoothingFactor = 0.25
)

// Tool is the active click mode.
type Tool int

const (
	ToolMine Tool = iota
	ToolBuild
)

func (t Tool) String() string {
	if t == ToolBuild {
		return "build"
	}
	return "mine"
}

// Animation is the body animation being played.
type Animation int

const (
	AnimIdle Animation = iota
	AnimRun
	AnimJumpUp
)

func (a Animation) String() string {
	switch a {
	case AnimRun:
		return "Run"
	case AnimJumpUp:
		return "JumpUp"
	default:
		return "Idle"
	}
}

// Builder receives blocks placed with the build tool.
type Builder interface {
	PlaceBlock(pos grid.Pos, item int)
}

// Options wires a Player to its collaborators.
type Options struct {
	Body     Body
	Input    *input.Manager
	Grid     grid.Grid
	CellSize float32
	Builder  Builder

	// FrameRate and PhysicsRate decide whether camera smoothing is on.
	FrameRate   float64
	PhysicsRate float64

	Rand *rand.Rand
	Log  *slog.Logger
}

type Player struct {
	Body Body

	// Yaw is the body rotation around Y, Pitch the head rotation around X.
	// Both in radians; -Z is forward at zero yaw.
	Yaw   float32
	Pitch float32

	// Smoothed camera base and visual body, driven by OnTick.
	CamBase        mgl32.Vec3
	CamYaw         float32
	CamPitch       float32
	GraphicsOrigin mgl32.Vec3
	GraphicsYaw    float32

	Tool      Tool
	Animation Animation
	Bag       *Bag

	velocity   mgl32.Vec3
	gravityVec mgl32.Vec3
	direction  mgl32.Vec3
	snap       mgl32.Vec3
	accel      float32

	input    *input.Manager
	grid     grid.Grid
	cellSize float32
	builder  Builder

	frameRate   float64
	physicsRate float64

	rng *rand.Rand
	log *slog.Logger
}

func New(opts Options) (*Player, error) {
	switch {
	case opts.Body == nil:
		return nil, errors.New("player: body is required")
	case opts.Input == nil:
		return nil, errors.New("player: input manager is required")
	case opts.Grid == nil:
		return nil, errors.New("player: grid is required")
	}
	if opts.CellSize <= 0 {
		opts.CellSize = 1
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Log == nil {
		opts.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	p := &Player{
		Body:        opts.Body,
		Bag:         NewBag(),
		accel:       AccelDefault,
		input:       opts.Input,
		grid:        opts.Grid,
		cellSize:    opts.CellSize,
		builder:     opts.Builder,
		frameRate:   opts.FrameRate,
		physicsRate: opts.PhysicsRate,
		rng:         opts.Rand,
		log:         opts.Log,
	}
	p.CamBase = p.HeadPosition()
	p.GraphicsOrigin = p.Body.Position()
	return p, nil
}

// Position is the body position; it makes the player a terrain position source.
func (p *Player) Position() mgl32.Vec3 {
	return p.Body.Position()
}

// HeadPosition is where the camera and the interaction ray start.
func (p *Player) HeadPosition() mgl32.Vec3 {
	return p.Body.Position().Add(mgl32.Vec3{0, EyeHeight, 0})
}

// LookDirection is the unit vector the head faces.
func (p *Player) LookDirection() mgl32.Vec3 {
	rot := mgl32.Rotate3DY(p.Yaw).Mul3(mgl32.Rotate3DX(p.Pitch))
	return rot.Mul3x1(mgl32.Vec3{0, 0, -1}).Normalize()
}

// Direction is the normalized horizontal movement direction of the last
// physics tick, zero when standing still.
func (p *Player) Direction() mgl32.Vec3 {
	return p.direction
}

// Velocity is the horizontal velocity before gravity is added.
func (p *Player) Velocity() mgl32.Vec3 {
	return p.velocity
}

// OnTick runs once per rendered frame.
func (p *Player) OnTick(dt float64) {
	if p.input.JustPressed(input.ActionEditorMode) {
		p.ToggleTool()
	}
	if dx, dy := p.input.MouseDelta(); dx != 0 || dy != 0 {
		p.Look(dx, dy)
	}
	p.updateCamera(float32(dt))
}

// OnPhysicsTick runs once per fixed physics step.
func (p *Player) OnPhysicsTick(dt float64) {
	p.move(float32(dt))
	if p.input.ConsumeJustPressed(input.ActionMouseClickLeft) {
		p.Click()
	}
}

// OnTimer does nothing for the player.
func (p *Player) OnTimer() {}

// ToggleTool switches between mine and build.
func (p *Player) ToggleTool() {
	if p.Tool == ToolMine {
		p.Tool = ToolBuild
	} else {
		p.Tool = ToolMine
	}
}
