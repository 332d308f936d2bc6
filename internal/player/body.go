package player

import (
	"gridterrain/internal/grid"
	"gridterrain/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// Body is the physical representation the controller moves. A host engine
// supplies its own; KinematicBody covers headless runs.
type Body interface {
	Position() mgl32.Vec3
	// MoveAndSlide moves by velocity*dt, sliding along obstacles. A snap
	// vector pointing down keeps the body glued to the floor.
	MoveAndSlide(velocity, snap mgl32.Vec3, dt float32)
	IsOnFloor() bool
	FloorNormal() mgl32.Vec3
}

// KinematicBody is a box that walks over occupied grid cells. It steps up
// ledges no higher than StepHeight while on the floor.
type KinematicBody struct {
	pos      mgl32.Vec3
	onFloor  bool
	grid     grid.Grid
	cellSize float32

	HalfWidth  float32
	Height     float32
	StepHeight float32
}

func NewKinematicBody(g grid.Grid, cellSize float32, pos mgl32.Vec3) *KinematicBody {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &KinematicBody{
		pos:        pos,
		grid:       g,
		cellSize:   cellSize,
		HalfWidth:  Width / 2,
		Height:     Height,
		StepHeight: cellSize,
	}
}

func (b *KinematicBody) Position() mgl32.Vec3 { return b.pos }

func (b *KinematicBody) SetPosition(pos mgl32.Vec3) { b.pos = pos }

func (b *KinematicBody) IsOnFloor() bool { return b.onFloor }

// FloorNormal is always up; cell tops are flat.
func (b *KinematicBody) FloorNormal() mgl32.Vec3 { return mgl32.Vec3{0, 1, 0} }

func (b *KinematicBody) collides(pos mgl32.Vec3) bool {
	return physics.Collides(pos, b.HalfWidth, b.Height, b.grid, b.cellSize)
}

func (b *KinematicBody) MoveAndSlide(velocity, snap mgl32.Vec3, dt float32) {
	motion := velocity.Mul(dt)
	wasOnFloor := b.onFloor

	// Horizontal axes one at a time so the body slides along walls
	for axis := 0; axis <= 2; axis += 2 {
		if motion[axis] == 0 {
			continue
		}
		next := b.pos
		next[axis] += motion[axis]
		if !b.collides(next) {
			b.pos = next
			continue
		}
		if wasOnFloor && b.StepHeight > 0 {
			stepped := next.Add(mgl32.Vec3{0, b.StepHeight, 0})
			if !b.collides(stepped) {
				b.pos = stepped
			}
		}
	}

	// Vertical
	ny := b.pos.Y() + motion.Y()
	if motion.Y() > 0 {
		if b.collides(mgl32.Vec3{b.pos.X(), ny, b.pos.Z()}) {
			ny = b.pos.Y()
		}
		b.pos[1] = ny
		b.onFloor = false
		return
	}

	const eps = 1e-3
	ground, ok := physics.GroundLevel(b.pos.X(), b.pos.Z(), b.HalfWidth, b.pos.Y()+eps, b.grid, b.cellSize)
	switch {
	case ok && ny <= ground:
		b.pos[1] = ground
		b.onFloor = true
	case ok && wasOnFloor && snap.Y() < 0 && b.pos.Y()-ground <= b.StepHeight+eps:
		b.pos[1] = ground
		b.onFloor = true
	default:
		b.pos[1] = ny
		b.onFloor = false
	}
}
