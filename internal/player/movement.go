package player

import (
	"gridterrain/internal/input"
	"gridterrain/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

var up = mgl32.Vec3{0, 1, 0}

// lerp moves start toward end by |start-end|*amount.
func lerp(start, end, amount float32) float32 {
	if start == end {
		return start
	}
	step := mgl32.Abs(start-end) * amount
	if start < end {
		return start + step
	}
	return start - step
}

func lerp3(start, end mgl32.Vec3, t float32) mgl32.Vec3 {
	return start.Add(end.Sub(start).Mul(t))
}

// Look applies relative mouse motion in pixels: horizontal turns the body,
// vertical tilts the head within ±MaxPitch.
func (p *Player) Look(dx, dy float32) {
	p.Yaw += mgl32.DegToRad(-dx * MouseSensitivity)
	p.Pitch += mgl32.DegToRad(-dy * MouseSensitivity)
	limit := mgl32.DegToRad(MaxPitch)
	p.Pitch = mgl32.Clamp(p.Pitch, -limit, limit)
}

func (p *Player) move(dt float32) {
	defer profiling.Track("player.move")()
	im := p.input

	p.direction = mgl32.Vec3{}
	f := im.Strength(input.ActionDown) - im.Strength(input.ActionUp)
	h := im.Strength(input.ActionRight) - im.Strength(input.ActionLeft)
	wish := mgl32.Rotate3DY(p.Yaw).Mul3x1(mgl32.Vec3{h, 0, f})

	if im.IsActive(input.ActionUp) || im.IsActive(input.ActionDown) ||
		im.IsActive(input.ActionLeft) || im.IsActive(input.ActionRight) {
		p.Animation = AnimRun
	} else {
		p.Animation = AnimIdle
	}

	if wish.Len() > 0 {
		p.direction = wish.Normalize()
	}

	onFloor := p.Body.IsOnFloor()
	if onFloor {
		p.snap = p.Body.FloorNormal().Mul(-1)
		p.accel = AccelDefault
		p.gravityVec = mgl32.Vec3{}
	} else {
		p.snap = up.Mul(-1)
		p.accel = AccelAir
		p.gravityVec = p.gravityVec.Add(up.Mul(-Gravity * dt))
		p.Animation = AnimJumpUp
	}

	if im.ConsumeJustPressed(input.ActionJump) && onFloor {
		p.snap = mgl32.Vec3{}
		p.gravityVec = p.gravityVec.Add(up.Mul(Jump))
		p.Animation = AnimJumpUp
	}

	p.velocity = lerp3(p.velocity, p.direction.Mul(Speed), p.accel*dt)
	p.Body.MoveAndSlide(p.velocity.Add(p.gravityVec), p.snap, dt)
}
