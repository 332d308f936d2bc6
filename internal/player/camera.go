package player

import (
	"math"
)

// updateCamera interpolates the camera base toward the head and the visual
// body toward the physics body when frames outpace physics ticks; otherwise
// both snap.
func (p *Player) updateCamera(dt float32) {
	head := p.HeadPosition()
	origin := p.Body.Position()

	if p.frameRate > p.physicsRate {
		t := SmoothingFactor * dt
		p.CamBase = lerp3(p.CamBase, head, t)
		p.GraphicsOrigin = lerp3(p.GraphicsOrigin, origin, t)
	} else {
		p.CamBase = head
		p.GraphicsOrigin = origin
	}
	p.CamYaw = p.Yaw
	p.CamPitch = p.Pitch

	// Turn the visual body toward the movement direction
	if d := p.direction; d.Len() > 0 {
		target := -float32(math.Atan2(float64(d.X()), float64(-d.Z())))
		p.GraphicsYaw = lerp(p.GraphicsYaw, target, AngularVelocity*dt)
	}
}
