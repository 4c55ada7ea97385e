package physics

import (
	"github.com/lixenwraith/sunshot/vmath"
)

// Advance integrates a planar velocity into a 3D position
// position += (vx, vy, 0) * dt * scale; z is untouched
func Advance(pos vmath.Vec3F, vel vmath.Vec2, dt, scale float64) vmath.Vec3F {
	return vmath.Vec3F{
		X: pos.X + vel.X*dt*scale,
		Y: pos.Y + vel.Y*dt*scale,
		Z: pos.Z,
	}
}

// LaunchVelocity points from the planet centre through the cannon, scaled by power
// Coincident points yield zero velocity
func LaunchVelocity(cannon, planet vmath.Vec2, power float64) vmath.Vec2 {
	return vmath.V2Scale(vmath.V2Normalize(vmath.V2Sub(cannon, planet)), power)
}
