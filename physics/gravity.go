package physics

import (
	"github.com/lixenwraith/sunshot/vmath"
)

// Source is a positioned gravity attractor in the simulation plane
type Source struct {
	Position vmath.Vec2
	Strength float64
	Radius   float64 // Hit radius, used by Predict only
}

// GravityDelta returns the velocity change one attractor imparts in one fixed step
// pos: projectile planar position
// mass: projectile mass, scales the received change
// minDist: pairs closer than this contribute nothing
// delta = normalize(src - pos) * strength * mass / dist²
func GravityDelta(pos vmath.Vec2, mass float64, src Source, minDist float64) vmath.Vec2 {
	diff := vmath.V2Sub(src.Position, pos)
	distSq := vmath.V2MagSq(diff)
	if distSq < minDist*minDist {
		return vmath.Vec2{}
	}
	dir := vmath.V2Normalize(diff)
	return vmath.V2Scale(dir, src.Strength*mass/distSq)
}

// GravityStep sums every source's contribution for one fixed step
// Order of sources does not affect the result beyond float rounding
func GravityStep(pos vmath.Vec2, mass float64, sources []Source, minDist float64) vmath.Vec2 {
	var total vmath.Vec2
	for _, src := range sources {
		total = vmath.V2Add(total, GravityDelta(pos, mass, src, minDist))
	}
	return total
}
