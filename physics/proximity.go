package physics

import (
	"github.com/lixenwraith/sunshot/vmath"
)

// Within reports planar distance strictly below radius
func Within(a, b vmath.Vec2, radius float64) bool {
	return vmath.V2MagSq(vmath.V2Sub(a, b)) < radius*radius
}

// Beyond reports planar distance strictly above radius
func Beyond(a, b vmath.Vec2, radius float64) bool {
	return vmath.V2MagSq(vmath.V2Sub(a, b)) > radius*radius
}
