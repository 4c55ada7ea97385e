package vmath

import "math"

// Epsilon is the tolerance used by approximate comparisons
const Epsilon = 1e-9

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ApproxEqual compares with absolute tolerance tol
func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// V2ApproxEqual compares both components with absolute tolerance tol
func V2ApproxEqual(a, b Vec2, tol float64) bool {
	return ApproxEqual(a.X, b.X, tol) && ApproxEqual(a.Y, b.Y, tol)
}

// V3FApproxEqual compares all components with absolute tolerance tol
func V3FApproxEqual(a, b Vec3F, tol float64) bool {
	return ApproxEqual(a.X, b.X, tol) && ApproxEqual(a.Y, b.Y, tol) && ApproxEqual(a.Z, b.Z, tol)
}
