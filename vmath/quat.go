package vmath

import "math"

// Quat is a rotation quaternion, W is the scalar part
// Zero value is not a valid rotation; use QIdentity
type Quat struct {
	W, X, Y, Z float64
}

// QIdentity is the no-rotation quaternion
var QIdentity = Quat{W: 1}

// QFromAxisAngle builds a rotation of angle radians around axis
func QFromAxisAngle(axis Vec3F, angle float64) Quat {
	n := V3FNormalize(axis)
	if n == (Vec3F{}) {
		return QIdentity
	}
	s, c := math.Sincos(angle / 2)
	return Quat{W: c, X: n.X * s, Y: n.Y * s, Z: n.Z * s}
}

// QRotZ rotates around the Z axis, the only axis the simulation plane cares about
func QRotZ(angle float64) Quat {
	s, c := math.Sincos(angle / 2)
	return Quat{W: c, Z: s}
}

// QFromEulerXYZ composes rotations around X, then Y, then Z (intrinsic XYZ)
func QFromEulerXYZ(x, y, z float64) Quat {
	qx := QFromAxisAngle(Vec3F{1, 0, 0}, x)
	qy := QFromAxisAngle(Vec3F{0, 1, 0}, y)
	qz := QFromAxisAngle(Vec3F{0, 0, 1}, z)
	return QMul(QMul(qx, qy), qz)
}

// QMul returns a*b; applying the result rotates by b first, then a
func QMul(a, b Quat) Quat {
	return Quat{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

// QConjugate is the inverse for unit quaternions
func QConjugate(q Quat) Quat {
	return Quat{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

func QDot(a, b Quat) float64 {
	return a.W*b.W + a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// QNormalize returns the unit quaternion, identity for zero input
func QNormalize(q Quat) Quat {
	mag := math.Sqrt(QDot(q, q))
	if mag == 0 {
		return QIdentity
	}
	inv := 1.0 / mag
	return Quat{q.W * inv, q.X * inv, q.Y * inv, q.Z * inv}
}

// QRotate applies q to v
func QRotate(q Quat, v Vec3F) Vec3F {
	// v' = v + 2w(u×v) + 2u×(u×v)
	u := Vec3F{q.X, q.Y, q.Z}
	t := V3FScale(V3FCross(u, v), 2)
	return V3FAdd(V3FAdd(v, V3FScale(t, q.W)), V3FCross(u, t))
}

// QNlerp is normalized linear interpolation along the shortest arc
func QNlerp(a, b Quat, t float64) Quat {
	if QDot(a, b) < 0 {
		b = Quat{-b.W, -b.X, -b.Y, -b.Z}
	}
	return QNormalize(Quat{
		W: a.W + (b.W-a.W)*t,
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	})
}
