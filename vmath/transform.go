package vmath

// Transform is a position/rotation/scale triple in some parent frame
type Transform struct {
	Position Vec3F
	Rotation Quat
	Scale    Vec3F
}

// TransformAt returns an unrotated unit-scale transform at p
func TransformAt(p Vec3F) Transform {
	return Transform{Position: p, Rotation: QIdentity, Scale: One}
}

// Compose maps a local transform through its parent into the parent's frame
func Compose(parent, local Transform) Transform {
	return Transform{
		Position: V3FAdd(parent.Position, QRotate(parent.Rotation, V3FMul(parent.Scale, local.Position))),
		Rotation: QNormalize(QMul(parent.Rotation, local.Rotation)),
		Scale:    V3FMul(parent.Scale, local.Scale),
	}
}

// ToLocal expresses a point given in the parent frame in t's local frame
// Zero scale components map to zero
func ToLocal(t Transform, point Vec3F) Vec3F {
	rel := QRotate(QConjugate(t.Rotation), V3FSub(point, t.Position))
	return Vec3F{safeDiv(rel.X, t.Scale.X), safeDiv(rel.Y, t.Scale.Y), safeDiv(rel.Z, t.Scale.Z)}
}

// Detach is the inverse of Compose for the local part: the transform that,
// composed under parent, yields world
func Detach(parent, world Transform) Transform {
	return Transform{
		Position: ToLocal(parent, world.Position),
		Rotation: QNormalize(QMul(QConjugate(parent.Rotation), world.Rotation)),
		Scale:    Vec3F{safeDiv(world.Scale.X, parent.Scale.X), safeDiv(world.Scale.Y, parent.Scale.Y), safeDiv(world.Scale.Z, parent.Scale.Z)},
	}
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
