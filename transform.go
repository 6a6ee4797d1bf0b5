package linalg

import "math"

// Translate sets m to a translation by (x, y, z). Any prior contents of m
// are discarded.
func (m *Mat4[T]) Translate(x, y, z T) *Mat4[T] {
	m.Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// TranslateVec sets m to a translation by v.
func (m *Mat4[T]) TranslateVec(v *Vec3[T]) *Mat4[T] {
	return m.Translate(v[0], v[1], v[2])
}

// Scale sets m to a scale by (x, y, z) along the principal axes.
func (m *Mat4[T]) Scale(x, y, z T) *Mat4[T] {
	m.Identity()
	m[0], m[5], m[10] = x, y, z
	return m
}

// ScaleVec sets m to a scale by v.
func (m *Mat4[T]) ScaleVec(v *Vec3[T]) *Mat4[T] {
	return m.Scale(v[0], v[1], v[2])
}

// rotation fills the upper-left 3x3 block of the n×n matrix dst with a
// rotation of deg degrees around (x, y, z), using the glRotate layout. The
// axis is normalized here; a zero axis yields NaN.
func rotation[T Float](dst []T, n int, deg, x, y, z T) {
	axis := Vec3[T]{x, y, z}
	axis.Normalize(&axis)
	x, y, z = axis[0], axis[1], axis[2]

	rad := radians(deg)
	c := T(math.Cos(rad))
	s := T(math.Sin(rad))
	t := 1 - c

	dst[Index(0, 0, n)] = x*x*t + c
	dst[Index(0, 1, n)] = x*y*t - z*s
	dst[Index(0, 2, n)] = x*z*t + y*s

	dst[Index(1, 0, n)] = y*x*t + z*s
	dst[Index(1, 1, n)] = y*y*t + c
	dst[Index(1, 2, n)] = y*z*t - x*s

	dst[Index(2, 0, n)] = z*x*t - y*s
	dst[Index(2, 1, n)] = z*y*t + x*s
	dst[Index(2, 2, n)] = z*z*t + c
}

// Rotate sets m to a rotation of deg degrees counter-clockwise around the
// axis (x, y, z) when looking down the axis toward the origin. The axis
// does not need to be unit length, but must not be zero.
func (m *Mat3[T]) Rotate(deg, x, y, z T) *Mat3[T] {
	rotation(m[:], 3, deg, x, y, z)
	return m
}

// RotateVec is Rotate with the axis given as a vector.
func (m *Mat3[T]) RotateVec(deg T, axis *Vec3[T]) *Mat3[T] {
	return m.Rotate(deg, axis[0], axis[1], axis[2])
}

// Rotate sets m to a rotation of deg degrees around the axis (x, y, z).
// The translation part is the identity.
func (m *Mat4[T]) Rotate(deg, x, y, z T) *Mat4[T] {
	m.Identity()
	rotation(m[:], 4, deg, x, y, z)
	return m
}

// RotateVec is Rotate with the axis given as a vector.
func (m *Mat4[T]) RotateVec(deg T, axis *Vec3[T]) *Mat4[T] {
	return m.Rotate(deg, axis[0], axis[1], axis[2])
}
