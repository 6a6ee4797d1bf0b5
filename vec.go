package linalg

// Vec3 is a 3-component vector.
//
// Methods that produce a vector are called on the destination and return it,
// so calls can be chained. Sources may be the destination itself:
//
//	v.Normalize(v)    // in place
//	v.Add(v, w)       // v += w
type Vec3[T Float] [3]T

// Vec4 is a 4-component vector, usually a homogeneous point (w=1) or
// direction (w=0).
type Vec4[T Float] [4]T

// Precision-specific aliases.
type (
	Vec3f = Vec3[float32]
	Vec3d = Vec3[float64]
	Vec4f = Vec4[float32]
	Vec4d = Vec4[float64]
)

// V3 is a convenience function to create a Vec3.
func V3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// V4 is a convenience function to create a Vec4.
func V4[T Float](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

// Set assigns the components of v.
func (v *Vec3[T]) Set(x, y, z T) *Vec3[T] {
	v[0], v[1], v[2] = x, y, z
	return v
}

// Copy sets v = src.
func (v *Vec3[T]) Copy(src *Vec3[T]) *Vec3[T] {
	CopyN(v[:], src[:], 3)
	return v
}

// Dot returns the dot product of v and w.
func (v *Vec3[T]) Dot(w *Vec3[T]) T {
	return DotN(v[:], w[:], 3)
}

// NormSq returns the squared length of v.
// This is faster than Norm() when you only need to compare magnitudes.
func (v *Vec3[T]) NormSq() T {
	return NormSqN(v[:], 3)
}

// Norm returns the length of v.
func (v *Vec3[T]) Norm() T {
	return NormN(v[:], 3)
}

// Add sets v = a + b.
func (v *Vec3[T]) Add(a, b *Vec3[T]) *Vec3[T] {
	AddN(v[:], a[:], b[:], 3)
	return v
}

// Sub sets v = a - b.
func (v *Vec3[T]) Sub(a, b *Vec3[T]) *Vec3[T] {
	SubN(v[:], a[:], b[:], 3)
	return v
}

// ScalarMult sets v = src * s.
func (v *Vec3[T]) ScalarMult(src *Vec3[T], s T) *Vec3[T] {
	ScalarMultN(v[:], src[:], s, 3)
	return v
}

// ScalarDiv sets v = src / s. Division by zero is not checked.
func (v *Vec3[T]) ScalarDiv(src *Vec3[T], s T) *Vec3[T] {
	ScalarDivN(v[:], src[:], s, 3)
	return v
}

// Normalize sets v to src scaled to unit length.
// A zero-length src produces NaN components.
func (v *Vec3[T]) Normalize(src *Vec3[T]) *Vec3[T] {
	NormalizeN(v[:], src[:], 3)
	return v
}

// Cross sets v = a × b. v may be a or b.
func (v *Vec3[T]) Cross(a, b *Vec3[T]) *Vec3[T] {
	x := a[1]*b[2] - a[2]*b[1]
	y := a[2]*b[0] - a[0]*b[2]
	z := a[0]*b[1] - a[1]*b[0]
	v[0], v[1], v[2] = x, y, z
	return v
}

// Transform sets v = m · src, treating src as a column vector.
func (v *Vec3[T]) Transform(m *Mat3[T], src *Vec3[T]) *Vec3[T] {
	MatMulVecN(v[:], m[:], src[:], 3)
	return v
}

// Set assigns the components of v.
func (v *Vec4[T]) Set(x, y, z, w T) *Vec4[T] {
	v[0], v[1], v[2], v[3] = x, y, z, w
	return v
}

// Copy sets v = src.
func (v *Vec4[T]) Copy(src *Vec4[T]) *Vec4[T] {
	CopyN(v[:], src[:], 4)
	return v
}

// Dot returns the dot product of v and w.
func (v *Vec4[T]) Dot(w *Vec4[T]) T {
	return DotN(v[:], w[:], 4)
}

// NormSq returns the squared length of v.
func (v *Vec4[T]) NormSq() T {
	return NormSqN(v[:], 4)
}

// Norm returns the length of v.
func (v *Vec4[T]) Norm() T {
	return NormN(v[:], 4)
}

// Add sets v = a + b.
func (v *Vec4[T]) Add(a, b *Vec4[T]) *Vec4[T] {
	AddN(v[:], a[:], b[:], 4)
	return v
}

// Sub sets v = a - b.
func (v *Vec4[T]) Sub(a, b *Vec4[T]) *Vec4[T] {
	SubN(v[:], a[:], b[:], 4)
	return v
}

// ScalarMult sets v = src * s.
func (v *Vec4[T]) ScalarMult(src *Vec4[T], s T) *Vec4[T] {
	ScalarMultN(v[:], src[:], s, 4)
	return v
}

// ScalarDiv sets v = src / s. Division by zero is not checked.
func (v *Vec4[T]) ScalarDiv(src *Vec4[T], s T) *Vec4[T] {
	ScalarDivN(v[:], src[:], s, 4)
	return v
}

// Normalize sets v to src scaled to unit length over all four components.
func (v *Vec4[T]) Normalize(src *Vec4[T]) *Vec4[T] {
	NormalizeN(v[:], src[:], 4)
	return v
}

// Homogenize sets v to src divided by its w component, so that v[3] == 1.
// A direction (w == 0) produces Inf/NaN components.
func (v *Vec4[T]) Homogenize(src *Vec4[T]) *Vec4[T] {
	ScalarDivN(v[:], src[:], src[3], 4)
	return v
}

// Transform sets v = m · src, treating src as a column vector.
func (v *Vec4[T]) Transform(m *Mat4[T], src *Vec4[T]) *Vec4[T] {
	MatMulVecN(v[:], m[:], src[:], 4)
	return v
}

// XYZ returns the first three components of v.
func (v *Vec4[T]) XYZ() Vec3[T] {
	return Vec3[T]{v[0], v[1], v[2]}
}
