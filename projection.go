package linalg

import "math"

// Projection and view builders. They reproduce glFrustum, glOrtho,
// gluPerspective and gluLookAt: right-handed eye space looking down -Z,
// clip-space depth in [-1, 1]. None of them validate their arguments;
// near >= far or an empty extent produces a degenerate matrix.

// Frustum sets m to a perspective projection for the view volume bounded
// by left/right and bottom/top on the near plane.
//
//	| 2n/(r-l)     0      (r+l)/(r-l)      0       |
//	|    0      2n/(t-b)  (t+b)/(t-b)      0       |
//	|    0         0     -(f+n)/(f-n)  -2fn/(f-n)  |
//	|    0         0          -1           0       |
func (m *Mat4[T]) Frustum(left, right, bottom, top, near, far T) *Mat4[T] {
	*m = Mat4[T]{}
	m[Index(0, 0, 4)] = 2 * near / (right - left)
	m[Index(1, 1, 4)] = 2 * near / (top - bottom)
	m[Index(0, 2, 4)] = (right + left) / (right - left)
	m[Index(1, 2, 4)] = (top + bottom) / (top - bottom)
	m[Index(2, 2, 4)] = -(far + near) / (far - near)
	m[Index(3, 2, 4)] = -1
	m[Index(2, 3, 4)] = -2 * far * near / (far - near)
	return m
}

// Ortho sets m to an orthographic projection of the given box.
//
//	| 2/(r-l)    0        0      -(r+l)/(r-l) |
//	|    0    2/(t-b)     0      -(t+b)/(t-b) |
//	|    0       0    -2/(f-n)   -(f+n)/(f-n) |
//	|    0       0        0           1       |
func (m *Mat4[T]) Ortho(left, right, bottom, top, near, far T) *Mat4[T] {
	m.Identity()
	m[Index(0, 0, 4)] = 2 / (right - left)
	m[Index(1, 1, 4)] = 2 / (top - bottom)
	m[Index(2, 2, 4)] = -2 / (far - near)
	m[Index(0, 3, 4)] = -(right + left) / (right - left)
	m[Index(1, 3, 4)] = -(top + bottom) / (top - bottom)
	m[Index(2, 3, 4)] = -(far + near) / (far - near)
	return m
}

// Perspective sets m to a symmetric perspective projection with a vertical
// field of view of fovy degrees. The near-plane extents are derived from
// fovy and aspect and passed to Frustum.
func (m *Mat4[T]) Perspective(fovy, aspect, near, far T) *Mat4[T] {
	top := T(math.Tan(radians(fovy)/2)) * near
	right := top * aspect
	return m.Frustum(-right, right, -top, top, near, far)
}

// LookAt sets m to a view matrix for a camera at eye looking at center
// with the given up direction.
func (m *Mat4[T]) LookAt(eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ T) *Mat4[T] {
	eye := Vec3[T]{eyeX, eyeY, eyeZ}
	center := Vec3[T]{centerX, centerY, centerZ}
	up := Vec3[T]{upX, upY, upZ}
	return m.LookAtVec(&eye, &center, &up)
}

// LookAtVec sets m to a view matrix for a camera at eye looking at center.
//
// The basis is forward = normalize(center - eye), side = normalize(forward
// × up), and up' = side × forward. The rotation with rows side, up' and
// -forward is composed with a translation by -eye, so eye maps to the
// origin and the camera looks down -Z. If up is parallel to forward the
// side vector is zero and the result is NaN.
func (m *Mat4[T]) LookAtVec(eye, center, up *Vec3[T]) *Mat4[T] {
	var f, s, u Vec3[T]
	f.Sub(center, eye).Normalize(&f)
	s.Cross(&f, up).Normalize(&s)
	u.Cross(&s, &f)

	m.Identity()
	m.SetAt(0, 0, s[0]).SetAt(0, 1, s[1]).SetAt(0, 2, s[2])
	m.SetAt(1, 0, u[0]).SetAt(1, 1, u[1]).SetAt(1, 2, u[2])
	m.SetAt(2, 0, -f[0]).SetAt(2, 1, -f[1]).SetAt(2, 2, -f[2])

	var tr Mat4[T]
	tr.Translate(-eye[0], -eye[1], -eye[2])
	return m.Mul(m, &tr)
}
