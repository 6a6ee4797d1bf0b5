package linalg

import (
	"context"
	"log/slog"
)

// InvertEpsilon returns the singularity threshold used by Invert for
// precision T: 1e-6 for float32 and 1e-12 for float64.
//
// A matrix is treated as singular when |det| <= InvertEpsilon * H, where H
// is the smaller of the two Hadamard bounds
//
//	‖row0‖ * ‖row1‖ * ... * ‖row(n-1)‖
//	‖col0‖ * ‖col1‖ * ... * ‖col(n-1)‖
//
// Both bound |det| from above, so |det| / H lies in [0, 1] and does not
// change when a row or column is scaled. scale(0.001) is as invertible as
// the identity, and a large translation, which inflates every row norm but
// only one column norm, keeps the ratio far above epsilon. A matrix with two
// equal rows is rejected, as is one with a zero row or column.
func InvertEpsilon[T Float]() T {
	if isSingle[T]() {
		return 1e-6
	}
	return 1e-12
}

// singular reports whether det is too small relative to the Hadamard bound
// of the n×n matrix m.
func singular[T Float](det T, m []T, n int) bool {
	var v [maxDim]T
	rows, cols := T(1), T(1)
	for i := 0; i < n; i++ {
		MatRowN(v[:], m, i, n)
		rows *= NormN(v[:], n)
		MatColumnN(v[:], m, i, n)
		cols *= NormN(v[:], n)
	}
	bound := InvertEpsilon[T]() * min(rows, cols)
	if bound == 0 {
		return true
	}
	// Negated so that a NaN determinant or bound is also rejected.
	return !(abs(det) > bound)
}

func logSingular[T Float](n int, det T) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("linalg: matrix not invertible", "size", n, "det", float64(det))
}

// Determinant returns the determinant of m.
func (m *Mat3[T]) Determinant() T {
	a00, a01, a02 := m[0], m[3], m[6]
	a10, a11, a12 := m[1], m[4], m[7]
	a20, a21, a22 := m[2], m[5], m[8]
	return a00*(a11*a22-a12*a21) - a01*(a10*a22-a12*a20) + a02*(a10*a21-a11*a20)
}

// Invert sets m to the inverse of src and returns true. If src is singular
// (see InvertEpsilon) m is left unchanged and Invert returns false.
// m may be src, so m.Invert(m) inverts in place.
//
// The inverse is the adjugate (transposed cofactor matrix) divided by the
// determinant.
func (m *Mat3[T]) Invert(src *Mat3[T]) bool {
	a00, a01, a02 := src[0], src[3], src[6]
	a10, a11, a12 := src[1], src[4], src[7]
	a20, a21, a22 := src[2], src[5], src[8]

	// Adjugate, row by row.
	b00 := a11*a22 - a12*a21
	b01 := a02*a21 - a01*a22
	b02 := a01*a12 - a02*a11
	b10 := a12*a20 - a10*a22
	b11 := a00*a22 - a02*a20
	b12 := a02*a10 - a00*a12
	b20 := a10*a21 - a11*a20
	b21 := a01*a20 - a00*a21
	b22 := a00*a11 - a01*a10

	det := a00*b00 + a01*b10 + a02*b20
	if singular(det, src[:], 3) {
		logSingular(3, det)
		return false
	}

	inv := 1 / det
	*m = Mat3[T]{
		b00 * inv, b10 * inv, b20 * inv,
		b01 * inv, b11 * inv, b21 * inv,
		b02 * inv, b12 * inv, b22 * inv,
	}
	return true
}

// minors4 holds the twelve 2x2 minors of a 4x4 matrix used by the Laplace
// expansion: s from rows 0-1, c from rows 2-3.
type minors4[T Float] struct {
	s0, s1, s2, s3, s4, s5 T
	c0, c1, c2, c3, c4, c5 T
}

func (mn *minors4[T]) det() T {
	return mn.s0*mn.c5 - mn.s1*mn.c4 + mn.s2*mn.c3 + mn.s3*mn.c2 - mn.s4*mn.c1 + mn.s5*mn.c0
}

func newMinors4[T Float](m *Mat4[T]) minors4[T] {
	a00, a01, a02, a03 := m[0], m[4], m[8], m[12]
	a10, a11, a12, a13 := m[1], m[5], m[9], m[13]
	a20, a21, a22, a23 := m[2], m[6], m[10], m[14]
	a30, a31, a32, a33 := m[3], m[7], m[11], m[15]
	return minors4[T]{
		s0: a00*a11 - a10*a01,
		s1: a00*a12 - a10*a02,
		s2: a00*a13 - a10*a03,
		s3: a01*a12 - a11*a02,
		s4: a01*a13 - a11*a03,
		s5: a02*a13 - a12*a03,

		c0: a20*a31 - a30*a21,
		c1: a20*a32 - a30*a22,
		c2: a20*a33 - a30*a23,
		c3: a21*a32 - a31*a22,
		c4: a21*a33 - a31*a23,
		c5: a22*a33 - a32*a23,
	}
}

// Determinant returns the determinant of m.
func (m *Mat4[T]) Determinant() T {
	mn := newMinors4(m)
	return mn.det()
}

// Invert sets m to the inverse of src and returns true. If src is singular
// (see InvertEpsilon) m is left unchanged and Invert returns false.
// m may be src, so m.Invert(m) inverts in place.
//
// The cofactors are expanded from complementary 2x2 minors of the top and
// bottom row pairs, which needs 12 minors instead of 16 separate 3x3
// determinants.
func (m *Mat4[T]) Invert(src *Mat4[T]) bool {
	a00, a01, a02, a03 := src[0], src[4], src[8], src[12]
	a10, a11, a12, a13 := src[1], src[5], src[9], src[13]
	a20, a21, a22, a23 := src[2], src[6], src[10], src[14]
	a30, a31, a32, a33 := src[3], src[7], src[11], src[15]

	mn := newMinors4(src)
	det := mn.det()
	if singular(det, src[:], 4) {
		logSingular(4, det)
		return false
	}
	inv := 1 / det

	var out Mat4[T]
	// Row 0
	out[0] = (a11*mn.c5 - a12*mn.c4 + a13*mn.c3) * inv
	out[4] = (-a01*mn.c5 + a02*mn.c4 - a03*mn.c3) * inv
	out[8] = (a31*mn.s5 - a32*mn.s4 + a33*mn.s3) * inv
	out[12] = (-a21*mn.s5 + a22*mn.s4 - a23*mn.s3) * inv
	// Row 1
	out[1] = (-a10*mn.c5 + a12*mn.c2 - a13*mn.c1) * inv
	out[5] = (a00*mn.c5 - a02*mn.c2 + a03*mn.c1) * inv
	out[9] = (-a30*mn.s5 + a32*mn.s2 - a33*mn.s1) * inv
	out[13] = (a20*mn.s5 - a22*mn.s2 + a23*mn.s1) * inv
	// Row 2
	out[2] = (a10*mn.c4 - a11*mn.c2 + a13*mn.c0) * inv
	out[6] = (-a00*mn.c4 + a01*mn.c2 - a03*mn.c0) * inv
	out[10] = (a30*mn.s4 - a31*mn.s2 + a33*mn.s0) * inv
	out[14] = (-a20*mn.s4 + a21*mn.s2 - a23*mn.s0) * inv
	// Row 3
	out[3] = (-a10*mn.c3 + a11*mn.c1 - a12*mn.c0) * inv
	out[7] = (a00*mn.c3 - a01*mn.c1 + a02*mn.c0) * inv
	out[11] = (-a30*mn.s3 + a31*mn.s1 - a32*mn.s0) * inv
	out[15] = (a20*mn.s3 - a21*mn.s1 + a22*mn.s0) * inv

	*m = out
	return true
}
