package linalg

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tolerances for "approximately equal" checks.
const (
	tol32 = 1e-5
	tol64 = 1e-9
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// randomMat4 returns a diagonally dominant, and therefore well-conditioned,
// matrix with entries in [-1, 1] off the diagonal.
func randomMat4(r *rand.Rand) Mat4d {
	var m Mat4d
	for i := range m {
		m[i] = 2*r.Float64() - 1
	}
	for i := 0; i < 4; i++ {
		m[Index(i, i, 4)] += 4
	}
	return m
}

func randomMat3(r *rand.Rand) Mat3d {
	var m Mat3d
	for i := range m {
		m[i] = 2*r.Float64() - 1
	}
	for i := 0; i < 3; i++ {
		m[Index(i, i, 3)] += 3
	}
	return m
}

func assertMat4Near[T Float](t *testing.T, want, got Mat4[T], tol float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], tol, msgAndArgs...)
}

func assertMat3Near[T Float](t *testing.T, want, got Mat3[T], tol float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], tol, msgAndArgs...)
}

func assertVec4Near[T Float](t *testing.T, want, got Vec4[T], tol float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], tol, msgAndArgs...)
}

func assertVec3Near[T Float](t *testing.T, want, got Vec3[T], tol float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDeltaSlice(t, want[:], got[:], tol, msgAndArgs...)
}

// fromRows builds a Mat4 from row-major literals so expected values read
// the way they are written on paper.
func fromRows[T Float](rows [4][4]T) Mat4[T] {
	var m Mat4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m.SetAt(r, c, rows[r][c])
		}
	}
	return m
}

func fromRows3[T Float](rows [3][3]T) Mat3[T] {
	var m Mat3[T]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m.SetAt(r, c, rows[r][c])
		}
	}
	return m
}
