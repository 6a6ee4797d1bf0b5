package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomPoints(n int) []Vec4d {
	r := newRand()
	pts := make([]Vec4d, n)
	for i := range pts {
		pts[i] = Vec4d{r.Float64()*20 - 10, r.Float64()*20 - 10, r.Float64()*20 - 10, 1}
	}
	return pts
}

func TestTransformPoints(t *testing.T) {
	var rot, tr, m Mat4d
	rot.Rotate(30, 1, 1, 0)
	tr.Translate(1, -2, 3)
	m.Mul(&tr, &rot)

	tests := []struct {
		name string
		n    int
	}{
		{"empty", 0},
		{"single", 1},
		{"below threshold", ParallelThreshold - 1},
		{"at threshold", ParallelThreshold},
		{"uneven chunks", 3*ParallelThreshold + 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := randomPoints(tt.n)
			dst := make([]Vec4d, tt.n)
			TransformPoints(dst, src, &m)

			for i := range src {
				var want Vec4d
				want.Transform(&m, &src[i])
				require.Equal(t, want, dst[i], "point %d", i)
			}
		})
	}
}

func TestTransformPointsInPlace(t *testing.T) {
	var m Mat4f
	m.Scale(2, 2, 2)

	pts := make([]Vec4f, 2*ParallelThreshold)
	for i := range pts {
		pts[i] = Vec4f{float32(i), 1, -1, 1}
	}
	TransformPoints(pts, pts, &m)
	for i := range pts {
		require.Equal(t, Vec4f{2 * float32(i), 2, -2, 1}, pts[i], "point %d", i)
	}
}

func TestTransformPointsShortDst(t *testing.T) {
	var m Mat4d
	m.Identity()
	assert.Panics(t, func() {
		TransformPoints(make([]Vec4d, 1), make([]Vec4d, 2), &m)
	})
}
