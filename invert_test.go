package linalg

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvertEpsilon(t *testing.T) {
	assert.Equal(t, float32(1e-6), InvertEpsilon[float32]())
	assert.Equal(t, 1e-12, InvertEpsilon[float64]())
}

func TestDeterminant(t *testing.T) {
	m3 := fromRows3([3][3]float64{
		{1, 2, 3},
		{0, 1, 4},
		{5, 6, 0},
	})
	assert.Equal(t, 1.0, m3.Determinant())

	diag := fromRows([4][4]float64{
		{2, 0, 0, 0},
		{0, 3, 0, 0},
		{0, 0, 4, 0},
		{0, 0, 0, 5},
	})
	assert.Equal(t, 120.0, diag.Determinant())

	var tr Mat4d
	tr.Translate(3, -2, 7)
	assert.Equal(t, 1.0, tr.Determinant())
}

func TestInvert3Golden(t *testing.T) {
	m := fromRows3([3][3]float64{
		{1, 2, 3},
		{0, 1, 4},
		{5, 6, 0},
	})
	want := fromRows3([3][3]float64{
		{-24, 18, 5},
		{20, -15, -4},
		{-5, 4, 1},
	})
	var inv Mat3d
	require.True(t, inv.Invert(&m))
	assertMat3Near(t, want, inv, tol64)
}

func TestInvertWellConditioned(t *testing.T) {
	r := newRand()
	id4 := Identity4[float64]()
	id3 := Identity3[float64]()
	for i := 0; i < 50; i++ {
		m := randomMat4(r)
		var inv, prod Mat4d
		require.True(t, inv.Invert(&m), "random matrix %d", i)
		prod.Mul(&m, &inv)
		assertMat4Near(t, id4, prod, tol64, "M·M⁻¹ for matrix %d", i)
		prod.Mul(&inv, &m)
		assertMat4Near(t, id4, prod, tol64, "M⁻¹·M for matrix %d", i)

		m3 := randomMat3(r)
		var inv3, prod3 Mat3d
		require.True(t, inv3.Invert(&m3))
		prod3.Mul(&m3, &inv3)
		assertMat3Near(t, id3, prod3, tol64)
	}
}

func TestInvertSinglePrecision(t *testing.T) {
	r := newRand()
	id := Identity4[float32]()
	for i := 0; i < 20; i++ {
		md := randomMat4(r)
		var m, inv, prod Mat4f
		ConvertMat4(&m, &md)
		require.True(t, inv.Invert(&m))
		prod.Mul(&m, &inv)
		assertMat4Near(t, id, prod, tol32)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	r := newRand()
	for i := 0; i < 20; i++ {
		m := randomMat4(r)
		var back Mat4d
		require.True(t, back.Invert(&m))
		require.True(t, back.Invert(&back))
		assertMat4Near(t, m, back, tol64)
	}
}

func TestInvertInPlace(t *testing.T) {
	r := newRand()
	m := randomMat4(r)

	var want Mat4d
	require.True(t, want.Invert(&m))

	got := m
	require.True(t, got.Invert(&got))
	assert.Equal(t, want, got)

	m3 := randomMat3(r)
	var want3 Mat3d
	require.True(t, want3.Invert(&m3))
	require.True(t, m3.Invert(&m3))
	assert.Equal(t, want3, m3)
}

func TestInvertTransforms(t *testing.T) {
	t.Run("translation", func(t *testing.T) {
		var m, inv, want Mat4d
		m.Translate(3, -4, 5)
		want.Translate(-3, 4, -5)
		require.True(t, inv.Invert(&m))
		assertMat4Near(t, want, inv, tol64)
	})
	t.Run("rotation is transpose", func(t *testing.T) {
		var m, inv, want Mat4d
		m.Rotate(33, 1, 2, 3)
		want.Transpose(&m)
		require.True(t, inv.Invert(&m))
		assertMat4Near(t, want, inv, tol64)
	})
	t.Run("small scale", func(t *testing.T) {
		var m, inv Mat4f
		m.Scale(1e-3, 1e-3, 1e-3)
		require.True(t, inv.Invert(&m), "a uniformly small scale is well conditioned")
		assert.InDelta(t, 1e3, inv[0], 1e-2)
		assert.InDelta(t, 1e3, inv[5], 1e-2)
		assert.InDelta(t, 1e3, inv[10], 1e-2)
		assert.InDelta(t, 1, inv[15], tol32)
	})
	t.Run("projection", func(t *testing.T) {
		var p, inv, prod Mat4d
		p.Perspective(60, 1.5, 0.1, 100)
		require.True(t, inv.Invert(&p))
		prod.Mul(&p, &inv)
		assertMat4Near(t, Identity4[float64](), prod, tol64)
	})
}

func TestInvertLargeTranslation(t *testing.T) {
	for _, d := range []float32{100, 300, 1000, 1e4} {
		var m, inv, prod Mat4f
		m.Translate(d, -d, d)
		require.True(t, inv.Invert(&m), "float32 Translate(%v)", d)
		prod.Mul(&m, &inv)
		assertMat4Near(t, Identity4[float32](), prod, tol32, "float32 Translate(%v)", d)
		assert.Equal(t, -d, inv[12])
	}
	for _, d := range []float64{1e4, 1e5, 1e6} {
		var m, inv, prod Mat4d
		m.Translate(d, d, -d)
		require.True(t, inv.Invert(&m), "float64 Translate(%v)", d)
		prod.Mul(&m, &inv)
		assertMat4Near(t, Identity4[float64](), prod, tol64, "float64 Translate(%v)", d)
	}
}

func TestInvertWorldScaleModelView(t *testing.T) {
	var view, model, rot, mv, inv, prod Mat4d
	view.LookAt(1e4, 2e3, 5e3, 0, 0, 0, 0, 1, 0)
	model.Translate(1e5, -4e4, 3e4)
	rot.Rotate(25, 0, 1, 0)
	model.Mul(&model, &rot)
	mv.Mul(&view, &model)

	require.True(t, inv.Invert(&mv))
	prod.Mul(&mv, &inv)
	assertMat4Near(t, Identity4[float64](), prod, 1e-6)

	var mvf, invf Mat4f
	ConvertMat4(&mvf, &mv)
	require.True(t, invf.Invert(&mvf), "single precision model-view")
}

func TestInvertSingular(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4d
	}{
		{"two identical rows", fromRows([4][4]float64{
			{1, 2, 3, 4},
			{1, 2, 3, 4},
			{0, 1, 0, 2},
			{3, 0, 1, 1},
		})},
		{"two identical columns", fromRows([4][4]float64{
			{1, 1, 3, 4},
			{2, 2, 0, 1},
			{5, 5, 1, 0},
			{0, 0, 2, 2},
		})},
		{"zero row", fromRows([4][4]float64{
			{1, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		})},
		{"zero matrix", Mat4d{}},
		{"zero column", fromRows([4][4]float64{
			{1, 0, 0, 5},
			{0, 1, 0, 6},
			{0, 0, 0, 7},
			{0, 0, 0, 1},
		})},
		{"near singular", fromRows([4][4]float64{
			{1, 0, 0, 0},
			{0, 1, 0, 0},
			{0, 0, 1, 1},
			{0, 0, 1, 1 + 1e-14},
		})},
		{"NaN entry", fromRows([4][4]float64{
			{1, 0, 0, 0},
			{0, math.NaN(), 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sentinel := Identity4[float64]()
			sentinel[13] = 42
			dst := sentinel

			assert.False(t, dst.Invert(&tt.m))
			assert.Equal(t, sentinel, dst, "destination must be left unchanged")
		})
	}
}

func TestInvert3Singular(t *testing.T) {
	m := fromRows3([3][3]float32{
		{1, 2, 3},
		{2, 4, 6},
		{0, 1, 1},
	})
	dst := Identity3[float32]()
	assert.False(t, dst.Invert(&m))
	assert.True(t, dst.IsIdentity())

	in := m
	assert.False(t, in.Invert(&in), "in-place failure")
	assert.Equal(t, m, in)
}

func TestInvertLogsSingular(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	var m, dst Mat4d
	require.False(t, dst.Invert(&m))
	assert.True(t, strings.Contains(buf.String(), "matrix not invertible"), "log output: %s", buf.String())
	assert.Contains(t, buf.String(), "size=4")
}
