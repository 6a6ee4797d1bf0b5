package linalg

import "golang.org/x/image/math/f32"

// Interop with golang.org/x/image/math/f32. The f32 matrix types are row
// major (m[n*r + c]), so matrix conversions transpose while copying.

// Vec3FromF32 converts an f32.Vec3.
func Vec3FromF32(v f32.Vec3) Vec3f {
	return Vec3f(v)
}

// Vec4FromF32 converts an f32.Vec4.
func Vec4FromF32(v f32.Vec4) Vec4f {
	return Vec4f(v)
}

// Mat3FromF32 converts a row-major f32.Mat3.
func Mat3FromF32(src f32.Mat3) Mat3f {
	m := Mat3f(src)
	MatTransposeN(m[:], 3)
	return m
}

// Mat4FromF32 converts a row-major f32.Mat4.
func Mat4FromF32(src f32.Mat4) Mat4f {
	m := Mat4f(src)
	MatTransposeN(m[:], 4)
	return m
}

// F32 returns v as an f32.Vec3, casting to single precision.
func (v *Vec3[T]) F32() f32.Vec3 {
	var out Vec3f
	ConvertVec3(&out, v)
	return f32.Vec3(out)
}

// F32 returns v as an f32.Vec4, casting to single precision.
func (v *Vec4[T]) F32() f32.Vec4 {
	var out Vec4f
	ConvertVec4(&out, v)
	return f32.Vec4(out)
}

// F32 returns m as a row-major f32.Mat3.
func (m *Mat3[T]) F32() f32.Mat3 {
	var out Mat3f
	ConvertMat3(&out, m)
	MatTransposeN(out[:], 3)
	return f32.Mat3(out)
}

// F32 returns m as a row-major f32.Mat4.
func (m *Mat4[T]) F32() f32.Mat4 {
	var out Mat4f
	ConvertMat4(&out, m)
	MatTransposeN(out[:], 4)
	return f32.Mat4(out)
}
