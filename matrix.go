package linalg

// Mat3 is a 3x3 matrix in column-major order:
//
//	| m[0]  m[3]  m[6] |
//	| m[1]  m[4]  m[7] |
//	| m[2]  m[5]  m[8] |
//
// m[row + 3*col] is the element in the given row and column. The layout is
// the one OpenGL and WGSL expect, so a Mat3 can be uploaded as is.
type Mat3[T Float] [9]T

// Mat4 is a 4x4 matrix in column-major order:
//
//	| m[0]  m[4]  m[8]   m[12] |
//	| m[1]  m[5]  m[9]   m[13] |
//	| m[2]  m[6]  m[10]  m[14] |
//	| m[3]  m[7]  m[11]  m[15] |
//
// The translation of an affine transform lives in m[12], m[13], m[14].
type Mat4[T Float] [16]T

// Precision-specific aliases.
type (
	Mat3f = Mat3[float32]
	Mat3d = Mat3[float64]
	Mat4f = Mat4[float32]
	Mat4d = Mat4[float64]
)

// Identity3 returns the 3x3 identity matrix.
func Identity3[T Float]() Mat3[T] {
	var m Mat3[T]
	m.Identity()
	return m
}

// Identity4 returns the 4x4 identity matrix.
func Identity4[T Float]() Mat4[T] {
	var m Mat4[T]
	m.Identity()
	return m
}

// At returns the element at (row, col).
func (m *Mat3[T]) At(row, col int) T {
	return m[Index(row, col, 3)]
}

// SetAt assigns the element at (row, col).
func (m *Mat3[T]) SetAt(row, col int, v T) *Mat3[T] {
	m[Index(row, col, 3)] = v
	return m
}

// Row returns the given row as a vector.
func (m *Mat3[T]) Row(row int) Vec3[T] {
	var v Vec3[T]
	MatRowN(v[:], m[:], row, 3)
	return v
}

// Column returns the given column as a vector.
func (m *Mat3[T]) Column(col int) Vec3[T] {
	var v Vec3[T]
	MatColumnN(v[:], m[:], col, 3)
	return v
}

// SetRow overwrites a row of m.
func (m *Mat3[T]) SetRow(row int, v *Vec3[T]) *Mat3[T] {
	MatSetRowN(m[:], v[:], row, 3)
	return m
}

// SetColumn overwrites a column of m.
func (m *Mat3[T]) SetColumn(col int, v *Vec3[T]) *Mat3[T] {
	MatSetColumnN(m[:], v[:], col, 3)
	return m
}

// Identity sets m to the identity matrix.
func (m *Mat3[T]) Identity() *Mat3[T] {
	MatIdentityN(m[:], 3)
	return m
}

// Copy sets m = src.
func (m *Mat3[T]) Copy(src *Mat3[T]) *Mat3[T] {
	MatCopyN(m[:], src[:], 3)
	return m
}

// Transpose sets m to the transpose of src. m may be src.
func (m *Mat3[T]) Transpose(src *Mat3[T]) *Mat3[T] {
	MatCopyN(m[:], src[:], 3)
	MatTransposeN(m[:], 3)
	return m
}

// Mul sets m = a · b. m may be a or b, so m.Mul(m, n) accumulates.
func (m *Mat3[T]) Mul(a, b *Mat3[T]) *Mat3[T] {
	MatMulN(m[:], a[:], b[:], 3)
	return m
}

// FromMat4 sets m to the upper-left 3x3 block of src.
func (m *Mat3[T]) FromMat4(src *Mat4[T]) *Mat3[T] {
	var tmp Mat3[T]
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			tmp[Index(row, col, 3)] = src[Index(row, col, 4)]
		}
	}
	*m = tmp
	return m
}

// IsIdentity returns true if m is exactly the identity matrix.
func (m *Mat3[T]) IsIdentity() bool {
	return *m == Identity3[T]()
}

// At returns the element at (row, col).
func (m *Mat4[T]) At(row, col int) T {
	return m[Index(row, col, 4)]
}

// SetAt assigns the element at (row, col).
func (m *Mat4[T]) SetAt(row, col int, v T) *Mat4[T] {
	m[Index(row, col, 4)] = v
	return m
}

// Row returns the given row as a vector.
func (m *Mat4[T]) Row(row int) Vec4[T] {
	var v Vec4[T]
	MatRowN(v[:], m[:], row, 4)
	return v
}

// Column returns the given column as a vector.
func (m *Mat4[T]) Column(col int) Vec4[T] {
	var v Vec4[T]
	MatColumnN(v[:], m[:], col, 4)
	return v
}

// SetRow overwrites a row of m.
func (m *Mat4[T]) SetRow(row int, v *Vec4[T]) *Mat4[T] {
	MatSetRowN(m[:], v[:], row, 4)
	return m
}

// SetColumn overwrites a column of m.
func (m *Mat4[T]) SetColumn(col int, v *Vec4[T]) *Mat4[T] {
	MatSetColumnN(m[:], v[:], col, 4)
	return m
}

// Identity sets m to the identity matrix.
func (m *Mat4[T]) Identity() *Mat4[T] {
	MatIdentityN(m[:], 4)
	return m
}

// Copy sets m = src.
func (m *Mat4[T]) Copy(src *Mat4[T]) *Mat4[T] {
	MatCopyN(m[:], src[:], 4)
	return m
}

// Transpose sets m to the transpose of src. m may be src.
func (m *Mat4[T]) Transpose(src *Mat4[T]) *Mat4[T] {
	MatCopyN(m[:], src[:], 4)
	MatTransposeN(m[:], 4)
	return m
}

// Mul sets m = a · b. m may be a or b, so m.Mul(m, n) accumulates.
func (m *Mat4[T]) Mul(a, b *Mat4[T]) *Mat4[T] {
	MatMulN(m[:], a[:], b[:], 4)
	return m
}

// FromMat3 sets m to the identity and copies src into its upper-left 3x3
// block.
func (m *Mat4[T]) FromMat3(src *Mat3[T]) *Mat4[T] {
	m.Identity()
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			m[Index(row, col, 4)] = src[Index(row, col, 3)]
		}
	}
	return m
}

// IsIdentity returns true if m is exactly the identity matrix.
func (m *Mat4[T]) IsIdentity() bool {
	return *m == Identity4[T]()
}

// IsAffine returns true if the bottom row is (0, 0, 0, 1).
func (m *Mat4[T]) IsAffine() bool {
	return m[3] == 0 && m[7] == 0 && m[11] == 0 && m[15] == 1
}
