package linalg

// Matrices are stored column-major: the element at (row, col) of an n×n
// matrix lives at index row + col*n. GPU uniform buffers and the classic
// fixed-function pipeline expect exactly this layout.

// Index returns the flat offset of (row, col) in a column-major n×n matrix.
func Index(row, col, n int) int {
	return row + col*n
}

// MatRowN copies row of the n×n matrix m into dst.
func MatRowN[T Float](dst, m []T, row, n int) {
	for col := 0; col < n; col++ {
		dst[col] = m[Index(row, col, n)]
	}
}

// MatColumnN copies column col of the n×n matrix m into dst.
func MatColumnN[T Float](dst, m []T, col, n int) {
	for row := 0; row < n; row++ {
		dst[row] = m[Index(row, col, n)]
	}
}

// MatSetRowN overwrites row of m with v.
func MatSetRowN[T Float](m, v []T, row, n int) {
	for col := 0; col < n; col++ {
		m[Index(row, col, n)] = v[col]
	}
}

// MatSetColumnN overwrites column col of m with v.
func MatSetColumnN[T Float](m, v []T, col, n int) {
	for row := 0; row < n; row++ {
		m[Index(row, col, n)] = v[row]
	}
}

// MatIdentityN fills m with the n×n identity.
func MatIdentityN[T Float](m []T, n int) {
	for col := 0; col < n; col++ {
		for row := 0; row < n; row++ {
			if row == col {
				m[Index(row, col, n)] = 1
			} else {
				m[Index(row, col, n)] = 0
			}
		}
	}
}

// MatCopyN copies the n×n matrix src into dst.
func MatCopyN[T Float](dst, src []T, n int) {
	CopyN(dst, src, n*n)
}

// MatTransposeN transposes the n×n matrix m in place. Only the strict upper
// triangle is walked so each pair is swapped exactly once.
func MatTransposeN[T Float](m []T, n int) {
	for row := 0; row < n; row++ {
		for col := row + 1; col < n; col++ {
			i, j := Index(row, col, n), Index(col, row, n)
			m[i], m[j] = m[j], m[i]
		}
	}
}

// MatMulN sets dst = a · b. The product is accumulated in a stack scratch
// matrix and committed at the end, so dst may be a, b, or both.
func MatMulN[T Float](dst, a, b []T, n int) {
	var (
		tmp      [maxDim * maxDim]T
		row, col [maxDim]T
	)
	for i := 0; i < n; i++ {
		MatRowN(row[:], a, i, n)
		for j := 0; j < n; j++ {
			MatColumnN(col[:], b, j, n)
			tmp[Index(i, j, n)] = DotN(row[:], col[:], n)
		}
	}
	MatCopyN(dst, tmp[:], n)
}

// MatMulVecN sets dst = m · v for a column vector v. dst may be v.
func MatMulVecN[T Float](dst, m, v []T, n int) {
	var tmp [maxDim]T
	for row := 0; row < n; row++ {
		var sum T
		for col := 0; col < n; col++ {
			sum += m[Index(row, col, n)] * v[col]
		}
		tmp[row] = sum
	}
	CopyN(dst, tmp[:], n)
}
