package linalg

// The N-suffixed functions are the dimension-parameterized kernels that the
// fixed-size types forward to. Slices must hold at least n elements; dst may
// share storage with any source because every element is read before it is
// written.

// DotN returns the dot product of the first n components of a and b.
func DotN[T Float](a, b []T, n int) T {
	var sum T
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// NormSqN returns the squared Euclidean length of the first n components.
func NormSqN[T Float](a []T, n int) T {
	return DotN(a, a, n)
}

// NormN returns the Euclidean length of the first n components.
func NormN[T Float](a []T, n int) T {
	return sqrt(DotN(a, a, n))
}

// CopyN copies n components from src into dst.
func CopyN[T Float](dst, src []T, n int) {
	for i := 0; i < n; i++ {
		dst[i] = src[i]
	}
}

// AddN sets dst = a + b component-wise.
func AddN[T Float](dst, a, b []T, n int) {
	for i := 0; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

// SubN sets dst = a - b component-wise.
func SubN[T Float](dst, a, b []T, n int) {
	for i := 0; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

// ScalarMultN sets dst = v * s.
func ScalarMultN[T Float](dst, v []T, s T, n int) {
	for i := 0; i < n; i++ {
		dst[i] = v[i] * s
	}
}

// ScalarDivN sets dst = v / s. A zero s is not checked: the result holds
// ±Inf or NaN as IEEE-754 dictates.
func ScalarDivN[T Float](dst, v []T, s T, n int) {
	for i := 0; i < n; i++ {
		dst[i] = v[i] / s
	}
}

// NormalizeN sets dst to src scaled to unit length. A zero-length src
// yields NaN components.
func NormalizeN[T Float](dst, src []T, n int) {
	ScalarDivN(dst, src, NormN(src, n), n)
}
