package linalg

import (
	"math"
	"unsafe"
)

// Float is the precision parameter of every vector and matrix type.
// float32 matches GPU uniform storage; float64 is used for accumulation
// and CPU-side math.
type Float interface {
	~float32 | ~float64
}

// maxDim is the largest supported vector or matrix dimension. Scratch
// buffers are sized for it so that no operation allocates.
const maxDim = 4

// isSingle reports whether T is a 32-bit float.
func isSingle[T Float]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

func sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

func abs[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// radians converts degrees to radians in double precision.
func radians[T Float](deg T) float64 {
	return float64(deg) * math.Pi / 180
}
