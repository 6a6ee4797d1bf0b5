package linalg

import (
	"sync"

	"github.com/gogpu/linalg/internal/parallel"
)

// ParallelThreshold is the number of points at which TransformPoints
// switches from an inline loop to the shared worker pool.
var ParallelThreshold = 4096

// transformChunk is the number of points handed to one worker at a time.
const transformChunk = 1024

var sharedPool = sync.OnceValue(func() *parallel.WorkerPool {
	return parallel.NewWorkerPool(0)
})

// TransformPoints sets dst[i] = m · src[i] for every i < len(src).
// dst must be at least as long as src and may be the same slice.
//
// Large batches are split into disjoint chunks and transformed on a shared
// worker pool; m must not be modified until TransformPoints returns.
func TransformPoints[T Float](dst, src []Vec4[T], m *Mat4[T]) {
	n := len(src)
	_ = dst[:n]

	if n < ParallelThreshold {
		transformRange(dst, src, m, 0, n)
		return
	}

	pool := sharedPool()
	Logger().Debug("linalg: parallel transform", "points", n, "workers", pool.Workers())
	pool.Range(n, transformChunk, func(lo, hi int) {
		transformRange(dst, src, m, lo, hi)
	})
}

func transformRange[T Float](dst, src []Vec4[T], m *Mat4[T], lo, hi int) {
	for i := lo; i < hi; i++ {
		dst[i].Transform(m, &src[i])
	}
}
