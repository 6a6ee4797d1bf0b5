// Package linalg provides fixed-size vector and matrix math for 3D
// rendering pipelines.
//
// # Overview
//
// linalg covers the numeric core a renderer needs on the CPU side:
// 3- and 4-component vectors, 3x3 and 4x4 matrices, closed-form inversion,
// and builders for the classic transform, projection and view matrices
// (glTranslate, glRotate, glScale, glFrustum, glOrtho, gluPerspective,
// gluLookAt).
//
// # Quick Start
//
//	import "github.com/gogpu/linalg"
//
//	var proj, view, mvp linalg.Mat4f
//	proj.Perspective(60, 16.0/9.0, 0.1, 100)
//	view.LookAt(0, 2, 5, 0, 0, 0, 0, 1, 0)
//	mvp.Mul(&proj, &view)
//
//	var p linalg.Vec4f
//	p.Transform(&mvp, &linalg.Vec4f{1, 0, 0, 1})
//
// # Precision
//
// Every type is generic over [Float]. Vec3f, Mat4f and friends are the
// float32 instantiations used for GPU upload; Vec3d, Mat4d the float64 ones.
// Converting between them is always explicit (ConvertMat4 and friends).
//
// # Layout
//
// Matrices are column-major: element (row, col) of an n×n matrix is stored
// at index row + col*n (see [Index]). This is the layout expected by
// OpenGL and WGSL, and the gpu sub-package uploads matrices without
// reordering.
//
// # Destinations and Aliasing
//
// Operations are methods on the destination, in the style of math/big:
//
//	m.Mul(a, b)     // m = a · b
//	v.Cross(a, b)   // v = a × b
//
// The destination may be any of the sources. Products are computed into
// stack scratch space before being written, so m.Mul(m, n), v.Cross(v, w)
// and m.Invert(m) are all valid in-place forms. No operation allocates.
//
// # Degenerate Input
//
// Arguments are not validated. Normalizing a zero vector, rotating around
// a zero axis, or a look-at whose up vector is parallel to the view
// direction yields NaN; projection builders with near >= far yield a
// degenerate matrix. The only operation that reports failure is Invert,
// which returns false for singular matrices.
//
// # Concurrency
//
// All operations are pure functions of their inputs. Concurrent calls are
// safe as long as they write to different destinations.
package linalg

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
