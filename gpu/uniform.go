// Package gpu lays out linalg matrices for upload into WebGPU uniform
// buffers.
//
// WGSL matrices are column-major, the same layout linalg uses, so packing
// is a straight little-endian copy for mat4x4<f32>. mat3x3<f32> columns are
// 16-byte aligned and get 4 bytes of padding each.
//
// Usage:
//
//	var tr gpu.Transforms
//	tr.Model.Identity()
//	tr.View.LookAt(0, 0, 5, 0, 0, 0, 0, 1, 0)
//	tr.Projection.Perspective(60, aspect, 0.1, 100)
//	queue.WriteBuffer(buf, 0, tr.Bytes())
package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/linalg"
)

const (
	// Mat4Size is the byte size of a WGSL mat4x4<f32>.
	Mat4Size = 64

	// Mat3Size is the byte size of a WGSL mat3x3<f32> (three vec3 columns
	// with a 16-byte stride).
	Mat3Size = 48

	// TransformsSize is the byte size of the Transforms uniform block.
	TransformsSize = 3 * Mat4Size
)

// TransformsBufferUsage is the buffer usage for a Transforms uniform
// buffer that is rewritten from the CPU every frame.
var TransformsBufferUsage = gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst

func appendFloat(dst []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
}

// AppendMat4 appends the 64-byte WGSL encoding of m to dst.
func AppendMat4(dst []byte, m *linalg.Mat4f) []byte {
	for _, v := range m {
		dst = appendFloat(dst, v)
	}
	return dst
}

// AppendMat3 appends the 48-byte WGSL encoding of m to dst. The fourth
// float of every column is zero padding.
func AppendMat3(dst []byte, m *linalg.Mat3f) []byte {
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			dst = appendFloat(dst, m[linalg.Index(row, col, 3)])
		}
		dst = appendFloat(dst, 0)
	}
	return dst
}

// Transforms mirrors the Transforms struct of the reference shader.
type Transforms struct {
	Model      linalg.Mat4f
	View       linalg.Mat4f
	Projection linalg.Mat4f
}

// Bytes returns the TransformsSize-byte uniform encoding of t.
func (t *Transforms) Bytes() []byte {
	buf := make([]byte, 0, TransformsSize)
	buf = AppendMat4(buf, &t.Model)
	buf = AppendMat4(buf, &t.View)
	buf = AppendMat4(buf, &t.Projection)
	return buf
}

// MVP returns Projection · View · Model, the product the reference shader
// computes per vertex.
func (t *Transforms) MVP() linalg.Mat4f {
	var m linalg.Mat4f
	m.Mul(&t.Projection, &t.View)
	m.Mul(&m, &t.Model)
	return m
}

// TransformsLayoutEntry returns the bind group layout entry for a
// Transforms uniform buffer read by the vertex stage.
func TransformsLayoutEntry(binding uint32) gputypes.BindGroupLayoutEntry {
	return gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: gputypes.ShaderStageVertex,
		Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
	}
}
