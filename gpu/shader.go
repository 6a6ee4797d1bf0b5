package gpu

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/naga"

	"github.com/gogpu/linalg"
)

// TransformShaderWGSL is a minimal vertex shader that reads a Transforms
// uniform at group(0) binding(0) and outputs
// projection * view * model * position.
//
//go:embed shaders/transform.wgsl
var TransformShaderWGSL string

// spirvMagic is the first word of every SPIR-V module.
const spirvMagic = 0x07230203

// CompileTransformShader compiles TransformShaderWGSL to SPIR-V words.
func CompileTransformShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(TransformShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("compile transform shader: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("compile transform shader: SPIR-V length %d is not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	if len(code) == 0 || code[0] != spirvMagic {
		return nil, errors.New("compile transform shader: missing SPIR-V magic")
	}

	linalg.Logger().Debug("gpu: compiled transform shader", "words", len(code))
	return code, nil
}
