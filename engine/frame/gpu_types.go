package frame

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/tuguzT/Titan/engine/transform"
)

// GPUScreenUniformSource is the canonical WGSL definition of the ScreenUniform struct.
// Matches GPUScreenUniform layout exactly (8 bytes).
//
//go:embed assets/screen_uniform.wgsl
var GPUScreenUniformSource string

// GPUScreenUniform is the GPU-aligned representation of the screen size uniform
// consumed by the UI pass vertex stage. Matches the WGSL ScreenUniform struct
// layout exactly (see GPUScreenUniformSource).
// Size: 8 bytes (one vec2<f32> at offset 0).
type GPUScreenUniform struct {
	ScreenSize [2]float32 // offset 0: logical screen size in pixels (width, height)
}

// NewGPUScreenUniform builds the uniform from a validated screen size.
//
// Parameters:
//   - s: the logical screen dimensions to upload
//
// Returns:
//   - GPUScreenUniform: the GPU-aligned uniform value
func NewGPUScreenUniform(s transform.ScreenSize) GPUScreenUniform {
	return GPUScreenUniform{
		ScreenSize: [2]float32{s.Width, s.Height},
	}
}

// Size returns the size of the GPUScreenUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (8)
func (g *GPUScreenUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUScreenUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUScreenUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.ScreenSize[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.ScreenSize[1]))
	return buf
}
