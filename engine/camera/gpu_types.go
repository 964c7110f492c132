package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/tuguzT/Titan/engine/transform"
)

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform struct.
// Matches GPUCameraUniform layout exactly (192 bytes, std140 compatible).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer
// consumed by the geometry pass vertex stage. Matches the WGSL CameraUniform struct
// layout exactly (see GPUCameraUniformSource). Field order is load-bearing:
// projection, then model, then view.
// Size: 192 bytes (three mat4x4<f32> at offsets 0, 64, 128).
type GPUCameraUniform struct {
	Projection [16]float32 // offset   0: view-to-clip matrix (mat4x4<f32>)
	Model      [16]float32 // offset  64: object-to-world matrix (mat4x4<f32>)
	View       [16]float32 // offset 128: world-to-view matrix (mat4x4<f32>)
}

// NewGPUCameraUniform builds the uniform from a CPU-side camera transform.
//
// Parameters:
//   - t: the projection/model/view triple to upload
//
// Returns:
//   - GPUCameraUniform: the GPU-aligned uniform value
func NewGPUCameraUniform(t transform.CameraTransform) GPUCameraUniform {
	return GPUCameraUniform{
		Projection: t.Projection,
		Model:      t.Model,
		View:       t.View,
	}
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (192)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
// Matrices are written column-major as little-endian float32 values.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Projection[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.Model[i]))
	}
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[128+i*4:], math.Float32bits(g.View[i]))
	}
	return buf
}
