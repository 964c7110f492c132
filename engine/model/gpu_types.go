package model

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUVertexSource is the canonical WGSL definition of the VertexInput struct for the geometry pass.
// Matches GPUVertex layout exactly (28 bytes, tightly packed vertex attributes).
//
//go:embed assets/vertex.wgsl
var GPUVertexSource string

// GPUVertex is the GPU-aligned representation of a single mesh vertex for the geometry pass.
// Matches the WGSL VertexInput struct layout exactly (see GPUVertexSource).
// Size: 28 bytes (position at offset 0, color at offset 12, no padding).
type GPUVertex struct {
	Position [3]float32 // offset  0: vertex position in model space (12 bytes)
	Color    [4]float32 // offset 12: per-vertex RGBA color (16 bytes)
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 28-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, 28)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Position[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Color[3]))
	return buf
}

// GPUUIVertexSource is the canonical WGSL definition of the UIVertexInput struct for the UI pass.
// Matches GPUUIVertex layout exactly (32 bytes, tightly packed vertex attributes).
//
//go:embed assets/ui_vertex.wgsl
var GPUUIVertexSource string

// GPUUIVertex is the GPU-aligned representation of a single UI vertex.
// Positions are in logical screen pixels with the origin at the top-left corner;
// the UI vertex stage maps them to clip space using the current screen size.
// Matches the WGSL UIVertexInput struct layout exactly (see GPUUIVertexSource).
// Size: 32 bytes (position at offset 0, uv at offset 8, color at offset 16, no padding).
type GPUUIVertex struct {
	Position [2]float32 // offset  0: vertex position in screen pixels (8 bytes)
	UV       [2]float32 // offset  8: font atlas texture coordinate (8 bytes)
	Color    [4]float32 // offset 16: per-vertex RGBA color, premultiplied alpha (16 bytes)
}

// Size returns the size of the GPUUIVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUUIVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUUIVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPUUIVertex) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Position[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Position[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.UV[0]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.UV[1]))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Color[2]))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(g.Color[3]))
	return buf
}

// MarshalVertices serializes a slice of geometry pass vertices into a single
// contiguous byte buffer suitable for vertex buffer upload.
//
// Parameters:
//   - vertices: the vertices to serialize
//
// Returns:
//   - []byte: buffer of len(vertices)*28 bytes.
func MarshalVertices(vertices []GPUVertex) []byte {
	buf := make([]byte, 0, len(vertices)*28)
	for i := range vertices {
		buf = append(buf, vertices[i].Marshal()...)
	}
	return buf
}

// MarshalUIVertices serializes a slice of UI vertices into a single contiguous
// byte buffer suitable for vertex buffer upload.
//
// Parameters:
//   - vertices: the vertices to serialize
//
// Returns:
//   - []byte: buffer of len(vertices)*32 bytes.
func MarshalUIVertices(vertices []GPUUIVertex) []byte {
	buf := make([]byte, 0, len(vertices)*32)
	for i := range vertices {
		buf = append(buf, vertices[i].Marshal()...)
	}
	return buf
}

// MarshalIndices serializes a slice of triangle list indices into a byte buffer
// suitable for index buffer upload (Uint32 index format).
//
// Parameters:
//   - indices: the indices to serialize
//
// Returns:
//   - []byte: buffer of len(indices)*4 bytes.
func MarshalIndices(indices []uint32) []byte {
	buf := make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}

// ComputeBoundingRadius calculates the bounding sphere radius from a slice of
// GPUVertex positions. The radius is the maximum distance from the model space
// origin to any vertex.
//
// Parameters:
//   - vertices: the vertices to measure
//
// Returns:
//   - float32: the bounding sphere radius, 0 for an empty slice.
func ComputeBoundingRadius(vertices []GPUVertex) float32 {
	var maxSq float32
	for i := range vertices {
		p := vertices[i].Position
		distSq := p[0]*p[0] + p[1]*p[1] + p[2]*p[2]
		if distSq > maxSq {
			maxSq = distSq
		}
	}
	return float32(math.Sqrt(float64(maxSq)))
}
