package model

import (
	"encoding/binary"
	"math"
	"testing"
)

func readFloat(t *testing.T, buf []byte, offset int) float32 {
	t.Helper()
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
}

func TestGPUVertexSize(t *testing.T) {
	var v GPUVertex
	if got := v.Size(); got != 28 {
		t.Fatalf("Size() = %d, want 28", got)
	}
}

func TestGPUVertexMarshal(t *testing.T) {
	v := GPUVertex{
		Position: [3]float32{1, 2, 3},
		Color:    [4]float32{0.1, 0.2, 0.3, 0.4},
	}

	buf := v.Marshal()
	if len(buf) != 28 {
		t.Fatalf("Marshal() returned %d bytes, want 28", len(buf))
	}

	// Position at offset 0, color at offset 12.
	for i, want := range v.Position {
		if got := readFloat(t, buf, i*4); got != want {
			t.Errorf("position[%d] = %v, want %v", i, got, want)
		}
	}
	for i, want := range v.Color {
		if got := readFloat(t, buf, 12+i*4); got != want {
			t.Errorf("color[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestGPUUIVertexSize(t *testing.T) {
	var v GPUUIVertex
	if got := v.Size(); got != 32 {
		t.Fatalf("Size() = %d, want 32", got)
	}
}

func TestGPUUIVertexMarshal(t *testing.T) {
	v := GPUUIVertex{
		Position: [2]float32{10, 20},
		UV:       [2]float32{0.25, 0.75},
		Color:    [4]float32{1, 0, 0, 1},
	}

	buf := v.Marshal()
	if len(buf) != 32 {
		t.Fatalf("Marshal() returned %d bytes, want 32", len(buf))
	}

	// Position at offset 0, UV at offset 8, color at offset 16.
	for i, want := range v.Position {
		if got := readFloat(t, buf, i*4); got != want {
			t.Errorf("position[%d] = %v, want %v", i, got, want)
		}
	}
	for i, want := range v.UV {
		if got := readFloat(t, buf, 8+i*4); got != want {
			t.Errorf("uv[%d] = %v, want %v", i, got, want)
		}
	}
	for i, want := range v.Color {
		if got := readFloat(t, buf, 16+i*4); got != want {
			t.Errorf("color[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestMarshalVertices(t *testing.T) {
	vertices := []GPUVertex{
		{Position: [3]float32{1, 0, 0}},
		{Position: [3]float32{0, 2, 0}},
		{Position: [3]float32{0, 0, 3}},
	}

	buf := MarshalVertices(vertices)
	if len(buf) != 3*28 {
		t.Fatalf("MarshalVertices() returned %d bytes, want %d", len(buf), 3*28)
	}
	if got := readFloat(t, buf, 0); got != 1 {
		t.Errorf("vertex 0 x = %v, want 1", got)
	}
	if got := readFloat(t, buf, 28+4); got != 2 {
		t.Errorf("vertex 1 y = %v, want 2", got)
	}
	if got := readFloat(t, buf, 2*28+8); got != 3 {
		t.Errorf("vertex 2 z = %v, want 3", got)
	}

	if got := MarshalVertices(nil); len(got) != 0 {
		t.Errorf("MarshalVertices(nil) returned %d bytes, want 0", len(got))
	}
}

func TestMarshalIndices(t *testing.T) {
	indices := []uint32{0, 1, 2, 0xDEADBEEF}

	buf := MarshalIndices(indices)
	if len(buf) != 16 {
		t.Fatalf("MarshalIndices() returned %d bytes, want 16", len(buf))
	}
	for i, want := range indices {
		if got := binary.LittleEndian.Uint32(buf[i*4:]); got != want {
			t.Errorf("index %d = %d, want %d", i, got, want)
		}
	}
}

func TestComputeBoundingRadius(t *testing.T) {
	tests := []struct {
		name     string
		vertices []GPUVertex
		want     float32
	}{
		{
			name:     "empty",
			vertices: nil,
			want:     0,
		},
		{
			name: "unit axes",
			vertices: []GPUVertex{
				{Position: [3]float32{1, 0, 0}},
				{Position: [3]float32{0, -1, 0}},
			},
			want: 1,
		},
		{
			name: "pythagorean",
			vertices: []GPUVertex{
				{Position: [3]float32{3, 4, 0}},
				{Position: [3]float32{1, 1, 1}},
			},
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBoundingRadius(tt.vertices)
			if math.Abs(float64(got-tt.want)) > 1e-5 {
				t.Fatalf("ComputeBoundingRadius() = %v, want %v", got, tt.want)
			}
		})
	}
}
