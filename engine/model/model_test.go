package model

import (
	"math"
	"testing"
)

func triangle() ([]GPUVertex, []uint32) {
	return []GPUVertex{
		{Position: [3]float32{0, 0, 0}, Color: [4]float32{1, 0, 0, 1}},
		{Position: [3]float32{1, 0, 0}, Color: [4]float32{0, 1, 0, 1}},
		{Position: [3]float32{0, 1, 0}, Color: [4]float32{0, 0, 1, 1}},
	}, []uint32{0, 1, 2}
}

func TestNewModelDefaults(t *testing.T) {
	verts, idx := triangle()
	m := NewModel(
		WithName("triangle"),
		WithVertices(verts),
		WithIndices(idx),
	)

	if m.Name() != "triangle" {
		t.Errorf("Name() = %q, want %q", m.Name(), "triangle")
	}
	if got := m.Scale(); got != [3]float32{1, 1, 1} {
		t.Errorf("Scale() = %v, want {1, 1, 1}", got)
	}
	if got := m.Position(); got != [3]float32{} {
		t.Errorf("Position() = %v, want zero", got)
	}
	if got := m.IndexCount(); got != 3 {
		t.Errorf("IndexCount() = %d, want 3", got)
	}
	if got := len(m.VertexData()); got != 3*28 {
		t.Errorf("VertexData() = %d bytes, want %d", got, 3*28)
	}
	if got := len(m.IndexData()); got != 12 {
		t.Errorf("IndexData() = %d bytes, want 12", got)
	}
	if got := m.BoundingRadius(); math.Abs(float64(got-1)) > 1e-5 {
		t.Errorf("BoundingRadius() = %v, want 1", got)
	}
}

func TestNewModelMatrixIsIdentityByDefault(t *testing.T) {
	verts, idx := triangle()
	m := NewModel(WithVertices(verts), WithIndices(idx))

	mat := m.ModelMatrix()
	want := [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	if mat != want {
		t.Fatalf("ModelMatrix() = %v, want identity", mat)
	}
}

func TestModelTransformSettersRebuildMatrix(t *testing.T) {
	verts, idx := triangle()
	m := NewModel(WithVertices(verts), WithIndices(idx))

	m.SetPosition(1, 2, 3)
	mat := m.ModelMatrix()
	if mat[12] != 1 || mat[13] != 2 || mat[14] != 3 {
		t.Fatalf("translation = (%v, %v, %v), want (1, 2, 3)", mat[12], mat[13], mat[14])
	}

	m.SetScale(2, 2, 2)
	mat = m.ModelMatrix()
	if mat[0] != 2 || mat[5] != 2 || mat[10] != 2 {
		t.Fatalf("scale diagonal = (%v, %v, %v), want (2, 2, 2)", mat[0], mat[5], mat[10])
	}
	// Scaling must not disturb the translation column.
	if mat[12] != 1 || mat[13] != 2 || mat[14] != 3 {
		t.Fatalf("translation after scale = (%v, %v, %v), want (1, 2, 3)", mat[12], mat[13], mat[14])
	}

	if got := m.Position(); got != [3]float32{1, 2, 3} {
		t.Errorf("Position() = %v, want {1, 2, 3}", got)
	}
	if got := m.Scale(); got != [3]float32{2, 2, 2} {
		t.Errorf("Scale() = %v, want {2, 2, 2}", got)
	}
}

func TestModelBuilderTransformOptions(t *testing.T) {
	verts, idx := triangle()
	m := NewModel(
		WithVertices(verts),
		WithIndices(idx),
		WithPosition(5, 0, 0),
		WithScale(3, 3, 3),
	)

	mat := m.ModelMatrix()
	if mat[12] != 5 {
		t.Errorf("translation x = %v, want 5", mat[12])
	}
	if mat[0] != 3 {
		t.Errorf("scale x = %v, want 3", mat[0])
	}
}
