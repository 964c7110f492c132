package model

import "testing"

func TestClipRectClamp(t *testing.T) {
	tests := []struct {
		name string
		rect ClipRect
		want ClipRect
	}{
		{
			name: "fully inside",
			rect: ClipRect{X: 10, Y: 10, Width: 100, Height: 100},
			want: ClipRect{X: 10, Y: 10, Width: 100, Height: 100},
		},
		{
			name: "width overflows",
			rect: ClipRect{X: 700, Y: 0, Width: 200, Height: 50},
			want: ClipRect{X: 700, Y: 0, Width: 100, Height: 50},
		},
		{
			name: "height overflows",
			rect: ClipRect{X: 0, Y: 500, Width: 50, Height: 200},
			want: ClipRect{X: 0, Y: 500, Width: 50, Height: 100},
		},
		{
			name: "origin right of framebuffer",
			rect: ClipRect{X: 900, Y: 0, Width: 50, Height: 50},
			want: ClipRect{},
		},
		{
			name: "origin below framebuffer",
			rect: ClipRect{X: 0, Y: 600, Width: 50, Height: 50},
			want: ClipRect{},
		},
		{
			name: "exact fit",
			rect: ClipRect{X: 0, Y: 0, Width: 800, Height: 600},
			want: ClipRect{X: 0, Y: 0, Width: 800, Height: 600},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rect.Clamp(800, 600)
			if got != tt.want {
				t.Fatalf("Clamp() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClipRectEmpty(t *testing.T) {
	if !(ClipRect{}).Empty() {
		t.Error("zero rect should be empty")
	}
	if !(ClipRect{Width: 10}).Empty() {
		t.Error("zero-height rect should be empty")
	}
	if (ClipRect{Width: 10, Height: 10}).Empty() {
		t.Error("10x10 rect should not be empty")
	}
}

func TestUIMeshData(t *testing.T) {
	mesh := UIMesh{
		Vertices: []GPUUIVertex{
			{Position: [2]float32{0, 0}},
			{Position: [2]float32{10, 0}},
			{Position: [2]float32{10, 10}},
		},
		Indices: []uint32{0, 1, 2},
	}

	if got := len(mesh.VertexData()); got != 3*32 {
		t.Errorf("VertexData() = %d bytes, want %d", got, 3*32)
	}
	if got := len(mesh.IndexData()); got != 12 {
		t.Errorf("IndexData() = %d bytes, want 12", got)
	}
}
