package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/tuguzT/Titan/engine/transform"
)

func TestGPUCameraUniformSize(t *testing.T) {
	var u GPUCameraUniform
	if got := u.Size(); got != 192 {
		t.Fatalf("Size() = %d, want 192", got)
	}
}

func TestGPUCameraUniformMarshalOffsets(t *testing.T) {
	var u GPUCameraUniform
	for i := range 16 {
		u.Projection[i] = float32(i)
		u.Model[i] = float32(100 + i)
		u.View[i] = float32(200 + i)
	}

	buf := u.Marshal()
	if len(buf) != 192 {
		t.Fatalf("Marshal() returned %d bytes, want 192", len(buf))
	}

	readFloat := func(offset int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
	}

	// Field order is projection, model, view at offsets 0, 64, 128.
	for i := range 16 {
		if got := readFloat(i * 4); got != float32(i) {
			t.Errorf("projection[%d] = %v, want %v", i, got, float32(i))
		}
		if got := readFloat(64 + i*4); got != float32(100+i) {
			t.Errorf("model[%d] = %v, want %v", i, got, float32(100+i))
		}
		if got := readFloat(128 + i*4); got != float32(200+i) {
			t.Errorf("view[%d] = %v, want %v", i, got, float32(200+i))
		}
	}
}

func TestNewGPUCameraUniform(t *testing.T) {
	tr := transform.NewCameraTransform()
	tr.Projection[0] = 42
	tr.Model[5] = 7
	tr.View[12] = -3

	u := NewGPUCameraUniform(tr)
	if u.Projection != tr.Projection {
		t.Error("projection not copied")
	}
	if u.Model != tr.Model {
		t.Error("model not copied")
	}
	if u.View != tr.View {
		t.Error("view not copied")
	}
}
