package frame

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/tuguzT/Titan/engine/transform"
)

func TestGPUScreenUniformSize(t *testing.T) {
	var u GPUScreenUniform
	if got := u.Size(); got != 8 {
		t.Fatalf("Size() = %d, want 8", got)
	}
}

func TestGPUScreenUniformMarshal(t *testing.T) {
	u := NewGPUScreenUniform(transform.ScreenSize{Width: 800, Height: 600})

	buf := u.Marshal()
	if len(buf) != 8 {
		t.Fatalf("Marshal() returned %d bytes, want 8", len(buf))
	}

	width := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4]))
	height := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8]))
	if width != 800 {
		t.Errorf("width = %v, want 800", width)
	}
	if height != 600 {
		t.Errorf("height = %v, want 600", height)
	}
}
