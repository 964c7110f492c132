package transform

import (
	"errors"
	"math"
	"testing"

	"github.com/tuguzT/Titan/common"
)

const epsilon = 1e-5

func vectorsClose(t *testing.T, got, want [4]float32) {
	t.Helper()
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > epsilon {
			t.Fatalf("component %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNewCameraTransformIsIdentity(t *testing.T) {
	tr := NewCameraTransform()
	got := tr.ClipPosition([3]float32{1, 2, 3})
	vectorsClose(t, got, [4]float32{1, 2, 3, 1})
}

func TestCameraTransformClipPosition(t *testing.T) {
	tr := NewCameraTransform()

	// Model: translate by (1, 0, 0). View: translate by (0, 0, -5).
	common.BuildModelMatrix(tr.Model[:], 1, 0, 0, 0, 0, 0, 1, 1, 1)
	common.LookAt(tr.View[:], 0, 0, 5, 0, 0, 0, 0, 1, 0)

	got := tr.ClipPosition([3]float32{0, 0, 0})
	vectorsClose(t, got, [4]float32{1, 0, -5, 1})
}

func TestCameraTransformMatrixOrder(t *testing.T) {
	tr := NewCameraTransform()

	// Model scales by 2, view translates by (1, 0, 0). If the order were
	// model-then-view reversed, the result for x=1 would be 4 instead of 3.
	common.BuildModelMatrix(tr.Model[:], 0, 0, 0, 0, 0, 0, 2, 2, 2)
	common.BuildModelMatrix(tr.View[:], 1, 0, 0, 0, 0, 0, 1, 1, 1)

	got := tr.ClipPosition([3]float32{1, 0, 0})
	vectorsClose(t, got, [4]float32{3, 0, 0, 1})
}

func TestScreenSizeClipPosition(t *testing.T) {
	screen := ScreenSize{Width: 800, Height: 600}

	tests := []struct {
		name     string
		position [2]float32
		want     [4]float32
	}{
		{
			name:     "top-left corner",
			position: [2]float32{0, 0},
			want:     [4]float32{-1, -1, 0, 1},
		},
		{
			name:     "bottom-right corner",
			position: [2]float32{800, 600},
			want:     [4]float32{1, 1, 0, 1},
		},
		{
			name:     "center",
			position: [2]float32{400, 300},
			want:     [4]float32{0, 0, 0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := screen.ClipPosition(tt.position)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			vectorsClose(t, got, tt.want)
		})
	}
}

func TestScreenSizeValidate(t *testing.T) {
	tests := []struct {
		name    string
		size    ScreenSize
		wantErr bool
	}{
		{name: "valid", size: ScreenSize{Width: 800, Height: 600}, wantErr: false},
		{name: "fractional", size: ScreenSize{Width: 0.5, Height: 0.5}, wantErr: false},
		{name: "zero width", size: ScreenSize{Width: 0, Height: 600}, wantErr: true},
		{name: "zero height", size: ScreenSize{Width: 800, Height: 0}, wantErr: true},
		{name: "negative width", size: ScreenSize{Width: -800, Height: 600}, wantErr: true},
		{name: "nan height", size: ScreenSize{Width: 800, Height: float32(math.NaN())}, wantErr: true},
		{name: "infinite width", size: ScreenSize{Width: float32(math.Inf(1)), Height: 600}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.size.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrDegenerateViewport) {
					t.Fatalf("got %v, want ErrDegenerateViewport", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestScreenSizeClipPositionDegenerate(t *testing.T) {
	screen := ScreenSize{Width: 0, Height: 600}
	_, err := screen.ClipPosition([2]float32{10, 10})
	if !errors.Is(err, ErrDegenerateViewport) {
		t.Fatalf("got %v, want ErrDegenerateViewport", err)
	}
}
