package common

import (
	"math"
	"testing"
)

const epsilon = 1e-5

func matricesClose(t *testing.T, got, want []float32) {
	t.Helper()
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > epsilon {
			t.Fatalf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = float32(i)
	}
	Identity(m)

	want := []float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	matricesClose(t, m, want)
}

func TestMul4(t *testing.T) {
	identity := make([]float32, 16)
	Identity(identity)

	translate := make([]float32, 16)
	Identity(translate)
	translate[12], translate[13], translate[14] = 1, 2, 3

	scale := make([]float32, 16)
	Identity(scale)
	scale[0], scale[5], scale[10] = 2, 2, 2

	tests := []struct {
		name string
		a, b []float32
		want []float32
	}{
		{
			name: "identity times identity",
			a:    identity,
			b:    identity,
			want: identity,
		},
		{
			name: "identity preserves translation",
			a:    identity,
			b:    translate,
			want: translate,
		},
		{
			name: "translate after scale",
			a:    translate,
			b:    scale,
			want: []float32{
				2, 0, 0, 0,
				0, 2, 0, 0,
				0, 0, 2, 0,
				1, 2, 3, 1,
			},
		},
		{
			name: "scale after translate",
			a:    scale,
			b:    translate,
			want: []float32{
				2, 0, 0, 0,
				0, 2, 0, 0,
				0, 0, 2, 0,
				2, 4, 6, 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make([]float32, 16)
			Mul4(out, tt.a, tt.b)
			matricesClose(t, out, tt.want)
		})
	}
}

func TestMul4Aliasing(t *testing.T) {
	// out may alias an input operand.
	m := make([]float32, 16)
	Identity(m)
	m[12] = 5

	Mul4(m, m, m)

	want := make([]float32, 16)
	Identity(want)
	want[12] = 10
	matricesClose(t, m, want)
}

func TestMulVec4(t *testing.T) {
	translate := make([]float32, 16)
	Identity(translate)
	translate[12], translate[13], translate[14] = 10, 20, 30

	tests := []struct {
		name string
		m    []float32
		v    [4]float32
		want [4]float32
	}{
		{
			name: "translation applies to points",
			m:    translate,
			v:    [4]float32{1, 2, 3, 1},
			want: [4]float32{11, 22, 33, 1},
		},
		{
			name: "translation ignores directions",
			m:    translate,
			v:    [4]float32{1, 2, 3, 0},
			want: [4]float32{1, 2, 3, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MulVec4(tt.m, tt.v)
			matricesClose(t, got[:], tt.want[:])
		})
	}
}

func TestPerspective(t *testing.T) {
	out := make([]float32, 16)
	fovY := float32(math.Pi / 2)
	Perspective(out, fovY, 2.0, 0.1, 100)

	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	if math.Abs(float64(out[0]-f/2.0)) > epsilon {
		t.Errorf("out[0] = %v, want %v", out[0], f/2.0)
	}
	if math.Abs(float64(out[5]-f)) > epsilon {
		t.Errorf("out[5] = %v, want %v", out[5], f)
	}
	if out[11] != -1 {
		t.Errorf("out[11] = %v, want -1", out[11])
	}
	if out[15] != 0 {
		t.Errorf("out[15] = %v, want 0", out[15])
	}

	// A point on the near plane maps to depth 0, the far plane to depth 1
	// after perspective divide (WebGPU clip space convention).
	near := MulVec4(out, [4]float32{0, 0, -0.1, 1})
	if math.Abs(float64(near[2]/near[3])) > epsilon {
		t.Errorf("near plane depth = %v, want 0", near[2]/near[3])
	}
	far := MulVec4(out, [4]float32{0, 0, -100, 1})
	if math.Abs(float64(far[2]/far[3]-1)) > epsilon {
		t.Errorf("far plane depth = %v, want 1", far[2]/far[3])
	}
}

func TestBuildModelMatrix(t *testing.T) {
	t.Run("identity transform", func(t *testing.T) {
		out := make([]float32, 16)
		BuildModelMatrix(out, 0, 0, 0, 0, 0, 0, 1, 1, 1)

		want := make([]float32, 16)
		Identity(want)
		matricesClose(t, out, want)
	})

	t.Run("translation lands in the last column", func(t *testing.T) {
		out := make([]float32, 16)
		BuildModelMatrix(out, 7, 8, 9, 0, 0, 0, 1, 1, 1)
		if out[12] != 7 || out[13] != 8 || out[14] != 9 {
			t.Fatalf("translation = (%v, %v, %v), want (7, 8, 9)", out[12], out[13], out[14])
		}
	})

	t.Run("scale applies per axis", func(t *testing.T) {
		out := make([]float32, 16)
		BuildModelMatrix(out, 0, 0, 0, 0, 0, 0, 2, 3, 4)
		got := MulVec4(out, [4]float32{1, 1, 1, 1})
		want := [4]float32{2, 3, 4, 1}
		matricesClose(t, got[:], want[:])
	})

	t.Run("yaw rotates x into -z", func(t *testing.T) {
		out := make([]float32, 16)
		BuildModelMatrix(out, 0, 0, 0, 0, float32(math.Pi/2), 0, 1, 1, 1)
		got := MulVec4(out, [4]float32{1, 0, 0, 1})
		want := [4]float32{0, 0, -1, 1}
		matricesClose(t, got[:], want[:])
	})
}

func TestLookAt(t *testing.T) {
	out := make([]float32, 16)
	LookAt(out, 0, 0, 5, 0, 0, 0, 0, 1, 0)

	// The eye maps to the view-space origin.
	eye := MulVec4(out, [4]float32{0, 0, 5, 1})
	want := [4]float32{0, 0, 0, 1}
	matricesClose(t, eye[:], want[:])

	// The target sits on the negative z axis at the eye distance.
	target := MulVec4(out, [4]float32{0, 0, 0, 1})
	want = [4]float32{0, 0, -5, 1}
	matricesClose(t, target[:], want[:])
}
