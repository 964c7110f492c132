package shader

import (
	"errors"
	"testing"
)

const geometryFragmentSource = `
struct FragmentInput {
    @location(0) color: vec4<f32>,
}

@fragment
fn fs_main(in: FragmentInput) -> @location(0) vec4<f32> {
    return in.color;
}
`

func TestStageOutputs(t *testing.T) {
	vs := NewShader("geometry_vert", ShaderTypeVertex, geometryVertexSource)

	outputs := vs.StageOutputs()
	if len(outputs) != 1 {
		t.Fatalf("got %d outputs, want 1", len(outputs))
	}
	// The @builtin(position) field is not part of the inter-stage interface.
	if outputs[0] != "vec4<f32>" {
		t.Errorf("location 0 = %q, want vec4<f32>", outputs[0])
	}
}

func TestStageInputs(t *testing.T) {
	fs := NewShader("ui_frag", ShaderTypeFragment, uiFragmentSource)

	inputs := fs.StageInputs()
	if len(inputs) != 2 {
		t.Fatalf("got %d inputs, want 2", len(inputs))
	}
	if inputs[0] != "vec4<f32>" {
		t.Errorf("location 0 = %q, want vec4<f32>", inputs[0])
	}
	if inputs[1] != "vec2<f32>" {
		t.Errorf("location 1 = %q, want vec2<f32>", inputs[1])
	}
}

func TestStageInputsDirectParameters(t *testing.T) {
	// Entry functions may declare inter-stage inputs as annotated parameters
	// instead of a struct; @builtin parameters are not part of the interface.
	fs := NewShader("direct_frag", ShaderTypeFragment, `
@fragment
fn fs_main(@builtin(front_facing) front: bool, @location(0) color: vec4<f32>, @location(1) uv: vec2<f32>) -> @location(0) vec4<f32> {
    return color;
}
`)

	inputs := fs.StageInputs()
	if len(inputs) != 2 {
		t.Fatalf("got %d inputs, want 2", len(inputs))
	}
	if inputs[0] != "vec4<f32>" {
		t.Errorf("location 0 = %q, want vec4<f32>", inputs[0])
	}
	if inputs[1] != "vec2<f32>" {
		t.Errorf("location 1 = %q, want vec2<f32>", inputs[1])
	}
}

func TestValidateStageInterface(t *testing.T) {
	geometryVS := NewShader("geometry_vert", ShaderTypeVertex, geometryVertexSource)
	geometryFS := NewShader("geometry_frag", ShaderTypeFragment, geometryFragmentSource)
	uiVS := NewShader("ui_vert", ShaderTypeVertex, uiVertexSource)
	uiFS := NewShader("ui_frag", ShaderTypeFragment, uiFragmentSource)

	tests := []struct {
		name    string
		vs, fs  Shader
		wantErr bool
	}{
		{name: "geometry pair matches", vs: geometryVS, fs: geometryFS, wantErr: false},
		{name: "ui pair matches", vs: uiVS, fs: uiFS, wantErr: false},
		{name: "geometry vertex with ui fragment", vs: geometryVS, fs: uiFS, wantErr: true},
		{name: "nil fragment", vs: geometryVS, fs: nil, wantErr: true},
		{name: "swapped stages", vs: geometryFS, fs: geometryVS, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStageInterface(tt.vs, tt.fs)
			if tt.wantErr {
				if !errors.Is(err, ErrLayoutMismatch) {
					t.Fatalf("got %v, want ErrLayoutMismatch", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStageInterfaceUnreadOutputsAllowed(t *testing.T) {
	// The UI vertex stage writes color and uv; a fragment stage reading only
	// color is still a valid pairing.
	colorOnly := NewShader("color_only_frag", ShaderTypeFragment, `
@fragment
fn fs_main(@location(0) color: vec4<f32>) -> @location(0) vec4<f32> {
    return color;
}
`)
	uiVS := NewShader("ui_vert", ShaderTypeVertex, uiVertexSource)

	if err := ValidateStageInterface(uiVS, colorOnly); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateStageInterfaceTypeMismatch(t *testing.T) {
	vs := NewShader("geometry_vert", ShaderTypeVertex, geometryVertexSource)
	fs := NewShader("bad_frag", ShaderTypeFragment, `
@fragment
fn fs_main(@location(0) color: vec2<f32>) -> @location(0) vec4<f32> {
    return vec4<f32>(color, 0.0, 1.0);
}
`)

	if err := ValidateStageInterface(vs, fs); !errors.Is(err, ErrLayoutMismatch) {
		t.Fatalf("got %v, want ErrLayoutMismatch", err)
	}
}

func TestValidateUniformBlock(t *testing.T) {
	geometryVS := NewShader("geometry_vert", ShaderTypeVertex, geometryVertexSource)
	uiVS := NewShader("ui_vert", ShaderTypeVertex, uiVertexSource)
	uiFS := NewShader("ui_frag", ShaderTypeFragment, uiFragmentSource)

	tests := []struct {
		name     string
		s        Shader
		group    int
		binding  int
		hostSize uint64
		wantErr  bool
	}{
		{name: "camera uniform matches", s: geometryVS, group: 0, binding: 0, hostSize: 192, wantErr: false},
		{name: "screen uniform matches", s: uiVS, group: 1, binding: 0, hostSize: 8, wantErr: false},
		{name: "host struct too small", s: geometryVS, group: 0, binding: 0, hostSize: 128, wantErr: true},
		{name: "host struct too large", s: uiVS, group: 1, binding: 0, hostSize: 16, wantErr: true},
		{name: "missing group", s: geometryVS, group: 3, binding: 0, hostSize: 192, wantErr: true},
		{name: "missing binding", s: geometryVS, group: 0, binding: 5, hostSize: 192, wantErr: true},
		{name: "texture binding is not a uniform", s: uiFS, group: 0, binding: 0, hostSize: 8, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUniformBlock(tt.s, tt.group, tt.binding, tt.hostSize)
			if tt.wantErr {
				if !errors.Is(err, ErrLayoutMismatch) {
					t.Fatalf("got %v, want ErrLayoutMismatch", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
