package pipeline

import (
	"errors"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/tuguzT/Titan/engine/renderer/shader"
)

const vertexSource = `
struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) color: vec4<f32>,
}

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) color: vec4<f32>,
}

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.clip_position = vec4<f32>(in.position, 1.0);
    out.color = in.color;
    return out;
}
`

const fragmentSource = `
@fragment
fn fs_main(@location(0) color: vec4<f32>) -> @location(0) vec4<f32> {
    return color;
}
`

const mismatchedFragmentSource = `
@fragment
fn fs_main(@location(2) brightness: f32) -> @location(0) vec4<f32> {
    return vec4<f32>(brightness);
}
`

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("test")

	if p.PipelineKey() != "test" {
		t.Errorf("PipelineKey() = %q, want %q", p.PipelineKey(), "test")
	}
	if !p.DepthTestEnabled() {
		t.Error("depth test should default to enabled")
	}
	if !p.DepthWriteEnabled() {
		t.Error("depth write should default to enabled")
	}
	if p.BlendEnabled() {
		t.Error("blending should default to disabled")
	}
	if p.CullMode() != wgpu.CullModeNone {
		t.Errorf("CullMode() = %v, want none", p.CullMode())
	}
	if p.Topology() != wgpu.PrimitiveTopologyTriangleList {
		t.Errorf("Topology() = %v, want triangle list", p.Topology())
	}
	if p.FrontFace() != wgpu.FrontFaceCCW {
		t.Errorf("FrontFace() = %v, want CCW", p.FrontFace())
	}
	if p.WriteMask() != wgpu.ColorWriteMaskAll {
		t.Errorf("WriteMask() = %v, want all", p.WriteMask())
	}
}

func TestNewPipelineOptions(t *testing.T) {
	vs := shader.NewShader("vert", shader.ShaderTypeVertex, vertexSource)
	fs := shader.NewShader("frag", shader.ShaderTypeFragment, fragmentSource)

	p := NewPipeline("ui",
		WithVertexShader(vs),
		WithFragmentShader(fs),
		WithDepthTestEnabled(false),
		WithDepthWriteEnabled(false),
		WithCullMode(wgpu.CullModeBack),
		WithBlendEnabled(true),
		WithBlendState(UIBlendState()),
	)

	if p.DepthTestEnabled() || p.DepthWriteEnabled() {
		t.Error("depth options not applied")
	}
	if p.CullMode() != wgpu.CullModeBack {
		t.Errorf("CullMode() = %v, want back", p.CullMode())
	}
	if !p.BlendEnabled() {
		t.Error("blend option not applied")
	}
	if p.Shader(shader.ShaderTypeVertex) != vs {
		t.Error("vertex shader not applied")
	}
	if p.Shader(shader.ShaderTypeFragment) != fs {
		t.Error("fragment shader not applied")
	}
}

func TestPipelineValidate(t *testing.T) {
	vs := shader.NewShader("vert", shader.ShaderTypeVertex, vertexSource)
	fs := shader.NewShader("frag", shader.ShaderTypeFragment, fragmentSource)
	badFS := shader.NewShader("bad_frag", shader.ShaderTypeFragment, mismatchedFragmentSource)

	tests := []struct {
		name    string
		p       Pipeline
		wantErr bool
	}{
		{
			name:    "matching pair",
			p:       NewPipeline("ok", WithVertexShader(vs), WithFragmentShader(fs)),
			wantErr: false,
		},
		{
			name:    "fragment reads unwritten location",
			p:       NewPipeline("bad", WithVertexShader(vs), WithFragmentShader(badFS)),
			wantErr: true,
		},
		{
			name:    "missing shaders",
			p:       NewPipeline("empty"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.wantErr {
				if !errors.Is(err, shader.ErrLayoutMismatch) {
					t.Fatalf("got %v, want ErrLayoutMismatch", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestUIBlendState(t *testing.T) {
	bs := UIBlendState()

	if bs.Color.SrcFactor != wgpu.BlendFactorOne {
		t.Errorf("Color.SrcFactor = %v, want one", bs.Color.SrcFactor)
	}
	if bs.Color.DstFactor != wgpu.BlendFactorOneMinusSrcAlpha {
		t.Errorf("Color.DstFactor = %v, want one-minus-src-alpha", bs.Color.DstFactor)
	}
	if bs.Color.Operation != wgpu.BlendOperationAdd {
		t.Errorf("Color.Operation = %v, want add", bs.Color.Operation)
	}
	if bs.Alpha.SrcFactor != wgpu.BlendFactorOneMinusDstAlpha {
		t.Errorf("Alpha.SrcFactor = %v, want one-minus-dst-alpha", bs.Alpha.SrcFactor)
	}
	if bs.Alpha.DstFactor != wgpu.BlendFactorOne {
		t.Errorf("Alpha.DstFactor = %v, want one", bs.Alpha.DstFactor)
	}
	if bs.Alpha.Operation != wgpu.BlendOperationAdd {
		t.Errorf("Alpha.Operation = %v, want add", bs.Alpha.Operation)
	}
}
