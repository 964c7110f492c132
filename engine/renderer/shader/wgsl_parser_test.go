package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

const geometryVertexSource = `
struct CameraUniform {
    projection: mat4x4<f32>,
    model: mat4x4<f32>,
    view: mat4x4<f32>,
}

@group(0) @binding(0) var<uniform> camera: CameraUniform;

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
    out.clip_position = camera.projection * camera.view * camera.model * vec4<f32>(in.position, 1.0);
    out.color = in.color;
    return out;
}
`

const uiVertexSource = `
struct ScreenUniform {
    screen_size: vec2<f32>,
}

@group(1) @binding(0) var<uniform> screen: ScreenUniform;

struct UIVertexInput {
    @location(0) position: vec2<f32>,
    @location(1) uv: vec2<f32>,
    @location(2) color: vec4<f32>,
}

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) color: vec4<f32>,
    @location(1) uv: vec2<f32>,
}

@vertex
fn vs_main(in: UIVertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.clip_position = vec4<f32>(2.0 * in.position / screen.screen_size - vec2<f32>(1.0, 1.0), 0.0, 1.0);
    out.uv = in.uv;
    out.color = in.color;
    return out;
}
`

const uiFragmentSource = `
@group(0) @binding(0) var font_texture: texture_2d<f32>;
@group(0) @binding(1) var font_sampler: sampler;

struct FragmentInput {
    @location(0) color: vec4<f32>,
    @location(1) uv: vec2<f32>,
}

@fragment
fn fs_main(in: FragmentInput) -> @location(0) vec4<f32> {
    return in.color * textureSample(font_texture, font_sampler, in.uv);
}
`

func TestGeometryVertexLayout(t *testing.T) {
	s := NewShader("geometry_vert", ShaderTypeVertex, geometryVertexSource)

	layouts := s.VertexLayout(0)
	if len(layouts) != 1 {
		t.Fatalf("VertexLayout(0) has %d buffers, want 1", len(layouts))
	}

	layout := layouts[0]
	if layout.ArrayStride != 28 {
		t.Errorf("ArrayStride = %d, want 28", layout.ArrayStride)
	}
	if layout.StepMode != wgpu.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want VertexStepModeVertex", layout.StepMode)
	}
	if len(layout.Attributes) != 2 {
		t.Fatalf("got %d attributes, want 2", len(layout.Attributes))
	}

	wantAttrs := []wgpu.VertexAttribute{
		{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
		{Format: wgpu.VertexFormatFloat32x4, Offset: 12, ShaderLocation: 1},
	}
	for i, want := range wantAttrs {
		if layout.Attributes[i] != want {
			t.Errorf("attribute %d = %+v, want %+v", i, layout.Attributes[i], want)
		}
	}

	// VertexOutput mixes @builtin with @location, so only the input struct
	// contributes a buffer layout.
	if len(s.VertexLayouts()) != 1 {
		t.Errorf("got %d vertex buffer layouts, want 1", len(s.VertexLayouts()))
	}
}

func TestUIVertexLayout(t *testing.T) {
	s := NewShader("ui_vert", ShaderTypeVertex, uiVertexSource)

	layouts := s.VertexLayout(0)
	if len(layouts) != 1 {
		t.Fatalf("VertexLayout(0) has %d buffers, want 1", len(layouts))
	}

	layout := layouts[0]
	if layout.ArrayStride != 32 {
		t.Errorf("ArrayStride = %d, want 32", layout.ArrayStride)
	}

	wantAttrs := []wgpu.VertexAttribute{
		{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
		{Format: wgpu.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
		{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 2},
	}
	if len(layout.Attributes) != len(wantAttrs) {
		t.Fatalf("got %d attributes, want %d", len(layout.Attributes), len(wantAttrs))
	}
	for i, want := range wantAttrs {
		if layout.Attributes[i] != want {
			t.Errorf("attribute %d = %+v, want %+v", i, layout.Attributes[i], want)
		}
	}
}

func TestCameraUniformBindGroupLayout(t *testing.T) {
	s := NewShader("geometry_vert", ShaderTypeVertex, geometryVertexSource)

	desc, ok := s.BindGroupLayoutDescriptors()[0]
	if !ok {
		t.Fatal("missing bind group 0")
	}
	if len(desc.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(desc.Entries))
	}

	entry := desc.Entries[0]
	if entry.Binding != 0 {
		t.Errorf("Binding = %d, want 0", entry.Binding)
	}
	if entry.Buffer.Type != wgpu.BufferBindingTypeUniform {
		t.Errorf("Buffer.Type = %v, want uniform", entry.Buffer.Type)
	}
	// Three mat4x4<f32> fields: 192 bytes.
	if entry.Buffer.MinBindingSize != 192 {
		t.Errorf("MinBindingSize = %d, want 192", entry.Buffer.MinBindingSize)
	}
	if entry.Visibility != wgpu.ShaderStageVertex {
		t.Errorf("Visibility = %v, want vertex", entry.Visibility)
	}

	if got := s.BindGroupVarName(0, 0); got != "camera" {
		t.Errorf("BindGroupVarName(0, 0) = %q, want %q", got, "camera")
	}
}

func TestScreenUniformBindGroupLayout(t *testing.T) {
	s := NewShader("ui_vert", ShaderTypeVertex, uiVertexSource)

	desc, ok := s.BindGroupLayoutDescriptors()[1]
	if !ok {
		t.Fatal("missing bind group 1")
	}
	if len(desc.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(desc.Entries))
	}

	entry := desc.Entries[0]
	if entry.Buffer.Type != wgpu.BufferBindingTypeUniform {
		t.Errorf("Buffer.Type = %v, want uniform", entry.Buffer.Type)
	}
	// One vec2<f32>: 8 bytes.
	if entry.Buffer.MinBindingSize != 8 {
		t.Errorf("MinBindingSize = %d, want 8", entry.Buffer.MinBindingSize)
	}

	if got := s.BindGroupVarName(1, 0); got != "screen" {
		t.Errorf("BindGroupVarName(1, 0) = %q, want %q", got, "screen")
	}
}

func TestFontBindGroupLayout(t *testing.T) {
	s := NewShader("ui_frag", ShaderTypeFragment, uiFragmentSource)

	desc, ok := s.BindGroupLayoutDescriptors()[0]
	if !ok {
		t.Fatal("missing bind group 0")
	}
	if len(desc.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(desc.Entries))
	}

	texture := desc.Entries[0]
	if texture.Binding != 0 {
		t.Errorf("texture Binding = %d, want 0", texture.Binding)
	}
	if texture.Texture.SampleType != wgpu.TextureSampleTypeFloat {
		t.Errorf("texture SampleType = %v, want float", texture.Texture.SampleType)
	}
	if texture.Texture.ViewDimension != wgpu.TextureViewDimension2D {
		t.Errorf("texture ViewDimension = %v, want 2D", texture.Texture.ViewDimension)
	}

	sampler := desc.Entries[1]
	if sampler.Binding != 1 {
		t.Errorf("sampler Binding = %d, want 1", sampler.Binding)
	}
	if sampler.Sampler.Type == wgpu.SamplerBindingTypeUndefined {
		t.Error("sampler entry not classified as a sampler")
	}

	if got := s.BindGroupVarName(0, 0); got != "font_texture" {
		t.Errorf("BindGroupVarName(0, 0) = %q, want %q", got, "font_texture")
	}
	if got := s.BindGroupVarName(0, 1); got != "font_sampler" {
		t.Errorf("BindGroupVarName(0, 1) = %q, want %q", got, "font_sampler")
	}
}

func TestBindGroupFromVarName(t *testing.T) {
	s := NewShader("ui_vert", ShaderTypeVertex, uiVertexSource)

	binding, ok := s.BindGroupFromVarName(1, "screen")
	if !ok || binding != 0 {
		t.Errorf("BindGroupFromVarName(1, screen) = (%d, %v), want (0, true)", binding, ok)
	}
	if _, ok := s.BindGroupFromVarName(1, "missing"); ok {
		t.Error("BindGroupFromVarName should report missing names")
	}
}

func TestEntryPoints(t *testing.T) {
	vs := NewShader("geometry_vert", ShaderTypeVertex, geometryVertexSource)
	if got := vs.EntryPoint(); got != "vs_main" {
		t.Errorf("vertex EntryPoint() = %q, want %q", got, "vs_main")
	}

	fs := NewShader("ui_frag", ShaderTypeFragment, uiFragmentSource)
	if got := fs.EntryPoint(); got != "fs_main" {
		t.Errorf("fragment EntryPoint() = %q, want %q", got, "fs_main")
	}
}

func TestFragmentShaderHasNoVertexLayouts(t *testing.T) {
	s := NewShader("ui_frag", ShaderTypeFragment, uiFragmentSource)
	if len(s.VertexLayouts()) != 0 {
		t.Errorf("fragment shader has %d vertex layouts, want 0", len(s.VertexLayouts()))
	}
}
