package material

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/tuguzT/Titan/common"
	"github.com/tuguzT/Titan/engine/renderer/bind_group_provider"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithTint is an option builder that sets the RGBA tint of the material.
//
// Parameters:
//   - color: the tint as RGBA float32 values
//
// Returns:
//   - MaterialBuilderOption: a function that applies the tint option to a material
func WithTint(color [4]float32) MaterialBuilderOption {
	return func(m *material) {
		m.tint = color
	}
}

// WithTexture is an option builder that sets the staged texture data for the material.
//
// Parameters:
//   - tex: the staged RGBA texture data
//
// Returns:
//   - MaterialBuilderOption: a function that applies the texture option to a material
func WithTexture(tex *common.TextureStagingData) MaterialBuilderOption {
	return func(m *material) {
		m.texture = tex
	}
}

// WithImportedTexture is an option builder that decodes an image file into staged
// texture data for the material. Panics if the image cannot be decoded, as a
// material constructed from an unreadable texture is a programmer error.
//
// Parameters:
//   - tex: the imported texture to decode
//
// Returns:
//   - MaterialBuilderOption: a function that applies the decoded texture to a material
func WithImportedTexture(tex *common.ImportedTexture) MaterialBuilderOption {
	return func(m *material) {
		pixels, width, height, err := tex.Decode()
		if err != nil {
			panic(fmt.Sprintf("material: failed to decode texture %q: %v", tex.Name, err))
		}
		m.texture = &common.TextureStagingData{
			Pixels: pixels,
			Width:  width,
			Height: height,
		}
		if tex.SamplerData != nil {
			m.sampler = tex.SamplerData
		}
	}
}

// WithSampler is an option builder that sets the sampler configuration for the material.
//
// Parameters:
//   - sampler: the sampler configuration to use
//
// Returns:
//   - MaterialBuilderOption: a function that applies the sampler option to a material
func WithSampler(sampler *common.SamplerStagingData) MaterialBuilderOption {
	return func(m *material) {
		m.sampler = sampler
	}
}

// WithFontSampler is an option builder that sets the sampler configuration used for
// glyph atlases: clamp-to-edge addressing with linear filtering.
//
// Returns:
//   - MaterialBuilderOption: a function that applies the font sampler option to a material
func WithFontSampler() MaterialBuilderOption {
	return func(m *material) {
		m.sampler = &common.SamplerStagingData{
			AddressModeU: wgpu.AddressModeClampToEdge,
			AddressModeV: wgpu.AddressModeClampToEdge,
			AddressModeW: wgpu.AddressModeClampToEdge,
			MagFilter:    wgpu.FilterModeLinear,
			MinFilter:    wgpu.FilterModeLinear,
			MipmapFilter: wgpu.MipmapFilterModeLinear,
			LodMaxClamp:  32,
		}
	}
}

// WithPipelineKey is an option builder that sets the render pipeline key for the material.
//
// Parameters:
//   - key: the pipeline key to associate with the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the pipeline key option to a material
func WithPipelineKey(key string) MaterialBuilderOption {
	return func(m *material) {
		m.pipelineKey = key
	}
}

// WithBindGroupProvider is an option builder that sets the bind group provider for the material.
//
// Parameters:
//   - provider: the bind group provider containing GPU resources for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the bind group provider option to a material
func WithBindGroupProvider(provider bind_group_provider.BindGroupProvider) MaterialBuilderOption {
	return func(m *material) {
		m.bindGroupProvider = provider
	}
}
