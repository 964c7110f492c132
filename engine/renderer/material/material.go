package material

import (
	"sync/atomic"

	"github.com/tuguzT/Titan/common"
	"github.com/tuguzT/Titan/engine/renderer/bind_group_provider"
)

// material is the implementation of the Material interface.
type material struct {
	name              string
	tint              [4]float32
	texture           *common.TextureStagingData
	sampler           *common.SamplerStagingData
	version           atomic.Uint64
	pipelineKey       string
	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Material defines the interface for a texture binding used by the UI pass,
// pairing staged RGBA pixel data with sampler configuration. The canonical use
// is the glyph atlas sampled by the UI fragment stage at group 0.
//
// Staged data carries a version counter. Draw systems compare the version they
// last uploaded against Version() and rebuild the GPU bind group only when the
// pixels changed, so a stable atlas costs nothing per frame. GPU resource
// references (pipeline key, bind group provider) are mutable so they can be
// configured after construction during GPU initialization.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Tint retrieves the RGBA color multiplied into sampled texels by callers
	// that build vertex colors from this material.
	//
	// Returns:
	//   - [4]float32: the tint as RGBA values
	Tint() [4]float32

	// Texture retrieves the staged RGBA pixel data for this material's texture,
	// or nil if none is set.
	//
	// Returns:
	//   - *common.TextureStagingData: the staged texture data, or nil
	Texture() *common.TextureStagingData

	// SamplerData retrieves the sampler configuration for this material's texture.
	//
	// Returns:
	//   - *common.SamplerStagingData: the sampler configuration, or nil for renderer defaults
	SamplerData() *common.SamplerStagingData

	// Version retrieves the current texture version. The version is bumped every
	// time SetTexture replaces the staged pixels.
	//
	// Returns:
	//   - uint64: the current texture version
	Version() uint64

	// PipelineKey retrieves the key identifying the render pipeline this material uses.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// BindGroupProvider retrieves the bind group provider holding GPU-side resources for this material.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider, or nil if not yet initialized
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetTexture replaces the staged texture data and bumps the version counter.
	//
	// Parameters:
	//   - tex: the new staged texture data
	SetTexture(tex *common.TextureStagingData)

	// SetPipelineKey sets the render pipeline key for this material.
	//
	// Parameters:
	//   - key: the pipeline key to associate with this material
	SetPipelineKey(key string)

	// SetBindGroupProvider sets the bind group provider for this material.
	//
	// Parameters:
	//   - provider: the bind group provider containing GPU resources for this material
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		tint: [4]float32{1, 1, 1, 1},
	}
	for _, opt := range options {
		opt(m)
	}
	if m.texture != nil {
		m.version.Store(1)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Tint() [4]float32 {
	return m.tint
}

func (m *material) Texture() *common.TextureStagingData {
	return m.texture
}

func (m *material) SamplerData() *common.SamplerStagingData {
	return m.sampler
}

func (m *material) Version() uint64 {
	return m.version.Load()
}

func (m *material) PipelineKey() string {
	return m.pipelineKey
}

func (m *material) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return m.bindGroupProvider
}

func (m *material) SetTexture(tex *common.TextureStagingData) {
	m.texture = tex
	m.version.Add(1)
}

func (m *material) SetPipelineKey(key string) {
	m.pipelineKey = key
}

func (m *material) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	m.bindGroupProvider = provider
}
