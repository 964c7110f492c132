package model

import (
	"github.com/tuguzT/Titan/engine/renderer/bind_group_provider"
	"github.com/tuguzT/Titan/engine/renderer/material"
)

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithVertices is an option builder that sets the mesh vertices of the Model.
//
// Parameters:
//   - vertices: the geometry pass vertices
//
// Returns:
//   - ModelBuilderOption: a function that applies the vertices option to a model
func WithVertices(vertices []GPUVertex) ModelBuilderOption {
	return func(m *model) {
		m.vertices = vertices
	}
}

// WithIndices is an option builder that sets the triangle list indices of the Model.
//
// Parameters:
//   - indices: the mesh indices
//
// Returns:
//   - ModelBuilderOption: a function that applies the indices option to a model
func WithIndices(indices []uint32) ModelBuilderOption {
	return func(m *model) {
		m.indices = indices
	}
}

// WithMeshProvider is an option builder that sets the BindGroupProvider for mesh GPU resources.
//
// Parameters:
//   - provider: the BindGroupProvider holding vertex/index buffers and bind group data
//
// Returns:
//   - ModelBuilderOption: a function that applies the mesh provider option to a model
func WithMeshProvider(provider bind_group_provider.BindGroupProvider) ModelBuilderOption {
	return func(m *model) {
		m.meshProvider = provider
	}
}

// WithPipelineKey is an option builder that sets the render pipeline key of the Model.
//
// Parameters:
//   - key: the pipeline key
//
// Returns:
//   - ModelBuilderOption: a function that applies the pipeline key option to a model
func WithPipelineKey(key string) ModelBuilderOption {
	return func(m *model) {
		m.pipelineKey = key
	}
}

// WithPosition is an option builder that sets the initial world position of the Model.
//
// Parameters:
//   - x, y, z: the position components
//
// Returns:
//   - ModelBuilderOption: a function that applies the position option to a model
func WithPosition(x, y, z float32) ModelBuilderOption {
	return func(m *model) {
		m.position = [3]float32{x, y, z}
	}
}

// WithRotation is an option builder that sets the initial rotation of the Model in radians per axis.
//
// Parameters:
//   - rx, ry, rz: the rotation angles
//
// Returns:
//   - ModelBuilderOption: a function that applies the rotation option to a model
func WithRotation(rx, ry, rz float32) ModelBuilderOption {
	return func(m *model) {
		m.rotation = [3]float32{rx, ry, rz}
	}
}

// WithScale is an option builder that sets the initial per-axis scale of the Model.
//
// Parameters:
//   - sx, sy, sz: the scale factors
//
// Returns:
//   - ModelBuilderOption: a function that applies the scale option to a model
func WithScale(sx, sy, sz float32) ModelBuilderOption {
	return func(m *model) {
		m.scale = [3]float32{sx, sy, sz}
	}
}

// WithRenderMaterials is an option builder that sets the render-ready materials of the Model.
//
// Parameters:
//   - mats: the render-ready materials
//
// Returns:
//   - ModelBuilderOption: a function that applies the render materials option to a model
func WithRenderMaterials(mats []material.Material) ModelBuilderOption {
	return func(m *model) {
		m.renderMaterials = mats
	}
}
