package model

import (
	"sync"

	"github.com/tuguzT/Titan/common"
	"github.com/tuguzT/Titan/engine/renderer/bind_group_provider"
	"github.com/tuguzT/Titan/engine/renderer/material"
)

// model is the implementation of the Model interface.
type model struct {
	mu sync.Mutex

	name            string
	vertices        []GPUVertex
	indices         []uint32
	renderMaterials []material.Material
	meshProvider    bind_group_provider.BindGroupProvider
	pipelineKey     string
	boundingRadius  float32

	position    [3]float32
	rotation    [3]float32
	scale       [3]float32
	modelMatrix [16]float32

	vertexData, indexData []byte
	indexCount            int
}

// Model defines the interface for a renderable 3D mesh in the geometry pass.
// A Model is a GPU-ready container holding vertex/index geometry, a model
// matrix derived from its position/rotation/scale, and the BindGroupProvider
// that owns its GPU buffers once the renderer has initialized them.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Vertices retrieves the CPU-side vertex geometry.
	//
	// Returns:
	//   - []GPUVertex: the mesh vertices
	Vertices() []GPUVertex

	// Indices retrieves the CPU-side triangle list indices.
	//
	// Returns:
	//   - []uint32: the mesh indices
	Indices() []uint32

	// MeshProvider retrieves the BindGroupProvider holding GPU mesh resources.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider
	MeshProvider() bind_group_provider.BindGroupProvider

	// SetMeshProvider assigns the BindGroupProvider holding GPU mesh resources.
	//
	// Parameters:
	//   - provider: the mesh provider to associate
	SetMeshProvider(provider bind_group_provider.BindGroupProvider)

	// PipelineKey returns the key of the render pipeline this model is drawn with.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// SetPipelineKey sets the key of the render pipeline this model is drawn with.
	//
	// Parameters:
	//   - key: the pipeline key to set
	SetPipelineKey(key string)

	// ModelMatrix returns the current object-to-world matrix in column-major order.
	//
	// Returns:
	//   - [16]float32: the model matrix
	ModelMatrix() [16]float32

	// Position returns the current world position.
	//
	// Returns:
	//   - [3]float32: the position (x, y, z)
	Position() [3]float32

	// SetPosition sets the world position and rebuilds the model matrix.
	//
	// Parameters:
	//   - x, y, z: the position components
	SetPosition(x, y, z float32)

	// Rotation returns the current rotation in radians per axis.
	//
	// Returns:
	//   - [3]float32: the rotation (rx, ry, rz)
	Rotation() [3]float32

	// SetRotation sets the rotation in radians per axis and rebuilds the model matrix.
	//
	// Parameters:
	//   - rx, ry, rz: the rotation angles
	SetRotation(rx, ry, rz float32)

	// Scale returns the current per-axis scale.
	//
	// Returns:
	//   - [3]float32: the scale (sx, sy, sz)
	Scale() [3]float32

	// SetScale sets the per-axis scale and rebuilds the model matrix.
	//
	// Parameters:
	//   - sx, sy, sz: the scale factors
	SetScale(sx, sy, sz float32)

	// VertexData returns the raw marshalled vertex data for this model's mesh.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// SetVertexData sets the raw marshalled vertex data for this model's mesh.
	//
	// Parameters:
	//   - data: the vertex data to set
	SetVertexData(data []byte)

	// IndexData returns the raw marshalled index data for this model's mesh.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// SetIndexData sets the raw marshalled index data for this model's mesh.
	//
	// Parameters:
	//   - data: the index data to set
	SetIndexData(data []byte)

	// IndexCount returns the number of indices in the model's mesh.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// SetIndexCount sets the number of indices in the model's mesh.
	//
	// Parameters:
	//   - count: the index count to set
	SetIndexCount(count int)

	// RenderMaterials retrieves the render-ready materials for this model.
	// These are GPU-configured Material instances used during DrawCalls.
	//
	// Returns:
	//   - []material.Material: the render-ready materials
	RenderMaterials() []material.Material

	// SetRenderMaterials replaces the render-ready material list for this model.
	//
	// Parameters:
	//   - mats: the render-ready materials to set
	SetRenderMaterials(mats []material.Material)

	// BoundingRadius returns the bounding sphere radius for this model, measured
	// as the maximum vertex distance from the model space origin.
	//
	// Returns:
	//   - float32: the bounding radius
	BoundingRadius() float32
}

var _ Model = &model{}

// NewModel creates a new Model instance with the specified options applied.
// The model matrix defaults to identity; vertex and index data are marshalled
// eagerly from the supplied geometry so the renderer can upload them directly.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{
		scale: [3]float32{1, 1, 1},
	}
	for _, opt := range options {
		opt(m)
	}
	if len(m.vertices) > 0 {
		m.vertexData = MarshalVertices(m.vertices)
		m.boundingRadius = ComputeBoundingRadius(m.vertices)
	}
	if len(m.indices) > 0 {
		m.indexData = MarshalIndices(m.indices)
		m.indexCount = len(m.indices)
	}
	m.updateModelMatrix()
	return m
}

// updateModelMatrix rebuilds the cached model matrix from position, rotation
// and scale. Callers must hold m.mu except during construction.
func (m *model) updateModelMatrix() {
	common.BuildModelMatrix(m.modelMatrix[:],
		m.position[0], m.position[1], m.position[2],
		m.rotation[0], m.rotation[1], m.rotation[2],
		m.scale[0], m.scale[1], m.scale[2],
	)
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Vertices() []GPUVertex {
	return m.vertices
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func (m *model) MeshProvider() bind_group_provider.BindGroupProvider {
	return m.meshProvider
}

func (m *model) SetMeshProvider(provider bind_group_provider.BindGroupProvider) {
	m.meshProvider = provider
}

func (m *model) PipelineKey() string {
	return m.pipelineKey
}

func (m *model) SetPipelineKey(key string) {
	m.pipelineKey = key
}

func (m *model) ModelMatrix() [16]float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.modelMatrix
}

func (m *model) Position() [3]float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *model) SetPosition(x, y, z float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = [3]float32{x, y, z}
	m.updateModelMatrix()
}

func (m *model) Rotation() [3]float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rotation
}

func (m *model) SetRotation(rx, ry, rz float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rotation = [3]float32{rx, ry, rz}
	m.updateModelMatrix()
}

func (m *model) Scale() [3]float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scale
}

func (m *model) SetScale(sx, sy, sz float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scale = [3]float32{sx, sy, sz}
	m.updateModelMatrix()
}

func (m *model) VertexData() []byte {
	return m.vertexData
}

func (m *model) SetVertexData(data []byte) {
	m.vertexData = data
}

func (m *model) IndexData() []byte {
	return m.indexData
}

func (m *model) SetIndexData(data []byte) {
	m.indexData = data
}

func (m *model) IndexCount() int {
	return m.indexCount
}

func (m *model) SetIndexCount(count int) {
	m.indexCount = count
}

func (m *model) RenderMaterials() []material.Material {
	return m.renderMaterials
}

func (m *model) SetRenderMaterials(mats []material.Material) {
	m.renderMaterials = mats
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}
