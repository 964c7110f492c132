package frame

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/tuguzT/Titan/engine/camera"
	"github.com/tuguzT/Titan/engine/model"
	"github.com/tuguzT/Titan/engine/renderer"
	"github.com/tuguzT/Titan/engine/renderer/bind_group_provider"
	"github.com/tuguzT/Titan/engine/renderer/pipeline"
	"github.com/tuguzT/Titan/engine/renderer/shader"
)

// ObjectPipelineKey is the cache key of the geometry pass render pipeline.
const ObjectPipelineKey = "object"

//go:embed assets/object_vert.wgsl
var objectVertexSource string

//go:embed assets/object_frag.wgsl
var objectFragmentSource string

// objectEntry pairs a registered model with the bind group provider holding
// its per-object camera uniform buffer.
type objectEntry struct {
	mdl            model.Model
	cameraProvider bind_group_provider.BindGroupProvider
}

// objectDrawSystem is the implementation of the ObjectDrawSystem interface.
type objectDrawSystem struct {
	mu sync.Mutex

	r   renderer.Renderer
	cam camera.Camera

	vertexShader shader.Shader
	cameraGroup  int
	cullMode     wgpu.CullMode

	entries []*objectEntry
}

// ObjectDrawSystem defines the interface for the geometry pass. It owns the
// geometry pipeline and the per-object camera uniform buffers, and encodes one
// indexed draw per registered model each frame. The camera uniform is rebuilt
// from the camera's projection/view matrices and the model's own matrix before
// every draw, so object and camera motion are both picked up without any
// explicit upload step by the caller.
type ObjectDrawSystem interface {
	// AddModel uploads a model's mesh to the GPU, creates its camera uniform
	// bind group, and registers it for drawing.
	//
	// Parameters:
	//   - m: the model to register
	//
	// Returns:
	//   - error: an error if the model has no geometry or GPU setup fails
	AddModel(m model.Model) error

	// RemoveModel unregisters a model and releases its per-object GPU resources.
	//
	// Parameters:
	//   - m: the model to unregister
	RemoveModel(m model.Model)

	// Models returns the currently registered models in draw order.
	//
	// Returns:
	//   - []model.Model: the registered models
	Models() []model.Model

	// Draw writes each registered model's camera uniform and encodes its draw
	// call within the current render pass. Must be called between the renderer's
	// BeginFrame and EndFrame.
	//
	// Returns:
	//   - error: the first draw error encountered, or nil
	Draw() error

	// Camera returns the camera whose matrices feed the uniform buffers.
	//
	// Returns:
	//   - camera.Camera: the camera
	Camera() camera.Camera
}

var _ ObjectDrawSystem = &objectDrawSystem{}

// NewObjectDrawSystem creates the geometry pass draw system, compiling and
// registering its render pipeline on the given renderer. Panics if the
// renderer or camera is nil, or if pipeline registration fails — both indicate
// programmer error during engine setup.
//
// Parameters:
//   - r: the renderer that owns the GPU resources
//   - cam: the camera supplying projection and view matrices
//   - options: a variadic list of ObjectDrawSystemOption functions
//
// Returns:
//   - ObjectDrawSystem: a new instance of ObjectDrawSystem
func NewObjectDrawSystem(r renderer.Renderer, cam camera.Camera, options ...ObjectDrawSystemOption) ObjectDrawSystem {
	if r == nil {
		panic("frame: renderer must not be nil")
	}
	if cam == nil {
		panic("frame: camera must not be nil")
	}

	s := &objectDrawSystem{
		r:        r,
		cam:      cam,
		cullMode: wgpu.CullModeBack,
	}
	for _, opt := range options {
		opt(s)
	}

	vs := shader.NewShader(ObjectPipelineKey+"_vert", shader.ShaderTypeVertex, objectVertexSource)
	fs := shader.NewShader(ObjectPipelineKey+"_frag", shader.ShaderTypeFragment, objectFragmentSource)
	s.vertexShader = vs

	// Locate the camera uniform group by variable name, then verify the WGSL
	// block matches the host-side uniform byte for byte.
	for group, names := range vs.BindGroupVarNames() {
		for _, name := range names {
			if strings.Contains(strings.ToLower(name), "camera") {
				s.cameraGroup = group
			}
		}
	}
	var uniform camera.GPUCameraUniform
	if err := shader.ValidateUniformBlock(vs, s.cameraGroup, 0, uint64(uniform.Size())); err != nil {
		panic(fmt.Sprintf("frame: camera uniform layout: %v", err))
	}

	p := pipeline.NewPipeline(ObjectPipelineKey,
		pipeline.WithVertexShader(vs),
		pipeline.WithFragmentShader(fs),
		pipeline.WithCullMode(s.cullMode),
	)
	if err := r.RegisterPipelines(p); err != nil {
		panic(fmt.Sprintf("frame: failed to register object pipeline: %v", err))
	}

	return s
}

func (s *objectDrawSystem) AddModel(m model.Model) error {
	if m == nil {
		return fmt.Errorf("object draw: model is nil")
	}
	if len(m.VertexData()) == 0 || len(m.IndexData()) == 0 {
		return fmt.Errorf("object draw: %w: model %q has no geometry", renderer.ErrUnboundResource, m.Name())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	meshProvider := bind_group_provider.NewBindGroupProvider(m.Name())
	if err := s.r.InitMeshBuffers(meshProvider, m.VertexData(), m.IndexData(), m.IndexCount()); err != nil {
		return fmt.Errorf("object draw: failed to init mesh buffers for %q: %w", m.Name(), err)
	}
	m.SetMeshProvider(meshProvider)
	m.SetPipelineKey(ObjectPipelineKey)

	cameraProvider := bind_group_provider.NewBindGroupProvider(m.Name() + " Camera")
	if err := s.r.InitBindGroup(cameraProvider, s.vertexShader.BindGroupLayoutDescriptor(s.cameraGroup), nil, nil); err != nil {
		return fmt.Errorf("object draw: failed to init camera bind group for %q: %w", m.Name(), err)
	}

	s.entries = append(s.entries, &objectEntry{
		mdl:            m,
		cameraProvider: cameraProvider,
	})
	return nil
}

func (s *objectDrawSystem) RemoveModel(m model.Model) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.mdl == m {
			e.cameraProvider.Release()
			if mp := e.mdl.MeshProvider(); mp != nil {
				mp.Release()
				e.mdl.SetMeshProvider(nil)
			}
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

func (s *objectDrawSystem) Models() []model.Model {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Model, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.mdl
	}
	return out
}

func (s *objectDrawSystem) Draw() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		uniform := camera.NewGPUCameraUniform(s.cam.Transform(e.mdl.ModelMatrix()))
		s.r.WriteBuffers([]bind_group_provider.BufferWrite{
			{
				Provider: e.cameraProvider,
				Binding:  0,
				Offset:   0,
				Data:     uniform.Marshal(),
			},
		})

		err := s.r.DrawCall(ObjectPipelineKey, e.mdl.MeshProvider(), 1, []bind_group_provider.BindGroupProvider{e.cameraProvider})
		if err != nil {
			return fmt.Errorf("object draw: model %q: %w", e.mdl.Name(), err)
		}
	}
	return nil
}

func (s *objectDrawSystem) Camera() camera.Camera {
	return s.cam
}
