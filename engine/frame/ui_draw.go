package frame

import (
	_ "embed"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/tuguzT/Titan/common"
	"github.com/tuguzT/Titan/engine/font"
	"github.com/tuguzT/Titan/engine/model"
	"github.com/tuguzT/Titan/engine/renderer"
	"github.com/tuguzT/Titan/engine/renderer/bind_group_provider"
	"github.com/tuguzT/Titan/engine/renderer/material"
	"github.com/tuguzT/Titan/engine/renderer/pipeline"
	"github.com/tuguzT/Titan/engine/renderer/shader"
	"github.com/tuguzT/Titan/engine/transform"
)

// UIPipelineKey is the cache key of the UI pass render pipeline.
const UIPipelineKey = "ui"

//go:embed assets/ui_vert.wgsl
var uiVertexSource string

//go:embed assets/ui_frag.wgsl
var uiFragmentSource string

// uiBatchData holds a batch's marshalled buffers between the parallel prep
// phase and the encode phase of a frame.
type uiBatchData struct {
	vertexData []byte
	indexData  []byte
	indexCount int
	clip       model.ClipRect
}

// uiDrawSystem is the implementation of the UIDrawSystem interface.
type uiDrawSystem struct {
	mu sync.Mutex

	r     renderer.Renderer
	atlas font.Atlas

	vertexShader   shader.Shader
	fragmentShader shader.Shader

	fontMaterial    material.Material
	fontProvider    bind_group_provider.BindGroupProvider
	screenProvider  bind_group_provider.BindGroupProvider
	screenGroup     int
	fontGroup       int
	uploadedVersion uint64

	screenSize transform.ScreenSize

	batches []model.UIMesh

	// Mesh buffers from the previous frame, released at the start of the next
	// Draw once their command buffer has been submitted.
	retired []bind_group_provider.BindGroupProvider

	workers   int
	batchPool worker.DynamicWorkerPool
}

// UIDrawSystem defines the interface for the UI overlay pass. It owns the UI
// pipeline, the font atlas texture bind group, and the screen size uniform,
// and draws submitted UI mesh batches in order with alpha blending and
// per-batch scissor rectangles. Batches accumulate between Draws; each Draw
// consumes and clears the queue.
type UIDrawSystem interface {
	// SetScreenSize updates the logical screen dimensions used to map UI
	// positions to clip space. Must be called before the first Draw and after
	// every resize. Dimensions that are zero, negative, or non-finite are
	// rejected with an error wrapping transform.ErrDegenerateViewport and the
	// previous size stays in effect.
	//
	// Parameters:
	//   - width: the logical screen width in pixels
	//   - height: the logical screen height in pixels
	//
	// Returns:
	//   - error: an error if the dimensions are degenerate
	SetScreenSize(width, height float32) error

	// ScreenSize returns the current logical screen dimensions.
	//
	// Returns:
	//   - transform.ScreenSize: the screen size
	ScreenSize() transform.ScreenSize

	// SetFontTexture replaces the font atlas texture pixels. The GPU texture is
	// re-uploaded lazily on the next Draw.
	//
	// Parameters:
	//   - tex: the replacement texture staging data
	SetFontTexture(tex *common.TextureStagingData)

	// Submit queues UI mesh batches for the next Draw. Batches are drawn in
	// submission order.
	//
	// Parameters:
	//   - meshes: the batches to queue
	Submit(meshes ...model.UIMesh)

	// Text lays out a string with the font atlas and queues it for the next
	// Draw. The position is the top-left corner of the first line in logical
	// screen pixels.
	//
	// Parameters:
	//   - text: the string to draw
	//   - position: top-left anchor in logical screen pixels
	//   - color: RGBA vertex color, premultiplied alpha
	Text(text string, position [2]float32, color [4]float32)

	// Draw uploads and encodes all queued batches within the current render
	// pass, applying each batch's clip rectangle. Must be called between the
	// renderer's BeginFrame and EndFrame, after the geometry pass. Fails
	// without encoding anything if the screen size was never set.
	//
	// Returns:
	//   - error: an error if the screen size is degenerate or a draw fails
	Draw() error

	// FontMaterial returns the material wrapping the font atlas texture.
	//
	// Returns:
	//   - material.Material: the font material
	FontMaterial() material.Material
}

var _ UIDrawSystem = &uiDrawSystem{}

// NewUIDrawSystem creates the UI overlay draw system, compiling and registering
// its render pipeline and uploading the font atlas texture. Panics if the
// renderer or atlas is nil, or if GPU setup fails — both indicate programmer
// error during engine setup.
//
// Parameters:
//   - r: the renderer that owns the GPU resources
//   - atlas: the glyph atlas backing the font texture
//   - options: a variadic list of UIDrawSystemOption functions
//
// Returns:
//   - UIDrawSystem: a new instance of UIDrawSystem
func NewUIDrawSystem(r renderer.Renderer, atlas font.Atlas, options ...UIDrawSystemOption) UIDrawSystem {
	if r == nil {
		panic("frame: renderer must not be nil")
	}
	if atlas == nil {
		panic("frame: font atlas must not be nil")
	}

	s := &uiDrawSystem{
		r:       r,
		atlas:   atlas,
		workers: max(runtime.NumCPU()-1, 1),
	}
	for _, opt := range options {
		opt(s)
	}

	vs := shader.NewShader(UIPipelineKey+"_vert", shader.ShaderTypeVertex, uiVertexSource)
	fs := shader.NewShader(UIPipelineKey+"_frag", shader.ShaderTypeFragment, uiFragmentSource)
	s.vertexShader = vs
	s.fragmentShader = fs

	// Locate the screen uniform and font texture groups by variable name, then
	// verify the WGSL screen block matches the host-side uniform byte for byte.
	for group, names := range vs.BindGroupVarNames() {
		for _, name := range names {
			if strings.Contains(strings.ToLower(name), "screen") {
				s.screenGroup = group
			}
		}
	}
	for group, names := range fs.BindGroupVarNames() {
		for _, name := range names {
			if strings.Contains(strings.ToLower(name), "font") {
				s.fontGroup = group
			}
		}
	}
	var uniform GPUScreenUniform
	if err := shader.ValidateUniformBlock(vs, s.screenGroup, 0, uint64(uniform.Size())); err != nil {
		panic(fmt.Sprintf("frame: screen uniform layout: %v", err))
	}

	p := pipeline.NewPipeline(UIPipelineKey,
		pipeline.WithVertexShader(vs),
		pipeline.WithFragmentShader(fs),
		pipeline.WithDepthTestEnabled(false),
		pipeline.WithDepthWriteEnabled(false),
		pipeline.WithCullMode(wgpu.CullModeNone),
		pipeline.WithBlendEnabled(true),
		pipeline.WithBlendState(pipeline.UIBlendState()),
	)
	if err := r.RegisterPipelines(p); err != nil {
		panic(fmt.Sprintf("frame: failed to register ui pipeline: %v", err))
	}

	// Upload the font atlas and build its bind group at the font texture group.
	s.fontMaterial = material.NewMaterial(
		material.WithName("Font Atlas"),
		material.WithTexture(atlas.Texture()),
		material.WithFontSampler(),
		material.WithPipelineKey(UIPipelineKey),
	)
	fontProvider := bind_group_provider.NewBindGroupProvider("Font Atlas")
	if err := r.InitTextureView(fontProvider, 0, *s.fontMaterial.Texture()); err != nil {
		panic(fmt.Sprintf("frame: failed to upload font atlas: %v", err))
	}
	if err := r.InitSampler(fontProvider, 1, *s.fontMaterial.SamplerData()); err != nil {
		panic(fmt.Sprintf("frame: failed to create font sampler: %v", err))
	}
	if err := r.InitBindGroup(fontProvider, fs.BindGroupLayoutDescriptor(s.fontGroup), nil, nil); err != nil {
		panic(fmt.Sprintf("frame: failed to init font bind group: %v", err))
	}
	s.fontProvider = fontProvider
	s.fontMaterial.SetBindGroupProvider(fontProvider)
	s.uploadedVersion = s.fontMaterial.Version()

	// The screen uniform buffer is created from the vertex shader's layout.
	screenProvider := bind_group_provider.NewBindGroupProvider("Screen Uniform")
	if err := r.InitBindGroup(screenProvider, vs.BindGroupLayoutDescriptor(s.screenGroup), nil, nil); err != nil {
		panic(fmt.Sprintf("frame: failed to init screen uniform bind group: %v", err))
	}
	s.screenProvider = screenProvider

	// Queue size of 256 accommodates typical per-frame batch counts with headroom.
	s.batchPool = worker.NewDynamicWorkerPool(s.workers, 256, 1*time.Second)

	return s
}

func (s *uiDrawSystem) SetScreenSize(width, height float32) error {
	size := transform.ScreenSize{Width: width, Height: height}
	if err := size.Validate(); err != nil {
		return fmt.Errorf("ui draw: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.screenSize = size
	uniform := NewGPUScreenUniform(size)
	s.r.WriteBuffers([]bind_group_provider.BufferWrite{
		{
			Provider: s.screenProvider,
			Binding:  0,
			Offset:   0,
			Data:     uniform.Marshal(),
		},
	})
	return nil
}

func (s *uiDrawSystem) ScreenSize() transform.ScreenSize {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screenSize
}

func (s *uiDrawSystem) SetFontTexture(tex *common.TextureStagingData) {
	s.fontMaterial.SetTexture(tex)
}

func (s *uiDrawSystem) Submit(meshes ...model.UIMesh) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = append(s.batches, meshes...)
}

func (s *uiDrawSystem) Text(text string, position [2]float32, color [4]float32) {
	s.Submit(font.LayoutText(s.atlas, text, position, color))
}

func (s *uiDrawSystem) Draw() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Previous frame's command buffer has been submitted by now, so its
	// transient mesh buffers can go.
	for _, p := range s.retired {
		p.Release()
	}
	s.retired = s.retired[:0]

	if err := s.screenSize.Validate(); err != nil {
		return fmt.Errorf("ui draw: %w", err)
	}

	if version := s.fontMaterial.Version(); version != s.uploadedVersion {
		if err := s.refreshFontTexture(); err != nil {
			return err
		}
		s.uploadedVersion = version
	}

	if len(s.batches) == 0 {
		return nil
	}

	// Phase 1: parallel CPU prep — marshal each batch's vertex and index data
	// on the worker pool. Workers are reused across frames. A WaitGroup
	// provides per-frame barrier sync.
	prepped := make([]uiBatchData, len(s.batches))
	var wg sync.WaitGroup
	for i := range s.batches {
		wg.Add(1)
		idx := i
		batch := s.batches[i]
		s.batchPool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				prepped[idx] = uiBatchData{
					vertexData: batch.VertexData(),
					indexData:  batch.IndexData(),
					indexCount: len(batch.Indices),
					clip:       batch.Clip,
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	// Phase 2: upload and encode in submission order.
	surfaceWidth, surfaceHeight := s.r.SurfaceSize()
	for i, data := range prepped {
		if data.indexCount == 0 {
			continue
		}

		clip := data.clip
		if clip.Empty() {
			// Zero-value clip means full framebuffer.
			clip = model.ClipRect{Width: surfaceWidth, Height: surfaceHeight}
		}
		clip = clip.Clamp(surfaceWidth, surfaceHeight)
		if clip.Empty() {
			continue
		}

		provider := bind_group_provider.NewBindGroupProvider(fmt.Sprintf("UI Batch %d", i))
		if err := s.r.InitMeshBuffers(provider, data.vertexData, data.indexData, data.indexCount); err != nil {
			s.batches = s.batches[:0]
			return fmt.Errorf("ui draw: failed to init batch %d buffers: %w", i, err)
		}
		s.retired = append(s.retired, provider)

		s.r.SetScissorRect(clip.X, clip.Y, clip.Width, clip.Height)
		bindGroups := make([]bind_group_provider.BindGroupProvider, 2)
		bindGroups[s.fontGroup] = s.fontProvider
		bindGroups[s.screenGroup] = s.screenProvider
		if err := s.r.DrawCall(UIPipelineKey, provider, 1, bindGroups); err != nil {
			s.batches = s.batches[:0]
			return fmt.Errorf("ui draw: batch %d: %w", i, err)
		}
	}

	// Restore the full-surface scissor for whatever draws next.
	s.r.SetScissorRect(0, 0, surfaceWidth, surfaceHeight)

	s.batches = s.batches[:0]
	return nil
}

// refreshFontTexture re-uploads the font atlas pixels and rebuilds the font
// bind group around the new texture view. Callers must hold s.mu.
func (s *uiDrawSystem) refreshFontTexture() error {
	oldView := s.fontProvider.TextureView(0)
	oldBindGroup := s.fontProvider.BindGroup()

	if err := s.r.InitTextureView(s.fontProvider, 0, *s.fontMaterial.Texture()); err != nil {
		return fmt.Errorf("ui draw: failed to re-upload font atlas: %w", err)
	}
	if err := s.r.InitBindGroup(s.fontProvider, s.fragmentShader.BindGroupLayoutDescriptor(s.fontGroup), nil, nil); err != nil {
		return fmt.Errorf("ui draw: failed to rebuild font bind group: %w", err)
	}

	if oldBindGroup != nil {
		oldBindGroup.Release()
	}
	if oldView != nil {
		oldView.Release()
	}
	common.Logger().Debug("ui draw: font atlas re-uploaded", "version", s.fontMaterial.Version())
	return nil
}

func (s *uiDrawSystem) FontMaterial() material.Material {
	return s.fontMaterial
}
