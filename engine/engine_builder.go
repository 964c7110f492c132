package engine

import (
	"time"

	"github.com/tuguzT/Titan/engine/camera"
	"github.com/tuguzT/Titan/engine/frame"
	"github.com/tuguzT/Titan/engine/renderer"
	"github.com/tuguzT/Titan/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the engine tick rate in frames per second.
// The tick callback will be called at this rate for game logic updates.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Second / time.Duration(fps)
	}
}

// WithWindow sets a custom configured window for the engine to use rather than allowing the engine
// to create and manage one internally.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer that drives the frame lifecycle.
// The engine calls BeginFrame, EndFrame, and Present on it each render frame
// and forwards window resizes to it.
//
// Parameters:
//   - r: a configured Renderer instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithCamera sets the camera used by the geometry pass. The engine updates its
// controller each render frame and keeps its aspect ratio in sync with the
// window.
//
// Parameters:
//   - c: a configured Camera instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.Camera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithObjectDraw sets the 3D geometry draw system executed each render frame.
//
// Parameters:
//   - s: a configured ObjectDrawSystem instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithObjectDraw(s frame.ObjectDrawSystem) EngineBuilderOption {
	return func(e *engine) {
		e.objectDraw = s
	}
}

// WithUIDraw sets the screen-space UI draw system executed each render frame
// after the geometry pass. The engine keeps its logical screen size in sync
// with the window.
//
// Parameters:
//   - s: a configured UIDrawSystem instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithUIDraw(s frame.UIDrawSystem) EngineBuilderOption {
	return func(e *engine) {
		e.uiDraw = s
	}
}

// WithRenderFrameLimit sets an optional render frame rate cap in frames per second.
// Pass 0 to uncap the render loop (default).
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Second / time.Duration(fps)
	}
}
