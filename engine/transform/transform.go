package transform

import (
	"errors"
	"fmt"
	"math"

	"github.com/tuguzT/Titan/common"
)

// ErrDegenerateViewport is returned when a screen size with a non-positive
// width or height reaches a code path that needs to divide by it.
var ErrDegenerateViewport = errors.New("degenerate viewport")

// CameraTransform holds the three matrices the geometry pass applies to every
// vertex. All matrices are column-major [16]float32, matching the GPU-side
// uniform block field for field.
type CameraTransform struct {
	// Projection transforms view space to clip space.
	Projection [16]float32
	// Model transforms object space to world space.
	Model [16]float32
	// View transforms world space to view space.
	View [16]float32
}

// NewCameraTransform creates a CameraTransform with all three matrices set to
// identity.
//
// Returns:
//   - CameraTransform: the identity transform
func NewCameraTransform() CameraTransform {
	var t CameraTransform
	common.Identity(t.Projection[:])
	common.Identity(t.Model[:])
	common.Identity(t.View[:])
	return t
}

// ClipPosition computes the clip-space position of an object-space point,
// mirroring the geometry vertex stage: projection * view * model * vec4(p, 1).
//
// Parameters:
//   - position: object-space position
//
// Returns:
//   - [4]float32: the clip-space position
func (t *CameraTransform) ClipPosition(position [3]float32) [4]float32 {
	var vm, pvm [16]float32
	common.Mul4(vm[:], t.View[:], t.Model[:])
	common.Mul4(pvm[:], t.Projection[:], vm[:])
	return common.MulVec4(pvm[:], [4]float32{position[0], position[1], position[2], 1})
}

// ScreenSize is the logical-pixel size of the drawable area, as consumed by
// the UI vertex stage. Logical pixels are the physical framebuffer size
// divided by the window content scale.
type ScreenSize struct {
	Width  float32
	Height float32
}

// Validate reports whether the screen size can be used as a viewport.
//
// Returns:
//   - error: ErrDegenerateViewport (wrapped with the offending size) when
//     width or height is not strictly positive and finite, nil otherwise
func (s ScreenSize) Validate() error {
	if !(s.Width > 0) || !(s.Height > 0) ||
		math.IsInf(float64(s.Width), 1) || math.IsInf(float64(s.Height), 1) {
		return fmt.Errorf("%w: %gx%g", ErrDegenerateViewport, s.Width, s.Height)
	}
	return nil
}

// ClipPosition computes the clip-space position of a UI point given in logical
// pixels with a top-left origin, mirroring the UI vertex stage:
// vec4(2*p/screen_size - 1, 0, 1).
//
// Parameters:
//   - position: UI position in logical pixels
//
// Returns:
//   - [4]float32: the clip-space position
//   - error: ErrDegenerateViewport when the screen size is unusable
func (s ScreenSize) ClipPosition(position [2]float32) ([4]float32, error) {
	if err := s.Validate(); err != nil {
		return [4]float32{}, err
	}
	return [4]float32{
		2*position[0]/s.Width - 1,
		2*position[1]/s.Height - 1,
		0,
		1,
	}, nil
}
