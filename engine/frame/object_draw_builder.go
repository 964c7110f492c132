package frame

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// ObjectDrawSystemOption is a functional option for configuring an ObjectDrawSystem
// via NewObjectDrawSystem.
type ObjectDrawSystemOption func(*objectDrawSystem)

// WithObjectCullMode is an option builder that sets the face culling mode of the
// geometry pass pipeline. The default is back-face culling.
//
// Parameters:
//   - mode: the cull mode to use
//
// Returns:
//   - ObjectDrawSystemOption: a function that applies the cull mode option
func WithObjectCullMode(mode wgpu.CullMode) ObjectDrawSystemOption {
	return func(s *objectDrawSystem) {
		s.cullMode = mode
	}
}
