package font

import (
	"golang.org/x/image/font"
)

// AtlasBuilderOption is a functional option for configuring an Atlas via NewAtlas.
type AtlasBuilderOption func(*atlas)

// WithFace is an option builder that sets the font face rasterized into the Atlas.
//
// Parameters:
//   - face: the font face to bake
//
// Returns:
//   - AtlasBuilderOption: a function that applies the face option to an atlas
func WithFace(face font.Face) AtlasBuilderOption {
	return func(a *atlas) {
		if face != nil {
			a.face = face
		}
	}
}
