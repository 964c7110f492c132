package model

// --- UI Mesh Types ---

// ClipRect is an axis-aligned scissor rectangle in physical pixels with the
// origin at the top-left corner of the framebuffer.
type ClipRect struct {
	// X is the left edge of the rectangle.
	X uint32

	// Y is the top edge of the rectangle.
	Y uint32

	// Width is the rectangle width. A zero width disables the draw.
	Width uint32

	// Height is the rectangle height. A zero height disables the draw.
	Height uint32
}

// Clamp restricts the rectangle to the given framebuffer bounds. Rectangles
// entirely outside the framebuffer collapse to zero size.
//
// Parameters:
//   - maxWidth: the framebuffer width in physical pixels
//   - maxHeight: the framebuffer height in physical pixels
//
// Returns:
//   - ClipRect: the clamped rectangle
func (c ClipRect) Clamp(maxWidth, maxHeight uint32) ClipRect {
	out := c
	if out.X >= maxWidth || out.Y >= maxHeight {
		return ClipRect{}
	}
	if out.X+out.Width > maxWidth {
		out.Width = maxWidth - out.X
	}
	if out.Y+out.Height > maxHeight {
		out.Height = maxHeight - out.Y
	}
	return out
}

// Empty reports whether the rectangle has zero area.
//
// Returns:
//   - bool: true if the rectangle covers no pixels
func (c ClipRect) Empty() bool {
	return c.Width == 0 || c.Height == 0
}

// UIMesh is a batch of UI geometry sharing one clip rectangle. Batches are
// produced per frame by UI layout code (e.g. text layout) and consumed by the
// UI pass, which draws them in submission order with alpha blending.
type UIMesh struct {
	// Vertices are the batch vertices in logical screen pixels.
	Vertices []GPUUIVertex

	// Indices are the triangle list indices into Vertices.
	Indices []uint32

	// Clip is the scissor rectangle applied while drawing this batch.
	// A zero-value Clip means "no scissor" and covers the whole framebuffer.
	Clip ClipRect
}

// VertexData marshals the batch vertices for vertex buffer upload.
//
// Returns:
//   - []byte: buffer of len(Vertices)*32 bytes
func (m *UIMesh) VertexData() []byte {
	return MarshalUIVertices(m.Vertices)
}

// IndexData marshals the batch indices for index buffer upload.
//
// Returns:
//   - []byte: buffer of len(Indices)*4 bytes
func (m *UIMesh) IndexData() []byte {
	return MarshalIndices(m.Indices)
}
