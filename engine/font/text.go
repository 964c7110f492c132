package font

import (
	"github.com/tuguzT/Titan/engine/model"
)

// LayoutText lays out a string as UI quads anchored at origin, which is the
// top-left corner of the first line in logical screen pixels. Newlines advance
// the pen by the atlas line height; runes outside the baked range are skipped.
// The color is applied per vertex with premultiplied alpha.
//
// Parameters:
//   - a: the glyph atlas to sample from
//   - text: the string to lay out
//   - origin: top-left anchor in logical screen pixels
//   - color: RGBA vertex color, premultiplied alpha
//
// Returns:
//   - model.UIMesh: one quad per visible glyph, empty mesh for empty input
func LayoutText(a Atlas, text string, origin [2]float32, color [4]float32) model.UIMesh {
	var mesh model.UIMesh
	penX := origin[0]
	penY := origin[1]
	for _, r := range text {
		if r == '\n' {
			penX = origin[0]
			penY += a.LineHeight()
			continue
		}
		g, ok := a.Glyph(r)
		if !ok {
			continue
		}
		appendQuad(&mesh,
			[2]float32{penX, penY},
			[2]float32{penX + g.Width, penY + g.Height},
			g.UVMin, g.UVMax, color,
		)
		penX += g.Advance
	}
	return mesh
}

// MeasureText returns the bounding box size of a string laid out by LayoutText.
//
// Parameters:
//   - a: the glyph atlas to measure against
//   - text: the string to measure
//
// Returns:
//   - width: the widest line in logical pixels
//   - height: the total height in logical pixels, 0 for an empty string
func MeasureText(a Atlas, text string) (width, height float32) {
	if text == "" {
		return 0, 0
	}
	var lineWidth float32
	height = a.LineHeight()
	for _, r := range text {
		if r == '\n' {
			if lineWidth > width {
				width = lineWidth
			}
			lineWidth = 0
			height += a.LineHeight()
			continue
		}
		if g, ok := a.Glyph(r); ok {
			lineWidth += g.Advance
		}
	}
	if lineWidth > width {
		width = lineWidth
	}
	return width, height
}

// LayoutQuad lays out a single solid-colored rectangle using the atlas white
// block, so it can be drawn by the same pipeline and bind group as text.
//
// Parameters:
//   - a: the glyph atlas providing the white texel
//   - min: top-left corner in logical screen pixels
//   - max: bottom-right corner in logical screen pixels
//   - color: RGBA vertex color, premultiplied alpha
//
// Returns:
//   - model.UIMesh: a two-triangle quad
func LayoutQuad(a Atlas, min, max [2]float32, color [4]float32) model.UIMesh {
	var mesh model.UIMesh
	white := a.WhiteUV()
	appendQuad(&mesh, min, max, white, white, color)
	return mesh
}

// appendQuad appends a two-triangle quad spanning min..max with the given UV
// rectangle. Triangles wind counter-clockwise in screen space.
func appendQuad(mesh *model.UIMesh, min, max, uvMin, uvMax [2]float32, color [4]float32) {
	base := uint32(len(mesh.Vertices))
	mesh.Vertices = append(mesh.Vertices,
		model.GPUUIVertex{Position: min, UV: uvMin, Color: color},
		model.GPUUIVertex{Position: [2]float32{max[0], min[1]}, UV: [2]float32{uvMax[0], uvMin[1]}, Color: color},
		model.GPUUIVertex{Position: max, UV: uvMax, Color: color},
		model.GPUUIVertex{Position: [2]float32{min[0], max[1]}, UV: [2]float32{uvMin[0], uvMax[1]}, Color: color},
	)
	mesh.Indices = append(mesh.Indices,
		base, base+2, base+1,
		base, base+3, base+2,
	)
}
