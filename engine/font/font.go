package font

import (
	"image"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/tuguzT/Titan/common"
)

// firstGlyph and lastGlyph bound the printable ASCII range baked into the atlas.
const (
	firstGlyph = ' '
	lastGlyph  = '~'

	atlasColumns = 16

	// cellPadding keeps one transparent pixel between glyph cells so linear
	// filtering never bleeds a neighbouring glyph into a quad.
	cellPadding = 1

	// whiteBlockSize is the side length of the solid white block reserved for
	// untextured UI quads.
	whiteBlockSize = 4
)

// Glyph describes one rasterized glyph inside the atlas texture.
type Glyph struct {
	// UVMin is the top-left texture coordinate of the glyph cell.
	UVMin [2]float32

	// UVMax is the bottom-right texture coordinate of the glyph cell.
	UVMax [2]float32

	// Width and Height are the glyph cell dimensions in pixels.
	Width, Height float32

	// Advance is the horizontal pen advance in pixels.
	Advance float32
}

// atlas is the implementation of the Atlas interface.
type atlas struct {
	mu sync.Mutex

	face       font.Face
	texture    *common.TextureStagingData
	glyphs     map[rune]Glyph
	whiteUV    [2]float32
	lineHeight float32
	version    uint64
}

// Atlas defines the interface for a rasterized glyph atlas backing the UI pass
// font texture. The atlas bakes the printable ASCII range of a font face into
// a single RGBA texture, with glyph coverage in the alpha channel and white in
// the color channels so UI fragments can tint via vertex color. One solid
// white block is always present for drawing untextured quads.
type Atlas interface {
	// Texture retrieves the staged RGBA atlas texture, ready for GPU upload.
	//
	// Returns:
	//   - *common.TextureStagingData: the atlas pixels and dimensions
	Texture() *common.TextureStagingData

	// Glyph looks up the atlas entry for a rune.
	//
	// Parameters:
	//   - r: the rune to look up
	//
	// Returns:
	//   - Glyph: the glyph entry
	//   - bool: false if the rune is outside the baked range
	Glyph(r rune) (Glyph, bool)

	// WhiteUV returns a texture coordinate guaranteed to sample opaque white,
	// for untextured UI quads.
	//
	// Returns:
	//   - [2]float32: the white texel coordinate
	WhiteUV() [2]float32

	// LineHeight returns the vertical pen advance between text lines in pixels.
	//
	// Returns:
	//   - float32: the line height
	LineHeight() float32

	// Version returns a monotonically increasing value that changes whenever the
	// atlas pixels change, so the renderer can re-upload only when needed.
	//
	// Returns:
	//   - uint64: the atlas content version
	Version() uint64
}

var _ Atlas = &atlas{}

// NewAtlas creates a glyph atlas with the specified options applied.
// The face defaults to basicfont.Face7x13. Panics if rasterization fails,
// which indicates a programming error in the supplied face.
//
// Parameters:
//   - options: a variadic list of AtlasBuilderOption functions to configure the Atlas
//
// Returns:
//   - Atlas: a new instance of Atlas configured with the provided options
func NewAtlas(options ...AtlasBuilderOption) Atlas {
	a := &atlas{
		face:    basicfont.Face7x13,
		glyphs:  make(map[rune]Glyph),
		version: 1,
	}
	for _, opt := range options {
		opt(a)
	}
	a.bake()
	return a
}

// bake rasterizes the printable ASCII range into the atlas texture and fills
// the glyph table, the white block, and the line height.
func (a *atlas) bake() {
	metrics := a.face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	cellHeight := ascent + descent
	cellWidth := 0
	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		advance, ok := a.face.GlyphAdvance(r)
		if !ok {
			continue
		}
		if w := advance.Ceil(); w > cellWidth {
			cellWidth = w
		}
	}
	if cellWidth == 0 || cellHeight == 0 {
		panic("font: face produced empty glyph cells")
	}

	glyphCount := int(lastGlyph-firstGlyph) + 1
	rows := (glyphCount + atlasColumns - 1) / atlasColumns
	strideX := cellWidth + cellPadding
	strideY := cellHeight + cellPadding
	width := atlasColumns * strideX
	height := rows*strideY + whiteBlockSize + cellPadding

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	white := image.White

	for i := 0; i < glyphCount; i++ {
		r := rune(firstGlyph + i)
		cellX := (i % atlasColumns) * strideX
		cellY := (i / atlasColumns) * strideY

		dot := fixed.P(cellX, cellY+ascent)
		dr, mask, maskp, advance, ok := a.face.Glyph(dot, r)
		if !ok {
			continue
		}
		draw.DrawMask(dst, dr, white, image.Point{}, mask, maskp, draw.Over)

		a.glyphs[r] = Glyph{
			UVMin:   [2]float32{float32(cellX) / float32(width), float32(cellY) / float32(height)},
			UVMax:   [2]float32{float32(cellX+cellWidth) / float32(width), float32(cellY+cellHeight) / float32(height)},
			Width:   float32(cellWidth),
			Height:  float32(cellHeight),
			Advance: float32(advance.Ceil()),
		}
	}

	// Solid white block below the glyph grid.
	blockY := rows * strideY
	draw.Draw(dst, image.Rect(0, blockY, whiteBlockSize, blockY+whiteBlockSize), white, image.Point{}, draw.Src)
	a.whiteUV = [2]float32{
		(whiteBlockSize / 2.0) / float32(width),
		(float32(blockY) + whiteBlockSize/2.0) / float32(height),
	}

	a.lineHeight = float32(metrics.Height.Ceil())
	if a.lineHeight == 0 {
		a.lineHeight = float32(cellHeight)
	}
	a.texture = &common.TextureStagingData{
		Pixels: dst.Pix,
		Width:  uint32(width),
		Height: uint32(height),
	}
}

func (a *atlas) Texture() *common.TextureStagingData {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.texture
}

func (a *atlas) Glyph(r rune) (Glyph, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	g, ok := a.glyphs[r]
	return g, ok
}

func (a *atlas) WhiteUV() [2]float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.whiteUV
}

func (a *atlas) LineHeight() float32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lineHeight
}

func (a *atlas) Version() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.version
}
