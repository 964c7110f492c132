package font

import "testing"

func TestNewAtlasTexture(t *testing.T) {
	a := NewAtlas()

	tex := a.Texture()
	if tex == nil {
		t.Fatal("Texture() returned nil")
	}
	if tex.Width == 0 || tex.Height == 0 {
		t.Fatalf("texture is %dx%d, want non-zero dimensions", tex.Width, tex.Height)
	}
	if got := len(tex.Pixels); got != int(tex.Width)*int(tex.Height)*4 {
		t.Fatalf("len(Pixels) = %d, want %d", got, int(tex.Width)*int(tex.Height)*4)
	}
}

func TestAtlasGlyphRange(t *testing.T) {
	a := NewAtlas()

	for _, r := range []rune{' ', 'A', 'z', '0', '~'} {
		g, ok := a.Glyph(r)
		if !ok {
			t.Errorf("Glyph(%q) not baked", r)
			continue
		}
		if g.Advance <= 0 {
			t.Errorf("Glyph(%q).Advance = %v, want > 0", r, g.Advance)
		}
		if g.Width <= 0 || g.Height <= 0 {
			t.Errorf("Glyph(%q) cell is %vx%v, want positive", r, g.Width, g.Height)
		}
		for i := range 2 {
			if g.UVMin[i] < 0 || g.UVMin[i] > 1 || g.UVMax[i] < 0 || g.UVMax[i] > 1 {
				t.Errorf("Glyph(%q) UVs out of [0, 1]: min %v max %v", r, g.UVMin, g.UVMax)
			}
			if g.UVMin[i] >= g.UVMax[i] {
				t.Errorf("Glyph(%q) UVMin %v not below UVMax %v", r, g.UVMin, g.UVMax)
			}
		}
	}

	if _, ok := a.Glyph('\t'); ok {
		t.Error("control rune should not be baked")
	}
	if _, ok := a.Glyph('é'); ok {
		t.Error("rune outside printable ASCII should not be baked")
	}
}

func TestAtlasWhiteTexel(t *testing.T) {
	a := NewAtlas()
	tex := a.Texture()
	uv := a.WhiteUV()

	if uv[0] <= 0 || uv[0] >= 1 || uv[1] <= 0 || uv[1] >= 1 {
		t.Fatalf("WhiteUV() = %v, want coordinates inside (0, 1)", uv)
	}

	x := int(uv[0] * float32(tex.Width))
	y := int(uv[1] * float32(tex.Height))
	offset := (y*int(tex.Width) + x) * 4
	for c := range 4 {
		if tex.Pixels[offset+c] != 0xFF {
			t.Fatalf("white texel channel %d = %d, want 255", c, tex.Pixels[offset+c])
		}
	}
}

func TestAtlasLineHeight(t *testing.T) {
	a := NewAtlas()
	if a.LineHeight() <= 0 {
		t.Fatalf("LineHeight() = %v, want > 0", a.LineHeight())
	}
}

func TestLayoutText(t *testing.T) {
	a := NewAtlas()

	t.Run("empty string", func(t *testing.T) {
		mesh := LayoutText(a, "", [2]float32{0, 0}, [4]float32{1, 1, 1, 1})
		if len(mesh.Vertices) != 0 || len(mesh.Indices) != 0 {
			t.Fatalf("got %d vertices, %d indices, want empty mesh", len(mesh.Vertices), len(mesh.Indices))
		}
	})

	t.Run("one quad per glyph", func(t *testing.T) {
		mesh := LayoutText(a, "abc", [2]float32{0, 0}, [4]float32{1, 1, 1, 1})
		if len(mesh.Vertices) != 12 {
			t.Errorf("got %d vertices, want 12", len(mesh.Vertices))
		}
		if len(mesh.Indices) != 18 {
			t.Errorf("got %d indices, want 18", len(mesh.Indices))
		}
	})

	t.Run("pen advances between glyphs", func(t *testing.T) {
		mesh := LayoutText(a, "ab", [2]float32{5, 7}, [4]float32{1, 1, 1, 1})
		g, _ := a.Glyph('a')

		first := mesh.Vertices[0].Position
		if first != [2]float32{5, 7} {
			t.Errorf("first quad origin = %v, want {5, 7}", first)
		}
		second := mesh.Vertices[4].Position
		if second != [2]float32{5 + g.Advance, 7} {
			t.Errorf("second quad origin = %v, want {%v, 7}", second, 5+g.Advance)
		}
	})

	t.Run("newline resets pen and advances line", func(t *testing.T) {
		mesh := LayoutText(a, "a\nb", [2]float32{0, 0}, [4]float32{1, 1, 1, 1})
		if len(mesh.Vertices) != 8 {
			t.Fatalf("got %d vertices, want 8", len(mesh.Vertices))
		}
		second := mesh.Vertices[4].Position
		if second != [2]float32{0, a.LineHeight()} {
			t.Errorf("second line origin = %v, want {0, %v}", second, a.LineHeight())
		}
	})

	t.Run("unbaked runes are skipped", func(t *testing.T) {
		mesh := LayoutText(a, "a\tb", [2]float32{0, 0}, [4]float32{1, 1, 1, 1})
		if len(mesh.Vertices) != 8 {
			t.Fatalf("got %d vertices, want 8", len(mesh.Vertices))
		}
	})

	t.Run("color applied per vertex", func(t *testing.T) {
		color := [4]float32{0.5, 0.25, 0.125, 1}
		mesh := LayoutText(a, "x", [2]float32{0, 0}, color)
		for i, v := range mesh.Vertices {
			if v.Color != color {
				t.Errorf("vertex %d color = %v, want %v", i, v.Color, color)
			}
		}
	})
}

func TestMeasureText(t *testing.T) {
	a := NewAtlas()
	g, _ := a.Glyph('a')

	tests := []struct {
		name       string
		text       string
		wantWidth  float32
		wantHeight float32
	}{
		{name: "empty", text: "", wantWidth: 0, wantHeight: 0},
		{name: "single glyph", text: "a", wantWidth: g.Advance, wantHeight: a.LineHeight()},
		{name: "three glyphs", text: "aaa", wantWidth: 3 * g.Advance, wantHeight: a.LineHeight()},
		{name: "two lines widest wins", text: "aaa\na", wantWidth: 3 * g.Advance, wantHeight: 2 * a.LineHeight()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			width, height := MeasureText(a, tt.text)
			if width != tt.wantWidth {
				t.Errorf("width = %v, want %v", width, tt.wantWidth)
			}
			if height != tt.wantHeight {
				t.Errorf("height = %v, want %v", height, tt.wantHeight)
			}
		})
	}
}

func TestLayoutQuad(t *testing.T) {
	a := NewAtlas()
	color := [4]float32{0, 0, 0, 0.5}
	mesh := LayoutQuad(a, [2]float32{10, 20}, [2]float32{30, 40}, color)

	if len(mesh.Vertices) != 4 {
		t.Fatalf("got %d vertices, want 4", len(mesh.Vertices))
	}
	if len(mesh.Indices) != 6 {
		t.Fatalf("got %d indices, want 6", len(mesh.Indices))
	}

	white := a.WhiteUV()
	for i, v := range mesh.Vertices {
		if v.UV != white {
			t.Errorf("vertex %d UV = %v, want white texel %v", i, v.UV, white)
		}
		if v.Color != color {
			t.Errorf("vertex %d color = %v, want %v", i, v.Color, color)
		}
	}

	if mesh.Vertices[0].Position != [2]float32{10, 20} {
		t.Errorf("top-left = %v, want {10, 20}", mesh.Vertices[0].Position)
	}
	if mesh.Vertices[2].Position != [2]float32{30, 40} {
		t.Errorf("bottom-right = %v, want {30, 40}", mesh.Vertices[2].Position)
	}
}
