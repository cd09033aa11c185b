package ledgrid

import "testing"

func TestNewTileSpriteDefaults(t *testing.T) {
	bm := NewBitmap(8, 6, 2)
	pal := NewPalette(4)
	s := NewTileSprite(bm, pal)
	if s.GridWidth() != 1 || s.GridHeight() != 1 {
		t.Errorf("grid = %dx%d, want 1x1", s.GridWidth(), s.GridHeight())
	}
	if s.TileWidth() != 8 || s.TileHeight() != 6 {
		t.Errorf("tile = %dx%d, want 8x6", s.TileWidth(), s.TileHeight())
	}
	if s.PixelWidth() != 8 || s.PixelHeight() != 6 {
		t.Errorf("footprint = %dx%d, want 8x6", s.PixelWidth(), s.PixelHeight())
	}
}

func TestNewTileSpriteNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil palette, got none")
		}
	}()
	NewTileSprite(NewBitmap(2, 2, 1), nil)
}

func TestNewTileGridDefaultTile(t *testing.T) {
	bm := NewBitmap(16, 8, 2)
	pal := NewPalette(4)
	s := NewTileGrid(bm, pal, TileGridConfig{
		Width: 3, Height: 2, TileWidth: 8, TileHeight: 8, DefaultTile: 1,
	})
	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			if s.TileAt(col, row) != 1 {
				t.Fatalf("cell (%d, %d) = %d, want 1", col, row, s.TileAt(col, row))
			}
		}
	}
	if s.PixelWidth() != 24 || s.PixelHeight() != 16 {
		t.Errorf("footprint = %dx%d, want 24x16", s.PixelWidth(), s.PixelHeight())
	}
}

func TestSetTileAndTileAt(t *testing.T) {
	bm := NewBitmap(16, 8, 2)
	pal := NewPalette(4)
	s := NewTileGrid(bm, pal, TileGridConfig{Width: 2, Height: 2, TileWidth: 8, TileHeight: 8})
	s.SetTile(1, 0, 1)
	if s.TileAt(1, 0) != 1 || s.TileAt(0, 0) != 0 {
		t.Errorf("tiles = %d %d", s.TileAt(1, 0), s.TileAt(0, 0))
	}
}

func TestSetTileOutOfRangePanics(t *testing.T) {
	s := newTestSprite()
	defer func() {
		if recover() == nil {
			t.Error("expected panic, got none")
		}
	}()
	s.SetTile(1, 0, 0)
}

func TestSetTileNegativePanics(t *testing.T) {
	s := newTestSprite()
	defer func() {
		if recover() == nil {
			t.Error("expected panic, got none")
		}
	}()
	s.SetTile(0, 0, -1)
}

func TestSetPaletteSwaps(t *testing.T) {
	bm := NewBitmap(1, 1, 1)
	bm.Set(0, 0, 1)
	p1 := NewPalette(2)
	p1.SetColor(1, red)
	p2 := NewPalette(2)
	p2.SetColor(1, green)

	s := NewTileSprite(bm, p1)
	d := NewDisplay(1, 1)
	d.SetRoot(s)
	if d.Matrix.PixelAt(0, 0) != red {
		t.Fatal("sprite not rendered with first palette")
	}
	s.SetPalette(p2)
	d.Refresh()
	if d.Matrix.PixelAt(0, 0) != green {
		t.Error("palette swap not picked up on refresh")
	}
}

// Tile addressing on a multi-tile strip: a 4x2 bitmap cut into 2x2 tiles
// holds tiles 0 and 1 side by side.
func TestTileStripAddressing(t *testing.T) {
	bm := NewBitmap(4, 2, 2)
	pal := NewPalette(4)
	pal.SetColor(1, red)
	pal.SetColor(2, green)
	// Tile 0 all index 1, tile 1 all index 2.
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			bm.Set(x, y, 1)
			bm.Set(x+2, y, 2)
		}
	}

	s := NewTileGrid(bm, pal, TileGridConfig{TileWidth: 2, TileHeight: 2, DefaultTile: 1})
	d := NewDisplay(2, 2)
	d.SetRoot(s)
	if d.Matrix.PixelAt(0, 0) != green || d.Matrix.PixelAt(1, 1) != green {
		t.Error("tile 1 should render green")
	}

	s.SetTile(0, 0, 0)
	d.Refresh()
	if d.Matrix.PixelAt(0, 0) != red || d.Matrix.PixelAt(1, 1) != red {
		t.Error("tile 0 should render red")
	}
}

func TestFlipAndTranspose(t *testing.T) {
	// 2x2 bitmap with a single red pixel at (0, 0).
	bm := NewBitmap(2, 2, 1)
	bm.Set(0, 0, 1)
	pal := NewPalette(2)
	pal.SetColor(1, red)
	pal.MakeTransparent(0)
	s := NewTileSprite(bm, pal)
	d := NewDisplay(2, 2)
	d.AutoRefresh = false
	d.SetRoot(s)

	check := func(name string, wantX, wantY int) {
		t.Helper()
		d.Refresh()
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				want := Color{}
				if x == wantX && y == wantY {
					want = red
				}
				if got := d.Matrix.PixelAt(x, y); got != want {
					t.Errorf("%s: pixel (%d, %d) = %v, want %v", name, x, y, got, want)
				}
			}
		}
	}

	check("plain", 0, 0)
	s.FlipX = true
	check("flip x", 1, 0)
	s.FlipX, s.FlipY = false, true
	check("flip y", 0, 1)
	s.FlipY = false
	s.TransposeXY = true
	check("transpose", 0, 0) // (0,0) is on the diagonal

	// Off-diagonal pixel distinguishes the transpose.
	bm.Set(0, 0, 0)
	bm.Set(1, 0, 1)
	s.TransposeXY = false
	check("moved plain", 1, 0)
	s.TransposeXY = true
	check("moved transpose", 0, 1)
}

func TestHiddenSpriteDrawsNothing(t *testing.T) {
	bm := NewBitmap(2, 2, 1)
	bm.Fill(1)
	pal := NewPalette(2)
	pal.SetColor(1, white)
	s := NewTileSprite(bm, pal)
	s.Hidden = true

	d := NewDisplay(4, 4)
	d.SetRoot(s)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if d.Matrix.PixelAt(x, y) != (Color{}) {
				t.Fatal("hidden sprite wrote pixels")
			}
		}
	}
}
