package ledgrid

import "fmt"

// TileSprite binds one Bitmap to one Palette and places a tiled view of it
// in the scene. The sprite borrows both: it never owns their lifetime, and
// many sprites may share one Bitmap or Palette (repeated background tiles,
// palette-swapped variants).
//
// The common case is a single tile covering the whole bitmap
// ([NewTileSprite]). [NewTileGrid] arranges a Width x Height grid of cells,
// each selecting one tile cut from the bitmap, the way tile strips and
// sprite sheets are laid out.
//
// X and Y are the position within the parent. A hidden sprite is skipped
// before any per-pixel work, not merely drawn invisible.
type TileSprite struct {
	X, Y   int
	Hidden bool

	// FlipX, FlipY and TransposeXY remap pixels within each tile.
	// TransposeXY swaps the axes (a 90-degree building block) and assumes
	// square tiles.
	FlipX       bool
	FlipY       bool
	TransposeXY bool

	bitmap  *Bitmap
	palette *Palette

	gridW, gridH int
	tileW, tileH int
	tilesPerRow  int
	tiles        []int // row-major tile index per grid cell

	par *Group
}

// TileGridConfig configures a multi-cell TileSprite. Zero values take
// defaults: a 1x1 grid of full-bitmap tiles.
type TileGridConfig struct {
	Width, Height         int // grid size in cells
	TileWidth, TileHeight int // size of one tile within the bitmap
	DefaultTile           int // initial tile index for every cell
}

// NewTileSprite creates a sprite showing the whole bitmap as a single tile.
func NewTileSprite(bm *Bitmap, pal *Palette) *TileSprite {
	return NewTileGrid(bm, pal, TileGridConfig{})
}

// NewTileGrid creates a sprite arranging a grid of tiles cut from the
// bitmap. Tiles are numbered row-major across the bitmap, so a 32x8 bitmap
// with 8x8 tiles holds tiles 0..3.
func NewTileGrid(bm *Bitmap, pal *Palette, cfg TileGridConfig) *TileSprite {
	if bm == nil || pal == nil {
		panic("ledgrid: tile sprite needs a bitmap and a palette")
	}
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	if cfg.TileWidth <= 0 {
		cfg.TileWidth = bm.Width()
	}
	if cfg.TileHeight <= 0 {
		cfg.TileHeight = bm.Height()
	}
	t := &TileSprite{
		bitmap:      bm,
		palette:     pal,
		gridW:       cfg.Width,
		gridH:       cfg.Height,
		tileW:       cfg.TileWidth,
		tileH:       cfg.TileHeight,
		tilesPerRow: max(bm.Width()/cfg.TileWidth, 1),
		tiles:       make([]int, cfg.Width*cfg.Height),
	}
	if cfg.DefaultTile != 0 {
		for i := range t.tiles {
			t.tiles[i] = cfg.DefaultTile
		}
	}
	return t
}

// Bitmap returns the shared bitmap.
func (t *TileSprite) Bitmap() *Bitmap { return t.bitmap }

// Palette returns the shared palette.
func (t *TileSprite) Palette() *Palette { return t.palette }

// SetBitmap swaps the shared bitmap reference.
func (t *TileSprite) SetBitmap(bm *Bitmap) {
	if bm == nil {
		panic("ledgrid: tile sprite bitmap must not be nil")
	}
	t.bitmap = bm
	t.tilesPerRow = max(bm.Width()/t.tileW, 1)
}

// SetPalette swaps the shared palette reference. Swapping palettes is the
// cheap way to recolor or flash a sprite without touching bitmap data.
func (t *TileSprite) SetPalette(pal *Palette) {
	if pal == nil {
		panic("ledgrid: tile sprite palette must not be nil")
	}
	t.palette = pal
}

// GridWidth returns the grid width in cells.
func (t *TileSprite) GridWidth() int { return t.gridW }

// GridHeight returns the grid height in cells.
func (t *TileSprite) GridHeight() int { return t.gridH }

// TileWidth returns the width of one tile in pixels.
func (t *TileSprite) TileWidth() int { return t.tileW }

// TileHeight returns the height of one tile in pixels.
func (t *TileSprite) TileHeight() int { return t.tileH }

// PixelWidth returns the sprite's unscaled footprint width.
func (t *TileSprite) PixelWidth() int { return t.gridW * t.tileW }

// PixelHeight returns the sprite's unscaled footprint height.
func (t *TileSprite) PixelHeight() int { return t.gridH * t.tileH }

// SetTile selects the tile shown in grid cell (col, row). Panics if the
// cell is out of range.
func (t *TileSprite) SetTile(col, row, tile int) {
	t.checkCell(col, row)
	if tile < 0 {
		panic("ledgrid: tile index must not be negative")
	}
	t.tiles[row*t.gridW+col] = tile
}

// TileAt returns the tile index in grid cell (col, row). Panics if the
// cell is out of range.
func (t *TileSprite) TileAt(col, row int) int {
	t.checkCell(col, row)
	return t.tiles[row*t.gridW+col]
}

func (t *TileSprite) checkCell(col, row int) {
	if col < 0 || col >= t.gridW || row < 0 || row >= t.gridH {
		panic(fmt.Sprintf("ledgrid: tile cell (%d, %d) out of range %dx%d", col, row, t.gridW, t.gridH))
	}
}

func (t *TileSprite) parent() *Group     { return t.par }
func (t *TileSprite) setParent(g *Group) { t.par = g }

func (t *TileSprite) draw(disp *Display, offsetX, offsetY, scale int) {
	if t.Hidden {
		return
	}
	baseX := offsetX + t.X*scale
	baseY := offsetY + t.Y*scale
	for row := 0; row < t.gridH; row++ {
		for col := 0; col < t.gridW; col++ {
			tile := t.tiles[row*t.gridW+col]
			srcX := (tile % t.tilesPerRow) * t.tileW
			srcY := (tile / t.tilesPerRow) * t.tileH
			cellX := baseX + col*t.tileW*scale
			cellY := baseY + row*t.tileH*scale
			t.drawTile(disp, srcX, srcY, cellX, cellY, scale)
		}
	}
}

func (t *TileSprite) drawTile(disp *Display, srcX, srcY, dstX, dstY, scale int) {
	for py := 0; py < t.tileH; py++ {
		for px := 0; px < t.tileW; px++ {
			sx, sy := px, py
			if t.TransposeXY {
				sx, sy = sy, sx
			}
			if t.FlipX {
				sx = t.tileW - 1 - sx
			}
			if t.FlipY {
				sy = t.tileH - 1 - sy
			}
			v := t.bitmap.At(srcX+sx, srcY+sy)
			// An index beyond the palette is a content bug; skip rather
			// than abort the frame mid-traversal.
			if v >= t.palette.Len() || t.palette.IsTransparent(v) {
				continue
			}
			c := t.palette.ColorAt(v)
			x := dstX + px*scale
			y := dstY + py*scale
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					disp.plot(x+dx, y+dy, c)
				}
			}
		}
	}
}
