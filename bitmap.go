package ledgrid

import "fmt"

// Bitmap is a grid of small integer color indices. It carries no color
// information of its own; indices are resolved through a Palette at
// composite time, and one Bitmap may be shared by any number of sprites.
//
// The declared bit depth fixes the legal index range at construction.
// Storing an index outside that range is a programming bug in content
// generation and panics at the point of assignment; out-of-bounds
// coordinates, by contrast, are silently ignored like everywhere else in
// the hot path.
type Bitmap struct {
	width    int
	height   int
	bitDepth int
	maxValue int
	values   []uint16 // row-major, len = width*height
}

// NewBitmap creates a bitmap whose cells may hold indices in
// [0, 2^bitDepth - 1]. bitDepth must be in [1, 16].
func NewBitmap(width, height, bitDepth int) *Bitmap {
	if width <= 0 || height <= 0 {
		panic("ledgrid: bitmap dimensions must be positive")
	}
	if bitDepth < 1 || bitDepth > 16 {
		panic("ledgrid: bitmap bit depth must be in [1, 16]")
	}
	return &Bitmap{
		width:    width,
		height:   height,
		bitDepth: bitDepth,
		maxValue: 1<<bitDepth - 1,
		values:   make([]uint16, width*height),
	}
}

// Width returns the bitmap width in cells.
func (bm *Bitmap) Width() int { return bm.width }

// Height returns the bitmap height in cells.
func (bm *Bitmap) Height() int { return bm.height }

// BitDepth returns the declared bits per cell.
func (bm *Bitmap) BitDepth() int { return bm.bitDepth }

// MaxValue returns the largest index a cell may hold.
func (bm *Bitmap) MaxValue() int { return bm.maxValue }

// Set stores an index at (x, y). Out-of-bounds coordinates are a no-op.
// Panics if v exceeds the declared bit depth.
func (bm *Bitmap) Set(x, y, v int) {
	bm.checkValue(v)
	if x < 0 || x >= bm.width || y < 0 || y >= bm.height {
		return
	}
	bm.values[y*bm.width+x] = uint16(v)
}

// At returns the index at (x, y), or 0 for out-of-bounds reads.
func (bm *Bitmap) At(x, y int) int {
	if x < 0 || x >= bm.width || y < 0 || y >= bm.height {
		return 0
	}
	return int(bm.values[y*bm.width+x])
}

// Fill sets every cell to v. Panics if v exceeds the declared bit depth.
func (bm *Bitmap) Fill(v int) {
	bm.checkValue(v)
	for i := range bm.values {
		bm.values[i] = uint16(v)
	}
}

// Blit copies all of src into bm with its top-left corner at (x, y),
// clipping to bm's bounds.
func (bm *Bitmap) Blit(x, y int, src *Bitmap) {
	bm.BlitRegion(x, y, src, 0, 0, src.width, src.height, -1)
}

// BlitRegion copies the source region [x1, x2) x [y1, y2) of src into bm at
// (x, y), clipping to both bitmaps' bounds. Source cells equal to skipIndex
// are left uncopied; a negative skipIndex disables skipping. Copied values
// above bm's declared range panic, same as Set.
func (bm *Bitmap) BlitRegion(x, y int, src *Bitmap, x1, y1, x2, y2, skipIndex int) {
	x1 = max(x1, 0)
	y1 = max(y1, 0)
	x2 = min(x2, src.width)
	y2 = min(y2, src.height)
	if x < 0 {
		x1 -= x
		x = 0
	}
	if y < 0 {
		y1 -= y
		y = 0
	}
	w := min(x2-x1, bm.width-x)
	h := min(y2-y1, bm.height-y)
	if w <= 0 || h <= 0 {
		return
	}
	for row := 0; row < h; row++ {
		srcOff := (y1+row)*src.width + x1
		dstOff := (y+row)*bm.width + x
		for col := 0; col < w; col++ {
			v := src.values[srcOff+col]
			if skipIndex >= 0 && int(v) == skipIndex {
				continue
			}
			bm.checkValue(int(v))
			bm.values[dstOff+col] = v
		}
	}
}

func (bm *Bitmap) checkValue(v int) {
	if v < 0 || v > bm.maxValue {
		panic(fmt.Sprintf("ledgrid: bitmap value %d out of range for bit depth %d", v, bm.bitDepth))
	}
}
