package ledgrid

// DirtyState tags the three dirty-tracking states of a PixelBuffer. The
// "whole buffer" case is a distinct tag, not an overloaded sentinel value.
type DirtyState uint8

const (
	// DirtyNone means no pixel has been written since the last ClearDirty.
	DirtyNone DirtyState = iota
	// DirtyRect means the writes since the last ClearDirty are bounded by
	// the rectangle carried alongside the tag.
	DirtyRect
	// DirtyFull means the whole buffer must be treated as modified
	// (after Fill, Clear, or ApplyBrightness).
	DirtyFull
)

// DirtyRegion describes what part of a PixelBuffer changed since the dirty
// state was last cleared. MinX..MaxY are inclusive and only meaningful when
// State == DirtyRect.
type DirtyRegion struct {
	State                  DirtyState
	MinX, MinY, MaxX, MaxY int
}

// PixelBuffer is a fixed-size grid of RGB pixels with dirty-region
// tracking. It is the compositor's output surface and the host renderer's
// input. All coordinate arguments are clipped: out-of-bounds writes are
// no-ops and out-of-bounds reads return black, so per-pixel hot paths never
// fault.
type PixelBuffer struct {
	width  int
	height int
	pixels []Color // row-major, len = width*height
	dirty  DirtyRegion
}

// NewPixelBuffer creates a buffer of the given dimensions, all pixels
// black, dirty state Full (nothing has been presented yet).
func NewPixelBuffer(width, height int) *PixelBuffer {
	if width <= 0 || height <= 0 {
		panic("ledgrid: pixel buffer dimensions must be positive")
	}
	return &PixelBuffer{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
		dirty:  DirtyRegion{State: DirtyFull},
	}
}

// Width returns the buffer width in pixels.
func (b *PixelBuffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *PixelBuffer) Height() int { return b.height }

// SetPixel writes one pixel and extends the dirty region to cover it.
// Out-of-bounds coordinates are ignored.
func (b *PixelBuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pixels[y*b.width+x] = c
	b.markDirty(x, y, x, y)
}

// PixelAt returns the pixel at (x, y), or black for out-of-bounds reads.
func (b *PixelBuffer) PixelAt(x, y int) Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Color{}
	}
	return b.pixels[y*b.width+x]
}

// Fill sets every pixel to c and marks the whole buffer dirty.
func (b *PixelBuffer) Fill(c Color) {
	for i := range b.pixels {
		b.pixels[i] = c
	}
	b.dirty = DirtyRegion{State: DirtyFull}
}

// Clear sets every pixel to black and marks the whole buffer dirty.
func (b *PixelBuffer) Clear() {
	b.Fill(Color{})
}

// Blit copies src into b with its top-left corner at (dstX, dstY),
// clipping to b's bounds. Negative offsets clip the source.
func (b *PixelBuffer) Blit(src *PixelBuffer, dstX, dstY int) {
	b.blit(src, dstX, dstY, Color{}, false)
}

// BlitKey copies like Blit but skips source pixels equal to key, leaving
// the destination untouched there. This is the buffer-level transparency
// mechanism.
func (b *PixelBuffer) BlitKey(src *PixelBuffer, dstX, dstY int, key Color) {
	b.blit(src, dstX, dstY, key, true)
}

func (b *PixelBuffer) blit(src *PixelBuffer, dstX, dstY int, key Color, keyed bool) {
	srcX, srcY := 0, 0
	if dstX < 0 {
		srcX = -dstX
		dstX = 0
	}
	if dstY < 0 {
		srcY = -dstY
		dstY = 0
	}
	w := min(src.width-srcX, b.width-dstX)
	h := min(src.height-srcY, b.height-dstY)
	if w <= 0 || h <= 0 {
		return
	}
	for row := 0; row < h; row++ {
		srcOff := (srcY+row)*src.width + srcX
		dstOff := (dstY+row)*b.width + dstX
		for col := 0; col < w; col++ {
			c := src.pixels[srcOff+col]
			if keyed && c == key {
				continue
			}
			b.pixels[dstOff+col] = c
		}
	}
	b.markDirty(dstX, dstY, dstX+w-1, dstY+h-1)
}

// ApplyBrightness scales every channel of every pixel by factor (clamped
// to [0, 1]), rounding down. This is a one-shot mutation of the stored
// pixels, distinct from Display brightness which is applied while
// compositing and leaves scene state untouched.
func (b *PixelBuffer) ApplyBrightness(factor float64) {
	if factor >= 1 {
		return
	}
	for i := range b.pixels {
		b.pixels[i] = b.pixels[i].Scale(factor)
	}
	b.dirty = DirtyRegion{State: DirtyFull}
}

// IsDirty reports whether any pixel has been written since the last
// ClearDirty.
func (b *PixelBuffer) IsDirty() bool {
	return b.dirty.State != DirtyNone
}

// Dirty returns the current dirty region. The rectangle fields are valid
// only when State == DirtyRect.
func (b *PixelBuffer) Dirty() DirtyRegion {
	return b.dirty
}

// ClearDirty resets dirty tracking. The compositor never calls this; the
// host acknowledges consumed regions itself.
func (b *PixelBuffer) ClearDirty() {
	b.dirty = DirtyRegion{}
}

func (b *PixelBuffer) markDirty(x0, y0, x1, y1 int) {
	switch b.dirty.State {
	case DirtyFull:
		// Already maximal.
	case DirtyNone:
		b.dirty = DirtyRegion{State: DirtyRect, MinX: x0, MinY: y0, MaxX: x1, MaxY: y1}
	case DirtyRect:
		b.dirty.MinX = min(b.dirty.MinX, x0)
		b.dirty.MinY = min(b.dirty.MinY, y0)
		b.dirty.MaxX = max(b.dirty.MaxX, x1)
		b.dirty.MaxY = max(b.dirty.MaxY, y1)
	}
}
