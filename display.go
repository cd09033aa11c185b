package ledgrid

import "time"

// Display owns a PixelBuffer and composites one root drawable into it.
// Refresh walks the scene graph accumulating integer (offset, scale)
// transforms and resolves every visible sprite pixel into the matrix;
// rotation is a final coordinate remap and brightness scales colors at
// composite time without touching palette or bitmap state.
//
// The display is single-threaded and synchronous: Refresh never blocks,
// performs no I/O, and either completes a full traversal or (TryRefresh)
// does nothing at all. Hosts present Matrix after refreshing and call
// Matrix.ClearDirty themselves once they have consumed the dirty region.
type Display struct {
	// Matrix is the owned output buffer, always at the physical
	// (unrotated) dimensions passed to NewDisplay.
	Matrix *PixelBuffer

	// AutoRefresh makes SetRoot composite the new scene immediately.
	AutoRefresh bool

	root       Drawable
	brightness float64
	rotation   Rotation

	lastRefresh time.Time
	now         func() time.Time // swappable for tests
}

// NewDisplay creates a display with an owned width x height buffer,
// brightness 1, no rotation, and AutoRefresh enabled.
func NewDisplay(width, height int) *Display {
	return &Display{
		Matrix:      NewPixelBuffer(width, height),
		AutoRefresh: true,
		brightness:  1,
		now:         time.Now,
	}
}

// Width returns the logical canvas width: the buffer width, or its height
// when the display is rotated a quarter turn.
func (d *Display) Width() int {
	if d.rotation == Rotate90 || d.rotation == Rotate270 {
		return d.Matrix.Height()
	}
	return d.Matrix.Width()
}

// Height returns the logical canvas height.
func (d *Display) Height() int {
	if d.rotation == Rotate90 || d.rotation == Rotate270 {
		return d.Matrix.Width()
	}
	return d.Matrix.Height()
}

// Root returns the current root drawable, or nil when nothing is shown.
func (d *Display) Root() Drawable { return d.root }

// SetRoot replaces the scene wholesale. A nil root shows nothing (the next
// refresh still clears the matrix). When AutoRefresh is set the new scene
// is composited immediately.
func (d *Display) SetRoot(root Drawable) {
	d.root = root
	if d.AutoRefresh {
		d.Refresh()
	}
}

// Brightness returns the composite-time brightness.
func (d *Display) Brightness() float64 { return d.brightness }

// SetBrightness sets the composite-time brightness, clamped to [0, 1].
// It scales every resolved pixel during Refresh; scene state is untouched,
// so brightness 0 yields an all-black frame that is fully recoverable.
func (d *Display) SetBrightness(b float64) {
	if b < 0 {
		b = 0
	} else if b > 1 {
		b = 1
	}
	d.brightness = b
}

// Rotation returns the current display rotation.
func (d *Display) Rotation() Rotation { return d.rotation }

// SetRotation sets the display rotation. Panics unless r is one of
// Rotate0, Rotate90, Rotate180, Rotate270.
func (d *Display) SetRotation(r Rotation) {
	if !r.valid() {
		panic("ledgrid: rotation must be 0, 90, 180 or 270")
	}
	d.rotation = r
}

// Refresh clears the matrix and composites the current scene into it.
// Clearing happens with or without a root, so dropping the root blanks the
// display rather than freezing the last frame. Two refreshes with no scene
// mutation in between produce identical buffers.
func (d *Display) Refresh() {
	d.Matrix.Clear()
	if d.root != nil {
		d.root.draw(d, 0, 0, 1)
	}
	d.lastRefresh = d.now()
}

// TryRefresh is the rate-limited refresh for busy host loops: it refreshes
// and reports true unless less than 1/minFPS seconds have passed since the
// previous refresh, in which case it is a no-op reporting false.
// minFPS <= 0 always refreshes.
func (d *Display) TryRefresh(minFPS float64) bool {
	if minFPS > 0 && !d.lastRefresh.IsZero() {
		interval := time.Duration(float64(time.Second) / minFPS)
		if d.now().Sub(d.lastRefresh) < interval {
			return false
		}
	}
	d.Refresh()
	return true
}

// plot writes one resolved scene pixel at logical coordinates (x, y),
// applying brightness and the rotation remap. Out-of-bounds coordinates
// fall out through SetPixel's clipping.
func (d *Display) plot(x, y int, c Color) {
	if d.brightness < 1 {
		c = c.Scale(d.brightness)
	}
	w, h := d.Matrix.Width(), d.Matrix.Height()
	switch d.rotation {
	case Rotate90:
		x, y = w-1-y, x
	case Rotate180:
		x, y = w-1-x, h-1-y
	case Rotate270:
		x, y = y, h-1-x
	}
	d.Matrix.SetPixel(x, y, c)
}
