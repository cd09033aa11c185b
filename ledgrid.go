package ledgrid

// Color is an 8-bit-per-channel RGB color. LED matrices have no alpha;
// transparency lives in the Palette (per-entry flag) and in the blit color
// key, both of which are binary.
type Color struct {
	R, G, B uint8
}

// RGB unpacks a 0xRRGGBB value into a Color. Values above 0xFFFFFF have
// their high bits ignored.
func RGB(packed uint32) Color {
	return Color{
		R: uint8(packed >> 16),
		G: uint8(packed >> 8),
		B: uint8(packed),
	}
}

// ColorRGB builds a Color from separate channel values, clamping each to
// [0, 255]. Malformed channels are clamped rather than rejected so content
// generators never fault mid-frame.
func ColorRGB(r, g, b int) Color {
	return Color{clampChannel(r), clampChannel(g), clampChannel(b)}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Packed returns the color as a 0xRRGGBB value.
func (c Color) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Scale multiplies every channel by f, rounding down. f outside [0, 1] is
// clamped.
func (c Color) Scale(f float64) Color {
	if f >= 1 {
		return c
	}
	if f <= 0 {
		return Color{}
	}
	return Color{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
	}
}

// Rotation is a display rotation in degrees. Only quarter turns are
// representable; arbitrary rotation is out of scope for an LED matrix.
type Rotation int

const (
	Rotate0   Rotation = 0
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

func (r Rotation) valid() bool {
	switch r {
	case Rotate0, Rotate90, Rotate180, Rotate270:
		return true
	}
	return false
}

// Drawable is a node in the scene graph: a *TileSprite or a *Group. The
// interface is closed over this package; the compositor owns traversal and
// hosts compose scenes purely from the two concrete types.
type Drawable interface {
	// draw composites the drawable into disp at the accumulated parent
	// offset and scale.
	draw(disp *Display, offsetX, offsetY, scale int)

	parent() *Group
	setParent(*Group)
}
