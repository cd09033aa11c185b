package ledgrid

import "fmt"

type paletteEntry struct {
	color       Color
	transparent bool
}

// Palette is a fixed-length table mapping bitmap indices to colors, with a
// per-entry transparency flag. A transparent entry contributes no pixel at
// composite time regardless of its stored color, so the color survives a
// make-transparent/make-opaque round trip.
//
// Palettes are read-mostly and freely shared between sprites. Resizing is
// not supported; construct a new Palette instead.
type Palette struct {
	entries []paletteEntry
}

// NewPalette creates a palette of n entries, all black and opaque.
func NewPalette(n int) *Palette {
	if n <= 0 {
		panic("ledgrid: palette length must be positive")
	}
	return &Palette{entries: make([]paletteEntry, n)}
}

// Len returns the number of entries.
func (p *Palette) Len() int { return len(p.entries) }

// SetColor sets the color of entry i without touching its transparency.
// Panics if i is out of range.
func (p *Palette) SetColor(i int, c Color) {
	p.check(i)
	p.entries[i].color = c
}

// SetPacked sets entry i from a 0xRRGGBB value.
func (p *Palette) SetPacked(i int, packed uint32) {
	p.SetColor(i, RGB(packed))
}

// ColorAt returns the color of entry i. Panics if i is out of range.
func (p *Palette) ColorAt(i int) Color {
	p.check(i)
	return p.entries[i].color
}

// MakeTransparent marks entry i as transparent, keeping its color.
func (p *Palette) MakeTransparent(i int) {
	p.check(i)
	p.entries[i].transparent = true
}

// MakeOpaque marks entry i as opaque again.
func (p *Palette) MakeOpaque(i int) {
	p.check(i)
	p.entries[i].transparent = false
}

// IsTransparent reports whether entry i is transparent. Out-of-range
// indices report false; the compositor probes with raw bitmap values.
func (p *Palette) IsTransparent(i int) bool {
	if i < 0 || i >= len(p.entries) {
		return false
	}
	return p.entries[i].transparent
}

func (p *Palette) check(i int) {
	if i < 0 || i >= len(p.entries) {
		panic(fmt.Sprintf("ledgrid: palette index %d out of range [0, %d)", i, len(p.entries)))
	}
}
