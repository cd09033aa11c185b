// Package ledgrid is a retained-mode compositor for LED matrix displays.
//
// Ledgrid models a display the way indexed-color hardware does: a [Bitmap]
// holds small integer color indices, a [Palette] maps those indices to RGB
// with a per-entry transparency flag, a [TileSprite] places a paletted view
// of bitmap tiles in the scene, and a [Group] nests sprites and other groups
// under a shared position and integer scale. A [Display] walks the tree on
// refresh and resolves it into a [PixelBuffer] of concrete RGB pixels.
//
// # Quick start
//
//	display := ledgrid.NewDisplay(64, 32)
//
//	bm := ledgrid.NewBitmap(4, 4, 1)
//	pal := ledgrid.NewPalette(2)
//	pal.SetColor(1, ledgrid.Color{R: 255, G: 255, B: 255})
//
//	sprite := ledgrid.NewTileSprite(bm, pal)
//	root := ledgrid.NewGroup()
//	root.Append(sprite)
//
//	display.SetRoot(root)
//	display.Refresh()
//	// present display.Matrix however the host likes
//
// # Scene graph
//
// Children render in insertion order, so later children draw on top; there
// is no separate z-index. A hidden sprite or group is skipped entirely
// during traversal. A drawable has one parent at a time: appending it to a
// second group detaches it from the first.
//
// # Refresh discipline
//
// [Display.Refresh] always recomposites. [Display.TryRefresh] is the
// rate-limited variant for busy host loops: it is a no-op until the minimum
// frame interval has elapsed. After consuming the matrix the host calls
// [PixelBuffer.ClearDirty] itself if it wants incremental redraw; the
// compositor never acknowledges dirty state on the host's behalf.
//
// The compositor is single-threaded and performs no I/O. Hosts that mutate
// the scene from another goroutine must serialize access themselves.
//
// # Beyond the core
//
// [BitmapFromImage] and [LoadBitmap] build a bitmap and palette from
// ordinary images via median-cut quantization. [TweenPosition] animates
// sprite and group positions between frames (via [gween]). The examples
// directory contains window (Ebitengine) and terminal (tcell) hosts.
//
// [gween]: https://github.com/tanema/gween
package ledgrid
