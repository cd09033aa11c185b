package ledgrid

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/ericpauley/go-quantize/quantize"

	// Decoders for LoadBitmap. BMP is the native format of most LED
	// matrix asset pipelines; PNG/GIF/JPEG cover everything else.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// BitmapFromImage converts an image into a Bitmap and matching Palette
// with at most maxColors entries. A paletted image that already fits is
// taken as-is; anything else goes through median-cut quantization. Palette
// entries with zero alpha come back pre-marked transparent, so sprites
// built from images with transparent backgrounds composite correctly with
// no further setup.
//
// The returned bitmap uses the smallest bit depth that holds the palette.
func BitmapFromImage(img image.Image, maxColors int) (*Bitmap, *Palette, error) {
	if maxColors < 2 || maxColors > 1<<16 {
		return nil, nil, fmt.Errorf("ledgrid: max colors %d out of range [2, 65536]", maxColors)
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, nil, fmt.Errorf("ledgrid: cannot convert empty %dx%d image", w, h)
	}

	src, ok := img.(*image.Paletted)
	if !ok || len(src.Palette) > maxColors {
		q := quantize.MedianCutQuantizer{AddTransparent: true}
		cp := q.Quantize(make(color.Palette, 0, maxColors), img)
		src = image.NewPaletted(bounds, cp)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				src.Set(x, y, img.At(x, y))
			}
		}
	}

	pal := NewPalette(len(src.Palette))
	for i, entry := range src.Palette {
		r, g, b, a := entry.RGBA()
		pal.SetColor(i, Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
		if a == 0 {
			pal.MakeTransparent(i)
		}
	}

	bm := NewBitmap(w, h, bitsFor(len(src.Palette)))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			bm.Set(x, y, int(src.ColorIndexAt(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return bm, pal, nil
}

// LoadBitmap decodes the image file at path (PNG, GIF, JPEG or BMP) into a
// Bitmap and Palette of at most 256 colors.
func LoadBitmap(path string) (*Bitmap, *Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("ledgrid: open bitmap: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("ledgrid: decode %s: %w", path, err)
	}
	return BitmapFromImage(img, 256)
}

// bitsFor returns the smallest bit depth whose index range holds n values.
func bitsFor(n int) int {
	depth := 1
	for 1<<depth < n {
		depth++
	}
	return depth
}
