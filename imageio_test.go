package ledgrid

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestBitmapFromPalettedImage(t *testing.T) {
	// Entry 0 is a transparent background, 1 red, 2 cyan.
	cp := color.Palette{
		color.RGBA{A: 0},
		color.RGBA{R: 255, A: 255},
		color.RGBA{G: 255, B: 255, A: 255},
	}
	src := image.NewPaletted(image.Rect(0, 0, 3, 1), cp)
	src.SetColorIndex(0, 0, 0)
	src.SetColorIndex(1, 0, 1)
	src.SetColorIndex(2, 0, 2)

	bm, pal, err := BitmapFromImage(src, 256)
	if err != nil {
		t.Fatalf("BitmapFromImage: %v", err)
	}
	if bm.Width() != 3 || bm.Height() != 1 {
		t.Errorf("bitmap = %dx%d, want 3x1", bm.Width(), bm.Height())
	}
	if bm.BitDepth() != 2 {
		t.Errorf("bit depth = %d, want 2 for a 3-color palette", bm.BitDepth())
	}
	if pal.Len() != 3 {
		t.Fatalf("palette length = %d, want 3", pal.Len())
	}
	if !pal.IsTransparent(0) {
		t.Error("zero-alpha entry should come back transparent")
	}
	if pal.IsTransparent(1) || pal.IsTransparent(2) {
		t.Error("opaque entries marked transparent")
	}
	if pal.ColorAt(bm.At(1, 0)) != red {
		t.Errorf("pixel 1 resolves to %v, want red", pal.ColorAt(bm.At(1, 0)))
	}
	if pal.ColorAt(bm.At(2, 0)) != (Color{G: 255, B: 255}) {
		t.Errorf("pixel 2 resolves to %v, want cyan", pal.ColorAt(bm.At(2, 0)))
	}
}

func TestBitmapFromImageQuantizes(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x * 32), G: uint8(y * 32), B: 128, A: 255})
		}
	}
	bm, pal, err := BitmapFromImage(src, 16)
	if err != nil {
		t.Fatalf("BitmapFromImage: %v", err)
	}
	if pal.Len() > 16 {
		t.Errorf("palette length = %d, want <= 16", pal.Len())
	}
	if bm.MaxValue()+1 < pal.Len() {
		t.Errorf("bit depth %d cannot index %d palette entries", bm.BitDepth(), pal.Len())
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if bm.At(x, y) >= pal.Len() {
				t.Fatalf("cell (%d, %d) = %d indexes beyond the palette", x, y, bm.At(x, y))
			}
		}
	}
}

func TestBitmapFromImageBadMaxColors(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	if _, _, err := BitmapFromImage(src, 1); err == nil {
		t.Error("expected error for maxColors 1")
	}
	if _, _, err := BitmapFromImage(src, 1<<17); err == nil {
		t.Error("expected error for oversized maxColors")
	}
}

func TestBitmapFromImageEmpty(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, _, err := BitmapFromImage(src, 16); err == nil {
		t.Error("expected error for empty image")
	}
}

func TestLoadBitmapPNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(1, 1, color.RGBA{B: 255, A: 255})

	path := filepath.Join(t.TempDir(), "sprite.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	bm, pal, err := LoadBitmap(path)
	if err != nil {
		t.Fatalf("LoadBitmap: %v", err)
	}
	if bm.Width() != 2 || bm.Height() != 2 {
		t.Errorf("bitmap = %dx%d, want 2x2", bm.Width(), bm.Height())
	}
	if pal.ColorAt(bm.At(0, 0)) != red {
		t.Errorf("pixel (0, 0) resolves to %v, want red", pal.ColorAt(bm.At(0, 0)))
	}
}

func TestLoadBitmapMissingFile(t *testing.T) {
	if _, _, err := LoadBitmap(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}
