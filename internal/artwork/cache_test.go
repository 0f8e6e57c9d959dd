package artwork_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"testing"

	"crate/internal/artwork"
	"crate/internal/testsupport"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 0x40, A: 0xFF})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestStoreWritesResolvableJPEG(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cache := artwork.NewCache(cfg)

	if err := cache.Store(42, pngBytes(t, 100, 80)); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if !cache.Has(42) {
		t.Fatal("expected cached cover for group 42")
	}

	data, err := os.ReadFile(cache.Path(42))
	if err != nil {
		t.Fatalf("read cached cover: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("cached cover is not JPEG: %v", err)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 80 {
		t.Fatalf("small image should not be scaled, got %v", img.Bounds())
	}
}

func TestStoreDownscalesLargeImages(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cache := artwork.NewCache(cfg)

	if err := cache.Store(7, pngBytes(t, 1200, 900)); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	data, err := os.ReadFile(cache.Path(7))
	if err != nil {
		t.Fatalf("read cached cover: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode cached cover: %v", err)
	}
	if img.Bounds().Dx() != 600 {
		t.Fatalf("expected width 600, got %d", img.Bounds().Dx())
	}
	if img.Bounds().Dy() != 450 {
		t.Fatalf("expected height 450, got %d", img.Bounds().Dy())
	}
}

func TestStoreRejectsCorruptData(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cache := artwork.NewCache(cfg)

	if err := cache.Store(9, []byte("not an image")); err == nil {
		t.Fatal("expected error for corrupt image data")
	}
	if cache.Has(9) {
		t.Fatal("corrupt data must not be cached")
	}
}
