package artwork

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/image/draw"

	"crate/internal/config"
	"crate/internal/fileutil"
)

// maxEdge bounds the longer side of cached covers. Larger source images are
// downscaled; smaller ones are re-encoded as-is.
const maxEdge = 600

const jpegQuality = 90

// Cache stores one cover image per album grouping id.
type Cache struct {
	dir string
}

// NewCache returns a cache rooted at the configured artwork directory.
func NewCache(cfg *config.Config) *Cache {
	return &Cache{dir: cfg.Paths.ArtworkDir}
}

// Path returns the cache location for an album grouping id. The naming rule
// matches the artwork references the library indexer derives.
func (c *Cache) Path(groupID int64) string {
	return filepath.Join(c.dir, strconv.FormatInt(groupID, 10))
}

// Has reports whether a cover is already cached for the grouping id.
func (c *Cache) Has(groupID int64) bool {
	info, err := os.Stat(c.Path(groupID))
	return err == nil && !info.IsDir()
}

// Store decodes data, downscales it to the bounded edge preserving aspect
// ratio, and writes it as JPEG. Unsupported formats return an error without
// touching the cache.
func (c *Cache) Store(groupID int64, data []byte) error {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode cover image: %w", err)
	}

	scaled := downscale(img)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("encode cover image: %w", err)
	}

	if err := fileutil.WriteFileAtomic(c.Path(groupID), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write cover image: %w", err)
	}
	return nil
}

// downscale fits img inside maxEdge x maxEdge preserving aspect ratio. Images
// already within bounds pass through unscaled.
func downscale(img image.Image) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= maxEdge && height <= maxEdge {
		return img
	}

	ratio := float64(width) / float64(height)
	if width >= height {
		width = maxEdge
		height = int(float64(maxEdge) / ratio)
	} else {
		height = maxEdge
		width = int(float64(maxEdge) * ratio)
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
