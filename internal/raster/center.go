// Package raster reads image headers to find the center pixel of a frame.
package raster

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/woozymasta/imgcenter/internal/geo"

	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Center opens an image file and returns the pixel at the middle of its frame.
// Only the header is decoded.
func Center(path string) (geo.PixelPoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return geo.PixelPoint{}, err
	}
	defer func() { _ = f.Close() }()

	center, format, err := CenterOf(f)
	if err != nil {
		return geo.PixelPoint{}, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Str("format", format).
		Int("center_x", center.X).
		Int("center_y", center.Y).
		Msg("Image center resolved from header")

	return center, nil
}

// CenterOf decodes the image header from r and returns the center pixel and the format name.
func CenterOf(r io.Reader) (geo.PixelPoint, string, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return geo.PixelPoint{}, "", fmt.Errorf("decode config failed: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return geo.PixelPoint{}, format, fmt.Errorf("empty %s image: %dx%d", format, cfg.Width, cfg.Height)
	}

	return geo.PixelPoint{X: cfg.Width / 2, Y: cfg.Height / 2}, format, nil
}
