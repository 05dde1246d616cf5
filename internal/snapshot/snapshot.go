// Package snapshot renders the triangle offscreen and encodes the frame
// as an image file.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/gogpu/triangle"
)

// ErrFormat is returned for unknown output formats.
var ErrFormat = errors.New("snapshot: unsupported image format")

// Options control a snapshot.
type Options struct {
	Width  int
	Height int
	// Supersample renders at Supersample times the size and scales down.
	// Values below 2 disable it.
	Supersample int
}

// Render draws one frame of the scene cfg describes into an offscreen
// target and returns it as an image.
func Render(ctx context.Context, cfg triangle.Config, opts Options) (*image.RGBA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scale := max(opts.Supersample, 1)
	w, h := opts.Width*scale, opts.Height*scale

	c, err := triangle.NewHeadlessContext(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer c.Release()

	target, err := triangle.NewOffscreen(c, w, h)
	if err != nil {
		return nil, err
	}
	defer target.Release()

	scene, err := triangle.NewScene(c, cfg)
	if err != nil {
		return nil, err
	}
	defer scene.Release()

	loop := triangle.NewFrameLoop(c, target, scene)
	if err := loop.RenderFrame(); err != nil {
		return nil, err
	}

	pix, err := target.ReadPixels(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read pixels: %w", err)
	}
	img := &image.RGBA{Pix: pix, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
	if scale == 1 {
		return img, nil
	}

	out := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	xdraw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return out, nil
}

// Encode writes img in format ("png", "bmp" or "tiff").
func Encode(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tif", "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
}

// FormatFromPath derives the format from the file extension.
func FormatFromPath(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// Save encodes img into path, choosing the format from the extension.
func Save(path string, img image.Image) (err error) {
	format := FormatFromPath(path)
	switch format {
	case "png", "bmp", "tif", "tiff":
	default:
		return fmt.Errorf("%w: %q", ErrFormat, path)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("snapshot: %w", cerr)
		}
	}()
	return Encode(f, img, format)
}
