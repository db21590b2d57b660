// Package encode writes tile images in the supported output formats.
package encode

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Format is an output image format.
type Format string

const (
	PNG  Format = "png"
	WebP Format = "webp"
	TGA  Format = "tga"
)

// ParseFormat accepts a format name case-insensitively. Empty means PNG.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(s, "."))); f {
	case "":
		return PNG, nil
	case PNG, WebP, TGA:
		return f, nil
	default:
		return "", fmt.Errorf("encode: unknown format %q", s)
	}
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	if f == "" {
		return ".png"
	}
	return "." + string(f)
}

// Encode writes img to w.
func (f Format) Encode(w io.Writer, img image.Image) error {
	switch f {
	case "", PNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	case WebP:
		return nativewebp.Encode(w, img, nil)
	case TGA:
		return tga.Encode(w, toNRGBA(img))
	default:
		return fmt.Errorf("encode: unknown format %q", string(f))
	}
}

// WriteFile creates path and encodes img into it. A partially written file is
// left in place on encode failure.
func (f Format) WriteFile(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := f.Encode(out, img); err != nil {
		out.Close()
		return fmt.Errorf("encode: %s %s: %w", f, path, err)
	}
	return out.Close()
}

// toNRGBA converts any image to NRGBA, which the TGA writer stores as 32-bit
// true colour.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
