package postprocess

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Lanczos3 is the three-lobe Lanczos kernel.
var Lanczos3 = &draw.Kernel{
	Support: 3,
	At: func(t float64) float64 {
		if t == 0 {
			return 1
		}
		x := math.Pi * t
		return 3 * math.Sin(x) * math.Sin(x/3) / (x * x)
	},
}

// Downsample reduces a square coverage buffer to targetSize with Lanczos
// filtering. Buffers already at or below the target are returned unchanged.
func Downsample(c *image.Alpha, targetSize int) *image.Alpha {
	b := c.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return c
	}

	// Gray shares Alpha's one-byte layout and hits the scaler's fast path.
	src := &image.Gray{Pix: c.Pix, Stride: c.Stride, Rect: c.Rect}

	dst := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	Lanczos3.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	result := image.NewAlpha(dst.Bounds())
	for y := 0; y < targetSize; y++ {
		si := dst.PixOffset(0, y)
		di := result.PixOffset(0, y)
		for x := 0; x < targetSize; x++ {
			result.Pix[di+x] = dst.Pix[si+x*4]
		}
	}

	return result
}

// Thumbnail scales a finished tile image to size x size.
func Thumbnail(img image.Image, size int) *image.Gray {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	thumb := image.NewGray(dst.Bounds())
	for y := 0; y < size; y++ {
		si := dst.PixOffset(0, y)
		di := thumb.PixOffset(0, y)
		for x := 0; x < size; x++ {
			thumb.Pix[di+x] = dst.Pix[si+x*4]
		}
	}
	return thumb
}
