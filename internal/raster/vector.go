package raster

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// Vector strokes each edge as a butt-ended quad with golang.org/x/image/vector.
// Every quad shares one winding, so overlapping edges saturate instead of
// cancelling.
type Vector struct{}

func (Vector) Name() string { return BackendVector }

func (Vector) Stroke(dst *image.Alpha, outlines [][]Point, width float64) error {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	half := width / 2

	for _, pts := range outlines {
		n := len(pts)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			edge(z, pts[i], pts[(i+1)%n], half)
		}
	}

	z.Draw(dst, b, image.Opaque, image.Point{})
	return nil
}

func edge(z *vector.Rasterizer, a, b Point, half float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length < 1e-9 {
		return
	}
	nx := -dy / length * half
	ny := dx / length * half

	z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	z.LineTo(float32(b.X+nx), float32(b.Y+ny))
	z.LineTo(float32(b.X-nx), float32(b.Y-ny))
	z.LineTo(float32(a.X-nx), float32(a.Y-ny))
	z.ClosePath()
}
