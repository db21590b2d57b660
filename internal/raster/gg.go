package raster

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
)

// GG strokes outlines as closed paths with the gogpu/gg software renderer.
// Lines are drawn white on black and the red channel is read back as
// coverage.
type GG struct{}

func (GG) Name() string { return BackendGG }

func (GG) Stroke(dst *image.Alpha, outlines [][]Point, width float64) error {
	b := dst.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy())
	defer dc.Close()

	dc.SetRasterizerMode(gg.RasterizerAnalytic)
	dc.ClearWithColor(gg.Black)
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(width)
	dc.SetLineCap(gg.LineCapButt)
	dc.SetLineJoin(gg.LineJoinRound)

	for _, pts := range outlines {
		if len(pts) < 2 {
			continue
		}
		dc.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.ClosePath()
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("raster: gg stroke: %w", err)
		}
	}

	if err := dc.FlushGPU(); err != nil {
		return fmt.Errorf("raster: gg flush: %w", err)
	}
	rgba, ok := dc.Image().(*image.RGBA)
	if !ok {
		return fmt.Errorf("raster: gg returned %T, want *image.RGBA", dc.Image())
	}

	for y := 0; y < b.Dy(); y++ {
		si := rgba.PixOffset(0, y)
		di := dst.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < b.Dx(); x++ {
			dst.Pix[di+x] = rgba.Pix[si+x*4]
		}
	}
	return nil
}
