package raster

import (
	"fmt"
	"image"
	"math"

	"udim-wireframe/internal/udim"
)

// Project maps tile outlines into canvas pixels. Each UV is taken relative
// to its own tile and V is flipped so that v=1 is the top row.
func Project(outlines []udim.Outline, size int) [][]Point {
	s := float64(size)
	out := make([][]Point, 0, len(outlines))
	for _, o := range outlines {
		pts := make([]Point, len(o))
		for i, uv := range o {
			lu, lv := udim.Local(uv.U, uv.V)
			pts[i] = Point{X: lu * s, Y: (1 - lv) * s}
		}
		out = append(out, pts)
	}
	return out
}

// Snap moves every point onto the pixel grid for a stroke of the given
// width: odd widths are centred on pixel centres, even widths on pixel
// boundaries, so axis-aligned edges cover whole pixels.
func Snap(outlines [][]Point, width float64) {
	odd := int(math.Round(width))%2 == 1
	for _, pts := range outlines {
		for i, p := range pts {
			if odd {
				pts[i] = Point{X: math.Floor(p.X) + 0.5, Y: math.Floor(p.Y) + 0.5}
			} else {
				pts[i] = Point{X: math.Round(p.X), Y: math.Round(p.Y)}
			}
		}
	}
}

// RenderTile rasterizes the wireframe of one tile into a size x size
// anti-aliased coverage buffer.
func RenderTile(outlines []udim.Outline, size int, width float64, backend Backend) (*image.Alpha, error) {
	width = max(1, width)
	return stroke(Project(outlines, size), size, width, backend)
}

// RenderTileHard is RenderTile without anti-aliasing. Points are snapped to
// the pixel grid and the coverage is hardened, so a line of width w is w
// pixels wide.
func RenderTileHard(outlines []udim.Outline, size int, width float64, backend Backend) (*image.Alpha, error) {
	width = max(1, math.Round(width))
	pts := Project(outlines, size)
	Snap(pts, width)

	cov, err := stroke(pts, size, width, backend)
	if err != nil {
		return nil, err
	}
	Harden(cov)
	return cov, nil
}

func stroke(pts [][]Point, size int, width float64, backend Backend) (*image.Alpha, error) {
	cov := NewCoverage(size)
	if err := backend.Stroke(cov, pts, width); err != nil {
		return nil, fmt.Errorf("raster: %s backend: %w", backend.Name(), err)
	}
	return cov, nil
}
