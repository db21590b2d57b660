package raster

import (
	"image"
	"image/color"
)

// Scheme is a two-colour wireframe palette.
type Scheme struct {
	Background color.Gray
	Line       color.Gray
}

var (
	// Default draws black lines on white.
	Default = Scheme{Background: color.Gray{Y: 255}, Line: color.Gray{Y: 0}}
	// Inverted draws white lines on black.
	Inverted = Scheme{Background: color.Gray{Y: 0}, Line: color.Gray{Y: 255}}
)

// SchemeFor picks the palette for the invert option.
func SchemeFor(invert bool) Scheme {
	if invert {
		return Inverted
	}
	return Default
}

// Paint blends the line colour over the background by coverage.
func (s Scheme) Paint(c *image.Alpha) *image.Gray {
	b := c.Bounds()
	img := image.NewGray(b)
	bg := int(s.Background.Y)
	fg := int(s.Line.Y)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		si := c.PixOffset(b.Min.X, y)
		di := img.PixOffset(b.Min.X, y)
		for x := 0; x < b.Dx(); x++ {
			a := int(c.Pix[si+x])
			img.Pix[di+x] = uint8((bg*(255-a) + fg*a + 127) / 255)
		}
	}
	return img
}
