package raster

import "image"

// NewCoverage allocates a square coverage buffer, one byte per pixel,
// 0 meaning untouched and 255 fully covered by a line.
func NewCoverage(size int) *image.Alpha {
	return image.NewAlpha(image.Rect(0, 0, size, size))
}

// Harden snaps partial coverage to 0 or 255, which turns anti-aliased edges
// into hard pixels.
func Harden(c *image.Alpha) {
	for i, a := range c.Pix {
		if a >= 128 {
			c.Pix[i] = 255
		} else {
			c.Pix[i] = 0
		}
	}
}
