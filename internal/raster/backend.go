package raster

import (
	"fmt"
	"image"
)

// Point is a position in canvas pixels, y pointing down.
type Point struct {
	X, Y float64
}

// Backend strokes closed polylines into a coverage buffer.
type Backend interface {
	Name() string
	Stroke(dst *image.Alpha, outlines [][]Point, width float64) error
}

// Backend names accepted by NewBackend.
const (
	BackendVector = "vector"
	BackendGG     = "gg"
)

// NewBackend returns the backend registered under name.
func NewBackend(name string) (Backend, error) {
	switch name {
	case "", BackendVector:
		return Vector{}, nil
	case BackendGG:
		return GG{}, nil
	default:
		return nil, fmt.Errorf("raster: unknown backend %q", name)
	}
}
