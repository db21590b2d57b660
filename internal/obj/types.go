package obj

import "fmt"

// UV is a texture coordinate. Its position in the UV list is its identity.
type UV struct {
	U, V float64
}

// Face is an ordered list of 0-based indices into the UV list.
type Face []int

// ParseError reports a mesh file that could not be opened or read.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("obj: read %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
