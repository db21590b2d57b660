package main

import (
	"fmt"
	"math"
	"os"

	"udim-wireframe/internal/obj"
	"udim-wireframe/internal/udim"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: udiminspect mesh.obj [mesh.obj...]")
		os.Exit(2)
	}

	failed := false
	for _, path := range os.Args[1:] {
		if err := inspect(path); err != nil {
			fmt.Printf("Error: %v\n", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func inspect(path string) error {
	uvs, faces, err := obj.Parse(path)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", path)
	fmt.Printf("  UVs: %d, Faces: %d\n", len(uvs), len(faces))
	if len(uvs) == 0 {
		return nil
	}

	minU, minV := math.Inf(1), math.Inf(1)
	maxU, maxV := math.Inf(-1), math.Inf(-1)
	for _, uv := range uvs {
		minU = min(minU, uv.U)
		minV = min(minV, uv.V)
		maxU = max(maxU, uv.U)
		maxV = max(maxV, uv.V)
	}
	fmt.Printf("  UV range: U[%.3f, %.3f] V[%.3f, %.3f]\n", minU, maxU, minV, maxV)

	b := udim.Bucket(uvs, faces)
	if n := b.Skipped(); n > 0 {
		fmt.Printf("  Skipped faces (index out of range): %d\n", n)
	}
	fmt.Printf("  Tiles: %d\n", b.Len())
	for _, id := range b.IDs() {
		row, col := udim.RowCol(id)
		fmt.Printf("    %d (row %d, col %d): %d faces\n", id, row, col, len(b.Outlines(id)))
	}
	return nil
}
