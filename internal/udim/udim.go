// Package udim maps UV coordinates onto Maya-style UDIM tiles.
package udim

import (
	"math"
	"slices"

	"udim-wireframe/internal/obj"
)

// First is the ID of the tile covering [0,1)x[0,1).
const First = 1001

// Columns is the width of the UDIM grid.
const Columns = 10

// Tile returns the UDIM ID of the tile containing (u, v).
func Tile(u, v float64) int {
	return First + int(math.Floor(u)) + int(math.Floor(v))*Columns
}

// RowCol returns the grid position of a tile, row 0 being the bottom row.
// Division rounds toward negative infinity so tiles left of or below 1001
// keep col in [0, Columns).
func RowCol(tile int) (row, col int) {
	base := tile - First
	row, col = base/Columns, base%Columns
	if col < 0 {
		row--
		col += Columns
	}
	return row, col
}

// Local returns the fractional position of (u, v) inside its own tile.
func Local(u, v float64) (lu, lv float64) {
	return u - math.Floor(u), v - math.Floor(v)
}

// Outline is a face with its UV indices resolved to coordinates.
type Outline []obj.UV

// Buckets groups face outlines by the tiles they touch.
type Buckets struct {
	tiles   map[int][]Outline
	skipped int
}

// Bucket resolves every face against uvs and registers it in each tile its
// vertices fall into. Faces referencing a UV outside the list are skipped.
func Bucket(uvs []obj.UV, faces []obj.Face) *Buckets {
	b := &Buckets{tiles: make(map[int][]Outline)}

	for _, face := range faces {
		outline, ok := resolve(uvs, face)
		if !ok {
			b.skipped++
			continue
		}

		// A face lands in each distinct tile once.
		var seen []int
		for _, uv := range outline {
			id := Tile(uv.U, uv.V)
			if slices.Contains(seen, id) {
				continue
			}
			seen = append(seen, id)
			b.tiles[id] = append(b.tiles[id], outline)
		}
	}

	return b
}

func resolve(uvs []obj.UV, face obj.Face) (Outline, bool) {
	outline := make(Outline, len(face))
	for i, idx := range face {
		if idx < 0 || idx >= len(uvs) {
			return nil, false
		}
		outline[i] = uvs[idx]
	}
	return outline, true
}

// IDs returns the touched tile IDs in ascending order.
func (b *Buckets) IDs() []int {
	ids := make([]int, 0, len(b.tiles))
	for id := range b.tiles {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Outlines returns the outlines registered in a tile, in face order.
func (b *Buckets) Outlines(tile int) []Outline {
	return b.tiles[tile]
}

// Len returns the number of touched tiles.
func (b *Buckets) Len() int {
	return len(b.tiles)
}

// Skipped returns how many faces referenced a UV outside the list.
func (b *Buckets) Skipped() int {
	return b.skipped
}
