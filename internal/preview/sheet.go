// Package preview lays finished tiles out as thumbnails on a UDIM grid.
package preview

import (
	"image"
	"image/color"
	"image/draw"
	"slices"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"udim-wireframe/internal/postprocess"
	"udim-wireframe/internal/udim"
)

// Grid geometry in sheet pixels.
const (
	Thumb = 64
	Pad   = 6
	Label = 12
)

// MaxRows caps the number of thumbnail rows on a sheet.
const MaxRows = 200

var background = color.Gray{Y: 0xf0}

// Sheet collects tile thumbnails. Adding a tile twice replaces its thumbnail.
type Sheet struct {
	thumbs map[int]*image.Gray
}

// NewSheet returns an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{thumbs: make(map[int]*image.Gray)}
}

// Add thumbnails img and places it at the grid cell of tile.
// Its signature matches render.TileFunc.
func (s *Sheet) Add(img image.Image, tile int) {
	s.thumbs[tile] = postprocess.Thumbnail(img, Thumb)
}

// Len returns the number of tiles on the sheet.
func (s *Sheet) Len() int {
	return len(s.thumbs)
}

// Cell returns the top-left corner of the thumbnail in grid column col and
// sheet row slot.
func Cell(col, slot int) image.Point {
	return image.Pt(col*(Thumb+Pad), slot*(Thumb+Pad+Label))
}

// rows returns the distinct grid rows holding a tile, ascending.
func (s *Sheet) rows() []int {
	var rows []int
	for tile := range s.thumbs {
		row, _ := udim.RowCol(tile)
		if !slices.Contains(rows, row) {
			rows = append(rows, row)
		}
	}
	slices.Sort(rows)
	return rows
}

// Rows returns the number of sheet rows. Grid rows without a tile are left
// out of the layout.
func (s *Sheet) Rows() int {
	return len(s.rows())
}

// Image composes the sheet. It returns nil when no tiles were added or the
// sheet would exceed MaxRows.
func (s *Sheet) Image() *image.Gray {
	rows := s.rows()
	if len(rows) == 0 || len(rows) > MaxRows {
		return nil
	}

	maxCol := 0
	for tile := range s.thumbs {
		_, col := udim.RowCol(tile)
		maxCol = max(maxCol, col)
	}

	w := (maxCol + 1) * (Thumb + Pad)
	h := len(rows) * (Thumb + Pad + Label)
	sheet := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	d := &font.Drawer{Dst: sheet, Src: image.Black, Face: basicfont.Face7x13}
	for tile, thumb := range s.thumbs {
		row, col := udim.RowCol(tile)
		at := Cell(col, slices.Index(rows, row))
		draw.Draw(sheet, thumb.Bounds().Add(at), thumb, image.Point{}, draw.Src)

		text := strconv.Itoa(tile)
		adv := d.MeasureString(text).Round()
		d.Dot = fixed.P(at.X+(Thumb-adv)/2, at.Y+Thumb+Label-1)
		d.DrawString(text)
	}

	return sheet
}
