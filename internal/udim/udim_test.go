package udim

import (
	"slices"
	"testing"

	"udim-wireframe/internal/obj"
)

func TestTile(t *testing.T) {
	tests := []struct {
		u, v float64
		want int
	}{
		{0.5, 0.5, 1001},
		{1.2, 0.3, 1002},
		{0.1, 1.9, 1011},
		{9.99, 0.0, 1010},
		{2.5, 3.5, 1033},
		{1.0, 0.0, 1002},
		{-0.5, 0.5, 1000},
	}

	for _, tt := range tests {
		if got := Tile(tt.u, tt.v); got != tt.want {
			t.Errorf("Tile(%v, %v): expected %d, got %d", tt.u, tt.v, tt.want, got)
		}
	}
}

func TestRowCol(t *testing.T) {
	tests := []struct {
		tile     int
		row, col int
	}{
		{1001, 0, 0},
		{1012, 1, 1},
		{1010, 0, 9},
		{1021, 2, 0},
		{1000, -1, 9},
	}

	for _, tt := range tests {
		row, col := RowCol(tt.tile)
		if row != tt.row || col != tt.col {
			t.Errorf("RowCol(%d): expected (%d,%d), got (%d,%d)", tt.tile, tt.row, tt.col, row, col)
		}
	}
}

func TestRowColInvertsTile(t *testing.T) {
	for tu := 0; tu < Columns; tu++ {
		for tv := 0; tv < 5; tv++ {
			id := Tile(float64(tu)+0.5, float64(tv)+0.5)
			row, col := RowCol(id)
			if row != tv || col != tu {
				t.Errorf("tile %d: expected (%d,%d), got (%d,%d)", id, tv, tu, row, col)
			}
		}
	}
}

func TestLocal(t *testing.T) {
	lu, lv := Local(1.25, 2.75)
	if lu != 0.25 || lv != 0.75 {
		t.Errorf("expected (0.25, 0.75), got (%v, %v)", lu, lv)
	}
	lu, lv = Local(-0.25, 0.5)
	if lu != 0.75 || lv != 0.5 {
		t.Errorf("expected (0.75, 0.5), got (%v, %v)", lu, lv)
	}
}

func TestBucket_SingleTile(t *testing.T) {
	uvs := []obj.UV{{U: 0.1, V: 0.1}, {U: 0.9, V: 0.1}, {U: 0.5, V: 0.9}}
	b := Bucket(uvs, []obj.Face{{0, 1, 2}})

	if b.Len() != 1 {
		t.Fatalf("expected 1 tile, got %d", b.Len())
	}
	outlines := b.Outlines(1001)
	if len(outlines) != 1 {
		t.Fatalf("expected 1 outline in 1001, got %d", len(outlines))
	}
	if len(outlines[0]) != 3 || outlines[0][2] != uvs[2] {
		t.Errorf("outline not resolved from UV list: %v", outlines[0])
	}
}

func TestBucket_CrossingFace(t *testing.T) {
	uvs := []obj.UV{{U: 0.9, V: 0.5}, {U: 1.1, V: 0.5}, {U: 1.1, V: 0.6}}
	b := Bucket(uvs, []obj.Face{{0, 1, 2}})

	ids := b.IDs()
	if !slices.Equal(ids, []int{1001, 1002}) {
		t.Fatalf("expected tiles [1001 1002], got %v", ids)
	}
	for _, id := range ids {
		if n := len(b.Outlines(id)); n != 1 {
			t.Errorf("tile %d: expected 1 outline, got %d", id, n)
		}
	}
}

func TestBucket_SortedIDsAndFaceOrder(t *testing.T) {
	uvs := []obj.UV{
		{U: 0.2, V: 1.2}, {U: 0.4, V: 1.2}, {U: 0.3, V: 1.4}, // 1011
		{U: 1.2, V: 0.2}, {U: 1.4, V: 0.2}, {U: 1.3, V: 0.4}, // 1002
		{U: 0.2, V: 0.2}, {U: 0.4, V: 0.2}, {U: 0.3, V: 0.4}, // 1001
		{U: 0.6, V: 0.6}, {U: 0.8, V: 0.6}, {U: 0.7, V: 0.8}, // 1001
	}
	faces := []obj.Face{{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, {9, 10, 11}}
	b := Bucket(uvs, faces)

	if ids := b.IDs(); !slices.Equal(ids, []int{1001, 1002, 1011}) {
		t.Fatalf("expected [1001 1002 1011], got %v", ids)
	}

	first := b.Outlines(1001)
	if len(first) != 2 {
		t.Fatalf("expected 2 outlines in 1001, got %d", len(first))
	}
	if first[0][0] != uvs[6] || first[1][0] != uvs[9] {
		t.Errorf("outlines in 1001 not in face order")
	}
}

func TestBucket_OutOfRangeSkipped(t *testing.T) {
	uvs := []obj.UV{{U: 0.1, V: 0.1}, {U: 0.2, V: 0.1}, {U: 0.2, V: 0.2}}
	faces := []obj.Face{{0, 1, 5}, {0, 1, 2}, {-1, 0, 1}}
	b := Bucket(uvs, faces)

	if b.Skipped() != 2 {
		t.Errorf("expected 2 skipped faces, got %d", b.Skipped())
	}
	if n := len(b.Outlines(1001)); n != 1 {
		t.Errorf("expected 1 outline in 1001, got %d", n)
	}
}

func TestBucket_Empty(t *testing.T) {
	b := Bucket(nil, nil)
	if b.Len() != 0 || len(b.IDs()) != 0 {
		t.Errorf("expected no tiles")
	}
}
