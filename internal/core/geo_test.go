package core

import (
	"math"
	"testing"
)

const tileSize = 1e-4

func TestWorldToCell(t *testing.T) {
	tests := []struct {
		name string
		p    WorldPoint
		want CellCoord
	}{
		{name: "origin", p: WorldPoint{0, 0}, want: Cell(0, 0)},
		{name: "positive", p: WorldPoint{36.9895, -122.0628}, want: Cell(369894, -1220628)},
		{name: "negative lat", p: WorldPoint{-0.00005, 0.00005}, want: Cell(-1, 0)},
		{name: "exact boundary", p: WorldPoint{0.0001, 0.0002}, want: Cell(1, 2)},
		{name: "just below boundary", p: WorldPoint{0.0001 - 1e-9, 0}, want: Cell(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WorldToCell(tt.p, tileSize)
			if got != tt.want {
				t.Errorf("WorldToCell(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestCellBoundsRoundTrip(t *testing.T) {
	// A point's cell bounds must contain the point itself.
	points := []WorldPoint{
		{0, 0},
		{36.9895, -122.0628},
		{-45.1234567, 170.000049},
		{-0.00001, -0.00001},
	}

	for _, p := range points {
		cell := WorldToCell(p, tileSize)
		b := CellBounds(cell, tileSize)
		if !b.Contains(p) {
			t.Errorf("CellBounds(%v) = %+v does not contain source point %v", cell, b, p)
		}
		// The center of the cell must map back to the same cell.
		if got := WorldToCell(b.Center(), tileSize); got != cell {
			t.Errorf("WorldToCell(center of %v) = %v", cell, got)
		}
	}
}

func TestCellBoundsTile(t *testing.T) {
	// Adjacent cells share edges exactly: no gaps, no overlaps.
	a := CellBounds(Cell(3, 7), tileSize)
	right := CellBounds(Cell(3, 8), tileSize)
	up := CellBounds(Cell(4, 7), tileSize)

	if math.Abs(a.NE.Lng-right.SW.Lng) > 1e-12 {
		t.Errorf("horizontal gap between adjacent cells: %v vs %v", a.NE.Lng, right.SW.Lng)
	}
	if math.Abs(a.NE.Lat-up.SW.Lat) > 1e-12 {
		t.Errorf("vertical gap between adjacent cells: %v vs %v", a.NE.Lat, up.SW.Lat)
	}
}

func TestCellKey(t *testing.T) {
	tests := []struct {
		cell CellCoord
		want string
	}{
		{Cell(0, 0), "0,0"},
		{Cell(12, -34), "12,-34"},
		{Cell(-1, -1), "-1,-1"},
		{Cell(369894, 1220628), "369894,1220628"},
	}

	for _, tt := range tests {
		if got := tt.cell.Key(); got != tt.want {
			t.Errorf("Key(%v) = %q, want %q", tt.cell, got, tt.want)
		}
		back, err := ParseKey(tt.want)
		if err != nil {
			t.Fatalf("ParseKey(%q): %v", tt.want, err)
		}
		if back != tt.cell {
			t.Errorf("ParseKey(%q) = %v, want %v", tt.want, back, tt.cell)
		}
	}
}

func TestParseKeyRejectsGarbage(t *testing.T) {
	for _, key := range []string{"", "1", "1,2,3", "a,b", "1,", ",2"} {
		if _, err := ParseKey(key); err == nil {
			t.Errorf("ParseKey(%q) should fail", key)
		}
	}
}

func TestCellDistance(t *testing.T) {
	tests := []struct {
		a, b CellCoord
		want int
	}{
		{Cell(0, 0), Cell(0, 0), 0},
		{Cell(0, 0), Cell(2, 2), 2},
		{Cell(0, 0), Cell(1, 3), 3},
		{Cell(-2, 5), Cell(2, 5), 4},
		{Cell(1, 1), Cell(-1, -4), 5},
	}

	for _, tt := range tests {
		if got := tt.a.Distance(tt.b); got != tt.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		// Chebyshev distance is symmetric.
		if got := tt.b.Distance(tt.a); got != tt.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestCoveringCells(t *testing.T) {
	b := Bounds{
		SW: WorldPoint{Lat: 0, Lng: 0},
		NE: WorldPoint{Lat: 3 * tileSize, Lng: 2 * tileSize},
	}

	r := CoveringCells(b, tileSize, 1)
	if r.MinI != -1 || r.MaxI != 4 || r.MinJ != -1 || r.MaxJ != 3 {
		t.Errorf("CoveringCells = %+v", r)
	}

	if !r.Contains(Cell(0, 0)) || !r.Contains(Cell(4, 3)) || !r.Contains(Cell(-1, -1)) {
		t.Error("range should contain its corners")
	}
	if r.Contains(Cell(5, 0)) || r.Contains(Cell(0, 4)) {
		t.Error("range should not contain cells outside it")
	}

	count := 0
	r.Each(func(CellCoord) { count++ })
	want := (r.MaxI - r.MinI + 1) * (r.MaxJ - r.MinJ + 1)
	if count != want {
		t.Errorf("Each visited %d cells, want %d", count, want)
	}
}
