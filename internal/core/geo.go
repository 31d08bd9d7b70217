// Package core provides fundamental types and utilities for the geomerge
// game. It contains no external dependencies (especially no Bubble Tea) to
// keep game logic pure and testable.
package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// WorldPoint is a location on the globe in decimal degrees.
type WorldPoint struct {
	Lat float64
	Lng float64
}

// CellCoord identifies a grid cell by its integer tile coordinates.
// I runs along latitude, J along longitude.
type CellCoord struct {
	I int
	J int
}

// Cell is a convenience constructor for CellCoord.
func Cell(i, j int) CellCoord {
	return CellCoord{I: i, J: j}
}

// Key returns the canonical string identity of the cell, "i,j".
// Keys are stable and distinct for every distinct coordinate pair,
// including negatives.
func (c CellCoord) Key() string {
	return fmt.Sprintf("%d,%d", c.I, c.J)
}

// ParseKey parses a canonical "i,j" cell key back into a coordinate.
func ParseKey(key string) (CellCoord, error) {
	parts := strings.Split(key, ",")
	if len(parts) != 2 {
		return CellCoord{}, fmt.Errorf("core: malformed cell key %q", key)
	}
	i, err := strconv.Atoi(parts[0])
	if err != nil {
		return CellCoord{}, fmt.Errorf("core: malformed cell key %q: %w", key, err)
	}
	j, err := strconv.Atoi(parts[1])
	if err != nil {
		return CellCoord{}, fmt.Errorf("core: malformed cell key %q: %w", key, err)
	}
	return CellCoord{I: i, J: j}, nil
}

// Add returns a new coordinate offset by (di, dj).
func (c CellCoord) Add(di, dj int) CellCoord {
	return CellCoord{I: c.I + di, J: c.J + dj}
}

// Distance returns the Chebyshev distance to another cell. Movement and
// range checks are grid-aligned, so this is the interaction metric, not
// Euclidean distance.
func (c CellCoord) Distance(other CellCoord) int {
	return Max(Abs(c.I-other.I), Abs(c.J-other.J))
}

// Bounds is an axis-aligned geographic rectangle.
type Bounds struct {
	SW WorldPoint
	NE WorldPoint
}

// Contains returns true if the point lies inside the bounds.
// The south and west edges are inclusive, north and east exclusive,
// so adjacent cell bounds tile the plane without overlap.
func (b Bounds) Contains(p WorldPoint) bool {
	return p.Lat >= b.SW.Lat && p.Lat < b.NE.Lat &&
		p.Lng >= b.SW.Lng && p.Lng < b.NE.Lng
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() WorldPoint {
	return WorldPoint{
		Lat: (b.SW.Lat + b.NE.Lat) / 2,
		Lng: (b.SW.Lng + b.NE.Lng) / 2,
	}
}

// WorldToCell maps a world point to the cell that contains it. Two points
// map to the same cell iff they fall in the same tile.
func WorldToCell(p WorldPoint, tileSize float64) CellCoord {
	return CellCoord{
		I: int(math.Floor(p.Lat / tileSize)),
		J: int(math.Floor(p.Lng / tileSize)),
	}
}

// CellBounds returns the geographic rectangle covered by a cell.
// Cells tile the plane with no gaps or overlaps.
func CellBounds(c CellCoord, tileSize float64) Bounds {
	return Bounds{
		SW: WorldPoint{Lat: float64(c.I) * tileSize, Lng: float64(c.J) * tileSize},
		NE: WorldPoint{Lat: float64(c.I+1) * tileSize, Lng: float64(c.J+1) * tileSize},
	}
}

// CellCenter returns the world point at the middle of a cell.
func CellCenter(c CellCoord, tileSize float64) WorldPoint {
	return CellBounds(c, tileSize).Center()
}

// CellRange is the inclusive rectangle of cell coordinates covering a
// geographic bounds, expanded by buffer cells on every side.
type CellRange struct {
	MinI, MaxI int
	MinJ, MaxJ int
}

// CoveringCells computes the cell range covering the given bounds plus a
// buffer margin. The buffer keeps cells alive slightly beyond the visible
// region to avoid churn on small viewport movements.
func CoveringCells(b Bounds, tileSize float64, buffer int) CellRange {
	sw := WorldToCell(b.SW, tileSize)
	ne := WorldToCell(b.NE, tileSize)
	return CellRange{
		MinI: sw.I - buffer,
		MaxI: ne.I + buffer,
		MinJ: sw.J - buffer,
		MaxJ: ne.J + buffer,
	}
}

// Contains returns true if the cell lies within the range.
func (r CellRange) Contains(c CellCoord) bool {
	return c.I >= r.MinI && c.I <= r.MaxI && c.J >= r.MinJ && c.J <= r.MaxJ
}

// Each calls fn for every cell coordinate in the range, row by row.
func (r CellRange) Each(fn func(CellCoord)) {
	for i := r.MinI; i <= r.MaxI; i++ {
		for j := r.MinJ; j <= r.MaxJ; j++ {
			fn(CellCoord{I: i, J: j})
		}
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
