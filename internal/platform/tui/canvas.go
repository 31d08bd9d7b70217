package tui

import (
	"fmt"

	"github.com/vovakirdan/geomerge/internal/core"
	"github.com/vovakirdan/geomerge/internal/render"
)

// Canvas implements render.Renderer over a rectangular window of cells
// centered on a world point. Each layer is one cell rectangle; lookups go
// through the cell key so the view can paint in O(1) per screen cell.
type Canvas struct {
	tileSize float64
	center   core.WorldPoint
	cols     int // visible cells west-east
	rows     int // visible cells south-north

	next   render.Handle
	layers map[render.Handle]*canvasLayer
	byKey  map[string]render.Handle
}

type canvasLayer struct {
	key     string
	style   render.Style
	tooltip string
}

// NewCanvas creates a canvas showing cols x rows cells.
func NewCanvas(tileSize float64, cols, rows int) *Canvas {
	return &Canvas{
		tileSize: tileSize,
		cols:     core.Max(cols, 1),
		rows:     core.Max(rows, 1),
		layers:   make(map[render.Handle]*canvasLayer),
		byKey:    make(map[string]render.Handle),
	}
}

// Resize changes the visible cell window.
func (c *Canvas) Resize(cols, rows int) {
	c.cols = core.Max(cols, 1)
	c.rows = core.Max(rows, 1)
}

// Size returns the visible cell window dimensions.
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// DrawRectangle implements render.Renderer.
func (c *Canvas) DrawRectangle(b core.Bounds, st render.Style) (render.Handle, error) {
	key := core.WorldToCell(b.Center(), c.tileSize).Key()
	if h, ok := c.byKey[key]; ok {
		// The grid never draws the same cell twice while active; a
		// duplicate means a lifecycle bug upstream.
		return h, fmt.Errorf("tui: layer already drawn for cell %s", key)
	}

	c.next++
	c.layers[c.next] = &canvasLayer{key: key, style: st}
	c.byKey[key] = c.next
	return c.next, nil
}

// UpdateStyle implements render.Renderer.
func (c *Canvas) UpdateStyle(h render.Handle, st render.Style) error {
	l, ok := c.layers[h]
	if !ok {
		return fmt.Errorf("tui: unknown layer handle %d", h)
	}
	l.style = st
	return nil
}

// BindTooltip implements render.Renderer.
func (c *Canvas) BindTooltip(h render.Handle, text string) error {
	l, ok := c.layers[h]
	if !ok {
		return fmt.Errorf("tui: unknown layer handle %d", h)
	}
	l.tooltip = text
	return nil
}

// RemoveLayer implements render.Renderer.
func (c *Canvas) RemoveLayer(h render.Handle) error {
	l, ok := c.layers[h]
	if !ok {
		return fmt.Errorf("tui: unknown layer handle %d", h)
	}
	delete(c.byKey, l.key)
	delete(c.layers, h)
	return nil
}

// ViewportBounds implements render.Renderer.
func (c *Canvas) ViewportBounds() (core.Bounds, error) {
	halfLat := float64(c.rows) / 2 * c.tileSize
	halfLng := float64(c.cols) / 2 * c.tileSize
	return core.Bounds{
		SW: core.WorldPoint{Lat: c.center.Lat - halfLat, Lng: c.center.Lng - halfLng},
		NE: core.WorldPoint{Lat: c.center.Lat + halfLat, Lng: c.center.Lng + halfLng},
	}, nil
}

// SetView implements render.Renderer.
func (c *Canvas) SetView(center core.WorldPoint) error {
	c.center = center
	return nil
}

// CenterCell returns the cell at the middle of the viewport.
func (c *Canvas) CenterCell() core.CellCoord {
	return core.WorldToCell(c.center, c.tileSize)
}

// StyleAt returns the layer style for a cell, if one is drawn.
func (c *Canvas) StyleAt(cell core.CellCoord) (render.Style, bool) {
	h, ok := c.byKey[cell.Key()]
	if !ok {
		return render.Style{}, false
	}
	return c.layers[h].style, true
}

// TooltipAt returns the tooltip text for a cell, if one is bound.
func (c *Canvas) TooltipAt(cell core.CellCoord) (string, bool) {
	h, ok := c.byKey[cell.Key()]
	if !ok {
		return "", false
	}
	return c.layers[h].tooltip, true
}

// VisibleCells returns the exactly cols x rows cell window centered on the
// viewport, without the lifecycle buffer.
func (c *Canvas) VisibleCells() core.CellRange {
	center := c.CenterCell()
	return core.CellRange{
		MinI: center.I - c.rows/2,
		MaxI: center.I - c.rows/2 + c.rows - 1,
		MinJ: center.J - c.cols/2,
		MaxJ: center.J - c.cols/2 + c.cols - 1,
	}
}
