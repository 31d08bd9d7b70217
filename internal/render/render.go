// Package render defines the contract between the game core and whatever
// draws the map. The core only asks for rectangles, tooltips, and viewport
// geometry; the platform layer decides how those appear on screen. Keeping
// this an interface lets tests run the full grid lifecycle against an
// in-memory fake.
package render

import "github.com/vovakirdan/geomerge/internal/core"

// Handle identifies a drawn layer. Handles are opaque to the game core;
// the renderer that issued a handle is the only party that can interpret
// it. The zero Handle is never issued and marks "no layer".
type Handle uint64

// NoLayer is the zero Handle.
const NoLayer Handle = 0

// Style describes how a cell rectangle should be drawn.
type Style struct {
	Color core.Color
	// Flash marks a temporary interaction highlight.
	Flash bool
}

// Renderer is the map-drawing collaborator consumed by the grid lifecycle
// manager. Viewport and click events flow the other way: the platform calls
// into the game session explicitly rather than through callbacks, so the
// renderer surface stays write-only.
type Renderer interface {
	// DrawRectangle materializes a cell rectangle and returns its handle.
	DrawRectangle(b core.Bounds, st Style) (Handle, error)

	// UpdateStyle restyles an existing layer.
	UpdateStyle(h Handle, st Style) error

	// BindTooltip attaches hover/inspect text to a layer.
	BindTooltip(h Handle, text string) error

	// RemoveLayer releases a layer. The handle is invalid afterwards.
	RemoveLayer(h Handle) error

	// ViewportBounds reports the currently visible geographic region.
	ViewportBounds() (core.Bounds, error)

	// SetView recenters the viewport on the given point.
	SetView(center core.WorldPoint) error
}
