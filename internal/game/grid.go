package game

import (
	"fmt"

	"github.com/vovakirdan/geomerge/internal/config"
	"github.com/vovakirdan/geomerge/internal/core"
	"github.com/vovakirdan/geomerge/internal/render"
)

// PlayerView is the slice of player state the grid needs to decide how
// cells look: everything interaction-sensitive hangs off the player's cell
// and inventory.
type PlayerView struct {
	Cell      core.CellCoord
	Inventory *core.Token
	Range     int // interaction range in cells
}

// Grid maintains the set of currently active cells, driven by the
// renderer's viewport. Cells entering the buffered viewport are
// materialized — restored from the caretaker if modified before, spawned
// deterministically otherwise. Cells leaving it are snapshotted and
// destroyed. All of this happens on the single goroutine that owns the
// game, so a full sync pass is atomic with respect to user input.
type Grid struct {
	renderer  render.Renderer
	spawner   *Spawner
	caretaker *Caretaker
	tileSize  float64
	buffer    int
	active    map[string]*Cell
}

// NewGrid creates a grid lifecycle manager.
func NewGrid(r render.Renderer, sp *Spawner, ct *Caretaker, board config.Board) *Grid {
	return &Grid{
		renderer:  r,
		spawner:   sp,
		caretaker: ct,
		tileSize:  board.TileSize,
		buffer:    board.ViewportBuffer,
		active:    make(map[string]*Cell),
	}
}

// ActiveCount returns the number of materialized cells.
func (g *Grid) ActiveCount() int {
	return len(g.active)
}

// CellAt returns the active cell at the coordinate, if materialized.
func (g *Grid) CellAt(c core.CellCoord) (*Cell, bool) {
	cell, ok := g.active[c.Key()]
	return cell, ok
}

// Caretaker exposes the memento store (read access for tooling).
func (g *Grid) Caretaker() *Caretaker {
	return g.caretaker
}

// TileSize returns the cell edge length in degrees.
func (g *Grid) TileSize() float64 {
	return g.tileSize
}

// Sync reconciles the active cell set with the renderer's current
// viewport: despawn first, then spawn, in one atomic pass.
func (g *Grid) Sync(pv PlayerView) error {
	if g.renderer == nil {
		return ErrRendererNotReady
	}

	view, err := g.renderer.ViewportBounds()
	if err != nil {
		return fmt.Errorf("game: viewport query failed: %w", err)
	}
	covered := core.CoveringCells(view, g.tileSize, g.buffer)

	// Despawn pass: persist and release everything that left the buffer.
	for key, cell := range g.active {
		if covered.Contains(cell.Coord) {
			continue
		}
		if err := g.despawn(key, cell); err != nil {
			return err
		}
	}

	// Spawn pass: materialize everything newly covered.
	var spawnErr error
	covered.Each(func(c core.CellCoord) {
		if spawnErr != nil {
			return
		}
		if _, ok := g.active[c.Key()]; ok {
			return
		}
		spawnErr = g.materialize(c, pv)
	})
	return spawnErr
}

// despawn snapshots a cell's token into the caretaker and releases its
// visual handle. Unmodified cells are snapshotted too; restoring them later
// yields the same token the spawner would have produced, since spawning is
// deterministic.
func (g *Grid) despawn(key string, cell *Cell) error {
	if cell == nil || !cell.Active || cell.Handle == render.NoLayer {
		return fmt.Errorf("%w: despawning %q", ErrInvalidCellState, key)
	}

	g.caretaker.Save(key, cell.Token)
	if err := g.renderer.RemoveLayer(cell.Handle); err != nil {
		return fmt.Errorf("game: releasing layer for %q: %w", key, err)
	}

	cell.Active = false
	cell.Handle = render.NoLayer
	delete(g.active, key)
	return nil
}

// materialize creates an active cell, restoring persisted state when the
// caretaker has any and consulting the spawner otherwise.
func (g *Grid) materialize(c core.CellCoord, pv PlayerView) error {
	key := c.Key()

	var tok *core.Token
	if g.caretaker.Has(key) {
		tok = g.caretaker.Restore(key)
	} else {
		tok = g.spawner.Token(c, pv.Cell)
	}

	cell := &Cell{Coord: c, Token: tok, Active: true}

	handle, err := g.renderer.DrawRectangle(core.CellBounds(c, g.tileSize), g.styleFor(cell, pv))
	if err != nil {
		return fmt.Errorf("game: drawing cell %q: %w", key, err)
	}
	cell.Handle = handle

	if err := g.renderer.BindTooltip(handle, cell.TooltipText()); err != nil {
		return fmt.Errorf("game: binding tooltip for %q: %w", key, err)
	}

	g.active[key] = cell
	return nil
}

// Restyle recomputes the visual style of every active cell. This runs
// after every player movement or inventory mutation; cost is O(active).
func (g *Grid) Restyle(pv PlayerView) error {
	if g.renderer == nil {
		return ErrRendererNotReady
	}

	for key, cell := range g.active {
		if cell.Handle == render.NoLayer {
			return fmt.Errorf("%w: restyling %q", ErrInvalidCellState, key)
		}
		if err := g.renderer.UpdateStyle(cell.Handle, g.styleFor(cell, pv)); err != nil {
			return fmt.Errorf("game: restyling %q: %w", key, err)
		}
		if err := g.renderer.BindTooltip(cell.Handle, cell.TooltipText()); err != nil {
			return fmt.Errorf("game: rebinding tooltip for %q: %w", key, err)
		}
	}
	return nil
}

// Flash temporarily highlights one active cell. The highlight is cosmetic;
// the next Restyle pass overwrites it (last write wins).
func (g *Grid) Flash(c core.CellCoord, color core.Color) error {
	if g.renderer == nil {
		return ErrRendererNotReady
	}
	cell, ok := g.active[c.Key()]
	if !ok {
		return nil
	}
	return g.renderer.UpdateStyle(cell.Handle, render.Style{Color: color, Flash: true})
}

// styleFor picks the interaction-sensitive color for a cell.
func (g *Grid) styleFor(cell *Cell, pv PlayerView) render.Style {
	inRange := cell.Coord.Distance(pv.Cell) <= pv.Range

	switch {
	case !inRange:
		return render.Style{Color: core.ColorGray}
	case cell.HasToken() && pv.Inventory.CanMerge(cell.Token):
		return render.Style{Color: core.ColorYellow}
	case cell.HasToken():
		return render.Style{Color: core.ColorGreen}
	case pv.Inventory != nil:
		return render.Style{Color: core.ColorCyan}
	default:
		return render.Style{Color: core.ColorDefault}
	}
}
