package game

import (
	"fmt"

	"github.com/vovakirdan/geomerge/internal/core"
	"github.com/vovakirdan/geomerge/internal/render"
)

// Cell is a materialized grid cell. Cells exist only while inside the
// viewport buffer; outside it their token state lives in the caretaker.
// The token field is mutated only by pickup/drop/merge.
type Cell struct {
	Coord  core.CellCoord
	Token  *core.Token
	Handle render.Handle
	Active bool
}

// HasToken reports whether the cell currently holds a token.
func (c *Cell) HasToken() bool {
	return c.Token != nil
}

// TooltipText describes the cell for hover/inspect display.
func (c *Cell) TooltipText() string {
	if c.Token != nil {
		return fmt.Sprintf("cell %s: token %d", c.Coord.Key(), c.Token.Value)
	}
	return fmt.Sprintf("cell %s: empty", c.Coord.Key())
}
