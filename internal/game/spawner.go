package game

import (
	"github.com/vovakirdan/geomerge/internal/config"
	"github.com/vovakirdan/geomerge/internal/core"
	"github.com/vovakirdan/geomerge/internal/luck"
)

// Spawner decides deterministically whether a cell contains a token and
// what its value is. For fixed inputs and a fixed luck function the answer
// never changes, regardless of call order or call count — that is what
// makes it safe to destroy and recreate cells as the viewport moves.
type Spawner struct {
	luck        luck.Func
	radius      int
	probability float64
	table       []config.ValueWeight
}

// NewSpawner creates a spawner from the spawn configuration.
func NewSpawner(cfg config.Spawn, fn luck.Func) *Spawner {
	return &Spawner{
		luck:        fn,
		radius:      cfg.Radius,
		probability: cfg.Probability,
		table:       cfg.Values,
	}
}

// ShouldSpawn reports whether the cell contains a token, given the player's
// cell. Cells beyond the spawn radius never hold tokens.
func (s *Spawner) ShouldSpawn(c, player core.CellCoord) bool {
	if c.Distance(player) > s.radius {
		return false
	}
	return s.luck(c.Key()) < s.probability
}

// Value draws the token value for a cell from the configured distribution.
// The table is walked in configuration order, accumulating probability
// mass; the first value whose cumulative mass exceeds the draw wins.
func (s *Spawner) Value(c core.CellCoord) int {
	r := s.luck(c.Key() + ",value")

	cum := 0.0
	for _, vw := range s.table {
		cum += vw.Weight
		if r < cum {
			return vw.Value
		}
	}

	// The table's mass can be < 1; the leftover draw falls back to the
	// smallest configured value.
	smallest := s.table[0].Value
	for _, vw := range s.table[1:] {
		if vw.Value < smallest {
			smallest = vw.Value
		}
	}
	return smallest
}

// Token returns the deterministic token for a cell, or nil if the cell is
// empty.
func (s *Spawner) Token(c, player core.CellCoord) *core.Token {
	if !s.ShouldSpawn(c, player) {
		return nil
	}
	return &core.Token{Value: s.Value(c)}
}
