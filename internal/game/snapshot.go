package game

// Snapshot captures the observable session state for determinism testing
// and replay. Inventory is the held token value, 0 when empty-handed.
type Snapshot struct {
	PlayerCell  string
	Inventory   int
	Points      int
	ActiveCells int
	Mementos    int
	Victory     bool
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	inv := 0
	if s.player.Inventory != nil {
		inv = s.player.Inventory.Value
	}
	return Snapshot{
		PlayerCell:  s.PlayerCell().Key(),
		Inventory:   inv,
		Points:      s.player.Points,
		ActiveCells: s.grid.ActiveCount(),
		Mementos:    s.grid.caretaker.Len(),
		Victory:     s.victory,
	}
}
