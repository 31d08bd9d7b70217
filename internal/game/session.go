package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/geomerge/internal/config"
	"github.com/vovakirdan/geomerge/internal/core"
	"github.com/vovakirdan/geomerge/internal/luck"
	"github.com/vovakirdan/geomerge/internal/render"
)

// Player is the player's mutable state. The inventory holds at most one
// token.
type Player struct {
	Location  core.WorldPoint
	Inventory *core.Token
	Points    int
}

// Session is the explicitly owned game context: player, grid, victory
// state, and the injected collaborators. Every operation goes through the
// session; there are no ambient singletons, so tests construct a fresh
// session each.
type Session struct {
	cfg     config.GameConfig
	grid    *Grid
	player  Player
	victory bool
	best    int
	sink    DisplaySink
	sched   Scheduler
	started time.Time
}

// NewSession wires a session from configuration and collaborators. A nil
// sink or scheduler is replaced by a no-op implementation; a nil luck
// function gets the default world.
func NewSession(cfg config.GameConfig, r render.Renderer, fn luck.Func, sink DisplaySink, sched Scheduler) *Session {
	if fn == nil {
		fn = luck.Default()
	}
	if sink == nil {
		sink = NopSink{}
	}
	if sched == nil {
		sched = NopScheduler{}
	}

	return &Session{
		cfg:  cfg,
		grid: NewGrid(r, NewSpawner(cfg.Spawn, fn), NewCaretaker(), cfg.Board),
		player: Player{
			Location: core.WorldPoint{Lat: cfg.Board.HomeLat, Lng: cfg.Board.HomeLng},
		},
		sink:    sink,
		sched:   sched,
		started: time.Now(),
	}
}

// Grid exposes the lifecycle manager (read access for platform code).
func (s *Session) Grid() *Grid {
	return s.grid
}

// Config returns the session configuration.
func (s *Session) Config() config.GameConfig {
	return s.cfg
}

// PlayerCell returns the cell the player currently occupies.
func (s *Session) PlayerCell() core.CellCoord {
	return core.WorldToCell(s.player.Location, s.cfg.Board.TileSize)
}

// PlayerLocation returns the player's world position.
func (s *Session) PlayerLocation() core.WorldPoint {
	return s.player.Location
}

// Inventory returns a copy of the held token, or nil.
func (s *Session) Inventory() *core.Token {
	return s.player.Inventory.Clone()
}

// Points returns the accumulated score.
func (s *Session) Points() int {
	return s.player.Points
}

// Victory reports whether the victory threshold has been reached. The flag
// is monotonic: once set it never resets.
func (s *Session) Victory() bool {
	return s.victory
}

// BestToken returns the highest token value the player has held or
// produced so far.
func (s *Session) BestToken() int {
	return s.best
}

// StartedAt returns when the session was created.
func (s *Session) StartedAt() time.Time {
	return s.started
}

// Refresh re-runs the lifecycle and restyle passes against the current
// viewport without moving the player. Used after viewport-only changes
// such as a terminal resize.
func (s *Session) Refresh() error {
	if err := s.grid.Sync(s.playerView()); err != nil {
		return err
	}
	return s.grid.Restyle(s.playerView())
}

// playerView packages the interaction-sensitive player state for the grid.
func (s *Session) playerView() PlayerView {
	return PlayerView{
		Cell:      s.PlayerCell(),
		Inventory: s.player.Inventory,
		Range:     s.cfg.Rules.InteractionRange,
	}
}

// Start centers the view on the player and materializes the initial grid.
func (s *Session) Start() error {
	if s.grid.renderer == nil {
		return ErrRendererNotReady
	}
	if err := s.grid.renderer.SetView(s.player.Location); err != nil {
		return fmt.Errorf("game: centering view: %w", err)
	}
	if err := s.grid.Sync(s.playerView()); err != nil {
		return err
	}
	s.pushDisplay("ready")
	return nil
}

// Move shifts the player one cell in the given direction, recenters the
// view, and runs a full lifecycle pass followed by a restyle.
func (s *Session) Move(d core.Dir) error {
	if s.grid.renderer == nil {
		return ErrRendererNotReady
	}

	di, dj := d.Delta()
	next := s.PlayerCell().Add(di, dj)
	s.player.Location = core.CellCenter(next, s.cfg.Board.TileSize)

	if err := s.grid.renderer.SetView(s.player.Location); err != nil {
		return fmt.Errorf("game: centering view: %w", err)
	}
	if err := s.grid.Sync(s.playerView()); err != nil {
		return err
	}
	if err := s.grid.Restyle(s.playerView()); err != nil {
		return err
	}
	s.pushDisplay(fmt.Sprintf("moved %s", d))
	return nil
}

// HandleClick dispatches a click on a cell to pickup, drop, or merge.
// Precedence when the cell is interactable: token+empty inventory picks
// up; token+held inventory attempts a merge; empty cell+held inventory
// drops; anything else is invalid. Out-of-range clicks change nothing and
// are reported distinctly.
func (s *Session) HandleClick(target core.CellCoord) (ClickResult, error) {
	if target.Distance(s.PlayerCell()) > s.cfg.Rules.InteractionRange {
		s.sink.SetStatus("out of range")
		return ClickResult{Outcome: OutcomeOutOfRange}, nil
	}

	cell, ok := s.grid.CellAt(target)
	if !ok {
		// In range but not materialized: the viewport has not covered
		// this cell yet. Nothing to interact with.
		return s.reject(target)
	}

	switch {
	case cell.HasToken() && s.player.Inventory == nil:
		return s.pickup(cell)
	case cell.HasToken() && s.player.Inventory != nil:
		if !s.player.Inventory.CanMerge(cell.Token) {
			return s.reject(target)
		}
		return s.merge(cell)
	case !cell.HasToken() && s.player.Inventory != nil:
		return s.drop(cell)
	default:
		return s.reject(target)
	}
}

// pickup moves the cell's token into the inventory.
func (s *Session) pickup(cell *Cell) (ClickResult, error) {
	tok := cell.Token
	cell.Token = nil
	s.player.Inventory = tok
	s.best = core.Max(s.best, tok.Value)

	if err := s.afterMutation(cell.Coord, core.ColorBrightYellow, fmt.Sprintf("picked up %d", tok.Value)); err != nil {
		return ClickResult{}, err
	}
	return ClickResult{Outcome: OutcomePickup, Value: tok.Value}, nil
}

// drop moves the inventory token into the cell.
func (s *Session) drop(cell *Cell) (ClickResult, error) {
	tok := s.player.Inventory
	s.player.Inventory = nil
	cell.Token = tok

	if err := s.afterMutation(cell.Coord, core.ColorBrightYellow, fmt.Sprintf("dropped %d", tok.Value)); err != nil {
		return ClickResult{}, err
	}
	return ClickResult{Outcome: OutcomeDrop, Value: tok.Value}, nil
}

// merge combines the inventory token with an equal-valued cell token. The
// cell keeps the doubled token, the inventory empties, and the player
// scores the new value.
func (s *Session) merge(cell *Cell) (ClickResult, error) {
	merged := cell.Token.Merged()
	cell.Token = &merged
	s.player.Inventory = nil
	s.player.Points += merged.Value
	s.best = core.Max(s.best, merged.Value)

	if merged.Value >= s.cfg.Rules.VictoryTarget && !s.victory {
		s.victory = true
		s.sink.SetVictory(true)
	}

	if err := s.afterMutation(cell.Coord, core.ColorBrightYellow, fmt.Sprintf("merged into %d", merged.Value)); err != nil {
		return ClickResult{}, err
	}
	return ClickResult{Outcome: OutcomeMerge, Value: merged.Value}, nil
}

// reject reports an invalid action. No state changes; the cell flashes red
// as cosmetic feedback.
func (s *Session) reject(target core.CellCoord) (ClickResult, error) {
	s.sink.SetStatus("invalid action")
	if err := s.grid.Flash(target, core.ColorRed); err != nil {
		return ClickResult{}, err
	}
	s.scheduleRevert()
	return ClickResult{Outcome: OutcomeInvalid}, nil
}

// afterMutation runs the shared post-interaction work: restyle every
// active cell, push display strings, and flash the touched cell.
func (s *Session) afterMutation(target core.CellCoord, flash core.Color, status string) error {
	if err := s.grid.Restyle(s.playerView()); err != nil {
		return err
	}
	if err := s.grid.Flash(target, flash); err != nil {
		return err
	}
	s.scheduleRevert()
	s.pushDisplay(status)
	return nil
}

// scheduleRevert queues the flash revert. The callback only re-renders the
// already-current state; it never mutates game state.
func (s *Session) scheduleRevert() {
	d := time.Duration(s.cfg.Rules.FlashMillis) * time.Millisecond
	s.sched.After(d, func() {
		// Ignore restyle failures here: the pass is cosmetic and the
		// next real mutation repeats it.
		_ = s.grid.Restyle(s.playerView())
	})
}

// pushDisplay sends the current inventory and status strings to the sink.
func (s *Session) pushDisplay(status string) {
	if s.player.Inventory != nil {
		s.sink.SetInventory(fmt.Sprintf("holding %d", s.player.Inventory.Value))
	} else {
		s.sink.SetInventory("empty-handed")
	}
	s.sink.SetStatus(fmt.Sprintf("%s | %d points", status, s.player.Points))
}
