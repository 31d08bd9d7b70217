package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/geomerge/internal/core"
)

func TestSessionStart(t *testing.T) {
	s, r, sink, _ := newTestSession(testConfig())

	if got := s.PlayerCell(); got != core.Cell(0, 0) {
		t.Errorf("player cell = %v, want (0,0)", got)
	}
	if r.setViewCalls != 1 {
		t.Errorf("setViewCalls = %d, want 1", r.setViewCalls)
	}
	if s.Grid().ActiveCount() == 0 {
		t.Error("Start should materialize the grid")
	}
	if sink.lastInventory() != "empty-handed" {
		t.Errorf("inventory text = %q", sink.lastInventory())
	}
}

func TestSessionStartWithoutRenderer(t *testing.T) {
	s := NewSession(testConfig(), nil, nil, nil, nil)
	if err := s.Start(); err != ErrRendererNotReady {
		t.Errorf("Start without renderer: %v, want ErrRendererNotReady", err)
	}
}

func TestPickupScenario(t *testing.T) {
	// Player at (0,0), cell (2,2) holds a token of value 2, inventory empty.
	s, _, _, _ := newTestSession(testConfig())
	placeToken(s, core.Cell(2, 2), 2)

	res, err := s.HandleClick(core.Cell(2, 2))
	if err != nil {
		t.Fatalf("HandleClick: %v", err)
	}
	if res.Outcome != OutcomePickup || res.Value != 2 {
		t.Errorf("result = %+v, want pickup of 2", res)
	}

	if inv := s.Inventory(); inv == nil || inv.Value != 2 {
		t.Errorf("inventory = %v, want value 2", inv)
	}
	cell, _ := s.Grid().CellAt(core.Cell(2, 2))
	if cell.HasToken() {
		t.Error("source cell should be empty after pickup")
	}
}

func TestDropScenario(t *testing.T) {
	// Inventory holds 4; clicking an empty in-range cell drops it.
	s, _, _, _ := newTestSession(testConfig())
	placeToken(s, core.Cell(1, 0), 4)
	if res, _ := s.HandleClick(core.Cell(1, 0)); res.Outcome != OutcomePickup {
		t.Fatalf("setup pickup failed: %+v", res)
	}

	res, err := s.HandleClick(core.Cell(0, 1))
	if err != nil {
		t.Fatalf("HandleClick: %v", err)
	}
	if res.Outcome != OutcomeDrop || res.Value != 4 {
		t.Errorf("result = %+v, want drop of 4", res)
	}

	if s.Inventory() != nil {
		t.Error("inventory should be empty after drop")
	}
	cell, _ := s.Grid().CellAt(core.Cell(0, 1))
	if cell.Token == nil || cell.Token.Value != 4 {
		t.Errorf("cell token = %v, want value 4", cell.Token)
	}
}

func TestMergeScenario(t *testing.T) {
	// Inventory 4 onto cell token 4: cell becomes 8, points += 8.
	s, _, _, _ := newTestSession(testConfig())
	placeToken(s, core.Cell(1, 1), 4)
	placeToken(s, core.Cell(2, 2), 4)
	if res, _ := s.HandleClick(core.Cell(1, 1)); res.Outcome != OutcomePickup {
		t.Fatal("setup pickup failed")
	}

	res, err := s.HandleClick(core.Cell(2, 2))
	if err != nil {
		t.Fatalf("HandleClick: %v", err)
	}
	if res.Outcome != OutcomeMerge || res.Value != 8 {
		t.Errorf("result = %+v, want merge into 8", res)
	}

	if s.Inventory() != nil {
		t.Error("inventory should be empty after merge")
	}
	cell, _ := s.Grid().CellAt(core.Cell(2, 2))
	if cell.Token == nil || cell.Token.Value != 8 {
		t.Errorf("cell token = %v, want value 8", cell.Token)
	}
	if s.Points() != 8 {
		t.Errorf("points = %d, want 8", s.Points())
	}
}

func TestMergeMismatchFails(t *testing.T) {
	// Inventory 2 onto cell token 4: invalid, both tokens unchanged.
	s, _, sink, _ := newTestSession(testConfig())
	placeToken(s, core.Cell(1, 0), 2)
	placeToken(s, core.Cell(2, 2), 4)
	if res, _ := s.HandleClick(core.Cell(1, 0)); res.Outcome != OutcomePickup {
		t.Fatal("setup pickup failed")
	}

	res, err := s.HandleClick(core.Cell(2, 2))
	if err != nil {
		t.Fatalf("HandleClick: %v", err)
	}
	if res.Outcome != OutcomeInvalid {
		t.Errorf("result = %+v, want invalid", res)
	}

	if inv := s.Inventory(); inv == nil || inv.Value != 2 {
		t.Errorf("inventory = %v, want unchanged value 2", inv)
	}
	cell, _ := s.Grid().CellAt(core.Cell(2, 2))
	if cell.Token == nil || cell.Token.Value != 4 {
		t.Errorf("cell token = %v, want unchanged value 4", cell.Token)
	}
	if s.Points() != 0 {
		t.Errorf("points = %d, want 0", s.Points())
	}
	if !strings.Contains(sink.lastStatus(), "invalid") {
		t.Errorf("status = %q, want invalid feedback", sink.lastStatus())
	}
}

func TestOutOfRangeClick(t *testing.T) {
	s, _, _, _ := newTestSession(testConfig())
	placeToken(s, core.Cell(4, 4), 2) // distance 4 > range 3

	before := s.Snapshot()
	res, err := s.HandleClick(core.Cell(4, 4))
	if err != nil {
		t.Fatalf("HandleClick: %v", err)
	}
	if res.Outcome != OutcomeOutOfRange {
		t.Errorf("result = %+v, want outOfRange", res)
	}
	if got := s.Snapshot(); got != before {
		t.Errorf("out-of-range click mutated state: %+v -> %+v", before, got)
	}
	cell, _ := s.Grid().CellAt(core.Cell(4, 4))
	if cell.Token == nil || cell.Token.Value != 2 {
		t.Error("out-of-range cell token must be untouched")
	}
}

func TestEmptyClickIsInvalid(t *testing.T) {
	// Empty cell, empty inventory: nothing to do.
	s, _, _, _ := newTestSession(testConfig())

	res, err := s.HandleClick(core.Cell(1, 1))
	if err != nil {
		t.Fatalf("HandleClick: %v", err)
	}
	if res.Outcome != OutcomeInvalid {
		t.Errorf("result = %+v, want invalid", res)
	}
}

func TestClickDispatchPrecedence(t *testing.T) {
	// With a token on the cell and a full inventory, merge wins over drop.
	s, _, _, _ := newTestSession(testConfig())
	placeToken(s, core.Cell(1, 0), 2)
	placeToken(s, core.Cell(0, 1), 2)
	if res, _ := s.HandleClick(core.Cell(1, 0)); res.Outcome != OutcomePickup {
		t.Fatal("setup pickup failed")
	}

	res, err := s.HandleClick(core.Cell(0, 1))
	if err != nil {
		t.Fatalf("HandleClick: %v", err)
	}
	if res.Outcome != OutcomeMerge {
		t.Errorf("outcome = %v, want merge to take precedence", res.Outcome)
	}
}

func TestVictoryMonotonic(t *testing.T) {
	cfg := testConfig()
	cfg.Rules.VictoryTarget = 8
	s, _, sink, _ := newTestSession(cfg)

	placeToken(s, core.Cell(1, 1), 4)
	placeToken(s, core.Cell(2, 2), 4)
	if res, _ := s.HandleClick(core.Cell(1, 1)); res.Outcome != OutcomePickup {
		t.Fatal("setup pickup failed")
	}
	if res, _ := s.HandleClick(core.Cell(2, 2)); res.Outcome != OutcomeMerge {
		t.Fatal("merge failed")
	}

	if !s.Victory() {
		t.Fatal("victory should be achieved at the target value")
	}
	if len(sink.victory) != 1 || !sink.victory[0] {
		t.Errorf("sink.victory = %v, want one true", sink.victory)
	}

	// Further play never resets the flag, and the sink is not re-notified.
	if res, _ := s.HandleClick(core.Cell(2, 2)); res.Outcome != OutcomePickup {
		t.Fatal("post-victory pickup failed")
	}
	if !s.Victory() {
		t.Error("victory flag must be monotonic")
	}
	if len(sink.victory) != 1 {
		t.Errorf("victory re-notified: %v", sink.victory)
	}
}

func TestBelowTargetMergeNoVictory(t *testing.T) {
	s, _, _, _ := newTestSession(testConfig()) // target 16

	placeToken(s, core.Cell(1, 1), 2)
	placeToken(s, core.Cell(2, 2), 2)
	if res, _ := s.HandleClick(core.Cell(1, 1)); res.Outcome != OutcomePickup {
		t.Fatal("setup pickup failed")
	}
	if res, _ := s.HandleClick(core.Cell(2, 2)); res.Outcome != OutcomeMerge {
		t.Fatal("merge failed")
	}
	if s.Victory() {
		t.Error("merge below the target must not win")
	}
}

func TestMoveRecentersAndRestyles(t *testing.T) {
	s, r, _, _ := newTestSession(testConfig())

	r.styleCalls = 0
	if err := s.Move(core.DirNorth); err != nil {
		t.Fatalf("Move: %v", err)
	}

	if got := s.PlayerCell(); got != core.Cell(1, 0) {
		t.Errorf("player cell = %v, want (1,0)", got)
	}
	if r.setViewCalls != 2 { // Start + Move
		t.Errorf("setViewCalls = %d, want 2", r.setViewCalls)
	}
	if r.styleCalls == 0 {
		t.Error("Move must trigger a restyle pass")
	}

	// The lifecycle pass follows the viewport: a row despawned, a row
	// spawned.
	if _, ok := s.Grid().CellAt(core.Cell(5, 0)); !ok {
		t.Error("northern row should have spawned")
	}
	if _, ok := s.Grid().CellAt(core.Cell(-3, 0)); ok {
		t.Error("southern row should have despawned")
	}
}

func TestMovePersistsCarriedState(t *testing.T) {
	// Walk far enough that a modified cell despawns, then walk back.
	s, _, _, _ := newTestSession(testConfig())
	placeToken(s, core.Cell(2, 0), 8)

	for range 10 {
		if err := s.Move(core.DirSouth); err != nil {
			t.Fatalf("Move: %v", err)
		}
	}
	if _, ok := s.Grid().CellAt(core.Cell(2, 0)); ok {
		t.Fatal("cell (2,0) should have despawned")
	}

	for range 10 {
		if err := s.Move(core.DirNorth); err != nil {
			t.Fatalf("Move: %v", err)
		}
	}
	cell, ok := s.Grid().CellAt(core.Cell(2, 0))
	if !ok {
		t.Fatal("cell (2,0) should be active again")
	}
	if cell.Token == nil || cell.Token.Value != 8 {
		t.Errorf("token = %v, want value 8 preserved across the walk", cell.Token)
	}
}

func TestInteractionFlashReverts(t *testing.T) {
	s, r, _, sched := newTestSession(testConfig())
	placeToken(s, core.Cell(1, 1), 2)

	if res, _ := s.HandleClick(core.Cell(1, 1)); res.Outcome != OutcomePickup {
		t.Fatal("pickup failed")
	}

	if st := r.layerFor(s.Grid(), core.Cell(1, 1)).style; !st.Flash {
		t.Error("interacted cell should be flashing")
	}
	if len(sched.tasks) == 0 {
		t.Fatal("a revert task should be scheduled")
	}

	sched.fire()
	if st := r.layerFor(s.Grid(), core.Cell(1, 1)).style; st.Flash {
		t.Error("flash should revert when the scheduled task runs")
	}
}

func TestSessionSnapshot(t *testing.T) {
	s, _, _, _ := newTestSession(testConfig())
	placeToken(s, core.Cell(1, 1), 2)
	if res, _ := s.HandleClick(core.Cell(1, 1)); res.Outcome != OutcomePickup {
		t.Fatal("pickup failed")
	}

	snap := s.Snapshot()
	if snap.PlayerCell != "0,0" || snap.Inventory != 2 || snap.Points != 0 || snap.Victory {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.ActiveCells != s.Grid().ActiveCount() {
		t.Errorf("snapshot active cells = %d, want %d", snap.ActiveCells, s.Grid().ActiveCount())
	}
}
