package game

import (
	"testing"
	"time"

	"github.com/vovakirdan/geomerge/internal/core"
)

func TestCaretakerRoundTrip(t *testing.T) {
	ct := NewCaretaker()

	tok := &core.Token{Value: 4}
	ct.Save("2,3", tok)

	got := ct.Restore("2,3")
	if !got.Equal(tok) {
		t.Errorf("Restore = %v, want %v", got, tok)
	}
}

func TestCaretakerRoundTripAbsent(t *testing.T) {
	ct := NewCaretaker()

	ct.Save("0,0", nil)

	if !ct.Has("0,0") {
		t.Error("Has should be true after saving an empty snapshot")
	}
	if got := ct.Restore("0,0"); got != nil {
		t.Errorf("Restore of empty snapshot = %v, want nil", got)
	}
}

func TestCaretakerRestoreCopies(t *testing.T) {
	ct := NewCaretaker()
	orig := &core.Token{Value: 2}
	ct.Save("1,1", orig)

	// Mutating the original after Save must not change the snapshot.
	orig.Value = 64
	if got := ct.Restore("1,1"); got.Value != 2 {
		t.Errorf("snapshot aliased the saved token: %d", got.Value)
	}

	// Mutating a restored copy must not change the snapshot either.
	first := ct.Restore("1,1")
	first.Value = 99
	if got := ct.Restore("1,1"); got.Value != 2 {
		t.Errorf("snapshot aliased a restored token: %d", got.Value)
	}
}

func TestCaretakerMissingKey(t *testing.T) {
	ct := NewCaretaker()

	if ct.Has("5,5") {
		t.Error("Has should be false for unknown key")
	}
	if got := ct.Restore("5,5"); got != nil {
		t.Errorf("Restore of unknown key = %v, want nil", got)
	}
}

func TestCaretakerSupersede(t *testing.T) {
	ct := NewCaretaker()

	times := []time.Time{
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	i := 0
	ct.now = func() time.Time { t := times[i]; i++; return t }

	ct.Save("0,0", &core.Token{Value: 2})
	ct.Save("0,0", &core.Token{Value: 8})

	if got := ct.Restore("0,0"); got.Value != 8 {
		t.Errorf("newer snapshot should supersede: got %d", got.Value)
	}
	if ct.Len() != 1 {
		t.Errorf("Len = %d, want 1", ct.Len())
	}
	if m := ct.mementos["0,0"]; !m.SavedAt.Equal(times[1]) {
		t.Errorf("SavedAt = %v, want %v", m.SavedAt, times[1])
	}
}

func TestCaretakerClear(t *testing.T) {
	ct := NewCaretaker()
	ct.Save("3,4", &core.Token{Value: 1})
	ct.Clear("3,4")

	if ct.Has("3,4") {
		t.Error("Has should be false after Clear")
	}
	if ct.Len() != 0 {
		t.Errorf("Len = %d, want 0", ct.Len())
	}
}

func TestCaretakerIdempotentRoundTrip(t *testing.T) {
	// Restoring and re-saving must reproduce a token-equivalent memento.
	ct := NewCaretaker()
	ct.Save("7,7", &core.Token{Value: 16})

	restored := ct.Restore("7,7")
	ct.Save("7,7", restored)

	if got := ct.Restore("7,7"); got.Value != 16 {
		t.Errorf("round trip changed the token: %d", got.Value)
	}
}
