package game

import (
	"time"

	"github.com/vovakirdan/geomerge/internal/core"
)

// Memento is an immutable point-in-time copy of a cell's token state.
// A newer memento for the same key supersedes the old one; mementos are
// never mutated after creation.
type Memento struct {
	Key     string
	token   *core.Token
	SavedAt time.Time
}

// Token returns a copy of the snapshotted token, or nil if the cell was
// empty when snapshotted.
func (m Memento) Token() *core.Token {
	return m.token.Clone()
}

// Caretaker owns all memento records, keyed by cell key. Cells never hold
// references to their own mementos; the caretaker is the single owner.
type Caretaker struct {
	mementos map[string]Memento
	now      func() time.Time
}

// NewCaretaker creates an empty caretaker.
func NewCaretaker() *Caretaker {
	return &Caretaker{
		mementos: make(map[string]Memento),
		now:      time.Now,
	}
}

// Save stores a snapshot of the token for the given cell key, replacing any
// prior snapshot. The token is copied; later mutations of the original do
// not leak into the memento.
func (c *Caretaker) Save(key string, tok *core.Token) {
	c.mementos[key] = Memento{
		Key:     key,
		token:   tok.Clone(),
		SavedAt: c.now(),
	}
}

// Restore returns a copy of the stored token for the key, or nil if there
// is no snapshot or the snapshot holds an empty cell. Callers that need to
// distinguish "never saved" from "saved as empty" must check Has first.
func (c *Caretaker) Restore(key string) *core.Token {
	m, ok := c.mementos[key]
	if !ok {
		return nil
	}
	return m.Token()
}

// Has reports whether a snapshot exists for the key.
func (c *Caretaker) Has(key string) bool {
	_, ok := c.mementos[key]
	return ok
}

// Clear permanently removes the snapshot for the key.
func (c *Caretaker) Clear(key string) {
	delete(c.mementos, key)
}

// Len returns the number of stored snapshots.
func (c *Caretaker) Len() int {
	return len(c.mementos)
}
