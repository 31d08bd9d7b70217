package game

// DisplaySink receives plain display strings from the game core. The core
// only pushes; it never reads UI state back.
type DisplaySink interface {
	SetStatus(text string)
	SetInventory(text string)
	SetVictory(achieved bool)
}

// NopSink discards all display updates.
type NopSink struct{}

// SetStatus implements DisplaySink.
func (NopSink) SetStatus(string) {}

// SetInventory implements DisplaySink.
func (NopSink) SetInventory(string) {}

// SetVictory implements DisplaySink.
func (NopSink) SetVictory(bool) {}
