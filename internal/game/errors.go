package game

import "errors"

var (
	// ErrRendererNotReady is returned when an operation that needs the
	// rendering collaborator runs before one is attached. This is a
	// sequencing bug in the caller, never a user mistake.
	ErrRendererNotReady = errors.New("game: renderer used before initialization")

	// ErrInvalidCellState is returned when an active cell violates a
	// lifecycle invariant (for example, no visual handle). This should
	// never happen; it is surfaced loudly instead of being ignored.
	ErrInvalidCellState = errors.New("game: active cell in invalid state")
)
