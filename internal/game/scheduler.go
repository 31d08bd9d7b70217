package game

import "time"

// Scheduler defers purely cosmetic work, such as reverting an interaction
// flash. Implementations must invoke the callback on the goroutine that
// owns game state; the platform layer routes callbacks through its own
// event loop. Tasks need no cancellation — last write wins on a cell's
// visual state.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// FuncScheduler adapts a function to the Scheduler interface.
type FuncScheduler func(d time.Duration, fn func())

// After implements Scheduler.
func (f FuncScheduler) After(d time.Duration, fn func()) {
	f(d, fn)
}

// NopScheduler drops all scheduled tasks. Useful for headless contexts
// where visual feedback has nowhere to go.
type NopScheduler struct{}

// After implements Scheduler by discarding the task.
func (NopScheduler) After(time.Duration, func()) {}
