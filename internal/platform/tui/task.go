// Package tui provides the Bubble Tea integration for geomerge. It hosts
// the terminal map renderer, input mapping, and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TaskMsg carries a deferred callback back onto the update loop. All game
// state is owned by that loop, so scheduled work must arrive as a message
// rather than run on the timer goroutine.
type TaskMsg struct {
	Run func()
}

// ProgramScheduler implements game.Scheduler by routing callbacks through
// a Bubble Tea program. Until a program is attached, tasks are dropped —
// they are cosmetic by contract.
type ProgramScheduler struct {
	program *tea.Program
}

// NewProgramScheduler creates a detached scheduler.
func NewProgramScheduler() *ProgramScheduler {
	return &ProgramScheduler{}
}

// Attach binds the scheduler to a running program.
func (s *ProgramScheduler) Attach(p *tea.Program) {
	s.program = p
}

// After implements game.Scheduler.
func (s *ProgramScheduler) After(d time.Duration, fn func()) {
	if s.program == nil {
		return
	}
	p := s.program
	time.AfterFunc(d, func() {
		p.Send(TaskMsg{Run: fn})
	})
}
