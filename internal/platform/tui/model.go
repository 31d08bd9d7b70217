package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/geomerge/internal/config"
	"github.com/vovakirdan/geomerge/internal/core"
	"github.com/vovakirdan/geomerge/internal/game"
	"github.com/vovakirdan/geomerge/internal/luck"
	"github.com/vovakirdan/geomerge/internal/storage"
)

// uiState is the display sink: the game core pushes plain strings here and
// the view reads them back out. Shared by pointer so sink writes survive
// Bubble Tea's value-copied model.
type uiState struct {
	status    string
	inventory string
	victory   bool
}

func (u *uiState) SetStatus(text string)    { u.status = text }
func (u *uiState) SetInventory(text string) { u.inventory = text }
func (u *uiState) SetVictory(achieved bool) { u.victory = achieved }

// Model is the Bubble Tea model for a play session.
type Model struct {
	session *game.Session
	canvas  *Canvas
	ui      *uiState
	store   *storage.Store
	cfg     config.GameConfig

	keys KeyMap
	help help.Model

	cursor   core.CellCoord
	width    int
	height   int
	quitting bool
	runSaved bool
	err      error
}

// NewModel creates a model and starts the underlying session.
func NewModel(cfg config.GameConfig, store *storage.Store, fn luck.Func, sched game.Scheduler, width, height int) Model {
	ui := &uiState{}
	canvas := NewCanvas(cfg.Board.TileSize, mapCols(width), mapRows(height))
	session := game.NewSession(cfg, canvas, fn, ui, sched)

	m := Model{
		session: session,
		canvas:  canvas,
		ui:      ui,
		store:   store,
		cfg:     cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
	}

	if err := session.Start(); err != nil {
		m.err = err
		return m
	}
	m.cursor = session.PlayerCell()
	return m
}

// mapCols converts terminal width to visible cell columns (2 chars/cell).
func mapCols(width int) int {
	return core.Max(width/2, 1)
}

// mapRows converts terminal height to visible cell rows, reserving the
// header, status, inventory, and help lines.
func mapRows(height int) int {
	return core.Max(height-4, 1)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TaskMsg:
		msg.Run()
		return m, nil
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveRun()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.North):
		return m.move(core.DirNorth)
	case key.Matches(msg, m.keys.South):
		return m.move(core.DirSouth)
	case key.Matches(msg, m.keys.West):
		return m.move(core.DirWest)
	case key.Matches(msg, m.keys.East):
		return m.move(core.DirEast)

	case key.Matches(msg, m.keys.CursorN):
		return m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.CursorS):
		return m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.CursorW):
		return m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.CursorE):
		return m.moveCursor(0, 1)

	case key.Matches(msg, m.keys.Center):
		m.cursor = m.session.PlayerCell()
		return m, nil

	case key.Matches(msg, m.keys.Interact):
		return m.interact(m.cursor)
	}

	return m, nil
}

// handleMouse lets a left click target any visible cell directly.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	cell, ok := m.cellAtScreen(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	m.cursor = cell
	return m.interact(cell)
}

// handleResize adapts the canvas to the new terminal size and refreshes
// the grid against the changed viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.canvas.Resize(mapCols(msg.Width), mapRows(msg.Height))

	if err := m.session.Refresh(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, nil
}

// move walks the player one cell and snaps the cursor to them.
func (m Model) move(d core.Dir) (tea.Model, tea.Cmd) {
	if err := m.session.Move(d); err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.cursor = m.session.PlayerCell()
	return m, nil
}

// moveCursor shifts the target cursor, clamped to the visible window.
func (m Model) moveCursor(di, dj int) (tea.Model, tea.Cmd) {
	next := m.cursor.Add(di, dj)
	visible := m.canvas.VisibleCells()
	next.I = core.Clamp(next.I, visible.MinI, visible.MaxI)
	next.J = core.Clamp(next.J, visible.MinJ, visible.MaxJ)
	m.cursor = next
	return m, nil
}

// interact dispatches a click on the target cell.
func (m Model) interact(cell core.CellCoord) (tea.Model, tea.Cmd) {
	if _, err := m.session.HandleClick(cell); err != nil {
		m.err = err
		return m, tea.Quit
	}
	if m.ui.victory {
		m.saveRun()
	}
	return m, nil
}

// saveRun persists the run result once. Best effort: a failed save never
// interrupts play.
func (m *Model) saveRun() {
	if m.store == nil || m.runSaved {
		return
	}
	if m.session.Points() == 0 && !m.session.Victory() {
		return
	}

	//nolint:errcheck // Best-effort save, session continues regardless
	m.store.SaveRun(storage.RunEntry{
		Points:    m.session.Points(),
		BestToken: m.session.BestToken(),
		Victory:   m.session.Victory(),
		Duration:  time.Since(m.session.StartedAt()),
	})
	m.runSaved = true
}

// cellAtScreen maps terminal coordinates to a cell, if the position falls
// inside the map area.
func (m Model) cellAtScreen(x, y int) (core.CellCoord, bool) {
	visible := m.canvas.VisibleCells()
	row := y - headerLines
	col := x / cellWidth

	if row < 0 || row > visible.MaxI-visible.MinI {
		return core.CellCoord{}, false
	}
	if col < 0 || col > visible.MaxJ-visible.MinJ {
		return core.CellCoord{}, false
	}

	// Screen rows run north to south.
	return core.Cell(visible.MaxI-row, visible.MinJ+col), true
}

// Run starts a Bubble Tea program for one play session on the local
// terminal.
func Run(cfg config.GameConfig, store *storage.Store, fn luck.Func, width, height int) error {
	sched := NewProgramScheduler()
	model := NewModel(cfg, store, fn, sched, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // click-to-interact
	)
	sched.Attach(p)

	_, err := p.Run()
	return err
}
