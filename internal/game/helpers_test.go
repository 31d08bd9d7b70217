package game

import (
	"errors"
	"time"

	"github.com/vovakirdan/geomerge/internal/config"
	"github.com/vovakirdan/geomerge/internal/core"
	"github.com/vovakirdan/geomerge/internal/render"
)

// fakeRenderer is an in-memory rendering collaborator. It records every
// layer it is asked to draw so tests can assert on styles and tooltips.
type fakeRenderer struct {
	next    render.Handle
	layers  map[render.Handle]*fakeLayer
	center  core.WorldPoint
	half    float64 // viewport half-extent in degrees
	failAll bool

	drawCalls    int
	removeCalls  int
	styleCalls   int
	tooltipCalls int
	setViewCalls int
}

type fakeLayer struct {
	bounds  core.Bounds
	style   render.Style
	tooltip string
}

var errFakeRenderer = errors.New("fake renderer failure")

func newFakeRenderer(half float64) *fakeRenderer {
	return &fakeRenderer{
		layers: make(map[render.Handle]*fakeLayer),
		half:   half,
	}
}

func (r *fakeRenderer) DrawRectangle(b core.Bounds, st render.Style) (render.Handle, error) {
	if r.failAll {
		return render.NoLayer, errFakeRenderer
	}
	r.drawCalls++
	r.next++
	r.layers[r.next] = &fakeLayer{bounds: b, style: st}
	return r.next, nil
}

func (r *fakeRenderer) UpdateStyle(h render.Handle, st render.Style) error {
	if r.failAll {
		return errFakeRenderer
	}
	l, ok := r.layers[h]
	if !ok {
		return errors.New("fake renderer: unknown handle")
	}
	r.styleCalls++
	l.style = st
	return nil
}

func (r *fakeRenderer) BindTooltip(h render.Handle, text string) error {
	if r.failAll {
		return errFakeRenderer
	}
	l, ok := r.layers[h]
	if !ok {
		return errors.New("fake renderer: unknown handle")
	}
	r.tooltipCalls++
	l.tooltip = text
	return nil
}

func (r *fakeRenderer) RemoveLayer(h render.Handle) error {
	if r.failAll {
		return errFakeRenderer
	}
	if _, ok := r.layers[h]; !ok {
		return errors.New("fake renderer: unknown handle")
	}
	r.removeCalls++
	delete(r.layers, h)
	return nil
}

func (r *fakeRenderer) ViewportBounds() (core.Bounds, error) {
	if r.failAll {
		return core.Bounds{}, errFakeRenderer
	}
	return core.Bounds{
		SW: core.WorldPoint{Lat: r.center.Lat - r.half, Lng: r.center.Lng - r.half},
		NE: core.WorldPoint{Lat: r.center.Lat + r.half, Lng: r.center.Lng + r.half},
	}, nil
}

func (r *fakeRenderer) SetView(center core.WorldPoint) error {
	if r.failAll {
		return errFakeRenderer
	}
	r.setViewCalls++
	r.center = center
	return nil
}

// layerFor finds the fake layer drawn for a cell, by handle lookup through
// the grid.
func (r *fakeRenderer) layerFor(g *Grid, c core.CellCoord) *fakeLayer {
	cell, ok := g.CellAt(c)
	if !ok {
		return nil
	}
	return r.layers[cell.Handle]
}

// recordSink collects everything the session pushes to the display.
type recordSink struct {
	status    []string
	inventory []string
	victory   []bool
}

func (s *recordSink) SetStatus(text string)    { s.status = append(s.status, text) }
func (s *recordSink) SetInventory(text string) { s.inventory = append(s.inventory, text) }
func (s *recordSink) SetVictory(v bool)        { s.victory = append(s.victory, v) }

func (s *recordSink) lastStatus() string {
	if len(s.status) == 0 {
		return ""
	}
	return s.status[len(s.status)-1]
}

func (s *recordSink) lastInventory() string {
	if len(s.inventory) == 0 {
		return ""
	}
	return s.inventory[len(s.inventory)-1]
}

// manualScheduler queues tasks until the test fires them, standing in for
// virtual time.
type manualScheduler struct {
	tasks []func()
}

func (m *manualScheduler) After(_ time.Duration, fn func()) {
	m.tasks = append(m.tasks, fn)
}

// fire runs and clears all pending tasks.
func (m *manualScheduler) fire() {
	tasks := m.tasks
	m.tasks = nil
	for _, fn := range tasks {
		fn()
	}
}

// testConfig uses a 1-degree tile so cell (i,j) covers [i,i+1)x[j,j+1),
// which keeps coordinates readable in tests.
func testConfig() config.GameConfig {
	return config.GameConfig{
		Board: config.Board{
			TileSize:       1.0,
			ViewportBuffer: 1,
			HomeLat:        0.5,
			HomeLng:        0.5,
		},
		Spawn: config.Spawn{
			Radius:      8,
			Probability: 0, // tests place tokens explicitly
			Values: []config.ValueWeight{
				{Value: 1, Weight: 0.5},
				{Value: 2, Weight: 0.25},
				{Value: 4, Weight: 0.15},
				{Value: 8, Weight: 0.1},
			},
		},
		Rules: config.Rules{
			InteractionRange: 3,
			VictoryTarget:    16,
			FlashMillis:      250,
		},
	}
}

// newTestSession builds a started session over a fake renderer with a
// 5x5-cell viewport (plus buffer) centered on the player at cell (0,0).
func newTestSession(cfg config.GameConfig) (*Session, *fakeRenderer, *recordSink, *manualScheduler) {
	r := newFakeRenderer(2.5)
	sink := &recordSink{}
	sched := &manualScheduler{}
	s := NewSession(cfg, r, nil, sink, sched)
	if err := s.Start(); err != nil {
		panic(err)
	}
	return s, r, sink, sched
}

// placeToken puts a token into an active cell directly, bypassing the
// spawner, so interaction tests control the board exactly.
func placeToken(s *Session, c core.CellCoord, value int) *Cell {
	cell, ok := s.Grid().CellAt(c)
	if !ok {
		panic("placeToken: cell not active: " + c.Key())
	}
	cell.Token = &core.Token{Value: value}
	return cell
}
