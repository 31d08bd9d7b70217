package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/geomerge/internal/core"
	"github.com/vovakirdan/geomerge/internal/render"
)

const (
	cellWidth   = 2 // terminal columns per cell
	headerLines = 1 // lines above the map area
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	playerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	victoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// styleFor resolves a layer style to a lipgloss style. Flash highlights get
// bold on top of the color.
func styleFor(st render.Style) lipgloss.Style {
	s, ok := colorStyles[st.Color]
	if !ok {
		s = colorStyles[core.ColorDefault]
	}
	if st.Flash {
		s = s.Bold(true)
	}
	return s
}

// glyphFor formats a cell's content in exactly cellWidth characters.
func glyphFor(tok *core.Token, hasLayer bool) string {
	switch {
	case tok != nil && tok.Value < 100:
		return fmt.Sprintf("%-2d", tok.Value)
	case tok != nil:
		// Three-digit tokens overflow the cell; show the hundreds digit
		// plus a marker.
		return fmt.Sprintf("%d+", tok.Value/100)
	case hasLayer:
		return "· "
	default:
		return "  "
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render("error: "+m.err.Error()) + "\n"
	}
	if m.quitting {
		return fmt.Sprintf("final score: %d points\n", m.session.Points())
	}

	var sb strings.Builder
	sb.WriteString(m.viewHeader())
	sb.WriteByte('\n')
	sb.WriteString(m.viewMap())
	sb.WriteByte('\n')
	sb.WriteString(m.viewStatus())
	sb.WriteByte('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// viewHeader renders the title line with score and target.
func (m Model) viewHeader() string {
	title := fmt.Sprintf("geomerge — merge to %d", m.cfg.Rules.VictoryTarget)
	score := fmt.Sprintf("%d pts", m.session.Points())
	if m.ui.victory {
		score = victoryStyle.Render("VICTORY — " + score)
	}

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(score)
	if gap < 1 {
		gap = 1
	}
	return headerStyle.Render(title) + strings.Repeat(" ", gap) + score
}

// viewMap renders the visible cell window, north at the top. The player
// marker and the cursor highlight are drawn over the layer styles.
func (m Model) viewMap() string {
	visible := m.canvas.VisibleCells()
	playerCell := m.session.PlayerCell()

	var sb strings.Builder
	for i := visible.MaxI; i >= visible.MinI; i-- {
		if i < visible.MaxI {
			sb.WriteByte('\n')
		}
		for j := visible.MinJ; j <= visible.MaxJ; j++ {
			sb.WriteString(m.renderCell(core.Cell(i, j), playerCell))
		}
	}
	return sb.String()
}

// renderCell paints a single cell: glyph from the grid state, color from
// the canvas layer, overlays for player and cursor.
func (m Model) renderCell(c core.CellCoord, playerCell core.CellCoord) string {
	st, hasLayer := m.canvas.StyleAt(c)

	var tok *core.Token
	if cell, ok := m.session.Grid().CellAt(c); ok {
		tok = cell.Token
	}

	text := glyphFor(tok, hasLayer)
	if c == playerCell {
		if tok == nil {
			text = "@ "
		}
		return playerStyle.Render(text)
	}
	if c == m.cursor {
		return cursorStyle.Render(text)
	}
	return styleFor(st).Render(text)
}

// viewStatus renders the status and inventory line, with the tooltip of the
// targeted cell when one is bound.
func (m Model) viewStatus() string {
	parts := []string{m.ui.status, m.ui.inventory}
	if tip, ok := m.canvas.TooltipAt(m.cursor); ok && tip != "" {
		parts = append(parts, "target: "+tip)
	}
	return statusStyle.Render(strings.Join(parts, " | "))
}
