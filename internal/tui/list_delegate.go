package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// taskRowDelegate renders a task as a single line: the text on the left and
// the edit/delete affordances on the right.
type taskRowDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
	empty    lipgloss.Style
}

func newTaskRowDelegate() taskRowDelegate {
	return taskRowDelegate{
		normal: lipgloss.NewStyle().
			Foreground(colorSurfaceFg).
			Background(colorRowBg),
		selected: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
		empty: styleMuted().Italic(true),
	}
}

func (d taskRowDelegate) Height() int  { return 1 }
func (d taskRowDelegate) Spacing() int { return 0 }
func (d taskRowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskRowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(taskRowItem)
	if !ok {
		return
	}
	fmt.Fprint(w, d.renderRow(row, m.Width(), index == m.Index()))
}

func (d taskRowDelegate) renderRow(row taskRowItem, width int, selected bool) string {
	if width < 4 {
		return ""
	}
	style := d.normal
	if selected {
		style = d.selected
	}

	affordances := " " + lipgloss.NewStyle().Foreground(colorEditGlyph).Render(glyphEdit()) +
		" " + lipgloss.NewStyle().Foreground(colorDeleteGlyph).Render(glyphDelete()) + " "
	affW := xansi.StringWidth(affordances)

	lead := "  "
	if selected {
		lead = glyphCursor() + " "
	}
	text := row.Title()
	if strings.TrimSpace(row.task.Text) == "" {
		text = d.empty.Render(text)
	}
	if row.editing {
		text += " " + styleMuted().Render("(editing)")
	}

	textW := width - affW
	if textW < 1 {
		// Too narrow for affordances; text only.
		return style.Render(fitLine(lead+text, width))
	}
	return style.Render(fitLine(lead+text, textW)) + affordances
}
