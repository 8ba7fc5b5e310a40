package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// taskInput is the new-task field. Its value mirrors the session draft; it
// never clears itself.
type taskInput struct {
	input textinput.Model
}

func newTaskInput(placeholder string, charLimit int) taskInput {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	in.Cursor.Style = lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorAccent)
	return taskInput{input: in}
}

func (t *taskInput) focus() tea.Cmd { return t.input.Focus() }
func (t *taskInput) blur()          { t.input.Blur() }
func (t taskInput) focused() bool   { return t.input.Focused() }
func (t taskInput) value() string   { return t.input.Value() }

// sync makes the field show draft, keeping the cursor at the end.
func (t *taskInput) sync(draft string) {
	if t.input.Value() == draft {
		return
	}
	t.input.SetValue(draft)
	t.input.CursorEnd()
}

func (t taskInput) update(msg tea.Msg) (taskInput, tea.Cmd) {
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

// view renders the field and the add button on one line of width w.
func (t taskInput) view(w int) string {
	btn := lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(colorAccentFg).
		Background(colorAccent).
		Render(glyphAdd())
	if !t.focused() {
		btn = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(colorSurfaceFg).
			Background(colorControlBg).
			Render(glyphAdd())
	}
	fieldW := w - xansi.StringWidth(btn) - 1
	t.input.Width = fieldW - 3
	return renderInputLine(fieldW, t.input.View()) + " " + btn
}
