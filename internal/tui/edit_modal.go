package tui

import (
	"strings"

	"tasklist/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type editModalState int

const (
	editModalClosed editModalState = iota
	editModalOpen
)

// editModal edits one task in a local draft. Nothing reaches the session
// until the root dispatches SaveEdit with draft().
type editModal struct {
	state  editModalState
	taskID string
	input  textinput.Model
}

func newEditModal(charLimit int) editModal {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "Edit task"
	in.CharLimit = charLimit
	in.Cursor.Style = lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorAccent)
	return editModal{input: in}
}

func (e editModal) isOpen() bool { return e.state == editModalOpen }

func (e editModal) draft() string { return e.input.Value() }

// open moves Closed -> Open and seeds the draft from t, which the caller
// looks up live by ID at the moment of opening.
func (e *editModal) open(t model.Task) tea.Cmd {
	e.state = editModalOpen
	e.taskID = t.ID
	e.input.SetValue(t.Text)
	e.input.CursorEnd()
	return e.input.Focus()
}

// close moves to Closed and drops the draft.
func (e *editModal) close() {
	e.state = editModalClosed
	e.taskID = ""
	e.input.SetValue("")
	e.input.Blur()
}

func (e editModal) update(msg tea.Msg) (editModal, tea.Cmd) {
	if !e.isOpen() {
		return e, nil
	}
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e, cmd
}

func (e editModal) view(termW int, k keyMap, errText string) string {
	bodyW := modalBodyWidth(termW)
	e.input.Width = bodyW - 3

	lines := []string{renderInputLine(bodyW, e.input.View())}
	if strings.TrimSpace(errText) != "" {
		lines = append(lines, "", styleError().Width(bodyW).Render(errText))
	}

	saveBtn := lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true).
		Foreground(colorAccentFg).
		Background(colorAccent).
		Render("Save")
	lines = append(lines, "", lipgloss.PlaceHorizontal(bodyW, lipgloss.Right, saveBtn))

	help := k.Save.Help().Key + ": save   " + k.Dismiss.Help().Key + "/ctrl+g: discard"
	lines = append(lines, "", styleMuted().Width(bodyW).Render(help))

	return renderModalBox(termW, "Edit task", strings.Join(lines, "\n"))
}
