package tui

import (
	"errors"

	"tasklist/internal/tasks"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Init() tea.Cmd { return textinput.Blink }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.seenWindowSize = true
		m.resizeList()
		return m, nil

	case minibufferClearMsg:
		if msg.seq == m.minibufferSeq {
			m.minibufferText = ""
		}
		return m, nil

	case list.FilterMatchesMsg:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch {
		case m.modal.isOpen():
			return m.updateModal(msg)
		case m.showHelp:
			if key.Matches(msg, m.keys.Help, m.keys.Dismiss, m.keys.Quit) {
				m.showHelp = false
			}
			return m, nil
		case m.focus == focusInput:
			return m.updateInput(msg)
		default:
			return m.updateList(msg)
		}
	}

	// Non-key messages (cursor blink, list filter results) go to whatever is active.
	var cmd tea.Cmd
	switch {
	case m.modal.isOpen():
		m.modal, cmd = m.modal.update(msg)
	case m.focus == focusInput:
		m.input, cmd = m.input.update(msg)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While typing a filter every key belongs to the list.
	if m.list.SettingFilter() {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.FocusInput):
		return m, m.setFocus(focusInput)
	case key.Matches(msg, m.keys.Edit):
		if id, ok := selectedTaskID(m.list); ok {
			return m.beginEdit(id)
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if id, ok := selectedTaskID(m.list); ok {
			return m.deleteTask(id)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submitDraft()
	case key.Matches(msg, m.keys.FocusList):
		return m, m.setFocus(focusList)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.update(msg)
	if v := m.input.value(); v != m.session.Draft() {
		if err := m.session.Dispatch(m.ctx, tasks.SetDraft{Text: v}); err != nil {
			return m, tea.Batch(cmd, m.flashError(err))
		}
	}
	return m, cmd
}

func (m appModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		return m.saveEdit()
	case key.Matches(msg, m.keys.Dismiss):
		return m.cancelEdit()
	}
	var cmd tea.Cmd
	m.modal, cmd = m.modal.update(msg)
	return m, cmd
}

// submitDraft is Add-or-Update for the input field.
func (m appModel) submitDraft() (tea.Model, tea.Cmd) {
	before := len(m.session.Snapshot().Tasks)
	if err := m.session.Dispatch(m.ctx, tasks.AddOrUpdate{Text: m.session.Draft()}); err != nil {
		return m, m.flashError(err)
	}
	if after := m.session.Snapshot().Tasks; len(after) > before {
		// Clear any filter so the new task is visible, then select it.
		m.list.ResetFilter()
		cmd := m.afterDispatch()
		m.list.Select(len(after) - 1)
		return m, cmd
	}
	return m, m.afterDispatch()
}

func (m appModel) beginEdit(id string) (tea.Model, tea.Cmd) {
	if err := m.session.Dispatch(m.ctx, tasks.BeginEdit{ID: id}); err != nil {
		return m, m.flashError(err)
	}
	t, ok := m.session.Task(id)
	if !ok {
		// Cannot happen after a successful BeginEdit; keep the session consistent anyway.
		_ = m.session.Dispatch(m.ctx, tasks.CancelEdit{})
		return m, nil
	}
	m.modalErr = ""
	cmd := m.modal.open(t)
	m.input.blur()
	return m, tea.Batch(cmd, m.afterDispatch())
}

func (m appModel) deleteTask(id string) (tea.Model, tea.Cmd) {
	if err := m.session.Dispatch(m.ctx, tasks.Delete{ID: id}); err != nil {
		return m, m.flashError(err)
	}
	return m, m.afterDispatch()
}

func (m appModel) saveEdit() (tea.Model, tea.Cmd) {
	err := m.session.Dispatch(m.ctx, tasks.SaveEdit{Text: m.modal.draft()})
	switch {
	case err == nil:
		id := m.modal.taskID
		m.closeModal()
		cmd := m.afterDispatch()
		selectTaskByID(&m.list, id)
		return m, tea.Batch(cmd, m.flashInfo("Saved"))
	case errors.Is(err, tasks.ErrNotEditing):
		// The edit ended elsewhere; the dialog is stale and nothing was saved.
		m.closeModal()
		return m, m.afterDispatch()
	case errors.Is(err, tasks.ErrEmptyText):
		m.modalErr = "Task text can't be empty."
		return m, nil
	default:
		return m, m.flashError(err)
	}
}

func (m appModel) cancelEdit() (tea.Model, tea.Cmd) {
	if err := m.session.Dispatch(m.ctx, tasks.CancelEdit{}); err != nil {
		return m, m.flashError(err)
	}
	m.closeModal()
	return m, m.afterDispatch()
}

func (m *appModel) closeModal() {
	m.modal.close()
	m.modalErr = ""
	if m.focus == focusInput {
		_ = m.input.focus()
	}
}

func (m *appModel) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	if f == focusInput {
		return m.input.focus()
	}
	m.input.blur()
	return nil
}

// afterDispatch re-renders every view from the session snapshot and closes
// the dialog if its task is no longer the edit target.
func (m *appModel) afterDispatch() tea.Cmd {
	if m.modal.isOpen() {
		id, editing := m.session.Snapshot().EditTarget()
		if !editing || id != m.modal.taskID {
			m.logger.Debug("closing stale edit dialog", "task", m.modal.taskID)
			m.closeModal()
		}
	}
	m.input.sync(m.session.Draft())
	return m.refreshList()
}

// refreshList rebuilds the rows. The returned command re-runs an active
// filter over the new rows.
func (m *appModel) refreshList() tea.Cmd {
	snap := m.session.Snapshot()
	editingID, _ := snap.EditTarget()
	curID, hadSel := selectedTaskID(m.list)
	curIdx := m.list.Index()

	cmd := m.list.SetItems(taskRows(snap.Tasks, editingID))

	if hadSel && selectTaskByID(&m.list, curID) {
		return cmd
	}
	// The selected row is gone: keep the cursor at the same position, clamped.
	n := len(m.list.VisibleItems())
	if n == 0 {
		return cmd
	}
	if curIdx >= n {
		curIdx = n - 1
	}
	if curIdx < 0 {
		curIdx = 0
	}
	m.list.Select(curIdx)
	return cmd
}

func (m *appModel) resizeList() {
	m.list.SetSize(contentWidth(m.width), listHeight(m.height))
}

func (m *appModel) flashInfo(text string) tea.Cmd {
	return m.showMinibuffer(text, minibufferInfo)
}

func (m *appModel) flashError(err error) tea.Cmd {
	m.logger.Warn("action failed", "err", err)
	return m.showMinibuffer(err.Error(), minibufferError)
}

func (m *appModel) showMinibuffer(text string, kind minibufferKind) tea.Cmd {
	m.minibufferSeq++
	m.minibufferText = text
	m.minibufferKind = kind
	return clearMinibufferAfter(m.minibufferSeq)
}

var _ list.ItemDelegate = taskRowDelegate{}
