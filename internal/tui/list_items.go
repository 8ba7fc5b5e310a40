package tui

import (
	"strings"

	"tasklist/internal/model"

	"github.com/charmbracelet/bubbles/list"
)

// taskRowItem is one row of the task list. It carries the task's stable ID
// so row actions survive filtering and deletions above it.
type taskRowItem struct {
	task    model.Task
	editing bool
}

func (i taskRowItem) FilterValue() string { return i.task.Text }

func (i taskRowItem) Title() string {
	if strings.TrimSpace(i.task.Text) == "" {
		return "(empty)"
	}
	return i.task.Text
}

func taskRows(ts []model.Task, editingID string) []list.Item {
	items := make([]list.Item, 0, len(ts))
	for _, t := range ts {
		items = append(items, taskRowItem{task: t, editing: t.ID == editingID})
	}
	return items
}

func newTaskList(items []list.Item) list.Model {
	l := list.New(items, newTaskRowDelegate(), 0, 0)
	l.Title = "Tasks"
	// We render our own title, footer and help, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("task", "tasks")
	l.DisableQuitKeybindings()
	// "?" belongs to the app help overlay.
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)
	// Add Emacs-style navigation aliases (common muscle memory).
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}

func selectedTaskID(l list.Model) (string, bool) {
	if it, ok := l.SelectedItem().(taskRowItem); ok {
		return it.task.ID, true
	}
	return "", false
}

func selectTaskByID(l *list.Model, id string) bool {
	for i, it := range l.VisibleItems() {
		if row, ok := it.(taskRowItem); ok && row.task.ID == id {
			l.Select(i)
			return true
		}
	}
	return false
}
