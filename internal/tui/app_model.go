package tui

import (
	"context"
	"io"

	"tasklist/internal/tasks"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/log"
)

// Options configures the list screen.
type Options struct {
	Title       string
	Placeholder string
	CharLimit   int
	// Theme is light, dark or auto.
	Theme  string
	Logger *log.Logger
}

// appModel is the root composition: it owns the session and the three
// views, turns key presses into tasks.Actions and re-renders from the
// session snapshot.
type appModel struct {
	ctx     context.Context
	session *tasks.Session
	logger  *log.Logger

	title string

	width  int
	height int
	// We treat the very first WindowSizeMsg as initial sizing, not a resize.
	seenWindowSize bool

	focus focusArea
	list  list.Model
	input taskInput
	modal editModal

	keys     keyMap
	help     help.Model
	showHelp bool

	minibufferText string
	minibufferKind minibufferKind
	minibufferSeq  int
	// modalErr is shown inside the edit dialog (e.g. rejected empty save).
	modalErr string
}

func newAppModel(ctx context.Context, sess *tasks.Session, opts Options) appModel {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	title := opts.Title
	if title == "" {
		title = "Simple ToDo App"
	}
	placeholder := opts.Placeholder
	if placeholder == "" {
		placeholder = "Enter task"
	}

	m := appModel{
		ctx:     ctx,
		session: sess,
		logger:  logger,
		title:   title,
		focus:   focusInput,
		list:    newTaskList(nil),
		input:   newTaskInput(placeholder, opts.CharLimit),
		modal:   newEditModal(opts.CharLimit),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	m.help.Styles.ShortKey = styleHeading()
	m.help.Styles.ShortDesc = styleMuted()
	m.help.Styles.ShortSeparator = styleMuted()

	m.refreshList()
	m.input.sync(sess.Draft())
	_ = m.input.focus()
	return m
}
