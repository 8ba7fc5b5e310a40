package tui

import (
	"context"

	"tasklist/internal/tasks"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the list screen for sess until the user quits.
func Run(ctx context.Context, sess *tasks.Session, opts Options) error {
	applyThemePreference(opts.Theme)
	applyColorProfilePreference()
	applyGlyphPreference()

	m := newAppModel(ctx, sess, opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
