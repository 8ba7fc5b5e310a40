package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

type minibufferKind int

const (
	minibufferInfo minibufferKind = iota
	minibufferError
)

const minibufferTTL = 3 * time.Second

type minibufferClearMsg struct{ seq int }

func clearMinibufferAfter(seq int) tea.Cmd {
	return tea.Tick(minibufferTTL, func(time.Time) tea.Msg { return minibufferClearMsg{seq: seq} })
}
