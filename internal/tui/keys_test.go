package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyMap_CoreBindings(t *testing.T) {
	k := defaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		b    key.Binding
	}{
		{"e edits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}}, k.Edit},
		{"enter edits", tea.KeyMsg{Type: tea.KeyEnter}, k.Edit},
		{"d deletes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, k.Delete},
		{"delete key deletes", tea.KeyMsg{Type: tea.KeyDelete}, k.Delete},
		{"ctrl+s saves", tea.KeyMsg{Type: tea.KeyCtrlS}, k.Save},
		{"esc dismisses", tea.KeyMsg{Type: tea.KeyEsc}, k.Dismiss},
		{"ctrl+g dismisses", tea.KeyMsg{Type: tea.KeyCtrlG}, k.Dismiss},
		{"tab focuses input", tea.KeyMsg{Type: tea.KeyTab}, k.FocusInput},
	}
	for _, tt := range tests {
		if !key.Matches(tt.msg, tt.b) {
			t.Errorf("%s: %q did not match %v", tt.name, tt.msg.String(), tt.b.Keys())
		}
	}
}

func TestKeysMarkdown_ListsEveryArea(t *testing.T) {
	md := KeysMarkdown()
	for _, want := range []string{"## Task list", "## New task field", "## Edit dialog", "`ctrl+s`", "| `d` `x` `delete` | delete |"} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected %q in:\n%s", want, md)
		}
	}
}
