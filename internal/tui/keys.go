package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds every binding the screen reacts to. Bindings are grouped by
// the focused component; the same key can mean different things per group.
type keyMap struct {
	// List
	Up         key.Binding
	Down       key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Filter     key.Binding
	FocusInput key.Binding
	Help       key.Binding
	Quit       key.Binding

	// Input
	Submit    key.Binding
	FocusList key.Binding

	// Edit dialog
	Save    key.Binding
	Dismiss key.Binding

	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "ctrl+p"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "ctrl+n"),
			key.WithHelp("↓/j", "down"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x", "delete"),
			key.WithHelp("d", "delete"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		FocusInput: key.NewBinding(
			key.WithKeys("tab", "a", "i"),
			key.WithHelp("a/tab", "new task"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add"),
		),
		FocusList: key.NewBinding(
			key.WithKeys("tab", "esc", "shift+tab"),
			key.WithHelp("tab/esc", "list"),
		),
		Save: key.NewBinding(
			key.WithKeys("enter", "ctrl+s"),
			key.WithHelp("enter", "save"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "ctrl+g"),
			key.WithHelp("esc", "discard"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// bindingSet adapts a slice of bindings to help.KeyMap.
type bindingSet []key.Binding

func (b bindingSet) ShortHelp() []key.Binding  { return b }
func (b bindingSet) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

func (k keyMap) listHelp() bindingSet {
	return bindingSet{k.Up, k.Down, k.Edit, k.Delete, k.FocusInput, k.Filter, k.Help, k.Quit}
}

func (k keyMap) inputHelp() bindingSet {
	return bindingSet{k.Submit, k.FocusList, k.ForceQuit}
}

func (k keyMap) modalHelp() bindingSet {
	return bindingSet{k.Save, k.Dismiss}
}

// KeysMarkdown documents the key bindings as Markdown tables, one per
// focus area.
func KeysMarkdown() string {
	k := defaultKeyMap()
	var b strings.Builder
	b.WriteString("# Keys\n")
	section := func(title string, bindings []key.Binding) {
		b.WriteString("\n## " + title + "\n\n")
		b.WriteString("| Keys | Action |\n|---|---|\n")
		for _, kb := range bindings {
			keys := make([]string, 0, len(kb.Keys()))
			for _, s := range kb.Keys() {
				keys = append(keys, "`"+s+"`")
			}
			b.WriteString("| " + strings.Join(keys, " ") + " | " + kb.Help().Desc + " |\n")
		}
	}
	section("Task list", k.listHelp())
	section("New task field", k.inputHelp())
	section("Edit dialog", k.modalHelp())
	return b.String()
}
