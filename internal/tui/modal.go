package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	modalMaxW = 72
	modalMinW = 24
)

// modalBodyWidth is the inner width of a modal for a terminal width:
// roughly 90% of the screen, clamped.
func modalBodyWidth(termW int) int {
	w := termW * 9 / 10
	if w > modalMaxW {
		w = modalMaxW
	}
	if w < modalMinW {
		w = modalMinW
	}
	// Border (2) + padding (4).
	return w - 6
}

func renderModalBox(termW int, title string, content string) string {
	bodyW := modalBodyWidth(termW)

	header := lipgloss.NewStyle().
		Width(bodyW).
		Bold(true).
		Foreground(colorHeadingFg).
		Background(colorModalHeaderBg).
		Padding(0, 1).
		Render(strings.TrimSpace(title))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorModalBorder).
		Background(colorModalSurfaceBg).
		Padding(1, 2)

	return box.Render(header + "\n\n" + content)
}
