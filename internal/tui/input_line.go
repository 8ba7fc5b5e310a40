package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const minInputLineW = 10

// renderInputLine draws a text field as one padded row of exactly width
// cells on the input background. Task text is single-line, so any line
// breaks in the field view are flattened to spaces.
func renderInputLine(width int, fieldView string) string {
	width = max(width, minInputLineW)

	flat := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(fieldView)
	row := lipgloss.PlaceHorizontal(
		width,
		lipgloss.Left,
		" "+flat+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(row) <= width {
		return row
	}
	// Cursor styling can push the row past width; cut and reset attributes.
	return xansi.Cut(row, 0, width) + xansi.ResetStyle
}
