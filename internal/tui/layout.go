package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	maxContentW  = 96
	minContentW  = 24
	outerMarginW = 2
	minListH     = 3
	// title + gap above the list; gap + input + minibuffer + footer below it.
	chromeLinesAbove = 2
	chromeLinesBelow = 4
)

func contentWidth(termW int) int {
	w := termW - 2*outerMarginW
	if w > maxContentW {
		w = maxContentW
	}
	if w < minContentW {
		w = minContentW
	}
	return w
}

func listHeight(termH int) int {
	h := termH - chromeLinesAbove - chromeLinesBelow
	if h < minListH {
		h = minListH
	}
	return h
}

// normalizePane forces s to be exactly width columns wide (ANSI-aware) and height
// lines tall, so the footer never jumps when the list shrinks.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := strings.Split(s, "\n")

	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	for i := range lines {
		lines[i] = fitLine(lines[i], width)
	}

	return strings.Join(lines, "\n")
}

// fitLine pads or truncates ln to exactly width cells, marking truncation
// with an ellipsis.
func fitLine(ln string, width int) string {
	w := xansi.StringWidth(ln)
	if w > width {
		switch {
		case width <= 0:
			ln = ""
		case width == 1:
			ln = xansi.Cut(ln, 0, 1)
		default:
			ln = xansi.Cut(ln, 0, width-1) + "…"
		}
		w = xansi.StringWidth(ln)
	}
	if w < width {
		ln += strings.Repeat(" ", width-w)
	}
	return ln
}

// centerBlock places block in the middle of a termW x termH screen.
func centerBlock(termW, termH int, block string) string {
	if termW <= 0 || termH <= 0 {
		return block
	}
	return lipgloss.Place(termW, termH, lipgloss.Center, lipgloss.Center, block,
		lipgloss.WithWhitespaceChars(" "))
}
