package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if m.modal.isOpen() {
		return centerBlock(m.width, m.height, m.modal.view(m.width, m.keys, m.modalErr))
	}
	if m.showHelp {
		return centerBlock(m.width, m.height, m.viewHelp())
	}

	w := contentWidth(m.width)
	parts := []string{
		styleHeading().Render(m.title),
		"",
		m.viewList(w),
		"",
		m.input.view(w),
		m.viewMinibuffer(w),
		m.viewFooter(w),
	}
	body := strings.Join(parts, "\n")
	return lipgloss.NewStyle().PaddingLeft(outerMarginW).Render(body)
}

func (m appModel) viewList(w int) string {
	h := listHeight(m.height)
	if len(m.list.Items()) == 0 {
		empty := styleMuted().Render("No tasks yet. Type one below and press enter.")
		return normalizePane(empty, w, h)
	}
	return normalizePane(m.list.View(), w, h)
}

func (m appModel) viewMinibuffer(w int) string {
	if strings.TrimSpace(m.minibufferText) == "" {
		return ""
	}
	st := styleMuted()
	if m.minibufferKind == minibufferError {
		st = styleError()
	}
	return fitLine(st.Render(m.minibufferText), w)
}

func (m appModel) viewFooter(w int) string {
	m.help.Width = w
	switch m.focus {
	case focusInput:
		return m.help.View(m.keys.inputHelp())
	default:
		return m.help.View(m.keys.listHelp())
	}
}

func (m appModel) viewHelp() string {
	bodyW := modalBodyWidth(m.width)
	body := RenderMarkdown(KeysMarkdown(), bodyW)
	body += "\n\n" + styleMuted().Render("?/esc: close")
	return renderModalBox(m.width, m.title+" help", body)
}
