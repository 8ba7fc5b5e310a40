package tui

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestRenderMarkdown_Empty(t *testing.T) {
	if got := RenderMarkdown("   \n", 40); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
}

func TestRenderMarkdownNoColor_KeepsText(t *testing.T) {
	out := RenderMarkdownNoColor("## Keys\n\nPress `e` to edit.", 60)
	plain := xansi.Strip(out)
	if !strings.Contains(plain, "Keys") || !strings.Contains(plain, "to edit") {
		t.Fatalf("expected rendered text, got %q", plain)
	}
}

func TestRenderMarkdown_CachesRenderers(t *testing.T) {
	_ = renderMarkdown("hello", 33, "dark")
	mdRendererMu.Lock()
	_, ok := mdRenderers["dark:33"]
	mdRendererMu.Unlock()
	if !ok {
		t.Fatalf("expected renderer to be cached")
	}
}
