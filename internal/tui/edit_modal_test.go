package tui

import (
	"strings"
	"testing"

	"tasklist/internal/model"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestEditModal_OpenSeedsAndCloseResets(t *testing.T) {
	e := newEditModal(100)
	if e.isOpen() {
		t.Fatalf("expected closed on construction")
	}
	_ = e.open(model.Task{ID: "t1", Text: "walk dog"})
	if !e.isOpen() || e.taskID != "t1" || e.draft() != "walk dog" {
		t.Fatalf("unexpected open state: open=%v id=%q draft=%q", e.isOpen(), e.taskID, e.draft())
	}
	e.close()
	if e.isOpen() || e.taskID != "" || e.draft() != "" {
		t.Fatalf("expected reset after close: open=%v id=%q draft=%q", e.isOpen(), e.taskID, e.draft())
	}
}

func TestEditModal_UpdateIgnoredWhenClosed(t *testing.T) {
	e := newEditModal(100)
	e, _ = e.update(runes("abc"))
	if e.draft() != "" {
		t.Fatalf("closed modal must ignore input, got %q", e.draft())
	}
}

func TestEditModal_ViewShowsErrorAndSave(t *testing.T) {
	e := newEditModal(100)
	_ = e.open(model.Task{ID: "t1", Text: "x"})
	out := xansi.Strip(e.view(80, defaultKeyMap(), "Task text can't be empty."))
	for _, want := range []string{"Edit task", "Save", "can't be empty", "discard"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in modal view:\n%s", want, out)
		}
	}
}
