package tasks

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"tasklist/internal/model"

	"github.com/charmbracelet/log"
)

type failingStore struct {
	*MemoryStore
	failUpdate bool
}

func (f failingStore) Update(ctx context.Context, t model.Task) error {
	if f.failUpdate {
		return errors.New("disk on fire")
	}
	return f.MemoryStore.Update(ctx, t)
}

func newTestSession(t *testing.T, backend string, opts ...Option) *Session {
	t.Helper()
	ctx := context.Background()
	st, err := OpenStore(ctx, backend)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	opts = append([]Option{WithIDGenerator(seqIDs())}, opts...)
	s, err := NewSession(ctx, st, opts...)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSession_StoreMirrorsState(t *testing.T) {
	ctx := context.Background()
	for _, backend := range []string{BackendMemory, BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			s := newTestSession(t, backend)
			if err := s.Seed(ctx, "a", "b", "c"); err != nil {
				t.Fatalf("seed: %v", err)
			}
			if err := s.Dispatch(ctx, BeginEdit{ID: "task-2"}); err != nil {
				t.Fatalf("begin edit: %v", err)
			}
			if err := s.Dispatch(ctx, SaveEdit{Text: "B"}); err != nil {
				t.Fatalf("save edit: %v", err)
			}
			if err := s.Dispatch(ctx, Delete{ID: "task-1"}); err != nil {
				t.Fatalf("delete: %v", err)
			}

			want := []string{"B", "c"}
			if got := s.Snapshot().Texts(); !reflect.DeepEqual(got, want) {
				t.Fatalf("state: expected %v, got %v", want, got)
			}
			if got := listTexts(t, s.store); !reflect.DeepEqual(got, want) {
				t.Fatalf("store: expected %v, got %v", want, got)
			}
		})
	}
}

func TestSession_DraftFlow(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(t, BackendMemory)

	if err := s.Dispatch(ctx, SetDraft{Text: "buy milk"}); err != nil {
		t.Fatalf("set draft: %v", err)
	}
	if s.Draft() != "buy milk" {
		t.Fatalf("expected draft, got %q", s.Draft())
	}
	if err := s.Dispatch(ctx, AddOrUpdate{Text: s.Draft()}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if s.Draft() != "" {
		t.Fatalf("expected draft cleared after add, got %q", s.Draft())
	}
	tk, ok := s.Task("task-1")
	if !ok || tk.Text != "buy milk" {
		t.Fatalf("expected task-1=buy milk, got %+v ok=%v", tk, ok)
	}
}

func TestSession_StoreFailureDoesNotCommit(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()
	s, err := NewSession(ctx, failingStore{MemoryStore: mem, failUpdate: true}, WithIDGenerator(seqIDs()))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if err := s.Seed(ctx, "a"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := s.Dispatch(ctx, BeginEdit{ID: "task-1"}); err != nil {
		t.Fatalf("begin edit: %v", err)
	}
	err = s.Dispatch(ctx, SaveEdit{Text: "b"})
	if err == nil || !strings.Contains(err.Error(), "save_edit") {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if got := s.Snapshot().Texts(); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("expected uncommitted state, got %v", got)
	}
	if _, ok := s.Mode().(Editing); !ok {
		t.Fatalf("expected to still be editing, got %#v", s.Mode())
	}
}

func TestSession_LoadsExistingStore(t *testing.T) {
	ctx := context.Background()
	mem := NewMemoryStore()
	_ = mem.Insert(ctx, model.Task{ID: "x", Text: "pre"})
	s, err := NewSession(ctx, mem)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if got := s.Snapshot().Texts(); !reflect.DeepEqual(got, []string{"pre"}) {
		t.Fatalf("expected [pre], got %v", got)
	}
	if _, ok := s.Mode().(Idle); !ok {
		t.Fatalf("expected Idle, got %#v", s.Mode())
	}
}

func TestSession_LogsRejectedActions(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s := newTestSession(t, BackendMemory, WithLogger(logger), WithAllowEmptyEdit(false))

	if err := s.Dispatch(ctx, Delete{ID: "missing"}); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if !strings.Contains(buf.String(), "action rejected") {
		t.Fatalf("expected rejection to be logged, got %q", buf.String())
	}
}

func TestSession_WhitespaceTaskReachesStore(t *testing.T) {
	ctx := context.Background()
	for _, backend := range []string{BackendMemory, BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			s := newTestSession(t, backend)
			if err := s.Dispatch(ctx, AddOrUpdate{Text: "  "}); err != nil {
				t.Fatalf("add: %v", err)
			}
			want := []string{"  "}
			if got := s.Snapshot().Texts(); !reflect.DeepEqual(got, want) {
				t.Fatalf("state: expected %q, got %q", want, got)
			}
			if got := listTexts(t, s.store); !reflect.DeepEqual(got, want) {
				t.Fatalf("store: expected %q, got %q", want, got)
			}
		})
	}
}
