package tasks

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"tasklist/internal/model"
)

func openBackends(t *testing.T) map[string]Store {
	t.Helper()
	ctx := context.Background()
	out := map[string]Store{}
	for _, b := range []string{BackendMemory, BackendSQLite} {
		st, err := OpenStore(ctx, b)
		if err != nil {
			t.Fatalf("open %s: %v", b, err)
		}
		t.Cleanup(func() { _ = st.Close() })
		out[b] = st
	}
	return out
}

func listTexts(t *testing.T, st Store) []string {
	t.Helper()
	ts, err := st.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	out := []string{}
	for _, x := range ts {
		out = append(out, x.Text)
	}
	return out
}

func TestStore_KeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	for name, st := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			for _, tk := range []model.Task{{ID: "a", Text: "one"}, {ID: "b", Text: "two"}, {ID: "c", Text: "two"}} {
				if err := st.Insert(ctx, tk); err != nil {
					t.Fatalf("insert: %v", err)
				}
			}
			if err := st.Update(ctx, model.Task{ID: "a", Text: "ONE"}); err != nil {
				t.Fatalf("update: %v", err)
			}
			if err := st.Delete(ctx, "b"); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if got, want := listTexts(t, st), []string{"ONE", "two"}; !reflect.DeepEqual(got, want) {
				t.Fatalf("expected %v, got %v", want, got)
			}
		})
	}
}

func TestStore_MissingIDs(t *testing.T) {
	ctx := context.Background()
	for name, st := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			if err := st.Update(ctx, model.Task{ID: "zzz", Text: "x"}); !errors.Is(err, ErrTaskNotFound) {
				t.Fatalf("update: expected ErrTaskNotFound, got %v", err)
			}
			if err := st.Delete(ctx, "zzz"); !errors.Is(err, ErrTaskNotFound) {
				t.Fatalf("delete: expected ErrTaskNotFound, got %v", err)
			}
		})
	}
}

func TestStore_DuplicateIDRejected(t *testing.T) {
	ctx := context.Background()
	for name, st := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			if err := st.Insert(ctx, model.Task{ID: "a", Text: "x"}); err != nil {
				t.Fatalf("insert: %v", err)
			}
			if err := st.Insert(ctx, model.Task{ID: "a", Text: "y"}); err == nil {
				t.Fatalf("expected duplicate insert to fail")
			}
		})
	}
}

func TestSQLiteStore_IsPrivatePerOpen(t *testing.T) {
	ctx := context.Background()
	a, err := OpenSQLiteStore(ctx)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer a.Close()
	b, err := OpenSQLiteStore(ctx)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer b.Close()

	if err := a.Insert(ctx, model.Task{ID: "a", Text: "only in a"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if got := listTexts(t, b); len(got) != 0 {
		t.Fatalf("expected second store to be empty, got %v", got)
	}
}

func TestOpenStore_UnknownBackend(t *testing.T) {
	if _, err := OpenStore(context.Background(), "postgres"); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
