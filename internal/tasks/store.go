package tasks

import (
	"context"
	"fmt"

	"tasklist/internal/model"
)

// Store holds the ordered task list for one session. Implementations keep
// insertion order and never write to disk.
type Store interface {
	List(ctx context.Context) ([]model.Task, error)
	Insert(ctx context.Context, t model.Task) error
	Update(ctx context.Context, t model.Task) error
	Delete(ctx context.Context, id string) error
	Close() error
}

// Backend names accepted by OpenStore.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// OpenStore returns the store for backend ("" means memory).
func OpenStore(ctx context.Context, backend string) (Store, error) {
	switch backend {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendSQLite:
		st, err := OpenSQLiteStore(ctx)
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown backend: %s", backend)
	}
}

// MemoryStore is a slice-backed Store.
type MemoryStore struct {
	tasks []model.Task
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) List(context.Context) ([]model.Task, error) {
	return cloneTasks(m.tasks), nil
}

func (m *MemoryStore) Insert(_ context.Context, t model.Task) error {
	if m.index(t.ID) >= 0 {
		return fmt.Errorf("insert %s: duplicate id", t.ID)
	}
	m.tasks = append(m.tasks, t)
	return nil
}

func (m *MemoryStore) Update(_ context.Context, t model.Task) error {
	i := m.index(t.ID)
	if i < 0 {
		return fmt.Errorf("update %s: %w", t.ID, ErrTaskNotFound)
	}
	m.tasks[i] = t
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	i := m.index(id)
	if i < 0 {
		return fmt.Errorf("delete %s: %w", id, ErrTaskNotFound)
	}
	m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
	return nil
}

func (m *MemoryStore) Close() error { return nil }

func (m *MemoryStore) index(id string) int {
	for i, t := range m.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
