package tasks

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tasklist/internal/model"

	"github.com/charmbracelet/log"
)

// Session is the root state store for one run of the list screen. It owns
// the current State, reduces actions against it and mirrors the resulting
// effects into a Store.
//
// A Session is not safe for concurrent use; the TUI only touches it from
// its Update loop.
type Session struct {
	store   Store
	reducer Reducer
	state   State
	logger  *log.Logger
}

type Option func(*Session)

func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithAllowEmptyEdit(allow bool) Option {
	return func(s *Session) { s.reducer.AllowEmptyEdit = allow }
}

// WithIDGenerator overrides ID minting (tests use deterministic IDs).
func WithIDGenerator(f func() string) Option {
	return func(s *Session) { s.reducer.NewID = f }
}

// NewSession loads the current list from store. The session takes
// ownership of store; Close closes it.
func NewSession(ctx context.Context, store Store, opts ...Option) (*Session, error) {
	if store == nil {
		return nil, errors.New("nil store")
	}
	s := &Session{
		store:   store,
		reducer: Reducer{AllowEmptyEdit: true},
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	ts, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	s.state = State{Tasks: ts, Mode: Idle{}}
	return s, nil
}

// Dispatch reduces a and applies its effects. The new state is committed
// only after every effect reached the store.
func (s *Session) Dispatch(ctx context.Context, a Action) error {
	next, effects, err := s.reducer.Reduce(s.state, a)
	if err != nil {
		s.logger.Warn("action rejected", "action", a.actionName(), "err", err)
		return err
	}
	for _, e := range effects {
		if err := s.apply(ctx, e); err != nil {
			s.logger.Error("store write failed", "action", a.actionName(), "effect", e.Kind, "task", e.Task.ID, "err", err)
			return fmt.Errorf("%s: %w", a.actionName(), err)
		}
	}
	s.state = next
	if _, draftOnly := a.(SetDraft); !draftOnly {
		s.logger.Debug("action applied", "action", a.actionName(), "effects", len(effects), "tasks", len(next.Tasks))
	}
	return nil
}

func (s *Session) apply(ctx context.Context, e Effect) error {
	switch e.Kind {
	case EffectInserted:
		return s.store.Insert(ctx, e.Task)
	case EffectUpdated:
		return s.store.Update(ctx, e.Task)
	case EffectDeleted:
		return s.store.Delete(ctx, e.Task.ID)
	default:
		return fmt.Errorf("unknown effect %v", e.Kind)
	}
}

// Seed appends each non-blank text as a task, in order.
func (s *Session) Seed(ctx context.Context, texts ...string) error {
	for _, t := range texts {
		if err := s.Dispatch(ctx, AddOrUpdate{Text: t}); err != nil {
			return err
		}
	}
	return nil
}

// Snapshot returns the current state. Callers must not modify Tasks.
func (s *Session) Snapshot() State { return s.state }

func (s *Session) Tasks() []model.Task { return cloneTasks(s.state.Tasks) }

func (s *Session) Task(id string) (model.Task, bool) {
	if i := s.state.Index(id); i >= 0 {
		return s.state.Tasks[i], true
	}
	return model.Task{}, false
}

func (s *Session) Mode() Mode {
	if s.state.Mode == nil {
		return Idle{}
	}
	return s.state.Mode
}

func (s *Session) Draft() string { return s.state.Draft }

func (s *Session) Close() error { return s.store.Close() }
