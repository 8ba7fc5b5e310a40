package tasks

import (
	"fmt"
	"strings"

	"tasklist/internal/model"
)

// Mode is either Idle or Editing.
type Mode interface {
	isMode()
}

// Idle means no edit is in progress.
type Idle struct{}

// Editing names the task currently open in the edit modal.
type Editing struct {
	ID string
}

func (Idle) isMode()    {}
func (Editing) isMode() {}

// State is the whole of the list screen's data: the tasks, the draft for a
// new task, and the edit mode. Values are treated as immutable; Reduce
// returns a new State rather than mutating its input.
type State struct {
	Tasks []model.Task
	Draft string
	Mode  Mode
}

// EditTarget returns the ID being edited, if any. A nil Mode counts as Idle.
func (s State) EditTarget() (string, bool) {
	if e, ok := s.Mode.(Editing); ok {
		return e.ID, true
	}
	return "", false
}

// Index returns the display position of id, or -1.
func (s State) Index(id string) int {
	for i, t := range s.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Texts returns the task texts in display order.
func (s State) Texts() []string {
	out := make([]string, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		out = append(out, t.Text)
	}
	return out
}

// Action is an intent raised by a view.
type Action interface {
	actionName() string
}

// AddOrUpdate appends Text as a new task, or replaces the edit target's
// text when an edit is in progress. Empty text is ignored.
type AddOrUpdate struct{ Text string }

// SetDraft replaces the new-task draft.
type SetDraft struct{ Text string }

// BeginEdit enters Editing for ID and clears the draft.
type BeginEdit struct{ ID string }

// Delete removes the task with ID.
type Delete struct{ ID string }

// SaveEdit replaces the edit target's text and returns to Idle.
type SaveEdit struct{ Text string }

// CancelEdit returns to Idle without changing any task.
type CancelEdit struct{}

func (AddOrUpdate) actionName() string { return "add_or_update" }
func (SetDraft) actionName() string    { return "set_draft" }
func (BeginEdit) actionName() string   { return "begin_edit" }
func (Delete) actionName() string      { return "delete" }
func (SaveEdit) actionName() string    { return "save_edit" }
func (CancelEdit) actionName() string  { return "cancel_edit" }

// EffectKind says what a reducer step requires of the store.
type EffectKind int

const (
	EffectInserted EffectKind = iota
	EffectUpdated
	EffectDeleted
)

func (k EffectKind) String() string {
	switch k {
	case EffectInserted:
		return "inserted"
	case EffectUpdated:
		return "updated"
	case EffectDeleted:
		return "deleted"
	default:
		return fmt.Sprintf("effect(%d)", int(k))
	}
}

// Effect is one store mutation produced by Reduce.
type Effect struct {
	Kind EffectKind
	Task model.Task
}

// Reducer holds the knobs Reduce needs beyond State and Action.
type Reducer struct {
	// NewID mints IDs for appended tasks. Defaults to NewID.
	NewID func() string
	// AllowEmptyEdit permits SaveEdit with blank text. Add always rejects
	// blank text; this keeps the two asymmetric unless switched off.
	AllowEmptyEdit bool
}

// Reduce applies a to s. On error the returned State is s and no effects
// are produced.
func (r Reducer) Reduce(s State, a Action) (State, []Effect, error) {
	switch a := a.(type) {
	case SetDraft:
		s.Draft = a.Text
		return s, nil, nil

	case AddOrUpdate:
		// Empty text is ignored in both modes; the edit target stays put.
		// Whitespace counts as text.
		if a.Text == "" {
			return s, nil, nil
		}
		if id, ok := s.EditTarget(); ok {
			return r.replace(s, id, a.Text)
		}
		t := model.Task{ID: r.newID(), Text: a.Text}
		next := s
		next.Tasks = append(cloneTasks(s.Tasks), t)
		next.Draft = ""
		return next, []Effect{{Kind: EffectInserted, Task: t}}, nil

	case BeginEdit:
		if s.Index(a.ID) < 0 {
			return s, nil, fmt.Errorf("begin edit %s: %w", a.ID, ErrTaskNotFound)
		}
		next := s
		next.Mode = Editing{ID: a.ID}
		next.Draft = ""
		return next, nil, nil

	case Delete:
		idx := s.Index(a.ID)
		if idx < 0 {
			return s, nil, fmt.Errorf("delete %s: %w", a.ID, ErrTaskNotFound)
		}
		removed := s.Tasks[idx]
		next := s
		next.Tasks = make([]model.Task, 0, len(s.Tasks)-1)
		next.Tasks = append(next.Tasks, s.Tasks[:idx]...)
		next.Tasks = append(next.Tasks, s.Tasks[idx+1:]...)
		if id, ok := s.EditTarget(); ok && id == a.ID {
			next.Mode = Idle{}
		}
		return next, []Effect{{Kind: EffectDeleted, Task: removed}}, nil

	case SaveEdit:
		id, ok := s.EditTarget()
		if !ok {
			return s, nil, ErrNotEditing
		}
		if !r.AllowEmptyEdit && strings.TrimSpace(a.Text) == "" {
			return s, nil, fmt.Errorf("save edit %s: %w", id, ErrEmptyText)
		}
		next, effects, err := r.replace(s, id, a.Text)
		if err != nil {
			return s, nil, err
		}
		// The add path clears the draft; saving from the modal leaves it.
		next.Draft = s.Draft
		return next, effects, nil

	case CancelEdit:
		next := s
		next.Mode = Idle{}
		return next, nil, nil

	default:
		return s, nil, fmt.Errorf("unknown action %T", a)
	}
}

func (r Reducer) replace(s State, id, text string) (State, []Effect, error) {
	idx := s.Index(id)
	if idx < 0 {
		return s, nil, fmt.Errorf("update %s: %w", id, ErrTaskNotFound)
	}
	next := s
	next.Tasks = cloneTasks(s.Tasks)
	next.Tasks[idx].Text = text
	next.Mode = Idle{}
	next.Draft = ""
	return next, []Effect{{Kind: EffectUpdated, Task: next.Tasks[idx]}}, nil
}

func (r Reducer) newID() string {
	if r.NewID != nil {
		return r.NewID()
	}
	return NewID()
}

func cloneTasks(in []model.Task) []model.Task {
	out := make([]model.Task, len(in))
	copy(out, in)
	return out
}
