// Package tasks holds the demo board's domain state: an ordered task
// list with a selection cursor and an undo history. The store is pure
// state with no UI or command knowledge; the command layer in this
// package wraps it for the registry.
//
// Like the rest of the UI stack, the store is single-threaded by
// contract and driven from the event loop.
package tasks

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrEmptyTitle indicates an add with a blank title.
	ErrEmptyTitle = errors.New("task title cannot be empty")
	// ErrNoSelection indicates a selection operation on an empty board.
	ErrNoSelection = errors.New("no task selected")
	// ErrUnknownTask indicates an operation on a task ID that does not exist.
	ErrUnknownTask = errors.New("unknown task")
	// ErrNothingToUndo indicates an undo with no history.
	ErrNothingToUndo = errors.New("nothing to undo")
)

// maxHistory bounds the undo stack; the oldest snapshot is dropped
// beyond it.
const maxHistory = 100

// Task is one board entry.
type Task struct {
	ID      int
	Title   string
	Done    bool
	AddedAt time.Time
}

// snapshot captures the board before a mutation so Undo can restore it.
type snapshot struct {
	tasks  []Task
	cursor int
}

// Store is the board state: tasks in display order, a cursor, and the
// undo history.
type Store struct {
	tasks   []Task
	cursor  int
	nextID  int
	history []snapshot
	now     func() time.Time
}

// NewStore returns an empty board.
func NewStore() *Store {
	return &Store{nextID: 1, now: time.Now}
}

// Tasks returns a copy of the task list in display order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int { return len(s.tasks) }

// CursorIndex returns the cursor position; meaningless when the board is
// empty.
func (s *Store) CursorIndex() int { return s.cursor }

// Selected returns the task under the cursor.
func (s *Store) Selected() (Task, bool) {
	if len(s.tasks) == 0 || s.cursor < 0 || s.cursor >= len(s.tasks) {
		return Task{}, false
	}
	return s.tasks[s.cursor], true
}

// SelectNext moves the cursor down one task, clamped to the last.
func (s *Store) SelectNext() {
	if s.cursor < len(s.tasks)-1 {
		s.cursor++
	}
}

// SelectPrev moves the cursor up one task, clamped to the first.
func (s *Store) SelectPrev() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// Add appends a task with the given title and moves the cursor to it.
func (s *Store) Add(title string) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrEmptyTitle
	}
	s.pushHistory()
	task := Task{ID: s.nextID, Title: title, AddedAt: s.now()}
	s.nextID++
	s.tasks = append(s.tasks, task)
	s.cursor = len(s.tasks) - 1
	return task, nil
}

// Complete marks the task with the given ID done.
func (s *Store) Complete(id int) error {
	i := s.find(id)
	if i < 0 {
		return fmt.Errorf("tasks: complete %d: %w", id, ErrUnknownTask)
	}
	if s.tasks[i].Done {
		return fmt.Errorf("tasks: task %d already done", id)
	}
	s.pushHistory()
	s.tasks[i].Done = true
	return nil
}

// CompleteSelected marks the task under the cursor done.
func (s *Store) CompleteSelected() error {
	task, ok := s.Selected()
	if !ok {
		return fmt.Errorf("tasks: complete: %w", ErrNoSelection)
	}
	return s.Complete(task.ID)
}

// Remove deletes the task with the given ID. The cursor stays on the
// same position, clamped to the new end.
func (s *Store) Remove(id int) error {
	i := s.find(id)
	if i < 0 {
		return fmt.Errorf("tasks: remove %d: %w", id, ErrUnknownTask)
	}
	s.pushHistory()
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.clampCursor()
	return nil
}

// RemoveSelected deletes the task under the cursor.
func (s *Store) RemoveSelected() error {
	task, ok := s.Selected()
	if !ok {
		return fmt.Errorf("tasks: remove: %w", ErrNoSelection)
	}
	return s.Remove(task.ID)
}

// ClearDone removes every done task and reports how many went. A board
// with nothing done is left untouched and no history is recorded.
func (s *Store) ClearDone() int {
	if !s.AnyDone() {
		return 0
	}
	s.pushHistory()
	kept := s.tasks[:0]
	removed := 0
	for _, task := range s.tasks {
		if task.Done {
			removed++
			continue
		}
		kept = append(kept, task)
	}
	s.tasks = kept
	s.clampCursor()
	return removed
}

// AnyDone reports whether at least one task is done.
func (s *Store) AnyDone() bool {
	for _, task := range s.tasks {
		if task.Done {
			return true
		}
	}
	return false
}

// Undo restores the board to the state before the last mutation.
func (s *Store) Undo() error {
	if len(s.history) == 0 {
		return fmt.Errorf("tasks: %w", ErrNothingToUndo)
	}
	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.tasks = last.tasks
	s.cursor = last.cursor
	return nil
}

// CanUndo reports whether history remains.
func (s *Store) CanUndo() bool { return len(s.history) > 0 }

// Find returns the task with the given ID.
func (s *Store) Find(id int) (Task, bool) {
	i := s.find(id)
	if i < 0 {
		return Task{}, false
	}
	return s.tasks[i], true
}

func (s *Store) find(id int) int {
	for i, task := range s.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) clampCursor() {
	if s.cursor >= len(s.tasks) {
		s.cursor = len(s.tasks) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (s *Store) pushHistory() {
	saved := make([]Task, len(s.tasks))
	copy(saved, s.tasks)
	s.history = append(s.history, snapshot{tasks: saved, cursor: s.cursor})
	if len(s.history) > maxHistory {
		s.history = s.history[1:]
	}
}
