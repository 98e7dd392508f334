package tasks

import (
	"fmt"

	"github.com/cristianoliveira/tui-relay/internal/command"
	"github.com/cristianoliveira/tui-relay/internal/payload"
)

// Registry names of the board commands. Binding files reference these.
const (
	CmdAdd       = "task.add"
	CmdComplete  = "task.complete"
	CmdRemove    = "task.remove"
	CmdUndo      = "task.undo"
	CmdClearDone = "task.clear-done"
)

// Commands builds the board's command registry over store. Guards answer
// for the current selection when the parameter is nil and for a specific
// task when it carries an ID, so enabled-state mirroring (which refreshes
// with the held parameter) and per-invoke gating (which sees the resolved
// one) stay consistent. Every mutation invalidates all guards through the
// registry so bound elements refresh immediately.
func Commands(store *Store) (*command.Registry, error) {
	reg := command.NewRegistry()

	add, err := command.NewRelay(CmdAdd, func(param payload.Value) error {
		title, err := titleFrom(param)
		if err != nil {
			return err
		}
		if _, err := store.Add(title); err != nil {
			return err
		}
		reg.InvalidateAll()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("tasks: build %s: %w", CmdAdd, err)
	}

	complete, err := command.NewRelay(CmdComplete,
		func(param payload.Value) error {
			task, ok := targetTask(store, param)
			if !ok {
				return fmt.Errorf("tasks: %s: no target task", CmdComplete)
			}
			if err := store.Complete(task.ID); err != nil {
				return err
			}
			reg.InvalidateAll()
			return nil
		},
		command.WithGuard(func(param payload.Value) bool {
			task, ok := targetTask(store, param)
			return ok && !task.Done
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("tasks: build %s: %w", CmdComplete, err)
	}

	remove, err := command.NewRelay(CmdRemove,
		func(param payload.Value) error {
			task, ok := targetTask(store, param)
			if !ok {
				return fmt.Errorf("tasks: %s: no target task", CmdRemove)
			}
			if err := store.Remove(task.ID); err != nil {
				return err
			}
			reg.InvalidateAll()
			return nil
		},
		command.WithGuard(func(param payload.Value) bool {
			_, ok := targetTask(store, param)
			return ok
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("tasks: build %s: %w", CmdRemove, err)
	}

	undo, err := command.NewRelay(CmdUndo,
		func(payload.Value) error {
			if err := store.Undo(); err != nil {
				return err
			}
			reg.InvalidateAll()
			return nil
		},
		command.WithGuard(func(payload.Value) bool {
			return store.CanUndo()
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("tasks: build %s: %w", CmdUndo, err)
	}

	clearDone, err := command.NewRelay(CmdClearDone,
		func(payload.Value) error {
			store.ClearDone()
			reg.InvalidateAll()
			return nil
		},
		command.WithGuard(func(payload.Value) bool {
			return store.AnyDone()
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("tasks: build %s: %w", CmdClearDone, err)
	}

	for name, cmd := range map[string]command.Command{
		CmdAdd:       add,
		CmdComplete:  complete,
		CmdRemove:    remove,
		CmdUndo:      undo,
		CmdClearDone: clearDone,
	} {
		if err := reg.Register(name, cmd); err != nil {
			return nil, fmt.Errorf("tasks: %w", err)
		}
	}
	return reg, nil
}

// titleFrom extracts the task title from an add parameter. Strings are
// used directly; records may carry it under "title".
func titleFrom(param payload.Value) (string, error) {
	switch param.Kind() {
	case payload.KindString:
		return param.String(), nil
	case payload.KindRecord, payload.KindReader:
		if title, ok := param.Field("title"); ok && title.Kind() == payload.KindString {
			return title.String(), nil
		}
	}
	return "", fmt.Errorf("tasks: %s requires a string title parameter, got %s", CmdAdd, param.Kind())
}

// targetTask resolves the task a parameter refers to: nil means the
// current selection, an integer is a task ID. Other kinds target nothing.
func targetTask(store *Store, param payload.Value) (Task, bool) {
	switch param.Kind() {
	case payload.KindNil:
		return store.Selected()
	case payload.KindInt, payload.KindFloat:
		return store.Find(int(param.Int()))
	default:
		return Task{}, false
	}
}
