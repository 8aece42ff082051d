package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
)

const tasksKey = "completedTasks"

// TaskLedger is the generic completion map content screens use to mark
// one-off reads as done. Keys are never removed and values only flip
// false to true.
type TaskLedger struct {
	s Store
}

func NewTaskLedger(s Store) *TaskLedger {
	return &TaskLedger{s: s}
}

// load treats any read or parse failure as "no saved data": log it and
// start from an empty map, never bubble it up to the screen.
func (l *TaskLedger) load(ctx context.Context) map[string]bool {
	raw, err := l.s.Get(ctx, tasksKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("store: failed to load completed tasks: %v", err)
		}
		return map[string]bool{}
	}
	tasks := map[string]bool{}
	if err := json.Unmarshal(raw, &tasks); err != nil {
		log.Printf("store: corrupt completed tasks blob, resetting: %v", err)
		return map[string]bool{}
	}
	return tasks
}

func (l *TaskLedger) IsCompleted(ctx context.Context, taskID string) bool {
	return l.load(ctx)[taskID]
}

func (l *TaskLedger) All(ctx context.Context) map[string]bool {
	return l.load(ctx)
}

func (l *TaskLedger) MarkCompleted(ctx context.Context, taskID string) error {
	tasks := l.load(ctx)
	if tasks[taskID] {
		return nil
	}
	tasks[taskID] = true

	raw, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	return l.s.Set(ctx, tasksKey, raw)
}
