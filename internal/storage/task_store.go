package storage

import (
	"context"
	"errors"

	"github.com/sandeepkv93/taskline/internal/model"
)

// TasksKey is the key the whole task list is stored under.
const TasksKey = "organizing-app-tasks"

// TaskStore loads and saves the task list as one JSON document.
type TaskStore struct {
	kv KV
}

func NewTaskStore(kv KV) *TaskStore {
	return &TaskStore{kv: kv}
}

// Load returns the persisted tasks. A missing key is an empty list, not an error.
func (s *TaskStore) Load(ctx context.Context) ([]model.Task, error) {
	raw, err := s.kv.Get(ctx, TasksKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return decodeTasks(raw)
}

func (s *TaskStore) Save(ctx context.Context, tasks []model.Task) error {
	raw, err := encodeTasks(tasks)
	if err != nil {
		return err
	}
	return s.kv.Put(ctx, TasksKey, raw)
}
