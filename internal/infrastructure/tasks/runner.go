// Package tasks tracks fire-and-forget background jobs. Submit hands
// back an opaque handle immediately, the caller polls state by ID.
package tasks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"pulseboard/internal/shared/goroutine"
	"pulseboard/internal/shared/logger"
)

type State string

const (
	StatePending   State = "pending"
	StateRunning   State = "running"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
)

// maxFinishedTasks bounds how many terminal task records the runner
// keeps for polling; the oldest finished records are evicted first.
const maxFinishedTasks = 100

func (s State) terminal() bool {
	return s == StateSucceeded || s == StateFailed
}

// Task is a snapshot of a submitted job's progress.
type Task struct {
	ID          string
	Name        string
	State       State
	Error       string
	SubmittedAt time.Time
	StartedAt   *time.Time
	FinishedAt  *time.Time
}

// Runner executes submitted functions on their own goroutines and keeps
// finished task records in memory for later inspection.
type Runner struct {
	mu      sync.RWMutex
	tasks   map[string]*Task
	timeout time.Duration
	logger  logger.Interface
}

func NewRunner(timeout time.Duration, logger logger.Interface) *Runner {
	return &Runner{
		tasks:   make(map[string]*Task),
		timeout: timeout,
		logger:  logger,
	}
}

// Submit schedules fn and returns the task ID without waiting. The
// function runs with a fresh context so the caller's request cancel
// does not abort the job. fn receives the task ID so jobs can stamp it
// into their own audit records.
func (r *Runner) Submit(name string, fn func(ctx context.Context, taskID string) error) string {
	id := uuid.NewString()
	task := &Task{
		ID:          id,
		Name:        name,
		State:       StatePending,
		SubmittedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.tasks[id] = task
	r.pruneLocked()
	r.mu.Unlock()

	goroutine.SafeGo(r.logger, "task:"+name, func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		r.transition(id, func(t *Task) {
			now := time.Now().UTC()
			t.State = StateRunning
			t.StartedAt = &now
		})

		err := fn(ctx, id)

		r.transition(id, func(t *Task) {
			now := time.Now().UTC()
			t.FinishedAt = &now
			if err != nil {
				t.State = StateFailed
				t.Error = err.Error()
				return
			}
			t.State = StateSucceeded
		})

		if err != nil {
			r.logger.Errorw("background task failed", "task_id", id, "name", name, "error", err)
		} else {
			r.logger.Infow("background task finished", "task_id", id, "name", name)
		}
	})

	return id
}

// Get returns a copy of the task record, or nil when the ID is unknown.
func (r *Runner) Get(id string) *Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil
	}
	snapshot := *task
	return &snapshot
}

// pruneLocked evicts the oldest terminal tasks beyond the retention
// cap. Pending and running tasks are never evicted. Caller holds mu.
func (r *Runner) pruneLocked() {
	finished := make([]*Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		if task.State.terminal() {
			finished = append(finished, task)
		}
	}
	if len(finished) <= maxFinishedTasks {
		return
	}

	sort.Slice(finished, func(i, j int) bool {
		return finished[i].FinishedAt.Before(*finished[j].FinishedAt)
	})
	for _, task := range finished[:len(finished)-maxFinishedTasks] {
		delete(r.tasks, task.ID)
	}
}

func (r *Runner) transition(id string, mutate func(*Task)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if task, ok := r.tasks[id]; ok {
		mutate(task)
	}
}
