package registry

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/me/noblock/internal/task"
	"github.com/me/noblock/pkg/model"
)

var (
	// ErrDuplicateTask is returned when an id is registered twice.
	ErrDuplicateTask = errors.New("task registered more than once")
	// ErrIncompleteRegistry is returned when some id has no step.
	ErrIncompleteRegistry = errors.New("task has no registered step")
)

// Entry pairs a task id with its step operation.
type Entry struct {
	ID      model.TaskID
	Stepper task.Stepper
}

// Registry maps every TaskID to its Stepper. It is built once at startup
// and never modified afterwards, so no mutex is needed.
type Registry struct {
	steps [model.NumTasks]task.Stepper
}

// New builds a Registry from entries. Every id in [0, NumTasks) must
// appear exactly once.
func New(entries []Entry, logger *slog.Logger) (*Registry, error) {
	logger = logger.With("component", "task-registry")
	r := &Registry{}
	for _, e := range entries {
		if !e.ID.Valid() {
			return nil, &model.InvalidTaskIDError{ID: e.ID, Count: len(r.steps)}
		}
		if e.Stepper == nil {
			return nil, fmt.Errorf("task %s: nil stepper", e.ID)
		}
		if r.steps[e.ID] != nil {
			return nil, fmt.Errorf("task %s: %w", e.ID, ErrDuplicateTask)
		}
		r.steps[e.ID] = e.Stepper
		logger.Debug("task registered", "task_id", int(e.ID), "task", e.ID.String())
	}
	for id, s := range r.steps {
		if s == nil {
			return nil, fmt.Errorf("task %s: %w", model.TaskID(id), ErrIncompleteRegistry)
		}
	}
	return r, nil
}

// NewDefault registers the built-in tasks, all writing to out.
func NewDefault(out io.Writer, logger *slog.Logger) (*Registry, error) {
	return New([]Entry{
		{ID: model.TaskGreeter, Stepper: task.NewGreeter(out)},
		{ID: model.TaskToggler, Stepper: task.NewToggler(out)},
	}, logger)
}

// Count returns the number of registered tasks.
func (r *Registry) Count() int {
	return len(r.steps)
}

// StepOf returns the Stepper registered for id.
func (r *Registry) StepOf(id model.TaskID) (task.Stepper, error) {
	if id < 0 || int(id) >= len(r.steps) {
		return nil, &model.InvalidTaskIDError{ID: id, Count: len(r.steps)}
	}
	return r.steps[id], nil
}
