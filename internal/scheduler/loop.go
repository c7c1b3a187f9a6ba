package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/me/noblock/internal/task"
	"github.com/me/noblock/pkg/model"
)

// Tasks is the fixed task table the loop rotates over.
type Tasks interface {
	Count() int
	StepOf(id model.TaskID) (task.Stepper, error)
}

// Config holds scheduler configuration.
type Config struct {
	// Interval is the pause between two consecutive task steps.
	Interval time.Duration
	// Iterations bounds the number of ticks Start runs. 0 runs forever.
	Iterations int
}

// DefaultConfig returns the reference timing: one second, forever.
func DefaultConfig() Config {
	return Config{Interval: time.Second}
}

// Option configures a Loop.
type Option func(*Loop)

// WithSleeper replaces the real timer, mostly for tests.
func WithSleeper(s Sleeper) Option {
	return func(l *Loop) {
		l.sleeper = s
	}
}

// Loop implements the Scheduler interface with round-robin rotation.
// Steps run one at a time on the goroutine that called Start; each step
// is trusted to return promptly.
type Loop struct {
	tasks   Tasks
	count   int
	config  Config
	sleeper Sleeper
	logger  *slog.Logger

	cursor      model.TaskID
	ticks       int
	invocations []int

	started  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewLoop creates a scheduler loop over tasks. The cursor starts on the
// last slot so that the first tick lands on task 0.
func NewLoop(tasks Tasks, cfg Config, logger *slog.Logger, opts ...Option) (*Loop, error) {
	count := tasks.Count()
	if count <= 0 {
		return nil, fmt.Errorf("scheduler needs at least one task, got %d", count)
	}
	if cfg.Interval < 0 {
		return nil, fmt.Errorf("negative interval %s", cfg.Interval)
	}
	l := &Loop{
		tasks:       tasks,
		count:       count,
		config:      cfg,
		sleeper:     TimerSleeper{},
		logger:      logger.With("component", "scheduler"),
		cursor:      model.TaskID(count - 1),
		invocations: make([]int, count),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Start runs ticks separated by the configured interval. It returns
// ctx.Err() when ctx is cancelled and nil when stopped or when the
// iteration bound is reached. Start must be called at most once.
func (l *Loop) Start(ctx context.Context) error {
	if !l.started.CompareAndSwap(false, true) {
		return errors.New("scheduler already started")
	}
	defer close(l.doneCh)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-l.stopCh:
			cancel()
		case <-runCtx.Done():
		}
	}()

	l.logger.Info("scheduler started",
		"tasks", l.count,
		"interval", l.config.Interval,
		"iterations", l.config.Iterations,
	)

	for {
		if err := l.Tick(runCtx); err != nil {
			if runCtx.Err() != nil {
				return l.exit(ctx)
			}
			l.logger.Error("tick error", "error", err)
		}
		if l.config.Iterations > 0 && l.ticks >= l.config.Iterations {
			l.logger.Info("scheduler finished", "ticks", l.ticks)
			return nil
		}
		if err := l.sleeper.Sleep(runCtx, l.config.Interval); err != nil {
			return l.exit(ctx)
		}
	}
}

// exit reports why the run context ended.
func (l *Loop) exit(ctx context.Context) error {
	if ctx.Err() != nil {
		l.logger.Info("scheduler stopping (context cancelled)", "ticks", l.ticks)
		return ctx.Err()
	}
	l.logger.Info("scheduler stopping (stop called)", "ticks", l.ticks)
	return nil
}

// Stop ends the loop and waits for Start to return. It is a no-op if
// Start was never called.
func (l *Loop) Stop() error {
	l.stopOnce.Do(func() { close(l.stopCh) })
	if l.started.Load() {
		<-l.doneCh
	}
	return nil
}

// Tick advances the cursor and runs one step of the selected task.
// A non-OK status is logged and otherwise ignored.
func (l *Loop) Tick(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.cursor = model.TaskID((int(l.cursor) + 1) % l.count)
	step, err := l.tasks.StepOf(l.cursor)
	if err != nil {
		return fmt.Errorf("select task %d: %w", int(l.cursor), err)
	}

	status := step.Step()
	l.ticks++
	l.invocations[l.cursor]++

	if !status.OK() {
		l.logger.Warn("task step returned non-OK status", "task_id", int(l.cursor), "status", status)
	} else {
		l.logger.Debug("task stepped", "task_id", int(l.cursor), "status", status)
	}
	return nil
}

// Cursor, Ticks and Invocations read loop state without locking. Call
// them from the goroutine driving Tick, or after Start has returned.

// Cursor returns the id selected by the latest tick.
func (l *Loop) Cursor() model.TaskID {
	return l.cursor
}

// Ticks returns the number of steps run so far.
func (l *Loop) Ticks() int {
	return l.ticks
}

// Invocations returns how many times the task with id has been stepped.
func (l *Loop) Invocations(id model.TaskID) int {
	if id < 0 || int(id) >= l.count {
		return 0
	}
	return l.invocations[id]
}
