package engine

import (
	"sync/atomic"
	"time"
)

// Task states
const (
	taskPending int32 = iota
	taskFired
	taskCancelled
)

// Scheduler runs callbacks after a delay. Callbacks never run concurrently with
// each other; implementations serialize them onto a single execution context
type Scheduler interface {
	TimeProvider

	// Schedule arranges fn to run once after delay. A non-positive delay runs fn
	// on the next turn of the scheduler, never synchronously inside Schedule
	Schedule(delay time.Duration, fn func()) *Task
}

// Task is the cancellable handle of a scheduled callback
type Task struct {
	due   time.Time
	seq   uint64
	fn    func()
	state atomic.Int32

	// stop releases the underlying timer, nil for manual tasks
	stop func() bool
}

// Due returns the time at which the task becomes runnable
func (t *Task) Due() time.Time {
	return t.due
}

// Cancel prevents the callback from running. Returns true if the task was still
// pending, false if it already ran or was cancelled before
func (t *Task) Cancel() bool {
	if t == nil {
		return false
	}
	if !t.state.CompareAndSwap(taskPending, taskCancelled) {
		return false
	}
	if t.stop != nil {
		t.stop()
	}
	return true
}

// Pending reports whether the task has neither run nor been cancelled
func (t *Task) Pending() bool {
	return t != nil && t.state.Load() == taskPending
}

// claim transitions the task to fired, returning false if it was cancelled
func (t *Task) claim() bool {
	return t.state.CompareAndSwap(taskPending, taskFired)
}
