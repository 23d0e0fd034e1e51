package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultQueueSize is the callback queue capacity used when none is given
const DefaultQueueSize = 1024

// EventLoop serializes every callback onto the goroutine running Run.
// Timers fire on runtime goroutines and only post their callback to the queue,
// so state touched from callbacks needs no locking
type EventLoop struct {
	clock TimeProvider
	queue chan func()

	done     chan struct{}
	stopOnce sync.Once
	running  atomic.Bool

	executed atomic.Uint64
}

// NewEventLoop creates a loop with the given queue capacity
func NewEventLoop(queueSize int) *EventLoop {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &EventLoop{
		clock: NewMonotonicTimeProvider(),
		queue: make(chan func(), queueSize),
		done:  make(chan struct{}),
	}
}

// Now returns wall clock time
func (l *EventLoop) Now() time.Time {
	return l.clock.Now()
}

// Schedule arms a runtime timer that posts fn to the loop after delay
func (l *EventLoop) Schedule(delay time.Duration, fn func()) *Task {
	if delay < 0 {
		delay = 0
	}

	t := &Task{
		due: l.clock.Now().Add(delay),
		fn:  fn,
	}
	timer := time.AfterFunc(delay, func() {
		l.Post(func() {
			if t.claim() {
				t.fn()
			}
		})
	})
	t.stop = timer.Stop
	return t
}

// Post enqueues fn for execution on the loop goroutine. Blocks while the queue
// is full; returns false if the loop has been closed
func (l *EventLoop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.queue <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Run executes queued callbacks until ctx is cancelled or Close is called
func (l *EventLoop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer l.running.Store(false)

	for {
		select {
		case <-ctx.Done():
			l.Close()
			return ctx.Err()
		case <-l.done:
			return nil
		case fn := <-l.queue:
			fn()
			l.executed.Add(1)
		}
	}
}

// Close stops the loop. Pending callbacks are dropped. Safe to call multiple times
func (l *EventLoop) Close() {
	l.stopOnce.Do(func() {
		close(l.done)
	})
}

// Executed returns the number of callbacks run so far
func (l *EventLoop) Executed() uint64 {
	return l.executed.Load()
}
