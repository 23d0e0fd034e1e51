package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
)

// runLoop starts the loop and returns a stop function that waits for Run to exit
func runLoop(t *testing.T, l *EventLoop) func() {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(ctx) }()

	return func() {
		cancel()
		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, context.Canceled) {
				t.Errorf("Run returned %v", err)
			}
		case <-time.After(time.Second):
			t.Fatal("event loop did not stop")
		}
	}
}

func TestEventLoopRunsScheduledInOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewEventLoop(16)
	stop := runLoop(t, l)

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup
	wg.Add(3)
	for i, d := range []time.Duration{30, 10, 20} {
		i := i
		l.Schedule(d*time.Millisecond, func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			wg.Done()
		})
	}

	wg.Wait()
	stop()

	mu.Lock()
	defer mu.Unlock()
	want := []int{1, 2, 0}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestEventLoopCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewEventLoop(16)
	stop := runLoop(t, l)

	fired := make(chan struct{}, 1)
	task := l.Schedule(20*time.Millisecond, func() { fired <- struct{}{} })
	if !task.Cancel() {
		t.Fatal("Cancel on pending task returned false")
	}

	done := make(chan struct{})
	l.Schedule(40*time.Millisecond, func() { close(done) })
	<-done
	stop()

	select {
	case <-fired:
		t.Error("cancelled task fired")
	default:
	}
}

func TestEventLoopPostAfterClose(t *testing.T) {
	l := NewEventLoop(1)
	l.Close()
	l.Close()

	if l.Post(func() {}) {
		t.Error("Post after Close should return false")
	}
}

func TestEventLoopSingleRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewEventLoop(4)
	stop := runLoop(t, l)

	started := make(chan struct{})
	l.Post(func() { close(started) })
	<-started

	if err := l.Run(context.Background()); !errors.Is(err, ErrLoopRunning) {
		t.Errorf("second Run = %v, want ErrLoopRunning", err)
	}
	stop()

	if l.Executed() == 0 {
		t.Error("Executed() = 0 after running a callback")
	}
}
