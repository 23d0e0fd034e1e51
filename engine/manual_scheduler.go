package engine

import (
	"container/heap"
	"sync"
	"time"
)

// ManualScheduler is a deterministic scheduler driven by explicit Advance calls.
// Tasks fire in due-time order, ties broken by scheduling order. Used by tests
// and by headless timeline planning
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Time
	queue   taskHeap
	nextSeq uint64
}

// NewManualScheduler creates a scheduler whose clock starts at startTime
func NewManualScheduler(startTime time.Time) *ManualScheduler {
	return &ManualScheduler{now: startTime}
}

// Now returns the current virtual time
func (m *ManualScheduler) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Schedule queues fn at now+delay
func (m *ManualScheduler) Schedule(delay time.Duration, fn func()) *Task {
	if delay < 0 {
		delay = 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t := &Task{
		due: m.now.Add(delay),
		seq: m.nextSeq,
		fn:  fn,
	}
	m.nextSeq++
	heap.Push(&m.queue, t)
	return t
}

// Advance moves the clock forward by d, running every task due within the
// window in order. Tasks scheduled by callbacks run too if they fall inside it
func (m *ManualScheduler) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()
	return m.runUntil(target)
}

// RunPending runs tasks already due without moving the clock
func (m *ManualScheduler) RunPending() int {
	return m.runUntil(m.Now())
}

// RunAll drains the queue, advancing the clock to each task's due time
func (m *ManualScheduler) RunAll() int {
	ran := 0
	for {
		m.mu.Lock()
		if m.queue.Len() == 0 {
			m.mu.Unlock()
			return ran
		}
		target := m.queue[0].due
		m.mu.Unlock()
		ran += m.runUntil(target)
	}
}

// Pending returns the number of queued tasks that have not been cancelled
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, t := range m.queue {
		if t.Pending() {
			n++
		}
	}
	return n
}

func (m *ManualScheduler) runUntil(target time.Time) int {
	ran := 0
	for {
		m.mu.Lock()
		if m.queue.Len() == 0 || m.queue[0].due.After(target) {
			if m.now.Before(target) {
				m.now = target
			}
			m.mu.Unlock()
			return ran
		}
		t := heap.Pop(&m.queue).(*Task)
		if t.due.After(m.now) {
			m.now = t.due
		}
		m.mu.Unlock()

		if t.claim() {
			t.fn()
			ran++
		}
	}
}

// taskHeap orders tasks by due time then sequence
type taskHeap []*Task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].seq < h[j].seq
	}
	return h[i].due.Before(h[j].due)
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) { *h = append(*h, x.(*Task)) }

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}
