// Package lifecycle owns every live effect instance from creation until removal
package lifecycle

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/celebrate/effect"
	"github.com/lixenwraith/celebrate/engine"
)

// Stats are cumulative counters since construction
type Stats struct {
	Tracked uint64
	Expired uint64
	Cleared uint64
	Peak    int
}

// entry pairs an instance with its pending expiry
type entry struct {
	inst   *effect.Instance
	expiry *engine.Task
}

// Manager tracks live instances and guarantees each is removed from the surface
// exactly once. Not safe for concurrent use; all calls come from the scheduler's
// execution context
type Manager struct {
	sched   engine.Scheduler
	surface effect.Surface
	log     *zap.Logger

	live   map[uint64]*entry
	nextID uint64
	stats  Stats
}

// NewManager creates a manager rendering onto surface
func NewManager(sched engine.Scheduler, surface effect.Surface, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		sched:   sched,
		surface: surface,
		log:     log,
		live:    make(map[uint64]*entry),
	}
}

// Available reports whether tracked instances can be rendered
func (m *Manager) Available() bool {
	return m.surface != nil && m.surface.Available()
}

// Track validates d, renders it and schedules its expiry after d.Lifetime
func (m *Manager) Track(d effect.Descriptor) (*effect.Instance, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if !m.Available() {
		return nil, fmt.Errorf("track %s: %w", d.Kind, ErrSurfaceUnavailable)
	}

	m.nextID++
	inst := &effect.Instance{
		ID:         m.nextID,
		Descriptor: d,
		CreatedAt:  m.sched.Now(),
	}
	inst.Handle = m.surface.CreateVisualElement(inst)

	id := inst.ID
	e := &entry{inst: inst}
	m.live[id] = e
	e.expiry = m.sched.Schedule(d.Lifetime, func() {
		if m.remove(id) {
			m.stats.Expired++
		}
	})

	m.stats.Tracked++
	if len(m.live) > m.stats.Peak {
		m.stats.Peak = len(m.live)
	}
	return inst, nil
}

// Expire removes the instance now. Returns false if it was already removed
func (m *Manager) Expire(id uint64) bool {
	e, ok := m.live[id]
	if !ok {
		return false
	}
	e.expiry.Cancel()
	m.remove(id)
	m.stats.Expired++
	return true
}

// ClearAll removes every live instance synchronously and returns how many were
// removed. Pending expiry tasks are left in place and become no-ops
func (m *Manager) ClearAll() int {
	n := 0
	for id := range m.live {
		if m.remove(id) {
			n++
		}
	}
	m.stats.Cleared += uint64(n)
	if n > 0 {
		m.log.Debug("cleared effects", zap.Int("count", n))
	}
	return n
}

// Len returns the number of live instances
func (m *Manager) Len() int {
	return len(m.live)
}

// Live reports whether id is still tracked
func (m *Manager) Live(id uint64) bool {
	_, ok := m.live[id]
	return ok
}

// Stats returns a copy of the counters
func (m *Manager) Stats() Stats {
	return m.stats
}

func (m *Manager) remove(id uint64) bool {
	e, ok := m.live[id]
	if !ok {
		return false
	}
	delete(m.live, id)
	m.surface.RemoveVisualElement(e.inst.Handle)
	return true
}
