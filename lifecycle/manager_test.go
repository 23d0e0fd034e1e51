package lifecycle

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/celebrate/effect"
	"github.com/lixenwraith/celebrate/engine"
)

// countingSurface keeps the set of rendered handles
type countingSurface struct {
	next     effect.Handle
	rendered map[effect.Handle]bool
	removes  map[effect.Handle]int
	down     bool
}

func newCountingSurface() *countingSurface {
	return &countingSurface{
		rendered: make(map[effect.Handle]bool),
		removes:  make(map[effect.Handle]int),
	}
}

func (s *countingSurface) CreateVisualElement(_ *effect.Instance) effect.Handle {
	s.next++
	s.rendered[s.next] = true
	return s.next
}

func (s *countingSurface) RemoveVisualElement(h effect.Handle) {
	s.removes[h]++
	delete(s.rendered, h)
}

func (s *countingSurface) Available() bool { return !s.down }

func setup() (*Manager, *countingSurface, *engine.ManualScheduler) {
	sched := engine.NewManualScheduler(time.Unix(0, 0))
	surface := newCountingSurface()
	return NewManager(sched, surface, nil), surface, sched
}

func desc(lifetime time.Duration) effect.Descriptor {
	return effect.Descriptor{Kind: effect.KindHeart, Size: 1, Lifetime: lifetime}
}

func TestTrack_ExpiresAfterLifetime(t *testing.T) {
	m, surface, sched := setup()

	inst, err := m.Track(desc(500 * time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())
	assert.Len(t, surface.rendered, 1)

	sched.Advance(499 * time.Millisecond)
	assert.True(t, m.Live(inst.ID), "removed before its lifetime")

	sched.Advance(time.Millisecond)
	assert.False(t, m.Live(inst.ID))
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, surface.rendered)
}

func TestTrack_RejectsInvalid(t *testing.T) {
	m, surface, _ := setup()

	_, err := m.Track(desc(0))
	require.ErrorIs(t, err, effect.ErrInvalidArgument)
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, surface.rendered)
}

func TestTrack_SurfaceUnavailable(t *testing.T) {
	m, surface, _ := setup()
	surface.down = true

	_, err := m.Track(desc(time.Second))
	require.ErrorIs(t, err, ErrSurfaceUnavailable)
	assert.False(t, m.Available())
	assert.Equal(t, 0, m.Len())
}

func TestExpire_Idempotent(t *testing.T) {
	m, surface, sched := setup()
	inst, err := m.Track(desc(time.Second))
	require.NoError(t, err)

	assert.True(t, m.Expire(inst.ID))
	assert.False(t, m.Expire(inst.ID))

	// The timer firing later must not remove again
	sched.Advance(2 * time.Second)
	assert.Equal(t, 1, surface.removes[inst.Handle])
	assert.Equal(t, uint64(1), m.Stats().Expired)
}

func TestClearAll_EmptiesImmediately(t *testing.T) {
	m, surface, sched := setup()
	for i := 1; i <= 20; i++ {
		_, err := m.Track(desc(time.Duration(i) * 100 * time.Millisecond))
		require.NoError(t, err)
	}
	sched.Advance(550 * time.Millisecond)
	require.Equal(t, 15, m.Len())

	assert.Equal(t, 15, m.ClearAll())
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, surface.rendered)

	// Remaining expiry tasks fire as no-ops
	sched.RunAll()
	for h, n := range surface.removes {
		assert.Equalf(t, 1, n, "handle %d removed %d times", h, n)
	}
	assert.Equal(t, 0, m.ClearAll())

	st := m.Stats()
	assert.Equal(t, uint64(20), st.Tracked)
	assert.Equal(t, uint64(5), st.Expired)
	assert.Equal(t, uint64(15), st.Cleared)
	assert.Equal(t, 20, st.Peak)
}

func TestLiveSetMatchesSurface(t *testing.T) {
	m, surface, sched := setup()
	rng := rand.New(rand.NewSource(11))

	for step := 0; step < 200; step++ {
		switch rng.Intn(4) {
		case 0, 1:
			_, err := m.Track(desc(time.Duration(1+rng.Intn(2000)) * time.Millisecond))
			require.NoError(t, err)
		case 2:
			sched.Advance(time.Duration(rng.Intn(300)) * time.Millisecond)
		case 3:
			if rng.Intn(10) == 0 {
				m.ClearAll()
			} else {
				m.Expire(uint64(1 + rng.Intn(step+1)))
			}
		}
		require.Equal(t, len(surface.rendered), m.Len(), "step %d", step)
	}
}

func TestSpawnedBatchDrainsAfterMaxLifetime(t *testing.T) {
	m, surface, sched := setup()
	spawner := effect.NewSpawner(sched, m, func() effect.Bounds {
		return effect.Bounds{Width: 80, Height: 24}
	}, rand.New(rand.NewSource(2)), nil)

	factory := effect.ConfettiFactory(effect.DefaultPalettes().Confetti)
	const count = 40
	interval := 30 * time.Millisecond
	require.NoError(t, spawner.SpawnBatch(count, interval, factory))

	sched.Advance(time.Duration(count) * interval)
	assert.Equal(t, uint64(count), m.Stats().Tracked)

	// max lifetime of confetti is 4s after the last spawn
	sched.Advance(4*time.Second + time.Millisecond)
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, surface.rendered)
}
