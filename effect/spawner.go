package effect

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/celebrate/engine"
)

// Tracker receives spawned descriptors; implemented by the lifecycle manager
type Tracker interface {
	Track(d Descriptor) (*Instance, error)
	Available() bool
}

// Spawner stages creation of effect batches over time
type Spawner struct {
	sched   engine.Scheduler
	tracker Tracker
	bounds  func() Bounds
	rng     *rand.Rand
	log     *zap.Logger
}

// NewSpawner creates a spawner. bounds is queried when each element spawns so
// a resize mid-batch is honored
func NewSpawner(sched engine.Scheduler, tracker Tracker, bounds func() Bounds, rng *rand.Rand, log *zap.Logger) *Spawner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = zap.NewNop()
	}
	if bounds == nil {
		bounds = func() Bounds { return Bounds{Width: 80, Height: 24} }
	}
	return &Spawner{
		sched:   sched,
		tracker: tracker,
		bounds:  bounds,
		rng:     rng,
		log:     log,
	}
}

// SpawnBatch schedules count elements, element i at i*interval. Returns
// ErrInvalidArgument for a negative count or interval or a nil factory.
// Without a usable tracker the call does nothing
func (s *Spawner) SpawnBatch(count int, interval time.Duration, factory Factory) error {
	if count < 0 {
		return fmt.Errorf("%w: count %d is negative", ErrInvalidArgument, count)
	}
	if interval < 0 {
		return fmt.Errorf("%w: interval %v is negative", ErrInvalidArgument, interval)
	}
	if factory == nil {
		return fmt.Errorf("%w: nil factory", ErrInvalidArgument)
	}
	if s.tracker == nil || !s.tracker.Available() {
		s.log.Debug("spawn skipped, surface unavailable", zap.Int("count", count))
		return nil
	}

	for i := 0; i < count; i++ {
		i := i
		s.sched.Schedule(time.Duration(i)*interval, func() {
			s.spawnOne(i, factory)
		})
	}
	return nil
}

// spawnOne builds and tracks a single element; a failing element never aborts its batch
func (s *Spawner) spawnOne(i int, factory Factory) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Warn("effect factory panicked", zap.Int("index", i), zap.Any("panic", r))
		}
	}()

	d := factory(i, s.rng, s.bounds())
	if _, err := s.tracker.Track(d); err != nil {
		s.log.Debug("track rejected", zap.Int("index", i), zap.Error(err))
	}
}

// Bounds returns the current viewport
func (s *Spawner) Bounds() Bounds {
	return s.bounds()
}

// Rand exposes the spawner's random source for callers composing batches
func (s *Spawner) Rand() *rand.Rand {
	return s.rng
}

// Scheduler returns the scheduler batches run on
func (s *Spawner) Scheduler() engine.Scheduler {
	return s.sched
}
