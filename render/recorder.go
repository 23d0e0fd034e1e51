package render

import (
	"fmt"
	"time"

	"github.com/lixenwraith/celebrate/effect"
)

// Event is one recorded surface or display call
type Event struct {
	At     time.Time
	Action string
	Detail string
}

// Recorder is a headless surface and display that logs every call. Used by the
// plan command and tests
type Recorder struct {
	clock  func() time.Time
	bounds effect.Bounds

	elements   map[effect.Handle]*effect.Instance
	nextHandle effect.Handle
	events     []Event
	down       bool

	Label   string
	Busy    bool
	Theme   string
	Message string
	Counter int
}

// NewRecorder creates a recorder stamping events with clock
func NewRecorder(clock func() time.Time, bounds effect.Bounds) *Recorder {
	if clock == nil {
		clock = time.Now
	}
	return &Recorder{
		clock:    clock,
		bounds:   bounds,
		elements: make(map[effect.Handle]*effect.Instance),
	}
}

func (r *Recorder) record(action, detail string) {
	r.events = append(r.events, Event{At: r.clock(), Action: action, Detail: detail})
}

func (r *Recorder) CreateVisualElement(inst *effect.Instance) effect.Handle {
	r.nextHandle++
	r.elements[r.nextHandle] = inst
	r.record("create", inst.Kind.String())
	return r.nextHandle
}

func (r *Recorder) RemoveVisualElement(h effect.Handle) {
	inst, ok := r.elements[h]
	if !ok {
		return
	}
	delete(r.elements, h)
	r.record("remove", inst.Kind.String())
}

// Available is false after SetAvailable(false)
func (r *Recorder) Available() bool {
	return !r.down
}

// SetAvailable simulates the surface going away
func (r *Recorder) SetAvailable(ok bool) {
	r.down = !ok
}

// Elements returns the number of rendered elements
func (r *Recorder) Elements() int {
	return len(r.elements)
}

// Bounds returns the fixed viewport
func (r *Recorder) Bounds() effect.Bounds {
	return r.bounds
}

func (r *Recorder) SetButtonLabel(label string, busy bool) {
	r.Label, r.Busy = label, busy
	r.record("label", label)
}

func (r *Recorder) RandomTheme() string {
	r.Theme = "celebration"
	r.record("theme", r.Theme)
	return r.Theme
}

func (r *Recorder) ResetTheme() {
	r.Theme = ""
	r.record("theme", "default")
}

func (r *Recorder) ShowMessage(msg string) {
	r.Message = msg
	r.record("message", msg)
}

func (r *Recorder) ClearMessage() {
	r.Message = ""
	r.record("message", "")
}

func (r *Recorder) SetCounter(n int) {
	r.Counter = n
	r.record("counter", fmt.Sprint(n))
}

func (r *Recorder) ClearCounter() {
	r.Counter = 0
	r.record("counter", "")
}

// Events returns the recorded calls in order
func (r *Recorder) Events() []Event {
	return r.events
}

// Count returns how many events carry action
func (r *Recorder) Count(action string) int {
	n := 0
	for _, e := range r.events {
		if e.Action == action {
			n++
		}
	}
	return n
}
