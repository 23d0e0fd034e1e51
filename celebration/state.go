package celebration

// State of the orchestrator
type State uint8

const (
	StateIdle State = iota
	StateCelebrating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCelebrating:
		return "celebrating"
	}
	return "unknown"
}
