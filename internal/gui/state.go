package gui

// State is the ClockWindow lifecycle. Transitions only move forward.
type State int32

const (
	StateRunning State = iota
	StateClosingRequested
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateClosingRequested:
		return "closing_requested"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
