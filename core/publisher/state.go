package publisher

// State is the lifecycle state of the publisher worker.
//
//	Stopped -> Running -> Stopping -> Stopped
type State int32

const (
	StateStopped State = iota
	StateRunning
	StateStopping
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	}
	return "unknown"
}
