package card

// State is the lifecycle state of a Card.
type State uint8

// Card states.
const (
	// StateUninitialized is the state before Init runs.
	StateUninitialized State = iota

	// StateIdle means CMD0 succeeded and activation is in progress.
	StateIdle

	// StateReady means the card is activated, block addressed and
	// accepting data commands.
	StateReady

	// StateFailed means initialization failed. It is terminal until Init
	// is called again.
	StateFailed
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateIdle:
		return "idle"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
