package state

// GameState represents the current state of the front-end
type GameState int

const (
	StateLoading GameState = iota
	StatePlaying
	StatePaused
	StateComplete
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateComplete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Phase is the wave director's phase. The string forms double as the
// state names of the director's state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseWaveActive
	PhaseSoulPending
	PhaseWaveDelay
	PhaseComplete
)

var phaseNames = [...]string{
	PhaseIdle:        "idle",
	PhaseWaveActive:  "wave_active",
	PhaseSoulPending: "soul_pending",
	PhaseWaveDelay:   "wave_delay",
	PhaseComplete:    "complete",
}

// String returns the string representation of the phase
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// ParsePhase converts a state machine state name back into a Phase
func ParsePhase(name string) (Phase, bool) {
	for i, n := range phaseNames {
		if n == name {
			return Phase(i), true
		}
	}
	return PhaseIdle, false
}

// Terminal returns true for the phase nothing leaves
func (p Phase) Terminal() bool {
	return p == PhaseComplete
}
