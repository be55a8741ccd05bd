package trex

// Phase is the current stage of a session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Intent is a discrete player request, abstracted from the input device.
type Intent int

const (
	IntentNone Intent = iota
	IntentJump
	IntentTogglePause
	IntentRestart
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentJump:
		return "Jump"
	case IntentTogglePause:
		return "TogglePause"
	case IntentRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}
