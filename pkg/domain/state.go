package domain

// Phase is the position of a navigation step in the controller's state machine.
type Phase string

const (
	PhaseIdle             Phase = "idle"
	PhaseAwaitingResponse Phase = "awaiting_response" // a fetch for CurrentKey is in flight
	PhaseDisplayedMenu    Phase = "displayed_menu"    // a prompt card awaits one of its actions
	PhaseDisplayedAnswer  Phase = "displayed_answer"  // terminal, no outgoing transitions
	PhaseFailed           Phase = "failed"            // failure notice posted, nothing advanced
)

// NavigationState records which key produced the currently displayed prompt.
// It is a value: transitions return a new state rather than mutating one.
type NavigationState struct {
	CurrentKey string
	Phase      Phase
}

// NewState creates the startup state, pointing at the root menu.
func NewState() NavigationState {
	return NavigationState{CurrentKey: RootKey, Phase: PhaseIdle}
}

// AtRoot reports whether the state refers to the root menu.
func (s NavigationState) AtRoot() bool {
	return s.CurrentKey == RootKey
}

// Awaiting returns the state for a fetch of key.
func Awaiting(key string) NavigationState {
	return NavigationState{CurrentKey: key, Phase: PhaseAwaitingResponse}
}

// Displayed returns the state after a successful render of resp for key.
func Displayed(key string, kind ResponseKind) NavigationState {
	if kind == KindAnswer {
		return NavigationState{CurrentKey: key, Phase: PhaseDisplayedAnswer}
	}
	return NavigationState{CurrentKey: key, Phase: PhaseDisplayedMenu}
}

// Failed returns the state after a failed fetch or render of key.
func Failed(key string) NavigationState {
	return NavigationState{CurrentKey: key, Phase: PhaseFailed}
}

// Terminal reports whether no further actions can be taken from this state.
func (s NavigationState) Terminal() bool {
	return s.Phase == PhaseDisplayedAnswer || s.Phase == PhaseFailed
}
