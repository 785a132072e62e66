package field

import "fmt"

// Phase is the coarse position of a field in its lifecycle.
type Phase uint8

const (
	// PhaseIdle means the field has never been validated or is empty and
	// optional while unfocused.
	PhaseIdle Phase = iota
	// PhaseFocused means the field is being edited and checked live.
	PhaseFocused
	// PhaseInactive means the field lost focus and was checked as a result.
	PhaseInactive
)

func (p Phase) String() string {
	switch p {
	case PhaseFocused:
		return "focused"
	case PhaseInactive:
		return "inactive"
	default:
		return "idle"
	}
}

// State is Idle, Focused(valid|invalid msg) or Inactive(valid|invalid msg).
// The zero value is Idle.
type State struct {
	phase   Phase
	invalid bool
	message string
}

// Idle returns the initial state.
func Idle() State { return State{} }

// Focused returns a focused state carrying a live validation outcome.
func Focused(valid bool, message string) State {
	return newState(PhaseFocused, valid, message)
}

// Inactive returns an unfocused state carrying a result validation outcome.
func Inactive(valid bool, message string) State {
	return newState(PhaseInactive, valid, message)
}

func newState(phase Phase, valid bool, message string) State {
	if valid {
		return State{phase: phase}
	}
	return State{phase: phase, invalid: true, message: message}
}

func (s State) Phase() Phase { return s.phase }
func (s State) IsIdle() bool { return s.phase == PhaseIdle }
func (s State) IsFocused() bool { return s.phase == PhaseFocused }
func (s State) IsInactive() bool { return s.phase == PhaseInactive }
func (s State) Valid() bool { return !s.invalid }
func (s State) Message() string { return s.message }

// String renders the state as focused(valid) or inactive(invalid: msg).
func (s State) String() string {
	if s.phase == PhaseIdle {
		return "idle"
	}
	if !s.invalid {
		return fmt.Sprintf("%s(valid)", s.phase)
	}
	return fmt.Sprintf("%s(invalid: %s)", s.phase, s.message)
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Transition classifies a change in observed focus.
type Transition uint8

const (
	StaysInactive Transition = iota
	GainingFocus
	LosingFocus
	KeepsFocus
)

func (t Transition) String() string {
	switch t {
	case GainingFocus:
		return "gaining_focus"
	case LosingFocus:
		return "losing_focus"
	case KeepsFocus:
		return "keeps_focus"
	default:
		return "stays_inactive"
	}
}

// AnalyzeTransition derives the transition from the previous and current
// focus flags.
func AnalyzeTransition(previous, current bool) Transition {
	switch {
	case !previous && current:
		return GainingFocus
	case previous && !current:
		return LosingFocus
	case previous && current:
		return KeepsFocus
	default:
		return StaysInactive
	}
}
