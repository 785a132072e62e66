package tui

// State tracks collected values and the last validation message per field.
type State struct {
	values map[string]string
	errors map[string]string
}

// NewState seeds the state with prefilled values.
func NewState(prefill map[string]string) *State {
	s := &State{
		values: make(map[string]string, len(prefill)),
		errors: make(map[string]string),
	}
	for k, v := range prefill {
		s.values[k] = v
	}
	return s
}

// Value returns the collected or prefilled value of name.
func (s *State) Value(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.values[name]
	return v, ok
}

// SetValue stores the final text of name and clears its error.
func (s *State) SetValue(name, value string) {
	if s == nil {
		return
	}
	s.values[name] = value
	delete(s.errors, name)
}

// SetError records the message of the last failed attempt.
func (s *State) SetError(name, message string) {
	if s == nil {
		return
	}
	s.errors[name] = message
}

// ErrorFor returns the last failure message of name.
func (s *State) ErrorFor(name string) string {
	if s == nil {
		return ""
	}
	return s.errors[name]
}

// Values returns a copy of the collected values.
func (s *State) Values() map[string]string {
	if s == nil {
		return nil
	}
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}
