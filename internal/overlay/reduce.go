package overlay

// Reduce applies a to s and returns the next state plus the effects the
// transition triggered. It is pure.
//
// The chrome gate is edge-triggered: effects fire only on the frame the
// progress crosses the threshold, never while it stays on one side.
func Reduce(s State, a Action, r Rules) (State, []Effect) {
	switch a := a.(type) {
	case ProgressChanged:
		if a.T > r.Threshold && !s.ChromeShown {
			s.ChromeShown = true
			return s, []Effect{ShowChrome}
		}
		if a.T <= r.Threshold && s.ChromeShown {
			s.ChromeShown = false
			return s, []Effect{HideChrome, NavigateHome}
		}
		return s, nil

	case RouteChanged:
		s.Route = a.Route
		if a.Route == r.HomeRoute {
			s.Mode = Hidden
		} else if s.Mode == Hidden {
			s.Mode = Panel
		}
		return s, nil

	case ToggleExpand:
		if s.Route == r.HomeRoute {
			return s, nil
		}
		switch s.Mode {
		case Panel:
			s.Mode = Expanded
		case Expanded:
			s.Mode = Panel
		}
		return s, nil
	}

	return s, nil
}

// Machine owns a State and applies actions to it.
type Machine struct {
	rules Rules
	state State
}

// NewMachine creates a machine in the initial state for rules.
func NewMachine(rules Rules) *Machine {
	return &Machine{
		rules: rules,
		state: rules.Initial(),
	}
}

// Dispatch applies a and returns the triggered effects.
func (m *Machine) Dispatch(a Action) []Effect {
	next, effects := Reduce(m.state, a, m.rules)
	m.state = next
	return effects
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Rules returns the machine's rules.
func (m *Machine) Rules() Rules {
	return m.rules
}
