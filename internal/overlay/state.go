// Package overlay holds the overlay UI state machine: whether the chrome is
// shown, which route the overlay displays and how the panel is presented.
// The UI layer renders this state; it never stores state of its own.
package overlay

// Mode is how the overlay panel is presented.
type Mode int

const (
	Hidden Mode = iota
	Panel
	Expanded
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Hidden:
		return "hidden"
	case Panel:
		return "panel"
	case Expanded:
		return "expanded"
	default:
		return "unknown"
	}
}

// State is the full overlay state.
type State struct {
	Mode        Mode
	ChromeShown bool
	Route       string
}

// Rules are the fixed parameters of the machine.
type Rules struct {
	Threshold float64 // Progress above which the chrome is shown
	HomeRoute string  // Route that hides the panel
}

// DefaultRules returns the standard threshold and home route.
func DefaultRules() Rules {
	return Rules{
		Threshold: 0.5,
		HomeRoute: "/",
	}
}

// Initial returns the start state for rules: chrome hidden, home route.
func (r Rules) Initial() State {
	return State{
		Mode:  Hidden,
		Route: r.HomeRoute,
	}
}

// Action is an input to the reducer.
type Action interface {
	isAction()
}

// ProgressChanged reports the scroll progress for this frame.
type ProgressChanged struct {
	T float64
}

// RouteChanged reports the route the router resolved.
type RouteChanged struct {
	Route string
}

// ToggleExpand flips the panel between Panel and Expanded.
type ToggleExpand struct{}

func (ProgressChanged) isAction() {}
func (RouteChanged) isAction()    {}
func (ToggleExpand) isAction()    {}

// Effect is a side effect the caller must carry out after a transition.
type Effect int

const (
	ShowChrome Effect = iota + 1
	HideChrome
	NavigateHome
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case ShowChrome:
		return "show-chrome"
	case HideChrome:
		return "hide-chrome"
	case NavigateHome:
		return "navigate-home"
	default:
		return "none"
	}
}
