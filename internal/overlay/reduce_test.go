package overlay

import (
	"slices"
	"testing"
)

func TestChromeShowsOnceOnUpwardCrossing(t *testing.T) {
	m := NewMachine(DefaultRules())

	shows := 0
	progress := []float64{0, 0.2, 0.49, 0.5, 0.51, 0.6, 0.9, 1, 1, 0.8, 0.51}
	for _, p := range progress {
		for _, e := range m.Dispatch(ProgressChanged{T: p}) {
			if e == ShowChrome {
				shows++
			}
		}
	}

	if shows != 1 {
		t.Errorf("ShowChrome fired %d times, want 1", shows)
	}
	if !m.State().ChromeShown {
		t.Error("ChromeShown = false, want true")
	}
}

func TestThresholdIsExclusive(t *testing.T) {
	m := NewMachine(DefaultRules())
	if effects := m.Dispatch(ProgressChanged{T: 0.5}); effects != nil {
		t.Errorf("progress exactly at threshold fired %v", effects)
	}
	if m.State().ChromeShown {
		t.Error("chrome shown at threshold")
	}
}

func TestDownwardCrossingNavigatesHome(t *testing.T) {
	m := NewMachine(DefaultRules())
	m.Dispatch(ProgressChanged{T: 0.8})
	m.Dispatch(RouteChanged{Route: "/projects"})

	effects := m.Dispatch(ProgressChanged{T: 0.5})
	want := []Effect{HideChrome, NavigateHome}
	if !slices.Equal(effects, want) {
		t.Errorf("effects = %v, want %v", effects, want)
	}
	if m.State().ChromeShown {
		t.Error("ChromeShown = true after downward crossing")
	}

	// Staying below must not re-fire.
	for _, p := range []float64{0.4, 0.1, 0} {
		if effects := m.Dispatch(ProgressChanged{T: p}); effects != nil {
			t.Errorf("progress %v fired %v", p, effects)
		}
	}
}

func TestRouteChangedModes(t *testing.T) {
	r := DefaultRules()
	tests := []struct {
		name  string
		start Mode
		route string
		want  Mode
	}{
		{"home hides panel", Panel, "/", Hidden},
		{"home hides expanded", Expanded, "/", Hidden},
		{"page opens panel", Hidden, "/about", Panel},
		{"page keeps panel", Panel, "/contact", Panel},
		{"page keeps expanded", Expanded, "/projects", Expanded},
		{"not found opens panel", Hidden, "/nope", Panel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, effects := Reduce(State{Mode: tt.start, Route: "/x"}, RouteChanged{Route: tt.route}, r)
			if s.Mode != tt.want {
				t.Errorf("Mode = %v, want %v", s.Mode, tt.want)
			}
			if s.Route != tt.route {
				t.Errorf("Route = %q, want %q", s.Route, tt.route)
			}
			if effects != nil {
				t.Errorf("effects = %v, want none", effects)
			}
		})
	}
}

func TestToggleExpand(t *testing.T) {
	r := DefaultRules()

	s := State{Mode: Panel, Route: "/projects", ChromeShown: true}
	s, _ = Reduce(s, ToggleExpand{}, r)
	if s.Mode != Expanded {
		t.Errorf("Mode = %v, want expanded", s.Mode)
	}
	s, _ = Reduce(s, ToggleExpand{}, r)
	if s.Mode != Panel {
		t.Errorf("Mode = %v, want panel", s.Mode)
	}

	home := State{Mode: Hidden, Route: "/"}
	if got, _ := Reduce(home, ToggleExpand{}, r); got != home {
		t.Errorf("toggle on home changed state to %+v", got)
	}
}

func TestToggleIndependentOfChrome(t *testing.T) {
	r := DefaultRules()
	s := State{Mode: Panel, Route: "/about", ChromeShown: false}
	s, _ = Reduce(s, ToggleExpand{}, r)
	if s.Mode != Expanded || s.ChromeShown {
		t.Errorf("state = %+v, want expanded with chrome untouched", s)
	}
}

func TestProgressLeavesRouteAlone(t *testing.T) {
	r := DefaultRules()
	s := State{Mode: Panel, Route: "/about"}
	s, _ = Reduce(s, ProgressChanged{T: 0.9}, r)
	if s.Route != "/about" || s.Mode != Panel {
		t.Errorf("state = %+v, progress must not touch route or mode", s)
	}
}

func TestModeString(t *testing.T) {
	if Hidden.String() != "hidden" || Panel.String() != "panel" || Expanded.String() != "expanded" {
		t.Error("unexpected mode names")
	}
	if NavigateHome.String() != "navigate-home" {
		t.Errorf("NavigateHome.String() = %q", NavigateHome.String())
	}
}
