package ui2d

import (
	"testing"

	"github.com/Faultbox/meadow/internal/overlay"
	"github.com/Faultbox/meadow/internal/scroll"
)

// fixedMetrics makes every character 10 points wide.
type fixedMetrics struct{}

func (fixedMetrics) LabelWidth(text string, bold bool) float32 {
	return float32(len(text)) * 10
}

var testLinks = []Link{
	{Label: "About", Route: "/about"},
	{Label: "Projects", Route: "/projects"},
	{Label: "Contact", Route: "/contact"},
}

func view(mode overlay.Mode, chrome bool, route string) ViewState {
	return ViewState{
		Overlay: overlay.State{Mode: mode, ChromeShown: chrome, Route: route},
		Title:   "meadow",
		Links:   testLinks,
		Scale:   1,
	}
}

func TestLayoutHidden(t *testing.T) {
	l := Compute(view(overlay.Hidden, false, "/"), 1000, 600, fixedMetrics{})
	if l.PanelVisible || l.ChromeVisible {
		t.Errorf("hidden layout shows panel=%v chrome=%v", l.PanelVisible, l.ChromeVisible)
	}
	for _, p := range [][2]float32{{10, 10}, {900, 300}, {500, 20}} {
		if hit := l.HitTest(p[0], p[1]); hit.Target != scroll.TargetViewport {
			t.Errorf("HitTest(%v) = %+v, want viewport", p, hit)
		}
	}
}

func TestLayoutChromeLinks(t *testing.T) {
	l := Compute(view(overlay.Hidden, true, "/"), 1000, 600, fixedMetrics{})
	if len(l.Links) != 3 {
		t.Fatalf("got %d links, want 3", len(l.Links))
	}

	// Right-aligned, in order, with the last ending at the margin.
	last := l.Links[2].Rect
	if got := last.X + last.W; got != 1000-layoutMargin {
		t.Errorf("last link ends at %v, want %v", got, 1000-layoutMargin)
	}
	if !(l.Links[0].Rect.X < l.Links[1].Rect.X && l.Links[1].Rect.X < l.Links[2].Rect.X) {
		t.Error("links not in left-to-right order")
	}
	if l.Links[1].Rect.W != 80 {
		t.Errorf("Projects width = %v, want 80", l.Links[1].Rect.W)
	}

	r := l.Links[1].Rect
	hit := l.HitTest(r.X+r.W/2, r.Y+r.H/2)
	if hit.Target != scroll.TargetChrome || hit.Action != ActionNavigate || hit.Route != "/projects" {
		t.Errorf("HitTest(Projects) = %+v", hit)
	}

	if hit := l.HitTest(l.Title.X+1, 10); hit.Target != scroll.TargetChrome || hit.Action != ActionNone {
		t.Errorf("HitTest(title) = %+v, want chrome without action", hit)
	}
	// Gap between title and links is still the viewport.
	if hit := l.HitTest(400, 10); hit.Target != scroll.TargetViewport {
		t.Errorf("HitTest(chrome gap) = %+v, want viewport", hit)
	}
}

func TestLayoutActiveLink(t *testing.T) {
	l := Compute(view(overlay.Panel, true, "/contact"), 1000, 600, fixedMetrics{})
	for _, lb := range l.Links {
		if lb.Active != (lb.Route == "/contact") {
			t.Errorf("link %s Active = %v", lb.Route, lb.Active)
		}
	}
}

func TestLayoutPanelModes(t *testing.T) {
	panel := Compute(view(overlay.Panel, true, "/about"), 1000, 600, fixedMetrics{})
	expanded := Compute(view(overlay.Expanded, true, "/about"), 1000, 600, fixedMetrics{})

	if !panel.PanelVisible || !expanded.PanelVisible {
		t.Fatal("panel not visible")
	}
	if panel.Panel.X < 500 {
		t.Errorf("panel starts at x=%v, want right side of screen", panel.Panel.X)
	}
	if expanded.Panel.W <= panel.Panel.W {
		t.Errorf("expanded width %v not wider than panel %v", expanded.Panel.W, panel.Panel.W)
	}
	if expanded.Panel.X != layoutMargin {
		t.Errorf("expanded x = %v, want margin", expanded.Panel.X)
	}

	for _, l := range []Layout{panel, expanded} {
		if !l.Panel.Contains(l.Content.X, l.Content.Y) {
			t.Error("content rect outside panel")
		}
		e := l.Expand
		hit := l.HitTest(e.X+e.W/2, e.Y+e.H/2)
		if hit.Target != scroll.TargetOverlay || hit.Action != ActionExpand {
			t.Errorf("HitTest(expand) = %+v", hit)
		}
		c := l.Content
		if hit := l.HitTest(c.X+c.W/2, c.Y+c.H/2); hit.Target != scroll.TargetOverlay || hit.Action != ActionNone {
			t.Errorf("HitTest(content) = %+v, want overlay", hit)
		}
	}

	// Left of the side panel is still the viewport.
	if hit := panel.HitTest(100, 300); hit.Target != scroll.TargetViewport {
		t.Errorf("HitTest(left of panel) = %+v, want viewport", hit)
	}
}

func TestLayoutScale(t *testing.T) {
	v := view(overlay.Panel, true, "/about")
	v.Scale = 2
	l := Compute(v, 2000, 1200, fixedMetrics{})
	if l.Chrome.H != 2*layoutChromeH {
		t.Errorf("chrome height = %v, want %v", l.Chrome.H, 2*layoutChromeH)
	}
	if l.Links[0].Rect.W != 100 {
		t.Errorf("About width = %v, want 100 at 2x", l.Links[0].Rect.W)
	}
}

func TestLayoutTinyWindow(t *testing.T) {
	l := Compute(view(overlay.Panel, true, "/about"), 50, 50, fixedMetrics{})
	if l.PanelVisible {
		t.Errorf("panel visible in 50x50 window: %+v", l.Panel)
	}
}

func TestIsInternalRoute(t *testing.T) {
	tests := map[string]bool{
		"/about":              true,
		"/":                   true,
		"//cdn.example.com/x": false,
		"https://example.com": false,
		"mailto:a@b.c":        false,
	}
	for href, want := range tests {
		if got := IsInternalRoute(href); got != want {
			t.Errorf("IsInternalRoute(%q) = %v, want %v", href, got, want)
		}
	}
}
