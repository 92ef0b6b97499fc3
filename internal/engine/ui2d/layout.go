package ui2d

import (
	"strings"

	"github.com/Faultbox/meadow/internal/overlay"
	"github.com/Faultbox/meadow/internal/scroll"
)

// Rect is an axis-aligned screen rectangle in pixels, origin top-left.
type Rect struct {
	X, Y, W, H float32
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d float32) Rect {
	return Rect{r.X + d, r.Y + d, max(r.W-2*d, 0), max(r.H-2*d, 0)}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Action is what a click on a layout element does.
type Action int

const (
	ActionNone Action = iota
	ActionNavigate
	ActionExpand
)

// Link is a navigation entry shown in the chrome.
type Link struct {
	Label string
	Route string
}

// ViewState is everything the layout depends on.
type ViewState struct {
	Overlay overlay.State
	Title   string
	Links   []Link
	Scale   float32 // Pixels per point
}

// Metrics measures label widths in points.
type Metrics interface {
	LabelWidth(text string, bold bool) float32
}

// Layout sizes in points; Compute multiplies them by ViewState.Scale.
const (
	layoutMargin     = 24
	layoutChromeH    = 56
	layoutLinkGap    = 28
	layoutButton     = 28
	layoutPadding    = 20
	layoutPanelShare = 0.42
)

// LinkBox is a placed chrome link.
type LinkBox struct {
	Link
	Rect   Rect
	Active bool
}

// Layout is the placement of every overlay element for one frame.
type Layout struct {
	Width, Height float32
	Scale         float32

	ChromeVisible bool
	Chrome        Rect
	Title         Rect
	Links         []LinkBox

	PanelVisible bool
	Panel        Rect
	Expand       Rect
	Content      Rect
}

// Compute lays out the overlay for a w x h pixel screen. Pure.
func Compute(view ViewState, w, h int, m Metrics) Layout {
	s := view.Scale
	if s <= 0 {
		s = 1
	}
	l := Layout{
		Width:  float32(w),
		Height: float32(h),
		Scale:  s,
	}

	margin := layoutMargin * s
	chromeH := layoutChromeH * s

	l.ChromeVisible = view.Overlay.ChromeShown
	l.Chrome = Rect{0, 0, l.Width, chromeH}
	if l.ChromeVisible {
		titleW := measure(m, view.Title, true) * s
		l.Title = Rect{margin, 0, titleW, chromeH}

		x := l.Width - margin
		l.Links = make([]LinkBox, len(view.Links))
		for i := len(view.Links) - 1; i >= 0; i-- {
			link := view.Links[i]
			lw := measure(m, link.Label, false) * s
			x -= lw
			l.Links[i] = LinkBox{
				Link:   link,
				Rect:   Rect{x, 0, lw, chromeH},
				Active: link.Route == view.Overlay.Route,
			}
			x -= layoutLinkGap * s
		}
	}

	switch view.Overlay.Mode {
	case overlay.Panel:
		x := l.Width * (1 - layoutPanelShare)
		l.Panel = Rect{x, chromeH + margin, l.Width - x - margin, l.Height - chromeH - 2*margin}
	case overlay.Expanded:
		l.Panel = Rect{margin, chromeH + margin, l.Width - 2*margin, l.Height - chromeH - 2*margin}
	}
	l.PanelVisible = view.Overlay.Mode != overlay.Hidden && !l.Panel.Empty()

	if l.PanelVisible {
		b := layoutButton * s
		pad := layoutPadding * s
		l.Expand = Rect{l.Panel.X + l.Panel.W - pad/2 - b, l.Panel.Y + pad/2, b, b}
		l.Content = Rect{
			X: l.Panel.X + pad,
			Y: l.Panel.Y + pad + b/2,
			W: max(l.Panel.W-2*pad, 0),
			H: max(l.Panel.H-2*pad-b/2, 0),
		}
	}

	return l
}

func measure(m Metrics, text string, bold bool) float32 {
	if m != nil {
		return m.LabelWidth(text, bold)
	}
	// Rough average advance for a 16pt proportional face.
	return float32(len([]rune(text))) * 8
}

// Hit is the result of hit-testing a point.
type Hit struct {
	Target scroll.Target
	Action Action
	Route  string
}

// HitTest finds the element under (x, y). Points over no overlay element
// belong to the 3D viewport.
func (l Layout) HitTest(x, y float32) Hit {
	if l.PanelVisible {
		if l.Expand.Contains(x, y) {
			return Hit{Target: scroll.TargetOverlay, Action: ActionExpand}
		}
		if l.Panel.Contains(x, y) {
			return Hit{Target: scroll.TargetOverlay}
		}
	}

	if l.ChromeVisible {
		for _, lb := range l.Links {
			if lb.Rect.Contains(x, y) {
				return Hit{Target: scroll.TargetChrome, Action: ActionNavigate, Route: lb.Route}
			}
		}
		if l.Title.Contains(x, y) {
			return Hit{Target: scroll.TargetChrome}
		}
	}

	return Hit{Target: scroll.TargetViewport}
}

// IsInternalRoute reports whether href points inside the app.
func IsInternalRoute(href string) bool {
	return strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "//")
}
