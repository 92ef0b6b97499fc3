// Package input translates SDL2 events into application events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// WheelStep is the scroll distance of one wheel notch, in the same units
// browsers report for a line of wheel scrolling.
const WheelStep = 100

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventWheel
)

// Event is a processed input event. Positions and sizes are in drawable
// pixels.
type Event struct {
	Type   EventType
	Key    sdl.Keycode
	Mod    sdl.Keymod
	Repeat bool
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
	DeltaY float64 // Positive scrolls down, toward the content below
}

// Alt reports whether an Alt key was held.
func (e Event) Alt() bool {
	return e.Mod&sdl.KMOD_ALT != 0
}

// Input polls SDL events and keeps the last known pointer position.
type Input struct {
	events []Event
	mouseX int
	mouseY int

	// Scale converts screen points to drawable pixels.
	Scale float32
	// Drawable returns the framebuffer size, used on resize.
	Drawable func() (int, int)
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		Scale:  1,
	}
}

// Update polls SDL events. Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		ev, ok := i.Translate(event)
		if !ok {
			continue
		}
		i.events = append(i.events, ev)
		if ev.Type == EventQuit {
			return true
		}
	}

	return false
}

// Translate converts one SDL event. ok is false for events the
// application does not use.
func (i *Input) Translate(event sdl.Event) (ev Event, ok bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event != sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{}, false
		}
		w, h := i.scale(e.Data1), i.scale(e.Data2)
		if i.Drawable != nil {
			w, h = i.Drawable()
		}
		return Event{Type: EventWindowResize, Width: w, Height: h}, true

	case *sdl.KeyboardEvent:
		t := EventKeyDown
		if e.Type == sdl.KEYUP {
			t = EventKeyUp
		}
		return Event{
			Type:   t,
			Key:    e.Keysym.Sym,
			Mod:    sdl.Keymod(e.Keysym.Mod),
			Repeat: e.Repeat != 0,
		}, true

	case *sdl.MouseMotionEvent:
		i.mouseX, i.mouseY = i.scale(e.X), i.scale(e.Y)
		return Event{Type: EventMouseMove, MouseX: i.mouseX, MouseY: i.mouseY}, true

	case *sdl.MouseButtonEvent:
		t := EventMouseDown
		if e.Type == sdl.MOUSEBUTTONUP {
			t = EventMouseUp
		}
		i.mouseX, i.mouseY = i.scale(e.X), i.scale(e.Y)
		return Event{Type: t, MouseX: i.mouseX, MouseY: i.mouseY, Button: e.Button}, true

	case *sdl.MouseWheelEvent:
		dy := float64(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dy = -dy
		}
		if dy == 0 {
			return Event{}, false
		}
		// SDL reports positive Y when scrolling away from the user.
		return Event{
			Type:   EventWheel,
			MouseX: i.mouseX,
			MouseY: i.mouseY,
			DeltaY: -dy * WheelStep,
		}, true
	}

	return Event{}, false
}

func (i *Input) scale(v int32) int {
	return int(float32(v) * i.Scale)
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Mouse returns the last known pointer position.
func (i *Input) Mouse() (int, int) {
	return i.mouseX, i.mouseY
}
