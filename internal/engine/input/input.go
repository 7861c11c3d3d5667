// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// Input handles all input processing. Per-frame state (edge events and
// accumulated mouse deltas) is rebuilt on every Update; held-key queries
// go straight to the SDL keyboard state.
type Input struct {
	events []Event

	mouseDX float32
	mouseDY float32

	keyboard []uint8
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to viewer events.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	i.mouseDX = 0
	i.mouseDY = 0

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
			} else if e.Type == sdl.KEYUP {
				i.events = append(i.events, Event{
					Type: EventKeyUp,
					Key:  e.Keysym.Scancode,
				})
			}

		case *sdl.MouseMotionEvent:
			// Relative mode: XRel/YRel carry the per-event deltas.
			i.mouseDX += float32(e.XRel)
			i.mouseDY += float32(e.YRel)
		}
	}

	i.keyboard = sdl.GetKeyboardState()

	return quit
}

// Events returns the edge events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// MouseDelta returns the accumulated relative mouse movement for the
// last frame, in pixels.
func (i *Input) MouseDelta() (float32, float32) {
	return i.mouseDX, i.mouseDY
}

// IsKeyDown reports whether the key is currently held.
func (i *Input) IsKeyDown(scancode sdl.Scancode) bool {
	if int(scancode) >= len(i.keyboard) {
		return false
	}
	return i.keyboard[scancode] != 0
}

// WasKeyPressed reports whether the key went down this frame.
func (i *Input) WasKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}
