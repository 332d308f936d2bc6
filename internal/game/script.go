package game

import (
	"slices"

	"gridterrain/internal/input"
)

// Event is one scripted input event delivered at the start of Frame.
// An empty Key carries mouse motion only. A pressed event with a Strength
// in (0,1) is delivered as a partial axis press.
type Event struct {
	Frame    int
	Key      string
	Pressed  bool
	Strength float32
	MouseDX  float32
	MouseDY  float32
}

// Script replays input events into a Manager frame by frame. Add it to the
// loop before any node that reads input.
type Script struct {
	im     *input.Manager
	events []Event
	frame  int
	next   int
}

// NewScript orders events by frame, keeping the given order within a frame.
func NewScript(im *input.Manager, events []Event) *Script {
	events = slices.Clone(events)
	slices.SortStableFunc(events, func(a, b Event) int { return a.Frame - b.Frame })
	return &Script{im: im, events: events}
}

// OnTick delivers every event due at the current frame.
func (s *Script) OnTick(float64) {
	for s.next < len(s.events) && s.events[s.next].Frame <= s.frame {
		e := s.events[s.next]
		switch {
		case e.Key == "":
		case e.Pressed && e.Strength > 0:
			s.im.HandleAxisEvent(e.Key, e.Strength)
		default:
			s.im.HandleKeyEvent(e.Key, e.Pressed)
		}
		if e.MouseDX != 0 || e.MouseDY != 0 {
			s.im.HandleMouseMotion(e.MouseDX, e.MouseDY)
		}
		s.next++
	}
	s.frame++
}

func (s *Script) OnPhysicsTick(float64) {}

func (s *Script) OnTimer() {}

// Done reports whether every event has been delivered.
func (s *Script) Done() bool {
	return s.next >= len(s.events)
}
