package main

import "gridterrain/internal/game"

// walkScript walks forward for the whole run, turning and hopping now and
// then, and builds a small pillar once the first chunk shift is behind it.
func walkScript() []game.Event {
	events := []game.Event{
		{Frame: 0, Key: "w", Pressed: true},
	}

	// Hop over ledges the body cannot step up
	for f := 45; f < 2400; f += 45 {
		events = append(events,
			game.Event{Frame: f, Key: "space", Pressed: true},
			game.Event{Frame: f + 1, Key: "space", Pressed: false},
		)
	}

	// A gentle right turn every four seconds
	for f := 240; f < 2400; f += 240 {
		events = append(events, game.Event{Frame: f, MouseDX: 120})
	}

	// Stop, look down and place three blocks
	const build = 400
	events = append(events,
		game.Event{Frame: build, Key: "w", Pressed: false},
		game.Event{Frame: build, Key: "tab", Pressed: true},
		game.Event{Frame: build, MouseDY: 360},
		game.Event{Frame: build + 1, Key: "tab", Pressed: false},
	)
	for i := range 3 {
		f := build + 2 + i*10
		events = append(events,
			game.Event{Frame: f, Key: "mouse_left", Pressed: true},
			game.Event{Frame: f + 1, Key: "mouse_left", Pressed: false},
		)
	}

	// Back to mining and walking
	const resume = build + 40
	events = append(events,
		game.Event{Frame: resume, Key: "tab", Pressed: true},
		game.Event{Frame: resume + 1, Key: "tab", Pressed: false},
		game.Event{Frame: resume + 1, Key: "mouse_left", Pressed: true},
		game.Event{Frame: resume + 2, Key: "mouse_left", Pressed: false},
		game.Event{Frame: resume + 2, MouseDY: -360},
		// Stroll at half speed for the rest of the run
		game.Event{Frame: resume + 3, Key: "w", Pressed: true, Strength: 0.5},
	)
	return events
}
