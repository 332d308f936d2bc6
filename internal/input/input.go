package input

import (
	"fmt"
	"sync"
)

// Action represents a logical control action, not a physical key
type Action int

// Action constants using iota
const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionJump
	ActionEditorMode
	ActionMouseClickLeft
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	ActionUp:             "up",
	ActionDown:           "down",
	ActionLeft:           "left",
	ActionRight:          "right",
	ActionJump:           "jump",
	ActionEditorMode:     "editor_mode",
	ActionMouseClickLeft: "mouse_click_left",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction looks up an action by its binding name, e.g. "editor_mode".
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("input: unknown action %q", name)
}

// Manager tracks per-action strength and maps named keys to logical actions.
// Keys are plain strings ("w", "space", "mouse_left") so scripted and real
// hosts can feed the same manager.
type Manager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[string][]Action

	// Current frame strength in [0,1] (indexed by Action)
	strength [ActionCount]float32

	// Just pressed flags (reset each frame)
	justPressed [ActionCount]bool

	// Press edges waiting for a fixed-step consumer; PostUpdate keeps them
	pending [ActionCount]bool

	// Mouse motion accumulated since the last PostUpdate
	mouseDX, mouseDY float32
}

// NewManager creates a Manager with default key bindings
func NewManager() *Manager {
	m := &Manager{
		keyToActions: make(map[string][]Action),
	}

	m.BindKey("w", ActionUp)
	m.BindKey("up", ActionUp)
	m.BindKey("s", ActionDown)
	m.BindKey("down", ActionDown)
	m.BindKey("a", ActionLeft)
	m.BindKey("left", ActionLeft)
	m.BindKey("d", ActionRight)
	m.BindKey("right", ActionRight)
	m.BindKey("space", ActionJump)
	m.BindKey("tab", ActionEditorMode)
	m.BindKey("mouse_left", ActionMouseClickLeft)

	return m
}

// BindKey binds a named key to a logical action
func (m *Manager) BindKey(key string, action Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (m *Manager) UnbindKey(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.keyToActions, key)
}

// HandleKeyEvent processes a digital key press or release
func (m *Manager) HandleKeyEvent(key string, pressed bool) {
	var s float32
	if pressed {
		s = 1
	}
	m.HandleAxisEvent(key, s)
}

// HandleAxisEvent processes an analog key event. Strength is clamped to
// [0,1]; any positive strength counts as pressed.
func (m *Manager) HandleAxisEvent(key string, strength float32) {
	strength = min(max(strength, 0), 1)

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, act := range m.keyToActions[key] {
		wasActive := m.strength[act] > 0
		isActive := strength > 0
		// Detect edges immediately when event arrives
		if isActive && !wasActive {
			m.justPressed[act] = true
			m.pending[act] = true
		}
		m.strength[act] = strength
	}
}

// HandleMouseMotion accumulates relative mouse movement in pixels
func (m *Manager) HandleMouseMotion(dx, dy float32) {
	m.mu.Lock()
	m.mouseDX += dx
	m.mouseDY += dy
	m.mu.Unlock()
}

// MouseDelta returns the mouse movement accumulated this frame
func (m *Manager) MouseDelta() (dx, dy float32) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.mouseDX, m.mouseDY
}

// PostUpdate must be called at the end of each frame to reset edge flags
// and mouse motion
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range ActionCount {
		m.justPressed[i] = false
	}
	m.mouseDX, m.mouseDY = 0, 0
}

// Strength returns how strongly the action is held, 0 when released
func (m *Manager) Strength(action Action) float32 {
	if action < 0 || action >= ActionCount {
		return 0
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.strength[action]
}

// IsActive returns true if the action is currently being held down
func (m *Manager) IsActive(action Action) bool {
	return m.Strength(action) > 0
}

// JustPressed returns true only if the action was pressed in the current frame
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.justPressed[action]
}

// ConsumeJustPressed reports whether action was pressed since the last call
// and clears that edge. Physics ticks use it so a press is seen by exactly one
// tick, however many ticks a frame runs, including a frame that runs none.
func (m *Manager) ConsumeJustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	pressed := m.pending[action]
	m.pending[action] = false
	return pressed
}
