package input

import (
	"github.com/dmgcore/gbcore/internal/interrupt"
	"github.com/dmgcore/gbcore/internal/joypad"
)

// InputManager manages input state and provides keyboard mapping for the Game Boy emulator
// It acts as a bridge between external input systems (keyboard/gamepad) and the joypad component
type InputManager struct {
	joypad  *joypad.Joypad
	irq     *interrupt.Controller
	keyMap  KeyMapping
	enabled bool
}

// KeyMapping defines the keyboard keys mapped to Game Boy buttons
type KeyMapping struct {
	// Direction keys
	Up    Key
	Down  Key
	Left  Key
	Right Key

	// Action keys
	A      Key
	B      Key
	Select Key
	Start  Key
}

// Key represents a keyboard key or gamepad button
// This is an abstraction that can be mapped to different input libraries
type Key int

// Standard keyboard key mappings (can be extended for different libraries)
const (
	KeyUnknown Key = iota

	// Arrow keys
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Numbers
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Special keys
	KeySpace
	KeyEnter
	KeyBackspace
	KeyTab
	KeyShift
	KeyCtrl
	KeyAlt
	KeyEscape
)

// InputEvent represents an input event from the external input system
type InputEvent struct {
	Key     Key
	Pressed bool
}

// NewInputManager creates a new input manager bridging keyboard events to the
// given joypad. irq is the same interrupt controller the joypad's owning
// system uses, since a press/release can raise the joypad interrupt.
func NewInputManager(jp *joypad.Joypad, irq *interrupt.Controller) *InputManager {
	return &InputManager{
		joypad:  jp,
		irq:     irq,
		keyMap:  DefaultKeyMapping(),
		enabled: true,
	}
}

// DefaultKeyMapping returns the default keyboard mapping for Game Boy controls
// Arrow keys for directions, Z/X for A/B, A/S for Select/Start
func DefaultKeyMapping() KeyMapping {
	return KeyMapping{
		Up:    KeyArrowUp,
		Down:  KeyArrowDown,
		Left:  KeyArrowLeft,
		Right: KeyArrowRight,

		A:      KeyZ,
		B:      KeyX,
		Select: KeyA,
		Start:  KeyS,
	}
}

// AlternateKeyMapping returns an alternate keyboard mapping
// WASD for directions, J/K for A/B, etc.
func AlternateKeyMapping() KeyMapping {
	return KeyMapping{
		Up:    KeyW,
		Down:  KeyS,
		Left:  KeyA,
		Right: KeyD,

		A:      KeyJ,
		B:      KeyK,
		Select: KeySpace,
		Start:  KeyEnter,
	}
}

// SetKeyMapping updates the keyboard mapping
func (im *InputManager) SetKeyMapping(mapping KeyMapping) {
	im.keyMap = mapping
}

// GetKeyMapping returns the current keyboard mapping
func (im *InputManager) GetKeyMapping() KeyMapping {
	return im.keyMap
}

// SetEnabled enables or disables input processing
func (im *InputManager) SetEnabled(enabled bool) {
	im.enabled = enabled
}

// IsEnabled returns true if input processing is enabled
func (im *InputManager) IsEnabled() bool {
	return im.enabled
}

// ProcessInputEvent processes a single input event and updates joypad state
func (im *InputManager) ProcessInputEvent(event InputEvent) {
	if !im.enabled {
		return
	}

	button, ok := im.mapKeyToButton(event.Key)
	if ok {
		im.joypad.SetButton(button, event.Pressed, im.irq)
	}
}

// ProcessInputEvents processes multiple input events at once
func (im *InputManager) ProcessInputEvents(events []InputEvent) {
	if !im.enabled {
		return
	}

	for _, event := range events {
		im.ProcessInputEvent(event)
	}
}

// mapKeyToButton maps a keyboard key to a Game Boy button.
func (im *InputManager) mapKeyToButton(key Key) (joypad.Button, bool) {
	keyMap := im.keyMap

	switch key {
	case keyMap.Up:
		return joypad.Up, true
	case keyMap.Down:
		return joypad.Down, true
	case keyMap.Left:
		return joypad.Left, true
	case keyMap.Right:
		return joypad.Right, true
	case keyMap.A:
		return joypad.A, true
	case keyMap.B:
		return joypad.B, true
	case keyMap.Select:
		return joypad.Select, true
	case keyMap.Start:
		return joypad.Start, true
	default:
		return 0, false
	}
}

// GetJoypad returns the joypad instance for direct access
func (im *InputManager) GetJoypad() *joypad.Joypad {
	return im.joypad
}

// GetButtonStates returns the current state of all Game Boy buttons
func (im *InputManager) GetButtonStates() map[string]bool {
	return map[string]bool{
		"up":     im.joypad.Pressed(joypad.Up),
		"down":   im.joypad.Pressed(joypad.Down),
		"left":   im.joypad.Pressed(joypad.Left),
		"right":  im.joypad.Pressed(joypad.Right),
		"a":      im.joypad.Pressed(joypad.A),
		"b":      im.joypad.Pressed(joypad.B),
		"select": im.joypad.Pressed(joypad.Select),
		"start":  im.joypad.Pressed(joypad.Start),
	}
}

// Reset resets all button states to released
func (im *InputManager) Reset() {
	im.joypad.Reset()
}

// =============================================================================
// Input State Polling Interface
// =============================================================================

// InputStateProvider defines an interface for getting current input state
// This allows different implementations (polling vs event-driven)
type InputStateProvider interface {
	// IsKeyPressed returns true if the specified key is currently pressed
	IsKeyPressed(key Key) bool

	// GetPressedKeys returns a slice of all currently pressed keys
	GetPressedKeys() []Key
}

// UpdateFromStateProvider updates joypad state by polling an InputStateProvider
// This is useful for libraries that provide polling-based input rather than events
func (im *InputManager) UpdateFromStateProvider(provider InputStateProvider) {
	if !im.enabled || provider == nil {
		return
	}

	keyButtons := []struct {
		key    Key
		button joypad.Button
	}{
		{im.keyMap.Up, joypad.Up},
		{im.keyMap.Down, joypad.Down},
		{im.keyMap.Left, joypad.Left},
		{im.keyMap.Right, joypad.Right},
		{im.keyMap.A, joypad.A},
		{im.keyMap.B, joypad.B},
		{im.keyMap.Select, joypad.Select},
		{im.keyMap.Start, joypad.Start},
	}

	for _, mapping := range keyButtons {
		pressed := provider.IsKeyPressed(mapping.key)
		im.joypad.SetButton(mapping.button, pressed, im.irq)
	}
}

// =============================================================================
// Input History and Recording (for debugging/testing)
// =============================================================================

// InputHistory stores a history of input events for debugging or playback
type InputHistory struct {
	events  []InputEvent
	maxSize int
	enabled bool
}

// NewInputHistory creates a new input history with the specified maximum size
func NewInputHistory(maxSize int) *InputHistory {
	return &InputHistory{
		events:  make([]InputEvent, 0, maxSize),
		maxSize: maxSize,
		enabled: false,
	}
}

// SetEnabled enables or disables input history recording
func (ih *InputHistory) SetEnabled(enabled bool) {
	ih.enabled = enabled
}

// RecordEvent adds an input event to the history
func (ih *InputHistory) RecordEvent(event InputEvent) {
	if !ih.enabled {
		return
	}

	ih.events = append(ih.events, event)

	if len(ih.events) > ih.maxSize {
		copy(ih.events, ih.events[1:])
		ih.events = ih.events[:ih.maxSize]
	}
}

// GetHistory returns a copy of the input event history
func (ih *InputHistory) GetHistory() []InputEvent {
	history := make([]InputEvent, len(ih.events))
	copy(history, ih.events)
	return history
}

// Clear clears the input history
func (ih *InputHistory) Clear() {
	ih.events = ih.events[:0]
}

// InputManagerWithHistory extends InputManager with history recording
type InputManagerWithHistory struct {
	*InputManager
	history *InputHistory
}

// NewInputManagerWithHistory creates an input manager with history recording
func NewInputManagerWithHistory(jp *joypad.Joypad, irq *interrupt.Controller, historySize int) *InputManagerWithHistory {
	return &InputManagerWithHistory{
		InputManager: NewInputManager(jp, irq),
		history:      NewInputHistory(historySize),
	}
}

// ProcessInputEvent processes an input event and optionally records it to history
func (imh *InputManagerWithHistory) ProcessInputEvent(event InputEvent) {
	imh.history.RecordEvent(event)
	imh.InputManager.ProcessInputEvent(event)
}

// GetInputHistory returns the input history
func (imh *InputManagerWithHistory) GetInputHistory() *InputHistory {
	return imh.history
}
