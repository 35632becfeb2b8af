package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical command, independent of the key that triggers it.
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionToggleMode
	ActionCycleRenderMode
	ActionToggleWireframe
	ActionToggleSun
	ActionToggleFlashlight
	ActionFlashlightUp
	ActionFlashlightDown
	ActionFlashlightLeft
	ActionFlashlightRight
	ActionQuit
	ActionMouseLeft
	ActionCount
)

// InputManager maps GLFW keys and mouse buttons to actions and tracks held
// state plus per-frame press and release edges. It also accumulates scroll
// offsets and remembers the last cursor position.
type InputManager struct {
	mu sync.RWMutex

	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	current      [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	scrollY          float64
	cursorX, cursorY float64
}

// NewInputManager returns a manager with the default bindings.
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeyC, ActionToggleMode)
	im.BindKey(glfw.KeyTab, ActionCycleRenderMode)
	im.BindKey(glfw.KeySpace, ActionToggleWireframe)
	im.BindKey(glfw.KeyL, ActionToggleSun)
	im.BindKey(glfw.KeyF, ActionToggleFlashlight)
	im.BindKey(glfw.KeyUp, ActionFlashlightUp)
	im.BindKey(glfw.KeyDown, ActionFlashlightDown)
	im.BindKey(glfw.KeyLeft, ActionFlashlightLeft)
	im.BindKey(glfw.KeyRight, ActionFlashlightRight)
	im.BindKey(glfw.KeyQ, ActionQuit)
	im.BindKey(glfw.KeyEscape, ActionQuit)

	im.BindMouseButton(glfw.MouseButtonLeft, ActionMouseLeft)

	return im
}

// BindKey adds action to key. A key may trigger several actions and an
// action may have several keys.
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()
	delete(im.keyToActions, key)
}

func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// HandleKeyEvent records a key callback. Repeat counts as held.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.apply(im.keyToActions[key], action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent records a mouse button callback.
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.apply(im.mouseButtonToActions[button], action == glfw.Press)
}

// apply must be called with mu held.
func (im *InputManager) apply(actions []Action, pressed bool) {
	for _, a := range actions {
		if pressed && !im.current[a] {
			im.justPressed[a] = true
		}
		if !pressed && im.current[a] {
			im.justReleased[a] = true
		}
		im.current[a] = pressed
	}
}

// HandleScroll accumulates vertical scroll until TakeScroll.
func (im *InputManager) HandleScroll(yoff float64) {
	im.mu.Lock()
	im.scrollY += yoff
	im.mu.Unlock()
}

// TakeScroll returns and clears the accumulated vertical scroll.
func (im *InputManager) TakeScroll() float64 {
	im.mu.Lock()
	defer im.mu.Unlock()
	y := im.scrollY
	im.scrollY = 0
	return y
}

func (im *InputManager) HandleCursor(x, y float64) {
	im.mu.Lock()
	im.cursorX, im.cursorY = x, y
	im.mu.Unlock()
}

// Cursor returns the last cursor position in window coordinates.
func (im *InputManager) Cursor() (x, y float64) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.cursorX, im.cursorY
}

// PostUpdate clears the edge flags. Call once at the end of every frame.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	clear(im.justPressed[:])
	clear(im.justReleased[:])
}

// IsActive reports whether the action is held.
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.current[action]
}

// JustPressed reports a press edge in the current frame.
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}

func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justReleased[action]
}
