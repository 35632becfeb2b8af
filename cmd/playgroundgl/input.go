package main

import (
	"playgroundgl/internal/selection"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupInputHandlers(window *glfw.Window, loop *FrameLoop) {
	im := loop.input

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		im.HandleCursor(xpos, ypos)
		if loop.state.Controller.Mode() == selection.Navigating {
			loop.camera.HandleMouse(xpos, ypos)
		}
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		im.HandleScroll(yoff)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		loop.renderer.UpdateViewport(fbWidth, fbHeight)
	})

	// Selecting frees the cursor for clicking; Navigating captures it again.
	// Either way the next cursor sample must not turn the camera.
	loop.state.Controller.OnModeChange = func(m selection.Mode) {
		if m == selection.Selecting {
			window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		} else {
			window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		}
		loop.camera.ResetMouse()
	}
}
