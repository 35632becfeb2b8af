// Package app holds the mutable per-session state shared by the input
// handlers and the frame loop.
package app

import (
	"fmt"
	"strings"

	"playgroundgl/internal/selection"
)

// RenderMode selects how the main pass rasterises polygons.
type RenderMode int

const (
	Shaded RenderMode = iota
	Wireframe
	Points
	numRenderModes
)

func (m RenderMode) String() string {
	switch m {
	case Shaded:
		return "shaded"
	case Wireframe:
		return "wireframe"
	case Points:
		return "points"
	}
	return fmt.Sprintf("RenderMode(%d)", int(m))
}

// Next returns the mode after m in the Shaded, Wireframe, Points cycle.
func (m RenderMode) Next() RenderMode {
	return (m + 1) % numRenderModes
}

// ParseRenderMode accepts the names printed by String, case-insensitively.
func ParseRenderMode(s string) (RenderMode, error) {
	switch strings.ToLower(s) {
	case "shaded", "":
		return Shaded, nil
	case "wireframe":
		return Wireframe, nil
	case "points":
		return Points, nil
	}
	return Shaded, fmt.Errorf("unknown render mode %q", s)
}

// State is everything the keyboard can change during a session.
type State struct {
	Controller   *selection.Controller
	RenderMode   RenderMode
	SunOn        bool
	FlashlightOn bool

	// FlashlightPitch and FlashlightYaw are steered with the arrow keys and
	// clamped by the lighting package.
	FlashlightPitch float32
	FlashlightYaw   float32
}

// NewState returns a session in Navigating mode with nothing selected.
func NewState(mode RenderMode, sun, flashlight bool) *State {
	return &State{
		Controller:   selection.NewController(),
		RenderMode:   mode,
		SunOn:        sun,
		FlashlightOn: flashlight,
	}
}

// CycleRenderMode advances to the next render mode.
func (s *State) CycleRenderMode() RenderMode {
	s.RenderMode = s.RenderMode.Next()
	return s.RenderMode
}

// ToggleWireframe flips between Wireframe and Shaded. From Points it goes
// to Wireframe.
func (s *State) ToggleWireframe() RenderMode {
	if s.RenderMode == Wireframe {
		s.RenderMode = Shaded
	} else {
		s.RenderMode = Wireframe
	}
	return s.RenderMode
}

func (s *State) ToggleSun() bool {
	s.SunOn = !s.SunOn
	return s.SunOn
}

func (s *State) ToggleFlashlight() bool {
	s.FlashlightOn = !s.FlashlightOn
	return s.FlashlightOn
}

// SteerFlashlight nudges the flashlight angles by the given deltas, radians.
func (s *State) SteerFlashlight(dPitch, dYaw float32) {
	s.FlashlightPitch += dPitch
	s.FlashlightYaw += dYaw
}
