package components

import (
	"time"

	"github.com/automoto/orbitrig/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// RigInputData is the decoded input of one frame. Motion and Wheel keep the order the
// events arrived in.
type RigInputData struct {
	Delta   time.Duration
	Keys    map[config.KeyCode]bool
	Buttons map[config.MouseButton]bool
	Motion  []mgl32.Vec2 // Cursor deltas in pixels
	Wheel   []float32    // Vertical wheel notches

	// Cursor position in screen pixels, used for picking. CursorValid is false until
	// the first position is recorded.
	Cursor        mgl32.Vec2
	CursorValid   bool
	JustPressed   map[config.MouseButton]bool
	JustTypedKeys []config.KeyCode
}

// AnyHeld reports whether any of keys is held.
func (in *RigInputData) AnyHeld(keys []config.KeyCode) bool {
	for _, k := range keys {
		if in.Keys[k] {
			return true
		}
	}
	return false
}

// Held reports whether mouse button b is held.
func (in *RigInputData) Held(b config.MouseButton) bool {
	return in.Buttons[b]
}

// Typed reports whether key went down this frame.
func (in *RigInputData) Typed(key config.KeyCode) bool {
	for _, k := range in.JustTypedKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Clear drops everything recorded for the previous frame, keeping the maps allocated.
func (in *RigInputData) Clear() {
	in.Delta = 0
	clear(in.Keys)
	clear(in.Buttons)
	clear(in.JustPressed)
	in.Motion = in.Motion[:0]
	in.Wheel = in.Wheel[:0]
	in.JustTypedKeys = in.JustTypedKeys[:0]
}

var RigInput = donburi.NewComponentType[RigInputData]()
