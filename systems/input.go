package systems

import (
	"time"

	"github.com/automoto/orbitrig/archetypes"
	"github.com/automoto/orbitrig/components"
	"github.com/automoto/orbitrig/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// GetOrCreateInput returns the frame input singleton. The host fills it before the rig
// phases run.
func GetOrCreateInput(w donburi.World) *components.RigInputData {
	entry, ok := components.RigInput.First(w)
	if !ok {
		entry = archetypes.Input.Spawn(w)
		// Zero-value RigInputData reads as "nothing held"
	}
	return components.RigInput.Get(entry)
}

// InputFrame is one frame of raw device state as the host read it.
type InputFrame struct {
	Delta       time.Duration
	Keys        []config.KeyCode
	Buttons     []config.MouseButton
	JustPressed []config.MouseButton
	JustTyped   []config.KeyCode
	Cursor      mgl32.Vec2
	Wheel       float32 // Vertical notches, positive away from the user
}

// RecordInput replaces the input singleton with frame. The cursor delta since the
// previous recorded frame becomes a single motion event.
func RecordInput(w donburi.World, frame InputFrame) *components.RigInputData {
	in := GetOrCreateInput(w)
	in.Clear()
	if in.Keys == nil {
		in.Keys = map[config.KeyCode]bool{}
	}
	if in.Buttons == nil {
		in.Buttons = map[config.MouseButton]bool{}
	}
	if in.JustPressed == nil {
		in.JustPressed = map[config.MouseButton]bool{}
	}

	in.Delta = frame.Delta
	for _, k := range frame.Keys {
		in.Keys[k] = true
	}
	for _, b := range frame.Buttons {
		in.Buttons[b] = true
	}
	for _, b := range frame.JustPressed {
		in.JustPressed[b] = true
	}
	in.JustTypedKeys = append(in.JustTypedKeys, frame.JustTyped...)

	if in.CursorValid {
		if d := frame.Cursor.Sub(in.Cursor); d != (mgl32.Vec2{}) {
			in.Motion = append(in.Motion, d)
		}
	}
	in.Cursor = frame.Cursor
	in.CursorValid = true

	if frame.Wheel != 0 {
		in.Wheel = append(in.Wheel, frame.Wheel)
	}
	return in
}
