package config

import "math"

// KeyCode names a keyboard key the way ebiten's Key.String reports it ("W", "ArrowUp").
type KeyCode string

// MouseButton names a mouse button.
type MouseButton string

const (
	MouseLeft   MouseButton = "Left"
	MouseRight  MouseButton = "Right"
	MouseMiddle MouseButton = "Middle"
)

// Known reports whether b is one of the supported buttons.
func (b MouseButton) Known() bool {
	switch b {
	case MouseLeft, MouseRight, MouseMiddle:
		return true
	}
	return false
}

// Linear is a sensitivity function of the rig height: M*height + C.
type Linear struct {
	M float32 `yaml:"m"`
	C float32 `yaml:"c"`
}

// At evaluates the function for the given height.
func (l Linear) At(height float32) float32 {
	return l.M*height + l.C
}

// KeyboardConfig contains the keyboard bindings of a rig
type KeyboardConfig struct {
	Forward  []KeyCode `yaml:"forward"`
	Backward []KeyCode `yaml:"backward"`
	Left     []KeyCode `yaml:"left"`
	Right    []KeyCode `yaml:"right"`

	// Units per frame, scaled by the rig height
	MoveSensitivity Linear `yaml:"move_sensitivity"`

	Clockwise        []KeyCode `yaml:"clockwise"`
	CounterClockwise []KeyCode `yaml:"counter_clockwise"`
	YawStep          float32   `yaml:"yaw_step"` // Radians per frame while a yaw key is held
}

// MouseConfig contains the mouse bindings of a rig
type MouseConfig struct {
	Rotate            MouseButton `yaml:"rotate"`
	RotateSensitivity float32     `yaml:"rotate_sensitivity"` // Radians per pixel
	Drag              MouseButton `yaml:"drag"`
	DragSensitivity   Linear      `yaml:"drag_sensitivity"`
	ZoomSensitivity   float32     `yaml:"zoom_sensitivity"` // Units per wheel notch
}

// RigConfig is everything a camera rig needs to turn input into motion.
type RigConfig struct {
	Keyboard KeyboardConfig `yaml:"keyboard"`
	Mouse    MouseConfig    `yaml:"mouse"`
}

// Rig is the global rig configuration. main replaces it when a config file is given.
var Rig RigConfig

// DefaultRigConfig returns a fresh copy of the built-in bindings.
func DefaultRigConfig() RigConfig {
	return RigConfig{
		Keyboard: KeyboardConfig{
			Forward:          []KeyCode{"W", "ArrowUp"},
			Backward:         []KeyCode{"S", "ArrowDown"},
			Left:             []KeyCode{"A", "ArrowLeft"},
			Right:            []KeyCode{"D", "ArrowRight"},
			MoveSensitivity:  Linear{M: 2.0, C: 0.1},
			Clockwise:        []KeyCode{"Q"},
			CounterClockwise: []KeyCode{"E"},
			YawStep:          math.Pi / 10,
		},
		Mouse: MouseConfig{
			Rotate:            MouseRight,
			RotateSensitivity: math.Pi / 1000,
			Drag:              MouseLeft,
			DragSensitivity:   Linear{M: 1.0, C: math.Pi / 1000},
			ZoomSensitivity:   1.0,
		},
	}
}

// Clone returns a copy that shares no slices with c.
func (c RigConfig) Clone() RigConfig {
	out := c
	out.Keyboard.Forward = append([]KeyCode(nil), c.Keyboard.Forward...)
	out.Keyboard.Backward = append([]KeyCode(nil), c.Keyboard.Backward...)
	out.Keyboard.Left = append([]KeyCode(nil), c.Keyboard.Left...)
	out.Keyboard.Right = append([]KeyCode(nil), c.Keyboard.Right...)
	out.Keyboard.Clockwise = append([]KeyCode(nil), c.Keyboard.Clockwise...)
	out.Keyboard.CounterClockwise = append([]KeyCode(nil), c.Keyboard.CounterClockwise...)
	return out
}

func init() {
	Rig = DefaultRigConfig()
}
