package systems

import (
	"testing"

	"github.com/automoto/orbitrig/components"
	"github.com/automoto/orbitrig/config"
	"github.com/automoto/orbitrig/shared/rigmath"
	"github.com/automoto/orbitrig/systems/factory"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

var controlsViewport = rigmath.Viewport{Width: 800, Height: 600}

func typeKeys(keys ...config.KeyCode) func(in *components.RigInputData) {
	return func(in *components.RigInputData) {
		in.JustTypedKeys = append(in.JustTypedKeys, keys...)
	}
}

func TestFollowControlsDigitSelectsByRegistrationOrder(t *testing.T) {
	w, _, _ := newRigWorld(t, mgl32.Vec3{-10, 10, 0})
	spawnUnits(w, "a", "b", "c")

	frame(w, 0, typeKeys("Digit2"))
	UpdateFollowControls(w, controlsViewport)
	assert.Equal(t, 1, FollowedIndex(w))

	frame(w, 0, typeKeys("Digit9"))
	UpdateFollowControls(w, controlsViewport)
	assert.Equal(t, 1, FollowedIndex(w), "out of range keeps the current unit")

	frame(w, 0, typeKeys("Escape"))
	UpdateFollowControls(w, controlsViewport)
	assert.Equal(t, -1, FollowedIndex(w))
}

func TestFollowControlsDigitZeroStops(t *testing.T) {
	w, _, _ := newRigWorld(t, mgl32.Vec3{-10, 10, 0})
	spawnUnits(w, "a")

	frame(w, 0, typeKeys("Digit1"))
	UpdateFollowControls(w, controlsViewport)
	assert.Equal(t, 0, FollowedIndex(w))

	frame(w, 0, typeKeys("Digit0"))
	UpdateFollowControls(w, controlsViewport)
	assert.Equal(t, -1, FollowedIndex(w))
}

func TestFollowControlsMiddleClickPicks(t *testing.T) {
	w, _, _ := newRigWorld(t, mgl32.Vec3{-10, 10, 0})
	factory.CreatePickSpace(w, config.Scene.PickExtent, config.Scene.PickCellSize)
	factory.CreateUnit(w, factory.UnitSpec{Name: "centre", From: mgl32.Vec3{}})
	PropagateTransforms(w)

	frame(w, 0, func(in *components.RigInputData) {
		in.JustPressed = map[config.MouseButton]bool{config.MouseMiddle: true}
		in.Cursor = mgl32.Vec2{400, 300}
	})
	UpdateFollowControls(w, controlsViewport)
	assert.Equal(t, 0, FollowedIndex(w))

	// Clicking empty ground stops following
	frame(w, 0, func(in *components.RigInputData) {
		in.JustPressed = map[config.MouseButton]bool{config.MouseMiddle: true}
		in.Cursor = mgl32.Vec2{5, 5}
	})
	UpdateFollowControls(w, controlsViewport)
	assert.Equal(t, -1, FollowedIndex(w))
}
