package systems

import (
	"testing"
	"time"

	"github.com/automoto/orbitrig/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestRecordInputFirstFrameHasNoMotion(t *testing.T) {
	w := donburi.NewWorld()

	in := RecordInput(w, InputFrame{
		Delta:   16 * time.Millisecond,
		Keys:    []config.KeyCode{"W"},
		Buttons: []config.MouseButton{config.MouseRight},
		Cursor:  mgl32.Vec2{100, 50},
		Wheel:   1,
	})

	assert.Equal(t, 16*time.Millisecond, in.Delta)
	assert.True(t, in.Keys["W"])
	assert.True(t, in.Held(config.MouseRight))
	assert.Empty(t, in.Motion)
	assert.Equal(t, []float32{1}, in.Wheel)
	assert.True(t, in.CursorValid)
}

func TestRecordInputCursorDelta(t *testing.T) {
	w := donburi.NewWorld()
	RecordInput(w, InputFrame{Cursor: mgl32.Vec2{100, 50}})

	in := RecordInput(w, InputFrame{Cursor: mgl32.Vec2{104, 47}})
	assert.Equal(t, []mgl32.Vec2{{4, -3}}, in.Motion)

	in = RecordInput(w, InputFrame{Cursor: mgl32.Vec2{104, 47}})
	assert.Empty(t, in.Motion, "cursor did not move")
}

func TestRecordInputReplacesPreviousFrame(t *testing.T) {
	w := donburi.NewWorld()
	RecordInput(w, InputFrame{
		Keys:        []config.KeyCode{"W"},
		JustPressed: []config.MouseButton{config.MouseMiddle},
		JustTyped:   []config.KeyCode{"Digit1"},
		Wheel:       -1,
	})

	in := RecordInput(w, InputFrame{})
	assert.False(t, in.Keys["W"])
	assert.False(t, in.JustPressed[config.MouseMiddle])
	assert.False(t, in.Typed("Digit1"))
	assert.Empty(t, in.Wheel)
}
