package input

import (
	"time"

	"github.com/automoto/orbitrig/config"
	"github.com/automoto/orbitrig/systems"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

var buttons = map[config.MouseButton]ebiten.MouseButton{
	config.MouseLeft:   ebiten.MouseButtonLeft,
	config.MouseRight:  ebiten.MouseButtonRight,
	config.MouseMiddle: ebiten.MouseButtonMiddle,
}

// Poller reads ebiten's device state into the rig input singleton once per tick.
type Poller struct {
	// Reusable buffers to avoid allocations
	keys     []ebiten.Key
	justKeys []ebiten.Key
	frame    systems.InputFrame
}

func NewPoller() *Poller {
	return &Poller{}
}

// Update must run before the rig phases in the system order.
func (p *Poller) Update(e *ecs.ECS) {
	p.keys = inpututil.AppendPressedKeys(p.keys[:0])
	p.justKeys = inpututil.AppendJustPressedKeys(p.justKeys[:0])

	f := &p.frame
	f.Delta = time.Second / time.Duration(config.C.TPS)
	f.Keys = appendKeyCodes(f.Keys[:0], p.keys)
	f.JustTyped = appendKeyCodes(f.JustTyped[:0], p.justKeys)

	f.Buttons = f.Buttons[:0]
	f.JustPressed = f.JustPressed[:0]
	for name, b := range buttons {
		if ebiten.IsMouseButtonPressed(b) {
			f.Buttons = append(f.Buttons, name)
		}
		if inpututil.IsMouseButtonJustPressed(b) {
			f.JustPressed = append(f.JustPressed, name)
		}
	}

	x, y := ebiten.CursorPosition()
	f.Cursor = mgl32.Vec2{float32(x), float32(y)}
	_, wheelY := ebiten.Wheel()
	f.Wheel = float32(wheelY)

	systems.RecordInput(e.World, *f)
}

func appendKeyCodes(dst []config.KeyCode, keys []ebiten.Key) []config.KeyCode {
	for _, k := range keys {
		dst = append(dst, config.KeyCode(k.String()))
	}
	return dst
}
