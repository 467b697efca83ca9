package render

import (
	"github.com/automoto/orbitrig/components"
	"github.com/automoto/orbitrig/shared/rigmath"
	"github.com/automoto/orbitrig/tags"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// view projects world points through the first camera onto the screen.
type view struct {
	viewProj mgl32.Mat4
	eye      mgl32.Vec3
	vp       rigmath.Viewport
}

func viewOf(w donburi.World, screen *ebiten.Image) (view, bool) {
	camEntry, ok := tags.Camera.First(w)
	if !ok || !camEntry.HasComponent(components.GlobalTransform) {
		return view{}, false
	}
	lens := components.Camera.Get(camEntry).Lens
	global := components.GlobalTransform.Get(camEntry)

	vp := Viewport(screen)
	return view{
		viewProj: rigmath.ViewProjection(global.Matrix, lens, vp),
		eye:      global.Position(),
		vp:       vp,
	}, true
}

// Viewport is the pixel area of screen.
func Viewport(screen *ebiten.Image) rigmath.Viewport {
	b := screen.Bounds()
	return rigmath.Viewport{Width: b.Dx(), Height: b.Dy()}
}

func (v view) project(p mgl32.Vec3) (x, y float32, ok bool) {
	return rigmath.Project(v.viewProj, p, v.vp)
}

// scale returns how many pixels one world unit at p covers, roughly.
func (v view) scale(p mgl32.Vec3, base float32) float32 {
	d := p.Sub(v.eye).Len()
	if d < 1 {
		d = 1
	}
	return base / d
}
