package render

import (
	"image/color"

	"github.com/automoto/orbitrig/components"
	cfg "github.com/automoto/orbitrig/config"
	"github.com/automoto/orbitrig/tags"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the picking space objects on the ground when the overlay is on.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	v, ok := viewOf(e.World, screen)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	off := float32(cfg.Scene.PickExtent)
	ppu := float32(cfg.Scene.PickPixelsPerUnit)
	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvUnit) {
			c = cfg.Red
		}

		x0, z0 := float32(obj.X)/ppu-off, float32(obj.Y)/ppu-off
		x1, z1 := x0+float32(obj.W)/ppu, z0+float32(obj.H)/ppu
		corners := [4]mgl32.Vec3{{x0, 0, z0}, {x1, 0, z0}, {x1, 0, z1}, {x0, 0, z1}}
		for i := range corners {
			v.line(screen, corners[i], corners[(i+1)%4], c)
		}
	}
}
