package render

import (
	"image/color"

	"github.com/automoto/orbitrig/components"
	cfg "github.com/automoto/orbitrig/config"
	"github.com/automoto/orbitrig/tags"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawGround draws the ground grid around the origin.
func DrawGround(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Render.Background)

	v, ok := viewOf(e.World, screen)
	if !ok {
		return
	}

	half := cfg.Scene.GridHalfExtent
	step := cfg.Scene.GridStep
	if step <= 0 {
		step = 1
	}
	for i := -half; i <= half; i += step {
		c := cfg.Render.Grid
		if i == 0 {
			c = cfg.Render.GridAxis
		}
		f := float32(i)
		// One segment per cell so lines crossing behind the camera still draw in front
		for j := -half; j < half; j += step {
			a, b := float32(j), float32(min(j+step, half))
			v.line(screen, mgl32.Vec3{f, 0, a}, mgl32.Vec3{f, 0, b}, c)
			v.line(screen, mgl32.Vec3{a, 0, f}, mgl32.Vec3{b, 0, f}, c)
		}
	}
}

// DrawUnits draws every unit as a dot, the followed one highlighted.
func DrawUnits(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewOf(e.World, screen)
	if !ok {
		return
	}

	tags.Unit.Each(e.World, func(entry *donburi.Entry) {
		pos := components.GlobalTransform.Get(entry).Position()
		x, y, ok := v.project(pos)
		if !ok {
			return
		}
		c := cfg.Render.Unit
		if components.Follow.Get(entry).Armed {
			c = cfg.Render.UnitFollowed
		}
		r := v.scale(pos, cfg.Render.UnitRadius)
		vector.FillCircle(screen, x, y, max(r, 2), c, true)
	})
}

// DrawRigPivot marks every rig's origin and the line from it to its camera's ground point.
func DrawRigPivot(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := viewOf(e.World, screen)
	if !ok {
		return
	}

	tags.Rig.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.GlobalTransform) {
			return
		}
		pos := components.GlobalTransform.Get(entry).Position()
		ground := mgl32.Vec3{pos.X(), 0, pos.Z()}
		v.line(screen, ground, pos, cfg.Render.RigPivot)

		x, y, ok := v.project(pos)
		if !ok {
			return
		}
		r := v.scale(pos, cfg.Render.UnitRadius/2)
		vector.StrokeCircle(screen, x, y, max(r, 3), 1, cfg.Render.RigPivot, true)
	})
}

func (v view) line(screen *ebiten.Image, a, b mgl32.Vec3, c color.Color) {
	x0, y0, ok0 := v.project(a)
	x1, y1, ok1 := v.project(b)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(screen, x0, y0, x1, y1, 1, c, true)
}
