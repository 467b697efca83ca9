package factory

import (
	"github.com/automoto/orbitrig/archetypes"
	"github.com/automoto/orbitrig/components"
	"github.com/automoto/orbitrig/config"
	"github.com/automoto/orbitrig/tags"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UnitSpec describes a followable unit patrolling between From and To.
type UnitSpec struct {
	Name   string
	From   mgl32.Vec3
	To     mgl32.Vec3
	Period float32 // Seconds per leg; zero keeps the unit still
	Armed  bool
}

// CreateUnit spawns a patrolling unit with a follow flag and a pick box.
func CreateUnit(w donburi.World, spec UnitSpec) *donburi.Entry {
	unit := archetypes.Unit.Spawn(w)

	data := components.UnitData{
		Name:     spec.Name,
		From:     spec.From,
		To:       spec.To,
		Outbound: true,
	}
	if spec.Period > 0 {
		data.Tween = newLeg(spec.Period)
	}
	components.Unit.SetValue(unit, data)
	components.Transform.SetValue(unit, components.TransformAt(spec.From))
	components.GlobalTransform.SetValue(unit, components.GlobalTransformData{
		Matrix: components.TransformAt(spec.From).Matrix(),
	})
	components.Follow.SetValue(unit, components.FollowData{
		Armed: spec.Armed,
		Seq:   nextFollowSeq(w),
	})

	size := config.Scene.UnitPickSize * config.Scene.PickPixelsPerUnit
	x, z := PickCoords(spec.From)
	obj := resolv.NewObject(x-size/2, z-size/2, size, size, tags.ResolvUnit)
	obj.Data = unit // Link for O(1) lookup
	components.PickBox.SetValue(unit, components.PickBoxData{Object: obj})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return unit
}

// CreateFollowTarget spawns a bare follow source at transform, for hosts that drive
// the transform themselves.
func CreateFollowTarget(w donburi.World, transform components.TransformData, armed bool) *donburi.Entry {
	entry := w.Entry(w.Create(components.Follow, components.Transform))
	components.Transform.SetValue(entry, transform)
	components.Follow.SetValue(entry, components.FollowData{
		Armed: armed,
		Seq:   nextFollowSeq(w),
	})
	return entry
}

// newLeg eases one patrol leg from 0 to 1.
func newLeg(period float32) *gween.Tween {
	return gween.New(0, 1, period, ease.InOutQuad)
}

func nextFollowSeq(w donburi.World) uint64 {
	var next uint64 = 1
	components.Follow.Each(w, func(entry *donburi.Entry) {
		if s := components.Follow.Get(entry).Seq; s >= next {
			next = s + 1
		}
	})
	return next
}

// PickCoords maps a world position onto the picking space in pixels: world X and Z
// shifted so the space origin sits at -PickExtent, then scaled by PickPixelsPerUnit.
func PickCoords(p mgl32.Vec3) (x, y float64) {
	ppu := config.Scene.PickPixelsPerUnit
	return (float64(p.X()) + config.Scene.PickExtent) * ppu, (float64(p.Z()) + config.Scene.PickExtent) * ppu
}
