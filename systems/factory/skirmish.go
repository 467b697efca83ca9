package factory

import (
	"github.com/automoto/orbitrig/config"
	"github.com/automoto/orbitrig/shared/leveldata"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// PopulateSkirmish fills w with the picking space, the rig and every unit of layout.
// A layout without a rig spawn keeps spec.Position.
func PopulateSkirmish(w donburi.World, layout *leveldata.Skirmish, spec RigSpec) (rig, camera *donburi.Entry) {
	CreatePickSpace(w, config.Scene.PickExtent, config.Scene.PickCellSize)

	if layout != nil && layout.HasRig {
		spec.Position = mgl32.Vec3{layout.Rig.X, layout.Rig.Y, layout.Rig.Z}
	}
	rig, camera = CreateCameraRig(w, spec)

	if layout == nil {
		return rig, camera
	}
	for _, u := range layout.Units {
		from := mgl32.Vec3{u.X, 0, u.Z}
		CreateUnit(w, UnitSpec{
			Name:   u.Name,
			From:   from,
			To:     from.Add(mgl32.Vec3{u.DX, 0, u.DZ}),
			Period: u.Period,
			Armed:  u.Armed,
		})
	}
	return rig, camera
}
