package factory

import (
	"testing"

	"github.com/automoto/orbitrig/components"
	"github.com/automoto/orbitrig/config"
	"github.com/automoto/orbitrig/shared/leveldata"
	"github.com/automoto/orbitrig/tags"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestCreateCameraRig(t *testing.T) {
	w := donburi.NewWorld()
	spec := DefaultRigSpec()
	rig, cam := CreateCameraRig(w, spec)

	rigData := components.CameraRig.Get(rig)
	assert.Nil(t, rigData.TargetRig)
	assert.Nil(t, rigData.TargetCamera)
	assert.False(t, rigData.Disabled)
	assert.Equal(t, config.DefaultRigConfig(), rigData.Config)

	assert.True(t, rig.HasComponent(tags.Rig))
	assert.True(t, cam.HasComponent(tags.Camera))
	assert.Equal(t, []donburi.Entity{cam.Entity()}, components.Children.Get(rig).Entities)
	assert.Equal(t, rig.Entity(), components.Parent.Get(cam).Entity)

	camTr := components.Transform.Get(cam)
	assert.Equal(t, config.Scene.CameraStart, camTr.Translation)
	forward := camTr.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
	want := config.Scene.CameraStart.Mul(-1).Normalize()
	for i := range want {
		assert.InDelta(t, want[i], forward[i], 1e-5)
	}

	global := components.GlobalTransform.Get(cam).Position()
	for i := range global {
		assert.InDelta(t, config.Scene.CameraStart[i], global[i], 1e-4)
	}
}

func TestCreateCameraRigConfigIsIndependent(t *testing.T) {
	w := donburi.NewWorld()
	rig, _ := CreateCameraRig(w, DefaultRigSpec())
	components.CameraRig.Get(rig).Config.Keyboard.Forward[0] = "Z"
	assert.Equal(t, config.KeyCode("W"), config.Rig.Keyboard.Forward[0])
}

func TestPopulateSkirmish(t *testing.T) {
	w := donburi.NewWorld()
	layout := &leveldata.Skirmish{
		HasRig: true,
		Rig:    leveldata.RigSpawn{X: 4, Y: 1, Z: -2},
		Units: []leveldata.UnitPlacement{
			{Name: "a", X: 1, Z: 1, DX: 5, Period: 2},
			{Name: "b", X: -3, Z: 0, Armed: true},
		},
	}
	rig, _ := PopulateSkirmish(w, layout, DefaultRigSpec())

	assert.Equal(t, mgl32.Vec3{4, 1, -2}, components.Transform.Get(rig).Translation)
	_, ok := components.Space.First(w)
	assert.True(t, ok)

	var names []string
	var armed []bool
	components.Unit.Each(w, func(e *donburi.Entry) {
		u := components.Unit.Get(e)
		names = append(names, u.Name)
		armed = append(armed, components.Follow.Get(e).Armed)
		if u.Name == "a" {
			assert.Equal(t, mgl32.Vec3{6, 0, 1}, u.To)
			require.NotNil(t, u.Tween)
		} else {
			assert.Nil(t, u.Tween)
		}
	})
	assert.ElementsMatch(t, []string{"a", "b"}, names)
	assert.ElementsMatch(t, []bool{false, true}, armed)
}

func TestPopulateSkirmishWithoutLayout(t *testing.T) {
	w := donburi.NewWorld()
	spec := DefaultRigSpec()
	spec.Position = mgl32.Vec3{1, 2, 3}
	rig, cam := PopulateSkirmish(w, nil, spec)

	require.NotNil(t, cam)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, components.Transform.Get(rig).Translation)
}

func TestPickCoordsShiftsByExtent(t *testing.T) {
	x, y := PickCoords(mgl32.Vec3{1, 9, -2})
	ppu := config.Scene.PickPixelsPerUnit
	assert.Equal(t, (config.Scene.PickExtent+1)*ppu, x)
	assert.Equal(t, (config.Scene.PickExtent-2)*ppu, y)
}
