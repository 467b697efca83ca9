package systems

import (
	"errors"
	"testing"

	"github.com/automoto/orbitrig/components"
	"github.com/automoto/orbitrig/shared/rigmath"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

type memStore struct {
	items   map[string][]byte
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

func TestSaveAndLoadRigPose(t *testing.T) {
	w, rig, cam := newRigWorld(t, mgl32.Vec3{-75, 75, 0})
	store := newMemStore()

	components.Transform.Get(rig).Translation = mgl32.Vec3{4, 0, -3}
	components.Transform.Get(rig).Rotation = rigmath.Yaw(0.7)
	components.Transform.Get(cam).Translation = mgl32.Vec3{-40, 40, 0}
	savedRig, savedCam := transformOf(rig), transformOf(cam)
	require.NoError(t, SaveRigPose(store, w, "pose"))

	// Move everything and leave a motion pending
	components.Transform.Get(rig).Translation = mgl32.Vec3{}
	components.Transform.Get(cam).Translation = mgl32.Vec3{1, 1, 1}
	pending := components.IdentityTransform()
	components.CameraRig.Get(rig).TargetRig = &pending

	ok, err := LoadRigPose(store, w, "pose")
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, savedRig, transformOf(rig))
	assert.Equal(t, savedCam, transformOf(cam))
	assert.True(t, components.CameraRig.Get(rig).AtRest())
	assertVec3(t, mgl32.Vec3{4, 0, -3}, components.GlobalTransform.Get(rig).Position(), 1e-5)
}

func TestLoadRigPoseWithNothingSaved(t *testing.T) {
	w, rig, _ := newRigWorld(t, mgl32.Vec3{-75, 75, 0})
	before := transformOf(rig)

	ok, err := LoadRigPose(newMemStore(), w, "pose")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, transformOf(rig))
}

func TestLoadRigPoseRejectsGarbage(t *testing.T) {
	w, _, _ := newRigWorld(t, mgl32.Vec3{-75, 75, 0})
	store := newMemStore()

	store.items["pose"] = []byte("{not json")
	_, err := LoadRigPose(store, w, "pose")
	assert.Error(t, err)

	store.items["pose"] = []byte(`{"rig":{"translation":[1,2,3]}}`)
	_, err = LoadRigPose(store, w, "pose")
	assert.Error(t, err, "zero rotation is not a pose")
}

func TestSaveRigPoseErrors(t *testing.T) {
	_, err := CaptureRigPose(donburi.NewWorld())
	assert.ErrorIs(t, err, ErrNoRig)

	w, _, _ := newRigWorld(t, mgl32.Vec3{-75, 75, 0})
	store := newMemStore()
	store.saveErr = errors.New("disk full")
	observeLogs(t)
	assert.EqualError(t, SaveRigPose(store, w, "pose"), "disk full")
}
