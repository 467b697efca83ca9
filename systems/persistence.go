package systems

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/automoto/orbitrig/components"
	"github.com/automoto/orbitrig/logger"
	"github.com/automoto/orbitrig/tags"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// PoseStore is the slice of gdata.Manager the pose functions need.
type PoseStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var ErrNoRig = errors.New("no camera rig in world")

// SavedTransform is a transform as stored on disk. Rotation is w, x, y, z.
type SavedTransform struct {
	Translation [3]float32 `json:"translation"`
	Rotation    [4]float32 `json:"rotation"`
}

// SavedRigPose is the rig and camera pose stored between runs.
type SavedRigPose struct {
	Rig    SavedTransform `json:"rig"`
	Camera SavedTransform `json:"camera"`
}

// OpenPoseStore opens the per-user gdata store for appName.
func OpenPoseStore(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open pose store: %w", err)
	}
	return m, nil
}

// CaptureRigPose reads the first rig and its camera child.
func CaptureRigPose(w donburi.World) (SavedRigPose, error) {
	rigEntry, camEntry, err := firstRig(w)
	if err != nil {
		return SavedRigPose{}, err
	}
	pose := SavedRigPose{Rig: toSaved(components.Transform.GetValue(rigEntry))}
	if camEntry != nil {
		pose.Camera = toSaved(components.Transform.GetValue(camEntry))
	}
	return pose, nil
}

// ApplyRigPose moves the first rig and its camera straight to pose and clears their
// pending targets.
func ApplyRigPose(w donburi.World, pose SavedRigPose) error {
	rigEntry, camEntry, err := firstRig(w)
	if err != nil {
		return err
	}
	rig := components.CameraRig.Get(rigEntry)

	tr := components.Transform.Get(rigEntry)
	fromSaved(pose.Rig, tr)
	rig.TargetRig = nil

	if camEntry != nil && pose.Camera.Rotation != [4]float32{} {
		fromSaved(pose.Camera, components.Transform.Get(camEntry))
		rig.TargetCamera = nil
	}
	PropagateTransforms(w)
	return nil
}

// SaveRigPose stores the first rig's pose under key.
func SaveRigPose(store PoseStore, w donburi.World, key string) error {
	pose, err := CaptureRigPose(w)
	if err != nil {
		return err
	}
	data, err := json.Marshal(pose)
	if err != nil {
		return fmt.Errorf("encode rig pose: %w", err)
	}
	if err := store.SaveItem(key, data); err != nil {
		logger.Log.Warn("could not save rig pose", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// LoadRigPose restores a pose saved under key. It reports false when nothing was saved.
func LoadRigPose(store PoseStore, w donburi.World, key string) (bool, error) {
	data, err := store.LoadItem(key)
	if err != nil {
		logger.Log.Warn("could not load rig pose", zap.String("key", key), zap.Error(err))
		return false, err
	}
	if len(data) == 0 {
		// Nothing saved yet, keep the spawn pose
		return false, nil
	}

	var pose SavedRigPose
	if err := json.Unmarshal(data, &pose); err != nil {
		return false, fmt.Errorf("decode rig pose: %w", err)
	}
	if !pose.valid() {
		return false, fmt.Errorf("decode rig pose: zero rotation")
	}
	if err := ApplyRigPose(w, pose); err != nil {
		return false, err
	}
	return true, nil
}

func (p SavedRigPose) valid() bool {
	return p.Rig.Rotation != [4]float32{}
}

func firstRig(w donburi.World) (rig, camera *donburi.Entry, err error) {
	rig, ok := components.CameraRig.First(w)
	if !ok {
		return nil, nil, ErrNoRig
	}
	if !rig.HasComponent(components.Transform) {
		return nil, nil, fmt.Errorf("%w: entity %v", ErrRigMissingTransform, rig.Entity())
	}
	if rig.HasComponent(components.Children) {
		for _, child := range components.Children.Get(rig).Entities {
			if !w.Valid(child) {
				continue
			}
			c := w.Entry(child)
			if c.HasComponent(tags.Camera) && c.HasComponent(components.Transform) {
				return rig, c, nil
			}
		}
	}
	return rig, nil, nil
}

func toSaved(t components.TransformData) SavedTransform {
	return SavedTransform{
		Translation: t.Translation,
		Rotation:    [4]float32{t.Rotation.W, t.Rotation.V[0], t.Rotation.V[1], t.Rotation.V[2]},
	}
}

func fromSaved(s SavedTransform, t *components.TransformData) {
	t.Translation = mgl32.Vec3(s.Translation)
	t.Rotation = mgl32.Quat{W: s.Rotation[0], V: mgl32.Vec3{s.Rotation[1], s.Rotation[2], s.Rotation[3]}}
}
