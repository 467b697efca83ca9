package factory

import (
	"github.com/automoto/orbitrig/archetypes"
	"github.com/automoto/orbitrig/components"
	"github.com/automoto/orbitrig/config"
	"github.com/automoto/orbitrig/shared/rigmath"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// RigSpec describes a rig and its camera child.
type RigSpec struct {
	Config       config.RigConfig
	Position     mgl32.Vec3 // Rig pivot
	CameraOffset mgl32.Vec3 // Camera position relative to the pivot, looking at it
	Lens         rigmath.Lens
}

// DefaultRigSpec builds a spec from the global rig and scene config.
func DefaultRigSpec() RigSpec {
	return RigSpec{
		Config:       config.Rig.Clone(),
		Position:     config.Scene.RigStart,
		CameraOffset: config.Scene.CameraStart,
		Lens: rigmath.Lens{
			Fov:  config.Scene.Fov,
			Near: config.Scene.Near,
			Far:  config.Scene.Far,
		},
	}
}

// CreateCameraRig spawns a rig with nil targets and its camera child, both with their
// global transforms already derived.
func CreateCameraRig(w donburi.World, spec RigSpec) (rig, camera *donburi.Entry) {
	rig = archetypes.Rig.Spawn(w)
	camera = archetypes.RigCamera.Spawn(w)

	rigTransform := components.TransformAt(spec.Position)
	camTransform := components.LookingAt(spec.CameraOffset, mgl32.Vec3{})

	components.CameraRig.SetValue(rig, components.CameraRigData{Config: spec.Config})
	components.Transform.SetValue(rig, rigTransform)
	components.Children.SetValue(rig, components.ChildrenData{
		Entities: []donburi.Entity{camera.Entity()},
	})

	components.Camera.SetValue(camera, components.CameraData{Lens: spec.Lens})
	components.Transform.SetValue(camera, camTransform)
	components.Parent.SetValue(camera, components.ParentData{Entity: rig.Entity()})

	rigWorld := rigTransform.Matrix()
	components.GlobalTransform.SetValue(rig, components.GlobalTransformData{Matrix: rigWorld})
	components.GlobalTransform.SetValue(camera, components.GlobalTransformData{
		Matrix: rigWorld.Mul4(camTransform.Matrix()),
	})

	return rig, camera
}
