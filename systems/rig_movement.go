package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/orbitrig/components"
	"github.com/automoto/orbitrig/config"
	"github.com/automoto/orbitrig/logger"
	"github.com/automoto/orbitrig/shared/rigmath"
	"github.com/automoto/orbitrig/tags"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// ErrRigMissingTransform is reported for a rig entity that has no Transform.
var ErrRigMissingTransform = errors.New("camera rig has no transform")

// UpdateRigMovement turns this frame's input into rig and camera targets and steps
// both nodes toward them. Must run BEFORE UpdateRigFollow.
func UpdateRigMovement(w donburi.World) {
	in := GetOrCreateInput(w)
	t := rigmath.LerpFactor(in.Delta)

	components.CameraRig.Each(w, func(entry *donburi.Entry) {
		rig := components.CameraRig.Get(entry)
		if rig.Disabled {
			return
		}
		if err := moveRig(w, entry, rig, in, t); err != nil {
			logger.Log.Error("camera rig skipped", zap.Error(err))
		}
	})
}

func moveRig(w donburi.World, entry *donburi.Entry, rig *components.CameraRigData, in *components.RigInputData, t float32) error {
	if !entry.HasComponent(components.Transform) {
		return fmt.Errorf("%w: entity %v", ErrRigMissingTransform, entry.Entity())
	}
	current := components.Transform.GetValue(entry)

	target := current
	if rig.TargetRig != nil {
		target = *rig.TargetRig
	}

	kb := rig.Config.Keyboard
	mouse := rig.Config.Mouse
	height := current.Translation.Y()
	translated := false

	// Keyboard translation along the rig's own forward (+X) and lateral (+Z) axes
	moveStep := kb.MoveSensitivity.At(height)
	forward := current.Rotation.Rotate(rigmath.AxisX).Mul(moveStep)
	lateral := current.Rotation.Rotate(rigmath.AxisZ).Mul(moveStep)
	if in.AnyHeld(kb.Forward) {
		target.Translation = target.Translation.Add(forward)
		translated = true
	}
	if in.AnyHeld(kb.Backward) {
		target.Translation = target.Translation.Sub(forward)
		translated = true
	}
	if in.AnyHeld(kb.Right) {
		target.Translation = target.Translation.Add(lateral)
		translated = true
	}
	if in.AnyHeld(kb.Left) {
		target.Translation = target.Translation.Sub(lateral)
		translated = true
	}

	// Keyboard yaw around world up
	if in.AnyHeld(kb.CounterClockwise) {
		target.Rotation = rigmath.Yaw(kb.YawStep).Mul(target.Rotation)
	}
	if in.AnyHeld(kb.Clockwise) {
		target.Rotation = rigmath.Yaw(-kb.YawStep).Mul(target.Rotation)
	}

	// Mouse rotate and drag, one motion event at a time
	rotating := in.Held(mouse.Rotate)
	dragging := in.Held(mouse.Drag)
	dragStep := mouse.DragSensitivity.At(height)
	var pitchAccum float32
	for _, d := range in.Motion {
		if rotating {
			target.Rotation = rigmath.Yaw(-mouse.RotateSensitivity * d.X()).Mul(target.Rotation)
			pitchAccum += d.Y()
		}
		if dragging {
			pan := current.Rotation.Rotate(mgl32.Vec3{d.Y(), 0, -d.X()}).Mul(dragStep)
			target.Translation = target.Translation.Add(pan)
			translated = true
		}
	}

	if translated {
		DisarmAll(w)
	}

	next := converge(current, target, t)
	rig.TargetRig = &target
	if next == target {
		rig.TargetRig = nil
	}

	if entry.HasComponent(components.Children) {
		for _, child := range components.Children.Get(entry).Entities {
			moveCamera(w, child, rig, in, mouse, pitchAccum, rotating, t)
		}
	}

	if next != current {
		components.Transform.SetValue(entry, next)
	}
	return nil
}

func moveCamera(w donburi.World, child donburi.Entity, rig *components.CameraRigData, in *components.RigInputData, mouse config.MouseConfig, pitchAccum float32, rotating bool, t float32) {
	if !w.Valid(child) {
		return
	}
	entry := w.Entry(child)
	if !entry.HasComponent(tags.Camera) || !entry.HasComponent(components.Transform) {
		return
	}
	current := components.Transform.GetValue(entry)

	target := current
	if rig.TargetCamera != nil {
		target = *rig.TargetCamera
	}

	// Dolly along the view axis; positive notches move toward the rig
	for _, y := range in.Wheel {
		back := target.Rotation.Rotate(rigmath.AxisZ)
		target.Translation = target.Translation.Sub(back.Mul(y * mouse.ZoomSensitivity))
	}

	// Pitch around the camera's own X axis and orbit the offset at constant radius
	if rotating {
		angle := -mouse.RotateSensitivity * pitchAccum
		target.Rotation = target.Rotation.Mul(rigmath.Pitch(angle))
		target.Translation = rigmath.Roll(angle).Rotate(target.Translation)
	}

	next := converge(current, target, t)
	rig.TargetCamera = &target
	if next == target {
		rig.TargetCamera = nil
	}
	if next != current {
		components.Transform.SetValue(entry, next)
	}
}

// converge applies one convergence step to translation and rotation. Scale is carried
// over from the target.
func converge(current, target components.TransformData, t float32) components.TransformData {
	next := current
	next.Translation = rigmath.StepTranslation(current.Translation, target.Translation, t)
	next.Rotation = rigmath.StepRotation(current.Rotation, target.Rotation, t)
	next.Scale = target.Scale
	return next
}
