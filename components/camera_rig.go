package components

import (
	"github.com/automoto/orbitrig/config"
	"github.com/yohamta/donburi"
)

// CameraRigData is the runtime state of one orbiting rig. A nil target means the node
// is at rest and its current transform is the target.
type CameraRigData struct {
	Config       config.RigConfig
	TargetRig    *TransformData
	TargetCamera *TransformData
	Disabled     bool // Frozen: no input, no interpolation
}

// AtRest reports whether neither node has a pending target.
func (r *CameraRigData) AtRest() bool {
	return r.TargetRig == nil && r.TargetCamera == nil
}

var CameraRig = donburi.NewComponentType[CameraRigData]()
