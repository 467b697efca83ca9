package systems

import (
	"github.com/automoto/orbitrig/components"
	"github.com/automoto/orbitrig/config"
	"github.com/automoto/orbitrig/logger"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// FreezeKey toggles every rig between frozen and live.
const FreezeKey config.KeyCode = "P"

// UpdateRigFreeze toggles the Disabled flag of every rig when FreezeKey was typed.
// Must run BEFORE the rig phases.
func UpdateRigFreeze(w donburi.World) {
	if !GetOrCreateInput(w).Typed(FreezeKey) {
		return
	}
	frozen := !AnyRigFrozen(w)
	SetRigsFrozen(w, frozen)
	logger.Log.Info("camera rig", zap.Bool("frozen", frozen))
}

// SetRigsFrozen sets the Disabled flag of every rig. A frozen rig keeps its pending
// targets and resumes converging when unfrozen.
func SetRigsFrozen(w donburi.World, frozen bool) {
	components.CameraRig.Each(w, func(entry *donburi.Entry) {
		components.CameraRig.Get(entry).Disabled = frozen
	})
}

// AnyRigFrozen reports whether at least one rig is disabled.
func AnyRigFrozen(w donburi.World) bool {
	frozen := false
	components.CameraRig.Each(w, func(entry *donburi.Entry) {
		if components.CameraRig.Get(entry).Disabled {
			frozen = true
		}
	})
	return frozen
}
