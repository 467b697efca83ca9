package systems

import (
	"github.com/automoto/orbitrig/components"
	"github.com/automoto/orbitrig/config"
	"github.com/automoto/orbitrig/logger"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// ApplyRigConfig gives every rig its own copy of cfg. Pending targets are kept, so a
// reload mid-motion finishes the motion under the new bindings.
func ApplyRigConfig(w donburi.World, cfg config.RigConfig) int {
	n := 0
	components.CameraRig.Each(w, func(entry *donburi.Entry) {
		components.CameraRig.Get(entry).Config = cfg.Clone()
		n++
	})
	logger.Log.Info("rig config applied", zap.Int("rigs", n))
	return n
}
