package systems

import "github.com/yohamta/donburi"

// Phase is one ordered step of the frame pipeline.
type Phase struct {
	Name string
	Run  func(w donburi.World)
}

// RigPhases returns the rig phases in the order they must run: movement, then follow,
// then transform propagation.
func RigPhases() []Phase {
	return []Phase{
		{Name: "rig-movement", Run: UpdateRigMovement},
		{Name: "rig-follow", Run: UpdateRigFollow},
		{Name: "propagate-transforms", Run: PropagateTransforms},
	}
}

// RunPhases runs phases once, in order.
func RunPhases(w donburi.World, phases []Phase) {
	for _, p := range phases {
		p.Run(w)
	}
}
