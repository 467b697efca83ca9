package systems

import (
	"github.com/automoto/orbitrig/components"
	"github.com/automoto/orbitrig/shared/rigmath"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// UpdateRigFollow drags every enabled rig's translation toward the follow source whose
// transform changed since the last frame. Armed candidates beat unarmed ones and the
// most recently registered wins a tie. Must run AFTER UpdateRigMovement.
func UpdateRigFollow(w donburi.World) {
	source, ok := selectFollowSource(w)
	if !ok || !source.armed {
		return
	}

	t := rigmath.LerpFactor(GetOrCreateInput(w).Delta)
	components.CameraRig.Each(w, func(entry *donburi.Entry) {
		rig := components.CameraRig.Get(entry)
		if rig.Disabled || !entry.HasComponent(components.Transform) {
			return
		}
		tr := components.Transform.Get(entry)
		tr.Translation = rigmath.StepTranslation(tr.Translation, source.translation, t)

		// Keep the pending target where follow left the rig so movement does not pull back
		if rig.TargetRig != nil {
			rig.TargetRig.Translation = tr.Translation
		}
	})
}

type followSource struct {
	translation mgl32.Vec3
	armed       bool
	seq         uint64
}

// selectFollowSource picks the source for this frame and marks every candidate
// observed.
func selectFollowSource(w donburi.World) (followSource, bool) {
	var best followSource
	found := false
	components.Follow.Each(w, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Transform) {
			return
		}
		follow := components.Follow.Get(entry)
		tr := components.Transform.GetValue(entry)
		if !follow.Changed(tr) {
			return
		}
		follow.Observe(tr)

		cand := followSource{translation: tr.Translation, armed: follow.Armed, seq: follow.Seq}
		if !found || cand.beats(best) {
			best = cand
			found = true
		}
	})
	return best, found
}

func (f followSource) beats(other followSource) bool {
	if f.armed != other.armed {
		return f.armed
	}
	return f.seq > other.seq
}
