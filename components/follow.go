package components

import "github.com/yohamta/donburi"

// FollowData marks an entity the rigs can track. Its own Transform is the target.
type FollowData struct {
	Armed bool
	Seq   uint64 // Registration order; later registrations win ties

	last     TransformData
	observed bool
}

// Changed reports whether current differs from the transform seen at the last Observe.
// An entity that was never observed counts as changed.
func (f *FollowData) Changed(current TransformData) bool {
	return !f.observed || f.last != current
}

// Observe records current as the last seen transform.
func (f *FollowData) Observe(current TransformData) {
	f.last = current
	f.observed = true
}

// Forget drops the observation so the next follow pass treats the entity as changed.
func (f *FollowData) Forget() {
	f.observed = false
}

var Follow = donburi.NewComponentType[FollowData]()
