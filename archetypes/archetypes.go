package archetypes

import (
	"github.com/automoto/orbitrig/components"
	"github.com/automoto/orbitrig/tags"
	"github.com/yohamta/donburi"
)

var (
	Rig = newArchetype(
		tags.Rig,
		components.CameraRig,
		components.Transform,
		components.GlobalTransform,
		components.Children,
	)
	RigCamera = newArchetype(
		tags.Camera,
		components.Camera,
		components.Transform,
		components.GlobalTransform,
		components.Parent,
	)
	Unit = newArchetype(
		tags.Unit,
		components.Unit,
		components.Follow,
		components.Transform,
		components.GlobalTransform,
		components.PickBox,
	)
	Input = newArchetype(
		components.RigInput,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity in w with the archetype's components plus cs.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	comps := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	comps = append(comps, a.components...)
	comps = append(comps, cs...)
	return w.Entry(w.Create(comps...))
}
