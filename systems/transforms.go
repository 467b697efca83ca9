package systems

import (
	"github.com/automoto/orbitrig/components"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/yohamta/donburi"
)

// PropagateTransforms recomputes GlobalTransform for every root and, recursively, its
// children: parent world matrix times child local matrix.
func PropagateTransforms(w donburi.World) {
	components.GlobalTransform.Each(w, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Parent) {
			return
		}
		propagate(w, entry, mgl32.Ident4())
	})
}

func propagate(w donburi.World, entry *donburi.Entry, parent mgl32.Mat4) {
	world := parent
	if entry.HasComponent(components.Transform) {
		world = parent.Mul4(components.Transform.GetValue(entry).Matrix())
	}
	if entry.HasComponent(components.GlobalTransform) {
		components.GlobalTransform.SetValue(entry, components.GlobalTransformData{Matrix: world})
	}
	if !entry.HasComponent(components.Children) {
		return
	}
	for _, child := range components.Children.Get(entry).Entities {
		if w.Valid(child) {
			propagate(w, w.Entry(child), world)
		}
	}
}
