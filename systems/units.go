package systems

import (
	"github.com/automoto/orbitrig/components"
	"github.com/automoto/orbitrig/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateUnits advances every unit along its patrol and keeps its pick box in step.
// Must run BEFORE the rig phases so follow sees this frame's positions.
func UpdateUnits(w donburi.World) {
	dt := float32(GetOrCreateInput(w).Delta.Seconds())

	components.Unit.Each(w, func(entry *donburi.Entry) {
		unit := components.Unit.Get(entry)
		if unit.Tween == nil {
			return
		}

		progress, finished := unit.Tween.Update(dt)
		from, to := unit.From, unit.To
		if !unit.Outbound {
			from, to = to, from
		}
		pos := from.Add(to.Sub(from).Mul(progress))

		if finished {
			unit.Outbound = !unit.Outbound
			unit.Tween.Reset()
		}

		tr := components.Transform.Get(entry)
		tr.Translation = pos

		if entry.HasComponent(components.PickBox) {
			box := components.PickBox.Get(entry)
			x, y := factory.PickCoords(pos)
			box.X = x - box.W/2
			box.Y = y - box.H/2
			box.Update()
		}
	})
}
