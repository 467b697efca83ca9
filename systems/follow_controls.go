package systems

import (
	"fmt"

	"github.com/automoto/orbitrig/components"
	"github.com/automoto/orbitrig/config"
	"github.com/automoto/orbitrig/shared/rigmath"
	"github.com/yohamta/donburi"
)

const maxFollowHotkeys = 9

var stopFollowKeys = []config.KeyCode{"Digit0", "Escape"}

// UpdateFollowControls applies this frame's follow commands: Digit1..Digit9 follow the
// n-th unit, Digit0 or Escape stop following, a middle click follows the unit under the
// cursor. Must run BEFORE UpdateRigFollow.
func UpdateFollowControls(w donburi.World, vp rigmath.Viewport) {
	in := GetOrCreateInput(w)

	for i := 0; i < maxFollowHotkeys; i++ {
		if in.Typed(config.KeyCode(fmt.Sprintf("Digit%d", i+1))) {
			_ = FollowIndex(w, i) // Out of range is a no-op
		}
	}
	for _, k := range stopFollowKeys {
		if in.Typed(k) {
			StopFollowing(w)
		}
	}
	if in.JustPressed[config.MouseMiddle] {
		PickAndFollow(w, vp, in.Cursor.X(), in.Cursor.Y())
	}
}

// FollowedIndex is the registration-order index of the armed unit, or -1.
func FollowedIndex(w donburi.World) int {
	for i, entry := range Followables(w) {
		if components.Follow.Get(entry).Armed {
			return i
		}
	}
	return -1
}
