package systems

import (
	"math"

	"github.com/automoto/orbitrig/components"
	"github.com/automoto/orbitrig/shared/rigmath"
	"github.com/automoto/orbitrig/systems/factory"
	"github.com/automoto/orbitrig/tags"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PickUnit casts a ray from the first camera through the screen point and returns the
// unit nearest to where it meets the ground.
func PickUnit(w donburi.World, vp rigmath.Viewport, sx, sy float32) (*donburi.Entry, bool) {
	camEntry, ok := tags.Camera.First(w)
	if !ok || !camEntry.HasComponent(components.GlobalTransform) {
		return nil, false
	}
	lens := components.Camera.Get(camEntry).Lens
	camWorld := components.GlobalTransform.Get(camEntry).Matrix

	origin, dir := rigmath.ScreenRay(camWorld, lens, vp, sx, sy)
	hit, ok := rigmath.IntersectGround(origin, dir, 0)
	if !ok {
		return nil, false
	}
	return UnitAt(w, hit)
}

// cursorHalf is half the side of the one-pixel cursor marker.
const cursorHalf = 0.5

// containsCursor reports whether the cursor marker centred on (x, y) lies inside obj. resolv
// registers an object in cells up to X+W-1, so this is exactly the range in which the
// marker and obj share a cell.
func containsCursor(obj *resolv.Object, x, y float64) bool {
	return x-cursorHalf >= obj.X && x+cursorHalf <= obj.X+obj.W &&
		y-cursorHalf >= obj.Y && y+cursorHalf <= obj.Y+obj.H
}

// UnitAt returns the unit whose pick box contains the ground point, nearest first.
func UnitAt(w donburi.World, ground mgl32.Vec3) (*donburi.Entry, bool) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return nil, false
	}
	space := components.Space.Get(spaceEntry)

	x, y := factory.PickCoords(ground)
	marker := resolv.NewObject(x-cursorHalf, y-cursorHalf, 2*cursorHalf, 2*cursorHalf, tags.ResolvCursor)
	space.Add(marker)
	defer space.Remove(marker)

	check := marker.Check(0, 0, tags.ResolvUnit)
	if check == nil {
		return nil, false
	}

	var best *donburi.Entry
	bestDist := math.Inf(1)
	for _, obj := range check.ObjectsByTags(tags.ResolvUnit) {
		// Cells are coarse; only accept boxes that contain the marker
		if !containsCursor(obj, x, y) {
			continue
		}
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2
		if d := math.Hypot(x-cx, y-cy); d < bestDist {
			best, bestDist = entry, d
		}
	}
	return best, best != nil
}

// PickAndFollow follows the unit under the screen point, or stops following when the
// point hits nothing.
func PickAndFollow(w donburi.World, vp rigmath.Viewport, sx, sy float32) bool {
	entry, ok := PickUnit(w, vp, sx, sy)
	if !ok {
		StopFollowing(w)
		return false
	}
	return FollowUnit(w, entry) == nil
}
