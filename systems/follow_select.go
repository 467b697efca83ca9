package systems

import (
	"errors"
	"sort"

	"github.com/automoto/orbitrig/components"
	"github.com/automoto/orbitrig/logger"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

var ErrNotFollowable = errors.New("entity has no follow component")

// DisarmAll clears the armed flag of every follow source.
func DisarmAll(w donburi.World) {
	components.Follow.Each(w, func(entry *donburi.Entry) {
		components.Follow.Get(entry).Armed = false
	})
}

// FollowUnit arms entry and disarms every other source, so at most one is armed.
func FollowUnit(w donburi.World, entry *donburi.Entry) error {
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Follow) {
		return ErrNotFollowable
	}
	DisarmAll(w)
	follow := components.Follow.Get(entry)
	follow.Armed = true
	// A stationary unit counts as changed for one follow pass, so the rigs take a single
	// step toward it; they keep tracking only once it moves
	follow.Forget()

	logger.Log.Debug("following", zap.String("unit", UnitName(entry)))
	return nil
}

// StopFollowing disarms every follow source.
func StopFollowing(w donburi.World) {
	DisarmAll(w)
}

// FollowedEntry returns the armed follow source, if any.
func FollowedEntry(w donburi.World) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Follow.Each(w, func(entry *donburi.Entry) {
		if found == nil && components.Follow.Get(entry).Armed {
			found = entry
		}
	})
	return found, found != nil
}

// Followables lists the follow sources in registration order.
func Followables(w donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	components.Follow.Each(w, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	sort.Slice(out, func(i, j int) bool {
		return components.Follow.Get(out[i]).Seq < components.Follow.Get(out[j]).Seq
	})
	return out
}

// FollowIndex arms the i-th follow source in registration order.
func FollowIndex(w donburi.World, i int) error {
	all := Followables(w)
	if i < 0 || i >= len(all) {
		return ErrNotFollowable
	}
	return FollowUnit(w, all[i])
}

// UnitName is the display name of a follow source.
func UnitName(entry *donburi.Entry) string {
	if entry.HasComponent(components.Unit) {
		return components.Unit.Get(entry).Name
	}
	return "unnamed"
}
