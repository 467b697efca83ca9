package systems

import (
	"testing"

	"github.com/automoto/orbitrig/components"
	"github.com/automoto/orbitrig/systems/factory"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func spawnUnits(w donburi.World, names ...string) []*donburi.Entry {
	var out []*donburi.Entry
	for i, n := range names {
		out = append(out, factory.CreateUnit(w, factory.UnitSpec{
			Name: n,
			From: mgl32.Vec3{float32(i) * 10, 0, 0},
		}))
	}
	return out
}

func TestFollowUnitArmsExactlyOne(t *testing.T) {
	w := donburi.NewWorld()
	units := spawnUnits(w, "a", "b", "c")

	require.NoError(t, FollowUnit(w, units[0]))
	require.NoError(t, FollowUnit(w, units[2]))

	assert.False(t, components.Follow.Get(units[0]).Armed)
	assert.False(t, components.Follow.Get(units[1]).Armed)
	assert.True(t, components.Follow.Get(units[2]).Armed)

	followed, ok := FollowedEntry(w)
	require.True(t, ok)
	assert.Equal(t, units[2].Entity(), followed.Entity())
}

func TestFollowUnitMarksSourceChanged(t *testing.T) {
	w := donburi.NewWorld()
	u := spawnUnits(w, "a")[0]
	follow := components.Follow.Get(u)
	follow.Observe(transformOf(u))
	require.False(t, follow.Changed(transformOf(u)))

	require.NoError(t, FollowUnit(w, u))
	assert.True(t, follow.Changed(transformOf(u)))
}

func TestFollowUnitRejectsNonFollowable(t *testing.T) {
	w := donburi.NewWorld()
	plain := w.Entry(w.Create(components.Transform))

	assert.ErrorIs(t, FollowUnit(w, plain), ErrNotFollowable)
	assert.ErrorIs(t, FollowUnit(w, nil), ErrNotFollowable)
}

func TestStopFollowing(t *testing.T) {
	w := donburi.NewWorld()
	units := spawnUnits(w, "a", "b")
	require.NoError(t, FollowUnit(w, units[1]))

	StopFollowing(w)

	_, ok := FollowedEntry(w)
	assert.False(t, ok)
}

func TestFollowIndexUsesRegistrationOrder(t *testing.T) {
	w := donburi.NewWorld()
	units := spawnUnits(w, "a", "b", "c")

	all := Followables(w)
	require.Len(t, all, 3)
	for i, e := range all {
		assert.Equal(t, units[i].Entity(), e.Entity())
	}

	require.NoError(t, FollowIndex(w, 1))
	assert.True(t, components.Follow.Get(units[1]).Armed)
	assert.ErrorIs(t, FollowIndex(w, 3), ErrNotFollowable)
	assert.ErrorIs(t, FollowIndex(w, -1), ErrNotFollowable)
}

func TestSeqIsMonotonic(t *testing.T) {
	w := donburi.NewWorld()
	units := spawnUnits(w, "a", "b")
	extra := factory.CreateFollowTarget(w, components.IdentityTransform(), false)

	a := components.Follow.Get(units[0]).Seq
	b := components.Follow.Get(units[1]).Seq
	c := components.Follow.Get(extra).Seq
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}
