package factory

import (
	"math"

	"github.com/automoto/orbitrig/archetypes"
	"github.com/automoto/orbitrig/components"
	"github.com/automoto/orbitrig/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreatePickSpace creates the space covering [-extent, extent] world units, in pixels
// of config.Scene.PickPixelsPerUnit. cell is in pixels.
func CreatePickSpace(w donburi.World, extent float64, cell int) *donburi.Entry {
	side := int(math.Ceil(extent * 2 * config.Scene.PickPixelsPerUnit))
	return CreateSpace(w, side, side, cell, cell)
}
