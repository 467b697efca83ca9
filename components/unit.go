package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// UnitData is a followable entity patrolling between From and To.
type UnitData struct {
	Name     string
	From, To mgl32.Vec3
	Tween    *gween.Tween // Progress 0..1 along the current leg
	Outbound bool         // Heading from From to To
}

var Unit = donburi.NewComponentType[UnitData]()
