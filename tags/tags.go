package tags

import "github.com/yohamta/donburi"

var (
	Rig    = donburi.NewTag().SetName("Rig")
	Camera = donburi.NewTag().SetName("Camera")
	Unit   = donburi.NewTag().SetName("Unit")
)

// Resolv tags for picking
const (
	ResolvUnit   = "unit"
	ResolvCursor = "cursor"
)
