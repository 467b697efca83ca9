package components

import (
	"github.com/automoto/orbitrig/shared/rigmath"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Lens rigmath.Lens
}

var Camera = donburi.NewComponentType[CameraData]()
