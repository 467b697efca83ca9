package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PickBoxData is the ground-plane box used to click-select an entity. Its X/Y are the
// world X/Z of the entity.
type PickBoxData struct {
	*resolv.Object
}

var PickBox = donburi.NewComponentType[PickBoxData]()

var Space = donburi.NewComponentType[resolv.Space]()
