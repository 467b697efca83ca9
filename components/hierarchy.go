package components

import "github.com/yohamta/donburi"

type ParentData struct {
	Entity donburi.Entity
}

var Parent = donburi.NewComponentType[ParentData]()

type ChildrenData struct {
	Entities []donburi.Entity
}

var Children = donburi.NewComponentType[ChildrenData]()
