package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the level-wide collision space. Every resolv object lives in it.
var Space = donburi.NewComponentType[resolv.Space]()
