package netcomponents

import (
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/yohamta/donburi"
)

// NetPositionData is a target avatar's centre in world units and its facing
// heading in radians.
type NetPositionData struct {
	X, Y   float64
	Facing float64
}

var NetPosition = donburi.NewComponentType[NetPositionData]()

// LerpNetPosition interpolates between two positions, turning the short way
func LerpNetPosition(from, to NetPositionData, t float64) *NetPositionData {
	return &NetPositionData{
		X:      from.X + (to.X-from.X)*t,
		Y:      from.Y + (to.Y-from.Y)*t,
		Facing: gamemath.LerpAngle(from.Facing, to.Facing, t),
	}
}
