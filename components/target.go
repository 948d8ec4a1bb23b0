package components

import (
	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TargetData is an avatar the agents hunt. Each connected client drives one.
type TargetData struct {
	Name         string
	Input        [config.ActionCount]bool
	LastSequence uint32        // Sequence of the input snapshot in Input
	Facing       gamemath.Vec2 // Last non-zero movement direction
	AttackTimer  float64       // Seconds until the avatar may strike again
	Spawn        gamemath.Vec2
}

var Target = donburi.NewComponentType[TargetData]()
