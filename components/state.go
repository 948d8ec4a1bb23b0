package components

import (
	"github.com/automoto/doomerang-ai/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64 // Seconds since the last transition
}

var State = donburi.NewComponentType[StateData]()
