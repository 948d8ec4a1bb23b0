package netcomponents

import "github.com/yohamta/donburi"

type NetTargetData struct {
	Name         string
	Health       int
	MaxHealth    int
	Attacking    bool   // Strike cooldown is running
	LastSequence uint32 // Last input sequence applied by the server
}

var NetTarget = donburi.NewComponentType[NetTargetData]()
