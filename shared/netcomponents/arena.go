package netcomponents

import "github.com/yohamta/donburi"

// NetArenaData summarises the arena for client HUDs.
type NetArenaData struct {
	Level       string
	AgentsAlive int
	Targets     int
	Elapsed     float64 // Simulated seconds since the arena started
}

var NetArena = donburi.NewComponentType[NetArenaData]()
