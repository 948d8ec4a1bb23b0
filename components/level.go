package components

import (
	"github.com/automoto/doomerang-ai/nav"
	"github.com/automoto/doomerang-ai/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	Grid         *nav.Grid
	Scale        float64 // Level pixels per world unit
}

var Level = donburi.NewComponentType[LevelData]()

// ClockData is the simulation time of the current step.
type ClockData struct {
	Delta   float64
	Elapsed float64
	Ticks   uint64
}

var Clock = donburi.NewComponentType[ClockData]()
