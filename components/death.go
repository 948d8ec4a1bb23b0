package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DeathData marks an agent that has died. Fade runs from 1 to 0 over the
// removal grace period; the entity is removed when the tween finishes.
type DeathData struct {
	Tween *gween.Tween
	Fade  float64
}

var Death = donburi.NewComponentType[DeathData]()
