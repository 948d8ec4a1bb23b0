package components

import "github.com/yohamta/donburi"

// DamageEventData is pending damage for an entity, applied by UpdateCombat.
// Hits landing in the same tick accumulate into Amount.
type DamageEventData struct {
	Amount int
	Source string // Name of the attacker, for logs
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
