package components

import "github.com/yohamta/donburi"

// HealthData tracks target health. Agents keep theirs inside the brain.
type HealthData struct {
	Current int
	Max     int
}

var Health = donburi.NewComponentType[HealthData]()
