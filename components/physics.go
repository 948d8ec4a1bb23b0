package components

import (
	"github.com/yohamta/donburi"
)

// PhysicsData drives target avatar movement. Speeds are world units per
// second along each axis.
type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Accel    float64
	Friction float64
	MaxSpeed float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
