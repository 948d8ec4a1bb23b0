package netcomponents

import (
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/automoto/doomerang-ai/shared/netconfig"
	"github.com/yohamta/donburi"
)

// NetAgentData is the client's view of a hostile agent. Positions are in
// world units; Facing is a heading in radians.
type NetAgentData struct {
	X, Y      float64
	Facing    float64
	TypeName  string // "Grunt", "Brute", etc.
	State     netconfig.StateID
	Health    int // Display value, never below zero
	MaxHealth int
	Attacking bool
	Dead      bool
	Fade      float64 // 1 while alive, runs to 0 during the removal grace
	Speed     float64 // Animator speed parameter

	// Last one-shot cue and a counter so repeated cues are not lost
	Trigger    string
	TriggerSeq uint32
}

var NetAgent = donburi.NewComponentType[NetAgentData]()

// LerpNetAgent interpolates between two agent states
func LerpNetAgent(from, to NetAgentData, t float64) *NetAgentData {
	out := to
	out.X = from.X + (to.X-from.X)*t
	out.Y = from.Y + (to.Y-from.Y)*t
	out.Facing = gamemath.LerpAngle(from.Facing, to.Facing, t)
	out.Fade = from.Fade + (to.Fade-from.Fade)*t
	return &out
}
