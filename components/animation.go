package components

import (
	"github.com/automoto/doomerang-ai/config"
	"github.com/yohamta/donburi"
)

// AnimatorData holds the presentation parameters an agent exposes to
// clients. One-shot cues bump TriggerSeq so a client can tell two identical
// triggers apart between snapshots.
type AnimatorData struct {
	State      config.StateID
	Speed      float64
	Attacking  bool
	Trigger    string
	TriggerSeq uint32
}

// Fire records a one-shot trigger.
func (a *AnimatorData) Fire(trigger string) {
	a.Trigger = trigger
	a.TriggerSeq++
}

var Animator = donburi.NewComponentType[AnimatorData]()
