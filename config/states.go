package config

import (
	"github.com/automoto/doomerang-ai/shared/netconfig"
	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every server entity is created on.
const Default ecs.LayerID = 0

// Type aliases so server code can keep using config.StateID.
type StateID = netconfig.StateID
type ActionID = netconfig.ActionID

// Re-export agent state constants.
const (
	StateNone = netconfig.StateNone

	StatePatrol = netconfig.StatePatrol
	StateChase  = netconfig.StateChase
	StateFlee   = netconfig.StateFlee
	StateWander = netconfig.StateWander
	StateAttack = netconfig.StateAttack
)

// Re-export input actions.
const (
	ActionNone      = netconfig.ActionNone
	ActionMoveLeft  = netconfig.ActionMoveLeft
	ActionMoveRight = netconfig.ActionMoveRight
	ActionMoveUp    = netconfig.ActionMoveUp
	ActionMoveDown  = netconfig.ActionMoveDown
	ActionAttack    = netconfig.ActionAttack
	ActionCount     = netconfig.ActionCount
)

// Re-export the map (same reference, no copy).
var StateNames = netconfig.StateNames

// Presentation cue names raised by agents.
const (
	CueAttackStart = "attack-start"
	CueDie         = "die"
	CueState       = "state"
	CueSpeed       = "speed"
	CueHit         = "hit"
	CueHurt        = "hurt"
)
