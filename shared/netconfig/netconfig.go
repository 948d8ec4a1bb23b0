// Package netconfig defines lightweight types shared between the arena server
// and its clients for network serialization. It must stay free of engine
// dependencies so the dedicated server binary stays headless.
package netconfig

// StateID identifies an agent behaviour state. The integer value is also the
// animator "State" parameter mirrored to clients.
type StateID int

const (
	StateNone StateID = -1

	StatePatrol StateID = iota - 1
	StateChase
	StateFlee
	StateWander
	StateAttack
)

// StateNames maps StateID to the lowercase name used in logs and YAML.
var StateNames = map[StateID]string{
	StatePatrol: "patrol",
	StateChase:  "chase",
	StateFlee:   "flee",
	StateWander: "wander",
	StateAttack: "attack",
}

func (s StateID) String() string {
	if name, ok := StateNames[s]; ok {
		return name
	}
	return "unknown"
}

// ActionID represents a logical input action sent by a client driving the target.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionAttack
	ActionCount // Must be last - used for array sizing
)
