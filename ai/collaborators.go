// Package ai is the decision core of a hostile agent: perception, the
// behaviour state machine, the timed attack sequence and health tracking.
//
// The package knows nothing about the ECS world. Everything an agent reads or
// moves is reached through the small capability interfaces below, which the
// systems package implements on top of donburi and resolv.
package ai

import (
	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/gamemath"
)

// State is the agent's behaviour state. Its integer value doubles as the
// animator state parameter.
type State = config.StateID

const (
	StatePatrol = config.StatePatrol
	StateChase  = config.StateChase
	StateFlee   = config.StateFlee
	StateWander = config.StateWander
	StateAttack = config.StateAttack
)

// Navigator moves the agent along terrain-aware paths.
type Navigator interface {
	SetDestination(p gamemath.Vec2)
	RemainingDistance() float64
	Velocity() gamemath.Vec2
	// AddVelocity nudges the current velocity, used for repulsion.
	AddVelocity(dv gamemath.Vec2)

	SetEnabled(enabled bool)
	SetStopped(stopped bool)

	// SampleWalkable projects p onto traversable terrain within radius.
	SampleWalkable(p gamemath.Vec2, radius float64) (gamemath.Vec2, bool)
}

// Body is the agent's pose in the world. Facing is a heading in radians.
type Body interface {
	Position() gamemath.Vec2
	Facing() float64
	SetFacing(heading float64)
}

// DamageVolume is the collision volume that deals damage while enabled.
type DamageVolume interface {
	Enabled() bool
	SetEnabled(enabled bool)
}

// Target is the entity the agent perceives, chases and attacks.
type Target interface {
	Position() gamemath.Vec2
}

// Victim is anything an agent can damage.
type Victim interface {
	TakeDamage(amount int)
}

// Neighborhood returns the positions of other agents within radius of the
// agent it was built for. Implementations are expected to answer from a
// spatial index, not a world scan.
type Neighborhood interface {
	Neighbors(radius float64) []gamemath.Vec2
}

// Rand is the random source used to pick wander points. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// Deps wires an agent to its collaborators. Body, Navigator and Target are
// required; Volume, Neighbors and Rand may be nil.
type Deps struct {
	Name      string
	Body      Body
	Navigator Navigator
	Volume    DamageVolume
	Target    Target
	Neighbors Neighborhood
	Rand      Rand
}

// Transition records one state change.
type Transition struct {
	From, To State
}

// Cue is a presentation trigger. State cues carry the new state in Int and
// speed cues carry the movement speed in Float.
type Cue struct {
	Name  string
	Int   int
	Float float64
}

// Effects is what a tick produced, for the caller to forward to animation,
// audio and the entity lifecycle. Cues raised between ticks by TakeDamage or
// HandleContact are delivered with the next tick.
type Effects struct {
	Transitions []Transition
	Cues        []Cue
	Died        bool
	// RemoveAfter is the grace delay in seconds before the agent should be
	// removed from the world. Only meaningful when Died is set.
	RemoveAfter float64
}

// HasCue reports whether a cue with the given name was raised.
func (e Effects) HasCue(name string) bool {
	for _, c := range e.Cues {
		if c.Name == name {
			return true
		}
	}
	return false
}
