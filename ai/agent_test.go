package ai

import (
	"math"
	"testing"

	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 0.1

func TestNewAgent_InitialState(t *testing.T) {
	noRoute := newRig()
	assert.Equal(t, StateWander, noRoute.agent.State())
	assert.Equal(t, 100, noRoute.agent.Health())
	assert.False(t, noRoute.agent.IsDead())

	withRoute := newRig(gamemath.V(5, 0))
	assert.Equal(t, StatePatrol, withRoute.agent.State())
	assert.Equal(t, 0, withRoute.agent.PatrolIndex())
}

func TestAgent_DetectedTargetAtFullHealthIsChased(t *testing.T) {
	r := newRig()
	r.target.pos = gamemath.V(8, 0)

	e := r.agent.Tick(dt)

	assert.Equal(t, StateChase, r.agent.State())
	assert.Equal(t, []Transition{{From: StateWander, To: StateChase}}, e.Transitions)
	assert.Contains(t, e.Cues, Cue{Name: config.CueState, Int: int(StateChase)})
	assert.Equal(t, gamemath.V(8, 0), r.nav.dest)

	last, ok := r.agent.LastKnownTarget()
	assert.True(t, ok)
	assert.Equal(t, gamemath.V(8, 0), last)
}

func TestAgent_DamageBelowHalfWhileChasingFleesImmediately(t *testing.T) {
	r := newRig()
	r.target.pos = gamemath.V(8, 0)
	r.agent.Tick(dt)
	require.Equal(t, StateChase, r.agent.State())

	r.agent.TakeDamage(60)
	assert.Equal(t, StateFlee, r.agent.State(), "flee applies without waiting for a tick")
	assert.Equal(t, 40, r.agent.Health())

	e := r.agent.Tick(dt)
	assert.Equal(t, StateFlee, r.agent.State())
	assert.Equal(t, []Transition{{From: StateChase, To: StateFlee}}, e.Transitions)
	assert.True(t, e.HasCue(config.CueHurt))
	assert.InDelta(t, -5, r.nav.dest.X, 1e-9)
	assert.InDelta(t, 0, r.nav.dest.Y, 1e-9)
}

func TestAgent_LowHealthNeverChases(t *testing.T) {
	r := newRig()
	r.agent.TakeDamage(60)

	// Out of range: the flee succeeds and the agent wanders.
	r.agent.Tick(dt)
	require.Equal(t, StateWander, r.agent.State())

	r.target.pos = gamemath.V(8, 0)
	e := r.tickN(5, dt)

	assert.Equal(t, StateFlee, r.agent.State())
	for _, tr := range e.Transitions {
		assert.NotEqual(t, StateChase, tr.To)
	}
}

func TestAgent_LosingTargetEndsChase(t *testing.T) {
	t.Run("without route", func(t *testing.T) {
		r := newRig()
		r.target.pos = gamemath.V(8, 0)
		r.agent.Tick(dt)

		r.target.pos = gamemath.V(20, 0)
		e := r.agent.Tick(dt)

		assert.Equal(t, StateWander, r.agent.State())
		assert.Equal(t, []Transition{{From: StateChase, To: StateWander}}, e.Transitions)
	})

	t.Run("with route", func(t *testing.T) {
		r := newRig(gamemath.V(0, 5), gamemath.V(5, 5))
		r.target.pos = gamemath.V(8, 0)
		r.agent.Tick(dt)
		require.Equal(t, StateChase, r.agent.State())

		r.target.pos = gamemath.V(20, 0)
		r.agent.Tick(dt)

		assert.Equal(t, StatePatrol, r.agent.State())
		assert.Equal(t, gamemath.V(0, 5), r.nav.dest)
	})
}

func TestAgent_PatrolIndexCycles(t *testing.T) {
	route := []gamemath.Vec2{gamemath.V(5, 0), gamemath.V(5, 5), gamemath.V(0, 5)}
	r := newRig(route...)

	r.agent.Tick(dt)
	require.Equal(t, 0, r.agent.PatrolIndex())
	require.Equal(t, route[0], r.nav.dest)

	var seen []int
	for i := range route {
		r.body.pos = route[i]
		r.agent.Tick(dt)
		seen = append(seen, r.agent.PatrolIndex())
	}

	assert.Equal(t, []int{1, 2, 0}, seen)
	assert.Equal(t, route[0], r.nav.dest)
	assert.Equal(t, StatePatrol, r.agent.State())
}

func TestAgent_WanderPicksPointAroundSelf(t *testing.T) {
	r := newRig()
	r.body.pos = gamemath.V(2, 3)

	r.agent.Tick(dt)

	require.True(t, r.nav.hasDest)
	wantRadius := 7 * math.Sqrt(0.5)
	assert.InDelta(t, wantRadius, gamemath.Distance(r.nav.dest, r.body.pos), 1e-9)

	// Still far from the destination: no new point.
	r.agent.Tick(dt)
	assert.Equal(t, 1, r.nav.sets)
}

func TestAgent_WanderCentersOnLastKnownTarget(t *testing.T) {
	r := newRig()
	r.target.pos = gamemath.V(8, 0)
	r.agent.Tick(dt)

	r.target.pos = gamemath.V(40, 0)
	r.agent.Tick(dt)
	require.Equal(t, StateWander, r.agent.State())

	r.body.pos = gamemath.V(8, 0)
	r.agent.Tick(dt)

	assert.InDelta(t, 7*math.Sqrt(0.5), gamemath.Distance(r.nav.dest, gamemath.V(8, 0)), 1e-9)
}

func TestAgent_WanderWithoutWalkableSampleKeepsDestination(t *testing.T) {
	r := newRig()
	r.nav.noSample = true

	r.tickN(3, dt)

	assert.False(t, r.nav.hasDest)
	assert.Equal(t, StateWander, r.agent.State())
}

func TestAgent_WanderReturnsToPatrolWhenRouteExists(t *testing.T) {
	r := newRig(gamemath.V(0, 5))
	r.agent.TakeDamage(60)
	require.Equal(t, StateFlee, r.agent.State())

	e := r.tickN(2, dt)

	assert.Equal(t, []Transition{
		{From: StatePatrol, To: StateFlee},
		{From: StateFlee, To: StateWander},
		{From: StateWander, To: StatePatrol},
	}, e.Transitions)
}

func TestAgent_FleeDestination(t *testing.T) {
	t.Run("away from target", func(t *testing.T) {
		r := newRig()
		r.agent.TakeDamage(60)
		r.target.pos = gamemath.V(3, 0)

		r.agent.Tick(dt)

		assert.Equal(t, StateFlee, r.agent.State())
		assert.InDelta(t, -5, r.nav.dest.X, 1e-9)
		assert.InDelta(t, 0, r.nav.dest.Y, 1e-9)
	})

	t.Run("standing on target backs off behind facing", func(t *testing.T) {
		r := newRig()
		r.agent.TakeDamage(60)
		r.body.facing = math.Pi / 2
		r.target.pos = r.body.pos

		r.agent.Tick(dt)

		assert.InDelta(t, 0, r.nav.dest.X, 1e-9)
		assert.InDelta(t, -5, r.nav.dest.Y, 1e-9)
	})
}

func TestAgent_ChaseEntersAttackInRange(t *testing.T) {
	r := newRig()
	r.target.pos = gamemath.V(1.5, 0)

	e := r.agent.Tick(dt)
	assert.Equal(t, []Transition{
		{From: StateWander, To: StateChase},
		{From: StateChase, To: StateAttack},
	}, e.Transitions)
	assert.False(t, r.agent.IsAttacking(), "the swing starts on the first Attack tick")

	e = r.agent.Tick(dt)
	assert.True(t, r.agent.IsAttacking())
	assert.True(t, e.HasCue(config.CueAttackStart))
	assert.True(t, r.nav.stopped)
	assert.False(t, r.vol.enabled)
}

func TestAgent_AttackFallsBackToChaseDuringCooldown(t *testing.T) {
	r := newRig()
	r.target.pos = gamemath.V(1.5, 0)
	r.tickN(2, dt)
	require.True(t, r.agent.IsAttacking())

	for i := 0; i < 20 && r.agent.IsAttacking(); i++ {
		r.agent.Tick(dt)
	}
	require.False(t, r.agent.IsAttacking())
	assert.Equal(t, StateAttack, r.agent.State(), "exit chases and re-enters Attack while in range")

	// Cooling down: stays rooted in Attack without swinging.
	r.agent.Tick(dt)
	assert.False(t, r.agent.IsAttacking())
	assert.Equal(t, StateAttack, r.agent.State())

	r.target.pos = gamemath.V(3, 0)
	r.agent.Tick(dt)
	assert.Equal(t, StateChase, r.agent.State())
}

func TestAgent_DeadAgentIsInert(t *testing.T) {
	r := newRig()
	r.target.pos = gamemath.V(8, 0)
	r.agent.Tick(dt)
	sets := r.nav.sets

	r.agent.Die()
	e := r.agent.Tick(dt)
	assert.True(t, e.Died)
	assert.Equal(t, 3.0, e.RemoveAfter)
	assert.True(t, e.HasCue(config.CueDie))
	assert.Empty(t, e.Transitions)

	r.target.pos = gamemath.V(1, 0)
	e = r.tickN(10, dt)
	assert.Empty(t, e.Transitions)
	assert.Empty(t, e.Cues)
	assert.False(t, e.Died)
	assert.Equal(t, StateChase, r.agent.State(), "dead agents freeze in their last state")
	assert.Equal(t, sets, r.nav.sets)
}

func TestAgent_FacesTargetWhileChasing(t *testing.T) {
	r := newRig()
	r.target.pos = gamemath.V(0, 8)

	r.agent.Tick(dt)
	assert.Greater(t, r.body.facing, 0.0)
	assert.Less(t, r.body.facing, math.Pi/2)

	r.tickN(60, dt)
	assert.InDelta(t, math.Pi/2, r.body.facing, 1e-6)
}

func TestAgent_PatrolFacesMovement(t *testing.T) {
	r := newRig(gamemath.V(5, 0))

	r.nav.velocity = gamemath.V(0.05, 0)
	r.agent.Tick(dt)
	assert.Equal(t, 0.0, r.body.facing, "speeds under the noise threshold do not turn")

	r.nav.velocity = gamemath.V(0, -3)
	r.agent.Tick(dt)
	assert.Less(t, r.body.facing, 0.0)
	assert.Greater(t, r.body.facing, -math.Pi/2)
}

func TestAgent_SpeedCue(t *testing.T) {
	r := newRig(gamemath.V(5, 0))
	r.nav.velocity = gamemath.V(3, 4)

	e := r.agent.Tick(dt)

	assert.Contains(t, e.Cues, Cue{Name: config.CueSpeed, Float: 5})
}
