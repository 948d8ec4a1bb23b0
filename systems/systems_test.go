package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/automoto/doomerang-ai/shared/leveldata"
	"github.com/automoto/doomerang-ai/shared/netcomponents"
	"github.com/automoto/doomerang-ai/systems/factory"
)

const tile = 16.0

// newTestECS builds a 10x10 tile level with the given walls and a 50ms clock.
func newTestECS(t *testing.T, solids ...leveldata.SolidRect) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(e)
	factory.CreateLevel(e, &leveldata.Level{
		Name:        "test",
		SolidRects:  solids,
		PatrolPaths: map[string]leveldata.PatrolPath{},
		MapWidth:    10 * tile,
		MapHeight:   10 * tile,
		TileWidth:   tile,
		TileHeight:  tile,
	})
	components.Clock.Get(components.Clock.MustFirst(e.World)).Delta = 0.05
	return e
}

func spawnGrunt(e *ecs.ECS, x, y float64) *donburi.Entry {
	return factory.CreateAgent(e, leveldata.AgentSpawn{X: x * tile, Y: y * tile, AgentType: "Grunt"}, nil)
}

func TestUpdateTargets_StopsFlushAgainstWall(t *testing.T) {
	e := newTestECS(t, leveldata.SolidRect{X: 5 * tile, Y: 0, W: tile, H: 10 * tile})
	target := factory.CreateTarget(e, "alice", gamemath.V(3.5, 5.5))
	components.Target.Get(target).Input[cfg.ActionMoveRight] = true

	for range 40 {
		UpdateTargets(e)
	}

	obj := components.Object.Get(target).Object
	assert.InDelta(t, 5*tile, obj.X+obj.W, 0.01)
	assert.Zero(t, components.Physics.Get(target).SpeedX)
	assert.Equal(t, gamemath.V(1, 0), components.Target.Get(target).Facing)
}

func TestUpdateTargets_FrictionStopsIdleAvatar(t *testing.T) {
	e := newTestECS(t)
	target := factory.CreateTarget(e, "alice", gamemath.V(5.5, 5.5))
	components.Target.Get(target).Input[cfg.ActionMoveDown] = true
	UpdateTargets(e)
	require.Greater(t, components.Physics.Get(target).SpeedY, 0.0)

	components.Target.Get(target).Input[cfg.ActionMoveDown] = false
	for range 5 {
		UpdateTargets(e)
	}
	assert.Zero(t, components.Physics.Get(target).SpeedY)
}

func TestUpdateTargets_StrikeHitsOnlyAgentsInFront(t *testing.T) {
	e := newTestECS(t)
	behind := spawnGrunt(e, 4.5, 5.5)
	ahead := spawnGrunt(e, 6.5, 5.5)
	far := spawnGrunt(e, 9.5, 5.5)

	target := factory.CreateTarget(e, "alice", gamemath.V(5.5, 5.5))
	components.Target.Get(target).Input[cfg.ActionAttack] = true

	UpdateTargets(e)

	require.True(t, ahead.HasComponent(components.DamageEvent))
	assert.Equal(t, cfg.Target.AttackDamage, components.DamageEvent.Get(ahead).Amount)
	assert.Equal(t, "alice", components.DamageEvent.Get(ahead).Source)
	assert.False(t, behind.HasComponent(components.DamageEvent))
	assert.False(t, far.HasComponent(components.DamageEvent))
	assert.Equal(t, cfg.Target.AttackCooldown, components.Target.Get(target).AttackTimer)

	// Cooldown blocks the next strike.
	UpdateCombat(e)
	UpdateTargets(e)
	assert.False(t, ahead.HasComponent(components.DamageEvent))
}

func TestQueueDamage_Accumulates(t *testing.T) {
	e := newTestECS(t)
	agent := spawnGrunt(e, 5.5, 5.5)

	queueDamage(agent, 10, "a")
	queueDamage(agent, 0, "b")
	queueDamage(agent, -5, "c")
	queueDamage(agent, 15, "d")

	require.True(t, agent.HasComponent(components.DamageEvent))
	assert.Equal(t, 25, components.DamageEvent.Get(agent).Amount)

	UpdateCombat(e)
	assert.False(t, agent.HasComponent(components.DamageEvent))
	assert.Equal(t, 75, components.Agent.Get(agent).Brain.Health())
}

func TestUpdateCombat_RespawnsDownedTarget(t *testing.T) {
	e := newTestECS(t)
	target := factory.CreateTarget(e, "alice", gamemath.V(2.5, 2.5))
	components.PlaceCenter(components.Object.Get(target).Object, gamemath.V(7.5, 7.5), tile)
	components.Health.Get(target).Current = 5

	queueDamage(target, 10, "Grunt")
	UpdateCombat(e)

	hp := components.Health.Get(target)
	assert.Equal(t, hp.Max, hp.Current)
	center := components.CenterOf(components.Object.Get(target).Object, tile)
	assert.InDelta(t, 2.5, center.X, 1e-9)
	assert.InDelta(t, 2.5, center.Y, 1e-9)
}

func TestUpdateNetSync_CopiesAgentState(t *testing.T) {
	e := newTestECS(t)
	agent := spawnGrunt(e, 3.5, 4.5)
	agent.AddComponent(netcomponents.NetAgent)

	UpdateNetSync(e)

	net := netcomponents.NetAgent.Get(agent)
	assert.Equal(t, 3.5, net.X)
	assert.Equal(t, 4.5, net.Y)
	assert.Equal(t, "Grunt", net.TypeName)
	assert.Equal(t, cfg.StateWander, net.State)
	assert.Equal(t, 100, net.Health)
	assert.Equal(t, 100, net.MaxHealth)
	assert.Equal(t, 1.0, net.Fade)
	assert.False(t, net.Dead)
}

func TestNeighborhood_ReturnsNearbyLiveAgents(t *testing.T) {
	e := newTestECS(t)
	self := spawnGrunt(e, 5.5, 5.5)
	spawnGrunt(e, 6.5, 5.5)
	spawnGrunt(e, 9.5, 9.5)
	dead := spawnGrunt(e, 5.5, 6.5)
	components.Agent.Get(dead).Brain.Die()
	startDeath(dead, 3)

	got := components.Agent.Get(self).Sensor.Neighbors(2)
	require.Len(t, got, 1)
	assert.InDelta(t, 6.5, got[0].X, 1e-9)
	assert.InDelta(t, 5.5, got[0].Y, 1e-9)
}

func TestUpdateDeaths_RemovesWithoutGrace(t *testing.T) {
	e := newTestECS(t)
	agent := spawnGrunt(e, 5.5, 5.5)
	entity := agent.Entity()
	startDeath(agent, 0)

	UpdateDeaths(e)
	assert.False(t, e.World.Valid(entity))
}
