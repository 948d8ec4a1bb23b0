package core

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"

	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/doomerang-ai/archetypes"
	"github.com/automoto/doomerang-ai/components"
	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/automoto/doomerang-ai/shared/leveldata"
	"github.com/automoto/doomerang-ai/shared/netcomponents"
	"github.com/automoto/doomerang-ai/systems"
	"github.com/automoto/doomerang-ai/systems/factory"
	"github.com/automoto/doomerang-ai/tags"
)

// Arena is one simulated level: its walls, its hostile agents and the
// avatars they hunt. Step must be called from a single goroutine; Join,
// Leave and SetInput may be called from any goroutine and take effect at
// the start of the next step.
type Arena struct {
	world donburi.World
	ecs   *ecs.ECS
	level *leveldata.Level

	targets   map[string]donburi.Entity // client ID -> avatar
	spawnNext int
	networked bool

	mu       sync.Mutex
	commands []func()
}

// NewArena builds the level and spawns one agent per level spawn. seed
// fixes the agents' wander choices so runs are reproducible.
func NewArena(level *leveldata.Level, seed uint64) *Arena {
	world := donburi.NewWorld()
	a := &Arena{
		world:   world,
		ecs:     ecs.NewECS(world),
		level:   level,
		targets: make(map[string]donburi.Entity),
	}

	a.ecs.AddSystem(systems.UpdateTargets)
	a.ecs.AddSystem(systems.UpdateAgents)
	a.ecs.AddSystem(systems.UpdateNavigation)
	a.ecs.AddSystem(systems.UpdateDamageVolumes)
	a.ecs.AddSystem(systems.UpdateCombat)
	a.ecs.AddSystem(systems.UpdateDeaths)
	a.ecs.AddSystem(systems.UpdateNetSync)

	factory.CreateClock(a.ecs)
	factory.CreateLevel(a.ecs, level)

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for _, spawn := range level.AgentSpawns {
		factory.CreateAgent(a.ecs, spawn, rng)
	}

	slog.Info("arena ready", "level", level.Name, "agents", len(level.AgentSpawns))
	return a
}

// Step runs queued commands and advances the simulation by dt seconds.
func (a *Arena) Step(dt float64) {
	a.ProcessCommands()

	clock := components.Clock.Get(components.Clock.MustFirst(a.world))
	clock.Delta = dt
	clock.Elapsed += dt
	clock.Ticks++

	a.ecs.Update()
}

// ProcessCommands runs every command queued since the last step.
func (a *Arena) ProcessCommands() {
	a.mu.Lock()
	cmds := a.commands
	a.commands = nil
	a.mu.Unlock()

	for _, cmd := range cmds {
		cmd()
	}
}

func (a *Arena) enqueue(cmd func()) {
	a.mu.Lock()
	a.commands = append(a.commands, cmd)
	a.mu.Unlock()
}

// Join spawns an avatar for the client id. Joining twice is a no-op.
func (a *Arena) Join(id, name string) {
	a.enqueue(func() {
		if _, ok := a.targets[id]; ok {
			return
		}
		if name == "" {
			name = id
		}
		entry := factory.CreateTarget(a.ecs, name, a.nextSpawn())
		a.targets[id] = entry.Entity()
		if a.networked {
			a.syncTarget(entry)
		}
		slog.Info("target joined", "client", id, "name", name)
	})
}

// Leave removes the client's avatar.
func (a *Arena) Leave(id string) {
	a.enqueue(func() {
		entity, ok := a.targets[id]
		if !ok {
			return
		}
		delete(a.targets, id)
		if a.world.Valid(entity) {
			factory.RemoveTarget(a.ecs, a.world.Entry(entity))
		}
		slog.Info("target left", "client", id)
	})
}

// SetInput replaces the held actions of the client's avatar. Older
// sequences than the one already applied are dropped.
func (a *Arena) SetInput(id string, seq uint32, actions map[config.ActionID]bool) {
	a.enqueue(func() {
		entity, ok := a.targets[id]
		if !ok || !a.world.Valid(entity) {
			return
		}
		target := components.Target.Get(a.world.Entry(entity))
		if seq != 0 && seq < target.LastSequence {
			return
		}
		target.LastSequence = seq
		for i := range target.Input {
			target.Input[i] = actions[config.ActionID(i)]
		}
	})
}

// nextSpawn cycles through the level's target spawns. Levels without any
// use the walkable point nearest the map centre.
func (a *Arena) nextSpawn() gamemath.Vec2 {
	levelData := components.Level.Get(components.Level.MustFirst(a.world))
	scale := levelData.Scale

	if n := len(a.level.TargetSpawns); n > 0 {
		s := a.level.TargetSpawns[a.spawnNext%n]
		a.spawnNext++
		return gamemath.V(s.X/scale, s.Y/scale)
	}

	center := gamemath.V(float64(a.level.MapWidth)/scale/2, float64(a.level.MapHeight)/scale/2)
	if p, ok := levelData.Grid.NearestWalkable(center, float64(a.level.MapWidth)/scale); ok {
		return p
	}
	return center
}

// EnableNetworking attaches network components to every agent and avatar
// and registers them with esync. Avatars that join later are synced as they
// spawn.
func (a *Arena) EnableNetworking() error {
	srvsync.UseEsync(a.world)
	a.networked = true

	var agents []*donburi.Entry
	tags.Agent.Each(a.world, func(e *donburi.Entry) {
		agents = append(agents, e)
	})
	for _, e := range agents {
		if err := a.syncAgent(e); err != nil {
			return err
		}
	}

	arena := archetypes.NetArena.Spawn(a.ecs)
	netcomponents.NetArena.SetValue(arena, netcomponents.NetArenaData{Level: a.level.Name})
	entity := arena.Entity()
	if err := srvsync.NetworkSync(a.world, &entity, netcomponents.NetArena); err != nil {
		return fmt.Errorf("sync arena: %w", err)
	}
	return nil
}

func (a *Arena) syncAgent(e *donburi.Entry) error {
	e.AddComponent(netcomponents.NetAgent)
	entity := e.Entity()
	if err := srvsync.NetworkSync(a.world, &entity,
		srvsync.WithInterp(netcomponents.NetAgent),
	); err != nil {
		return fmt.Errorf("sync agent %s: %w", components.Agent.Get(e).Brain.Name(), err)
	}
	return nil
}

func (a *Arena) syncTarget(e *donburi.Entry) {
	e.AddComponent(netcomponents.NetPosition)
	e.AddComponent(netcomponents.NetTarget)
	entity := e.Entity()
	if err := srvsync.NetworkSync(a.world, &entity,
		srvsync.WithInterp(netcomponents.NetPosition),
		netcomponents.NetTarget,
	); err != nil {
		slog.Error("failed to set up network sync for target", "err", err)
	}
}

// ECS returns the arena's ECS, for tests and tooling.
func (a *Arena) ECS() *ecs.ECS {
	return a.ecs
}

// Level returns the level the arena was built from.
func (a *Arena) Level() *leveldata.Level {
	return a.level
}

// TargetCount returns the number of avatars in the arena. Call it from the
// goroutine that steps the arena.
func (a *Arena) TargetCount() int {
	return len(a.targets)
}

// AgentCount returns the number of agents that have not been removed yet.
func (a *Arena) AgentCount() int {
	n := 0
	tags.Agent.Each(a.world, func(*donburi.Entry) { n++ })
	return n
}
