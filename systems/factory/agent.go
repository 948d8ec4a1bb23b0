package factory

import (
	"fmt"
	"log/slog"

	"github.com/automoto/doomerang-ai/ai"
	"github.com/automoto/doomerang-ai/archetypes"
	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/nav"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/automoto/doomerang-ai/shared/leveldata"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateAgent spawns a hostile agent at a level spawn. Unknown types fall
// back to the default archetype and unknown routes leave the agent wandering.
// rng may be nil.
func CreateAgent(ecs *ecs.ECS, spawn leveldata.AgentSpawn, rng ai.Rand) *donburi.Entry {
	levelData := components.Level.Get(components.Level.MustFirst(ecs.World))
	space := components.Space.Get(components.Space.MustFirst(ecs.World))
	scale := levelData.Scale

	agentType, err := cfg.Agent.Type(spawn.AgentType)
	if err != nil {
		agentType = cfg.Agent.TypeOrDefault(spawn.AgentType)
		if spawn.AgentType != "" {
			slog.Warn("unknown agent type, using default", "type", spawn.AgentType, "default", cfg.Agent.DefaultType)
		}
	}

	var route []gamemath.Vec2
	if spawn.PathName != "" {
		points := levelData.CurrentLevel.Route(spawn.PathName)
		if len(points) == 0 {
			slog.Warn("unknown patrol path, agent will wander", "path", spawn.PathName)
		}
		for _, p := range points {
			route = append(route, gamemath.Scale(p, 1/scale))
		}
	}

	pos := gamemath.V(spawn.X/scale, spawn.Y/scale)
	name := fmt.Sprintf("%s@%.0f,%.0f", agentType.Name, spawn.X, spawn.Y)

	agent := archetypes.Agent.Spawn(ecs)

	// Body
	bodyW, bodyH := agentType.CollisionWidth*scale, agentType.CollisionHeight*scale
	obj := resolv.NewObject(0, 0, bodyW, bodyH, tags.ResolvAgent)
	obj.SetShape(resolv.NewRectangle(0, 0, bodyW, bodyH))
	obj.Data = agent
	space.Add(obj)
	components.PlaceCenter(obj, pos, scale)
	components.Object.SetValue(agent, components.ObjectData{Object: obj})

	// Damage volume, parked on the body until the first swing moves it
	volW, volH := agentType.HitboxWidth*scale, agentType.HitboxHeight*scale
	volObj := resolv.NewObject(0, 0, volW, volH, tags.ResolvHitbox)
	volObj.SetShape(resolv.NewRectangle(0, 0, volW, volH))
	volObj.Data = agent
	space.Add(volObj)
	components.PlaceCenter(volObj, pos, scale)

	// Probe for repulsion queries, resized per query
	probe := resolv.NewObject(0, 0, 1, 1)
	space.Add(probe)

	navigator := nav.NewGridNavigator(levelData.Grid, pos, agentType.MoveSpeed, cfg.World.ImpulseDecay)
	body := &components.AgentBody{Nav: navigator}
	volume := &components.DamageVolume{Object: volObj, Width: agentType.HitboxWidth, Height: agentType.HitboxHeight}
	target := &components.TargetPoint{}
	sensor := &components.Neighborhood{Self: obj, Probe: probe, Scale: scale}

	brain := ai.NewAgent(agentType, cfg.World, route, ai.Deps{
		Name:      name,
		Body:      body,
		Navigator: navigator,
		Volume:    volume,
		Target:    target,
		Neighbors: sensor,
		Rand:      rng,
	})

	components.Agent.SetValue(agent, components.AgentData{
		TypeName: agentType.Name,
		Brain:    brain,
		Nav:      navigator,
		Body:     body,
		Volume:   volume,
		Target:   target,
		Sensor:   sensor,
	})
	components.State.SetValue(agent, components.StateData{
		CurrentState:  brain.State(),
		PreviousState: cfg.StateNone,
	})
	components.Animator.SetValue(agent, components.AnimatorData{
		State: brain.State(),
	})

	slog.Debug("agent spawned", "agent", name, "state", brain.State(), "route", len(route))
	return agent
}

// RemoveAgent takes an agent's collision objects out of the space and
// removes the entity.
func RemoveAgent(ecs *ecs.ECS, entry *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		if obj := components.Object.Get(entry); obj != nil && obj.Object != nil {
			space.Remove(obj.Object)
		}
		agent := components.Agent.Get(entry)
		space.Remove(agent.Volume.Object, agent.Sensor.Probe)
	}
	ecs.World.Remove(entry.Entity())
}
