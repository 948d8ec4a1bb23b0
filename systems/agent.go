package systems

import (
	"log/slog"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/doomerang-ai/ai"
	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/automoto/doomerang-ai/tags"
)

// UpdateAgents ticks every live agent's brain and applies what it reports
// to the State and Animator components. Agents whose brain reports a death
// get a Death component holding their removal fade.
func UpdateAgents(ecs *ecs.ECS) {
	dt := delta(ecs)
	targets := targetPositions(ecs)

	type death struct {
		entry *donburi.Entry
		after float64
	}
	var died []death

	tags.Agent.Each(ecs.World, func(e *donburi.Entry) {
		// Skip if agent is in death sequence
		if e.HasComponent(components.Death) {
			return
		}

		agent := components.Agent.Get(e)
		aimAtNearest(agent, targets)

		effects := agent.Brain.Tick(dt)
		applyEffects(e, agent.Brain, effects, dt)

		if effects.Died {
			died = append(died, death{entry: e, after: effects.RemoveAfter})
		}
	})

	// Archetype changes wait until the query is done.
	for _, d := range died {
		startDeath(d.entry, d.after)
	}
}

// applyEffects mirrors one tick's transitions and cues onto the entity.
func applyEffects(e *donburi.Entry, brain *ai.Agent, effects ai.Effects, dt float64) {
	state := components.State.Get(e)
	state.StateTimer += dt
	for _, t := range effects.Transitions {
		state.PreviousState = t.From
		state.CurrentState = t.To
		state.StateTimer = 0
	}

	anim := components.Animator.Get(e)
	for _, c := range effects.Cues {
		switch c.Name {
		case cfg.CueState:
			anim.State = cfg.StateID(c.Int)
		case cfg.CueSpeed:
			anim.Speed = c.Float
		default:
			anim.Fire(c.Name)
		}
	}
	anim.Attacking = brain.IsAttacking()
}

func startDeath(e *donburi.Entry, after float64) {
	death := components.DeathData{Fade: 1}
	if after > 0 {
		death.Tween = gween.New(1, 0, float32(after), ease.Linear)
	}
	e.AddComponent(components.Death)
	components.Death.SetValue(e, death)

	slog.Debug("agent removal scheduled", "agent", components.Agent.Get(e).Brain.Name(), "after", after)
}

// targetPositions returns the centres of every avatar still standing.
func targetPositions(ecs *ecs.ECS) []gamemath.Vec2 {
	scale := worldScale(ecs)
	var out []gamemath.Vec2
	tags.Target.Each(ecs.World, func(e *donburi.Entry) {
		if components.Health.Get(e).Current <= 0 {
			return
		}
		out = append(out, components.CenterOf(components.Object.Get(e).Object, scale))
	})
	return out
}

// aimAtNearest points the agent's perception at the closest avatar.
func aimAtNearest(agent *components.AgentData, targets []gamemath.Vec2) {
	agent.Target.Present = false
	if len(targets) == 0 {
		return
	}

	pos := agent.Nav.Position()
	best := targets[0]
	for _, t := range targets[1:] {
		if gamemath.Distance(pos, t) < gamemath.Distance(pos, best) {
			best = t
		}
	}
	agent.Target.Pos = best
	agent.Target.Present = true
}
