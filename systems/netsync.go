package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/doomerang-ai/components"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/automoto/doomerang-ai/shared/netcomponents"
	"github.com/automoto/doomerang-ai/tags"
)

// UpdateNetSync copies simulation state into the network components that
// esync ships to clients. Entities without network components are skipped,
// so the system is a no-op in headless runs.
func UpdateNetSync(ecs *ecs.ECS) {
	scale := worldScale(ecs)
	alive, targets := 0, 0

	tags.Agent.Each(ecs.World, func(e *donburi.Entry) {
		agent := components.Agent.Get(e)
		if !agent.Brain.IsDead() {
			alive++
		}
		if !e.HasComponent(netcomponents.NetAgent) {
			return
		}

		anim := components.Animator.Get(e)
		net := netcomponents.NetAgent.Get(e)
		pos := agent.Nav.Position()

		net.X, net.Y = pos.X, pos.Y
		net.Facing = agent.Body.Heading
		net.TypeName = agent.TypeName
		net.State = anim.State
		net.Health = agent.Brain.DisplayHealth()
		net.MaxHealth = agent.Brain.MaxHealth()
		net.Attacking = anim.Attacking
		net.Dead = agent.Brain.IsDead()
		net.Speed = anim.Speed
		net.Trigger = anim.Trigger
		net.TriggerSeq = anim.TriggerSeq
		net.Fade = 1
		if e.HasComponent(components.Death) {
			net.Fade = components.Death.Get(e).Fade
		}
	})

	tags.Target.Each(ecs.World, func(e *donburi.Entry) {
		targets++
		if !e.HasComponent(netcomponents.NetPosition) {
			return
		}
		target := components.Target.Get(e)
		center := components.CenterOf(components.Object.Get(e).Object, scale)

		pos := netcomponents.NetPosition.Get(e)
		pos.X, pos.Y = center.X, center.Y
		pos.Facing = gamemath.Heading(target.Facing)

		if e.HasComponent(netcomponents.NetTarget) {
			hp := components.Health.Get(e)
			net := netcomponents.NetTarget.Get(e)
			net.Name = target.Name
			net.Health = hp.Current
			net.MaxHealth = hp.Max
			net.Attacking = target.AttackTimer > 0
			net.LastSequence = target.LastSequence
		}
	})

	if entry, ok := netcomponents.NetArena.First(ecs.World); ok {
		arena := netcomponents.NetArena.Get(entry)
		arena.AgentsAlive = alive
		arena.Targets = targets
		if clock, ok := components.Clock.First(ecs.World); ok {
			arena.Elapsed = components.Clock.Get(clock).Elapsed
		}
	}
}
