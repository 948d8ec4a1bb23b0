package systems

import (
	"log/slog"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/doomerang-ai/ai"
	"github.com/automoto/doomerang-ai/components"
)

// damageReceiver lets a brain damage an entity through the DamageEvent
// pipeline instead of touching its health directly.
type damageReceiver struct {
	entry  *donburi.Entry
	source string
}

var _ ai.Victim = damageReceiver{}

func (d damageReceiver) TakeDamage(amount int) {
	queueDamage(d.entry, amount, d.source)
}

// queueDamage adds damage to the entity's pending DamageEvent.
func queueDamage(e *donburi.Entry, amount int, source string) {
	if amount <= 0 || !e.Valid() {
		return
	}
	if e.HasComponent(components.DamageEvent) {
		components.DamageEvent.Get(e).Amount += amount
		return
	}
	donburi.Add(e, components.DamageEvent, &components.DamageEventData{Amount: amount, Source: source})
}

// UpdateCombat applies queued damage events. Agents take damage through
// their brain; avatars lose Health and respawn when it runs out.
func UpdateCombat(ecs *ecs.ECS) {
	for e := range components.DamageEvent.Iter(ecs.World) {
		dmg := components.DamageEvent.Get(e)

		switch {
		case e.HasComponent(components.Agent):
			brain := components.Agent.Get(e).Brain
			brain.TakeDamage(dmg.Amount)
			if ai.IsDebugEnabled() {
				slog.Debug("agent damaged", "agent", brain.Name(), "by", dmg.Source, "amount", dmg.Amount, "health", brain.Health())
			}
		case e.HasComponent(components.Health):
			hp := components.Health.Get(e)
			hp.Current -= dmg.Amount
			if ai.IsDebugEnabled() {
				slog.Debug("target damaged", "by", dmg.Source, "amount", dmg.Amount, "health", hp.Current)
			}
		}

		// Remove the damage event component so it is processed only once.
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}

	// Clamp health ranges and respawn downed avatars
	for e := range components.Health.Iter(ecs.World) {
		hp := components.Health.Get(e)
		if hp.Current > hp.Max {
			hp.Current = hp.Max
		}
		if hp.Current <= 0 && e.HasComponent(components.Target) {
			respawnTarget(ecs, e)
		}
	}
}

// respawnTarget puts a downed avatar back on its spawn at full health.
func respawnTarget(ecs *ecs.ECS, e *donburi.Entry) {
	target := components.Target.Get(e)
	hp := components.Health.Get(e)
	physics := components.Physics.Get(e)

	hp.Current = hp.Max
	physics.SpeedX, physics.SpeedY = 0, 0
	target.AttackTimer = 0
	components.PlaceCenter(components.Object.Get(e).Object, target.Spawn, worldScale(ecs))

	slog.Info("target downed, respawning", "target", target.Name)
}
