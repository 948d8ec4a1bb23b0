package ai

import (
	"log/slog"

	"github.com/automoto/doomerang-ai/config"
)

// TakeDamage subtracts amount from health. Negative amounts count as zero and
// damage to a dead agent is ignored. Dropping below half health forces Flee
// at once, aborting any swing in flight.
func (a *Agent) TakeDamage(amount int) {
	if a.dead {
		return
	}
	amount = max(amount, 0)
	a.health -= amount

	if a.health <= 0 {
		a.Die()
		return
	}
	a.cue(config.CueHurt)

	if a.health < a.cfg.MaxHealth/2 && a.state != StateFlee {
		a.cancelSwing(true)
		a.changeState(StateFlee)
	}
}

// Die makes the agent inert and schedules its removal. Calling it again is a
// no-op.
func (a *Agent) Die() {
	if a.dead {
		return
	}
	a.dead = true
	a.health = min(a.health, 0)

	a.cancelSwing(false)
	a.setVolume(false)
	a.deps.Navigator.SetEnabled(false)

	a.cue(config.CueDie)
	a.pending.Died = true
	a.pending.RemoveAfter = a.world.DeathGrace

	slog.Info("agent died", "agent", a.deps.Name, "state", a.state)
}
