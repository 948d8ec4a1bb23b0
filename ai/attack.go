package ai

import (
	"log/slog"

	"github.com/automoto/doomerang-ai/config"
)

type swingPhase int

const (
	swingIdle swingPhase = iota
	swingWindUp
	swingDamageOpen
)

func (p swingPhase) String() string {
	switch p {
	case swingWindUp:
		return "wind-up"
	case swingDamageOpen:
		return "damage-open"
	default:
		return "idle"
	}
}

// phaseEpsilon absorbs float drift when summing tick durations.
const phaseEpsilon = 1e-9

// swing is the in-flight attack sequence. elapsed is the time spent in the
// current phase; overshoot carries into the next phase.
type swing struct {
	phase   swingPhase
	elapsed float64
}

// startSwing roots the agent and begins the wind-up.
func (a *Agent) startSwing() {
	a.attacking = true
	a.dealtDamage = false
	a.lastAttackTime = a.now
	a.swing = swing{phase: swingWindUp}
	a.deps.Navigator.SetStopped(true)
	a.cue(config.CueAttackStart)
	a.logSwing()
}

// advanceSwing moves the in-flight swing forward by dt. Called once per tick,
// before the state machine runs, so the tick that starts a swing does not
// also advance it.
func (a *Agent) advanceSwing(dt float64) {
	if a.swing.phase == swingIdle {
		return
	}
	a.swing.elapsed += dt

	for {
		switch a.swing.phase {
		case swingWindUp:
			if a.swing.elapsed+phaseEpsilon < a.cfg.AttackActivationDelay {
				return
			}
			a.swing.elapsed -= a.cfg.AttackActivationDelay
			a.swing.phase = swingDamageOpen
			a.setVolume(true)
			a.logSwing()
		case swingDamageOpen:
			if a.swing.elapsed+phaseEpsilon < a.cfg.HitboxActiveDuration {
				return
			}
			a.finishSwing()
			return
		default:
			return
		}
	}
}

// finishSwing closes the damage window, hands movement back and picks the
// follow-up state.
func (a *Agent) finishSwing() {
	a.setVolume(false)
	a.deps.Navigator.SetStopped(false)
	a.attacking = false
	a.swing = swing{}
	a.logSwing()

	if a.targetDetected() {
		a.changeState(StateChase)
	} else {
		a.changeState(a.idleState())
	}
}

// cancelSwing aborts an in-flight swing. Movement is only handed back when
// resume is set; death keeps the navigator for itself.
func (a *Agent) cancelSwing(resume bool) {
	if !a.attacking {
		return
	}
	a.setVolume(false)
	a.attacking = false
	a.swing = swing{}
	if resume {
		a.deps.Navigator.SetStopped(false)
	}
	a.logSwing()
}

// HandleContact is called by the collision layer for every overlap between
// the agent's damage volume and another entity. The first victim touched
// while the damage window is open takes AttackDamage; everything else is a
// no-op. It reports whether damage was applied.
func (a *Agent) HandleContact(other any) bool {
	if a.dead || !a.attacking || a.dealtDamage || a.swing.phase != swingDamageOpen {
		return false
	}
	if a.deps.Volume != nil && !a.deps.Volume.Enabled() {
		return false
	}
	victim, ok := other.(Victim)
	if !ok {
		return false
	}

	victim.TakeDamage(a.cfg.AttackDamage)
	a.dealtDamage = true
	a.cue(config.CueHit)

	if IsDebugEnabled() {
		slog.Debug("agent hit target", "agent", a.deps.Name, "damage", a.cfg.AttackDamage)
	}
	return true
}

// DamageWindowOpen reports whether the damage volume should currently be live.
func (a *Agent) DamageWindowOpen() bool {
	return a.swing.phase == swingDamageOpen
}

func (a *Agent) setVolume(enabled bool) {
	if a.deps.Volume != nil {
		a.deps.Volume.SetEnabled(enabled)
	}
}

func (a *Agent) logSwing() {
	if IsDebugEnabled() {
		slog.Debug("agent swing", "agent", a.deps.Name, "phase", a.swing.phase, "t", a.now)
	}
}
