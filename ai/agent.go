package ai

import (
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/gamemath"
)

// Agent is one hostile NPC. It is advanced by Tick from a single goroutine;
// TakeDamage, Die and HandleContact must be called from that same goroutine.
type Agent struct {
	cfg   config.AgentTypeConfig
	world config.WorldConfig
	deps  Deps

	state  State
	health int
	dead   bool

	attacking      bool
	dealtDamage    bool
	lastAttackTime float64
	swing          swing

	now float64

	route        []gamemath.Vec2
	patrolIndex  int
	lastKnown    gamemath.Vec2
	hasLastKnown bool

	pending Effects
}

// NewAgent creates an agent at full health. It starts in Patrol when route
// has waypoints and in Wander otherwise.
func NewAgent(cfg config.AgentTypeConfig, world config.WorldConfig, route []gamemath.Vec2, deps Deps) *Agent {
	a := &Agent{
		cfg:            cfg,
		world:          world,
		deps:           deps,
		state:          StateWander,
		health:         cfg.MaxHealth,
		lastAttackTime: math.Inf(-1),
		route:          append([]gamemath.Vec2(nil), route...),
	}
	if len(a.route) > 0 {
		a.state = StatePatrol
	}
	return a
}

// Tick advances the agent by dt seconds and returns what happened since the
// previous tick. Dead agents only drain effects raised before they died.
func (a *Agent) Tick(dt float64) Effects {
	if a.dead {
		return a.flush()
	}
	if dt < 0 {
		dt = 0
	}
	a.now += dt

	a.advanceSwing(dt)
	a.react()
	a.dispatch()
	a.orient(dt)
	a.separate()

	a.pending.Cues = append(a.pending.Cues, Cue{
		Name:  config.CueSpeed,
		Float: gamemath.Length(a.deps.Navigator.Velocity()),
	})
	return a.flush()
}

// react applies the perception-driven transitions. An agent in Attack is
// never pre-empted here.
func (a *Agent) react() {
	if a.state == StateAttack {
		return
	}

	if a.targetDetected() {
		if a.health >= a.cfg.MaxHealth/2 {
			a.changeState(StateChase)
		} else {
			a.changeState(StateFlee)
		}
		return
	}

	if a.state == StateChase {
		a.changeState(a.idleState())
	}
}

func (a *Agent) dispatch() {
	switch a.state {
	case StatePatrol:
		a.patrol()
	case StateChase:
		a.chase()
	case StateFlee:
		a.flee()
	case StateWander:
		a.wander()
	case StateAttack:
		a.attack()
	}
}

func (a *Agent) patrol() {
	if len(a.route) == 0 {
		a.changeState(StateWander)
		return
	}

	waypoint := a.route[a.patrolIndex]
	if gamemath.Distance(a.position(), waypoint) < a.world.WaypointArrival {
		a.patrolIndex = (a.patrolIndex + 1) % len(a.route)
		waypoint = a.route[a.patrolIndex]
	}
	a.deps.Navigator.SetDestination(waypoint)
}

func (a *Agent) chase() {
	target := a.deps.Target.Position()
	a.lastKnown, a.hasLastKnown = target, true

	if gamemath.Distance(a.position(), target) <= a.cfg.AttackRange {
		a.changeState(StateAttack)
		return
	}
	a.deps.Navigator.SetDestination(target)
}

func (a *Agent) flee() {
	pos := a.position()
	target := a.deps.Target.Position()

	away, ok := gamemath.Normalize(gamemath.Sub(pos, target))
	if !ok {
		// Standing on the target: back off opposite to where we face.
		away = gamemath.FromHeading(a.deps.Body.Facing() + math.Pi)
	}
	a.deps.Navigator.SetDestination(gamemath.Add(pos, gamemath.Scale(away, a.cfg.FleeDistance)))

	if gamemath.Distance(pos, target) > a.cfg.DetectionRange {
		a.changeState(StateWander)
	}
}

func (a *Agent) wander() {
	if len(a.route) > 0 {
		a.changeState(StatePatrol)
		return
	}
	if a.deps.Navigator.RemainingDistance() >= a.world.WaypointArrival {
		return
	}

	center := a.position()
	if a.hasLastKnown {
		center = a.lastKnown
	}

	// Uniform point in the disc around center.
	r := a.cfg.WanderRadius * math.Sqrt(a.random())
	theta := 2 * math.Pi * a.random()
	candidate := gamemath.Add(center, gamemath.Scale(gamemath.FromHeading(theta), r))

	if p, ok := a.deps.Navigator.SampleWalkable(candidate, a.cfg.WanderRadius); ok {
		a.deps.Navigator.SetDestination(p)
	}
}

func (a *Agent) attack() {
	if a.attacking {
		// The swing owns the state until it exits.
		return
	}
	if gamemath.Distance(a.position(), a.deps.Target.Position()) > a.cfg.AttackRange {
		a.changeState(StateChase)
		return
	}
	if a.canAttack() {
		a.startSwing()
	}
}

// orient applies the facing policy after dispatch.
func (a *Agent) orient(dt float64) {
	switch a.state {
	case StateChase, StateAttack:
		if a.swing.phase == swingDamageOpen {
			return
		}
		FaceToward(a.deps.Body, a.deps.Target.Position(), a.cfg.RotationSpeed, dt)
	default:
		v := a.deps.Navigator.Velocity()
		if gamemath.Length(v) > a.world.MovementNoise {
			FaceAlong(a.deps.Body, v, a.cfg.RotationSpeed, dt)
		}
	}
}

func (a *Agent) canAttack() bool {
	return a.now >= a.lastAttackTime+a.cfg.AttackCooldown
}

func (a *Agent) targetDetected() bool {
	return Detect(a.position(), a.deps.Target.Position(), a.cfg.DetectionRange)
}

// idleState is where an agent goes when it has nothing to pursue.
func (a *Agent) idleState() State {
	if len(a.route) > 0 {
		return StatePatrol
	}
	return StateWander
}

func (a *Agent) changeState(to State) {
	if a.state == to {
		return
	}
	from := a.state
	a.state = to
	a.pending.Transitions = append(a.pending.Transitions, Transition{From: from, To: to})
	a.pending.Cues = append(a.pending.Cues, Cue{Name: config.CueState, Int: int(to)})

	if IsDebugEnabled() {
		slog.Debug("agent state change", "agent", a.deps.Name, "from", from, "to", to, "health", a.health)
	}
}

func (a *Agent) cue(name string) {
	a.pending.Cues = append(a.pending.Cues, Cue{Name: name})
}

func (a *Agent) flush() Effects {
	e := a.pending
	a.pending = Effects{}
	return e
}

func (a *Agent) position() gamemath.Vec2 {
	return a.deps.Body.Position()
}

func (a *Agent) random() float64 {
	if a.deps.Rand != nil {
		return a.deps.Rand.Float64()
	}
	return rand.Float64()
}

func (a *Agent) Name() string                   { return a.deps.Name }
func (a *Agent) Config() config.AgentTypeConfig { return a.cfg }
func (a *Agent) State() State                   { return a.state }
func (a *Agent) Health() int                    { return a.health }
func (a *Agent) MaxHealth() int                 { return a.cfg.MaxHealth }
func (a *Agent) IsDead() bool                   { return a.dead }
func (a *Agent) IsAttacking() bool              { return a.attacking }
func (a *Agent) HasDealtDamage() bool           { return a.dealtDamage }
func (a *Agent) PatrolIndex() int               { return a.patrolIndex }
func (a *Agent) Now() float64                   { return a.now }

// DisplayHealth is Health clamped at zero.
func (a *Agent) DisplayHealth() int {
	return max(a.health, 0)
}

// LastKnownTarget returns where the target was last seen while chasing.
func (a *Agent) LastKnownTarget() (gamemath.Vec2, bool) {
	return a.lastKnown, a.hasLastKnown
}
