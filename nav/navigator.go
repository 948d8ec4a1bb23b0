package nav

import (
	"math"

	"github.com/automoto/doomerang-ai/shared/gamemath"
)

// GridNavigator walks an agent along grid paths at constant speed. It owns
// the agent's position; the ECS copies it onto the physics body after Step.
type GridNavigator struct {
	grid  *Grid
	pos   gamemath.Vec2
	speed float64
	decay float64

	dest    gamemath.Vec2
	hasDest bool
	path    []gamemath.Vec2

	steering gamemath.Vec2
	impulse  gamemath.Vec2

	enabled bool
	stopped bool
}

// NewGridNavigator places a navigator at pos. speed is in units per second
// and impulseDecay is how fast pushes from AddVelocity fade, in units/s^2.
func NewGridNavigator(grid *Grid, pos gamemath.Vec2, speed, impulseDecay float64) *GridNavigator {
	return &GridNavigator{
		grid:    grid,
		pos:     pos,
		speed:   speed,
		decay:   impulseDecay,
		enabled: true,
	}
}

// SetDestination re-plans when the destination moves to another cell. Moves
// inside the same cell only retarget the last waypoint.
func (n *GridNavigator) SetDestination(p gamemath.Vec2) {
	if n.hasDest && len(n.path) > 0 {
		if p == n.dest {
			return
		}
		ox, oy := n.grid.Cell(n.dest)
		nx, ny := n.grid.Cell(p)
		if ox == nx && oy == ny && n.grid.Walkable(p) {
			n.dest = p
			n.path[len(n.path)-1] = p
			return
		}
	}

	n.dest, n.hasDest = p, true
	path, ok := n.grid.FindPath(n.pos, p)
	if !ok {
		n.path = nil
		return
	}
	n.path = path
}

func (n *GridNavigator) Destination() gamemath.Vec2 { return n.dest }

// RemainingDistance is the length of the path still to walk. It is zero when
// there is no destination or no route to it.
func (n *GridNavigator) RemainingDistance() float64 {
	total := 0.0
	prev := n.pos
	for _, p := range n.path {
		total += gamemath.Distance(prev, p)
		prev = p
	}
	return total
}

// Velocity is path steering plus any pending push.
func (n *GridNavigator) Velocity() gamemath.Vec2 {
	return gamemath.Add(n.steering, n.impulse)
}

// AddVelocity adds a push that fades out over the following steps.
func (n *GridNavigator) AddVelocity(dv gamemath.Vec2) {
	n.impulse = gamemath.ClampLength(gamemath.Add(n.impulse, dv), n.speed*2)
}

func (n *GridNavigator) Enabled() bool { return n.enabled }

// SetEnabled turns the navigator on or off. A disabled navigator drops its
// path and never moves again until re-enabled.
func (n *GridNavigator) SetEnabled(enabled bool) {
	n.enabled = enabled
	if !enabled {
		n.path = nil
		n.hasDest = false
		n.steering = gamemath.Vec2{}
		n.impulse = gamemath.Vec2{}
	}
}

func (n *GridNavigator) Stopped() bool { return n.stopped }

// SetStopped pauses path following without forgetting the path.
func (n *GridNavigator) SetStopped(stopped bool) {
	n.stopped = stopped
	if stopped {
		n.steering = gamemath.Vec2{}
	}
}

func (n *GridNavigator) SampleWalkable(p gamemath.Vec2, radius float64) (gamemath.Vec2, bool) {
	return n.grid.NearestWalkable(p, radius)
}

func (n *GridNavigator) Position() gamemath.Vec2 { return n.pos }

// Warp moves the navigator without walking and drops its path.
func (n *GridNavigator) Warp(p gamemath.Vec2) {
	n.pos = p
	n.path = nil
	n.hasDest = false
}

// Step advances the navigator by dt seconds.
func (n *GridNavigator) Step(dt float64) {
	if !n.enabled || dt <= 0 {
		return
	}

	n.steering = gamemath.Vec2{}
	if !n.stopped {
		n.follow(dt)
	}

	if gamemath.Length(n.impulse) > 0 {
		n.push(gamemath.Scale(n.impulse, dt))
		n.impulse = gamemath.DecayVector(n.impulse, n.decay*dt)
	}
}

// push moves by delta in half-cell increments and stops short of the first
// blocked cell, so pushes never carry the agent into or across geometry.
func (n *GridNavigator) push(delta gamemath.Vec2) {
	steps := int(math.Ceil(gamemath.Length(delta) / (n.grid.CellSize / 2)))
	if steps == 0 {
		return
	}
	inc := gamemath.Scale(delta, 1/float64(steps))
	for range steps {
		next := gamemath.Add(n.pos, inc)
		if !n.grid.Walkable(next) {
			return
		}
		n.pos = next
	}
}

// follow consumes waypoints until the step budget runs out.
func (n *GridNavigator) follow(dt float64) {
	budget := n.speed * dt
	for len(n.path) > 0 && budget > 0 {
		next := n.path[0]
		d := gamemath.Distance(n.pos, next)
		dir, ok := gamemath.Normalize(gamemath.Sub(next, n.pos))
		if ok {
			n.steering = gamemath.Scale(dir, n.speed)
		}
		if d <= budget {
			n.pos = next
			n.path = n.path[1:]
			budget -= d
			continue
		}
		n.pos = gamemath.Add(n.pos, gamemath.Scale(dir, budget))
		budget = 0
	}
}
