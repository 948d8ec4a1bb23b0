package ai

import (
	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/gamemath"
)

type fakeBody struct {
	pos    gamemath.Vec2
	facing float64
}

func (b *fakeBody) Position() gamemath.Vec2 { return b.pos }
func (b *fakeBody) Facing() float64         { return b.facing }
func (b *fakeBody) SetFacing(h float64)     { b.facing = h }

var _ Navigator = (*fakeNav)(nil)

// fakeNav records commands without moving anything; tests move the body.
type fakeNav struct {
	body     *fakeBody
	dest     gamemath.Vec2
	hasDest  bool
	sets     int
	velocity gamemath.Vec2
	pushes   []gamemath.Vec2
	enabled  bool
	stopped  bool
	noSample bool
}

func (n *fakeNav) SetDestination(p gamemath.Vec2) {
	n.dest, n.hasDest = p, true
	n.sets++
}
func (n *fakeNav) RemainingDistance() float64 {
	if !n.hasDest {
		return 0
	}
	return gamemath.Distance(n.body.pos, n.dest)
}
func (n *fakeNav) Velocity() gamemath.Vec2 { return n.velocity }
func (n *fakeNav) AddVelocity(dv gamemath.Vec2) {
	n.pushes = append(n.pushes, dv)
	n.velocity = gamemath.Add(n.velocity, dv)
}
func (n *fakeNav) SetEnabled(e bool) { n.enabled = e }
func (n *fakeNav) SetStopped(s bool) { n.stopped = s }
func (n *fakeNav) SampleWalkable(p gamemath.Vec2, _ float64) (gamemath.Vec2, bool) {
	if n.noSample {
		return gamemath.Vec2{}, false
	}
	return p, true
}

type fakeVolume struct {
	enabled  bool
	everOn   bool
	switches int
}

func (v *fakeVolume) Enabled() bool { return v.enabled }
func (v *fakeVolume) SetEnabled(e bool) {
	if e != v.enabled {
		v.switches++
	}
	v.enabled = e
	if e {
		v.everOn = true
	}
}

type fakeTarget struct {
	pos gamemath.Vec2
}

func (t *fakeTarget) Position() gamemath.Vec2 { return t.pos }

type fakeVictim struct {
	health int
	hits   int
}

func (v *fakeVictim) TakeDamage(amount int) {
	v.health -= amount
	v.hits++
}

type fakeNeighbors []gamemath.Vec2

func (f fakeNeighbors) Neighbors(float64) []gamemath.Vec2 { return f }

// fixedRand returns the same value forever.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

type rig struct {
	body   *fakeBody
	nav    *fakeNav
	vol    *fakeVolume
	target *fakeTarget
	agent  *Agent
}

// newRig builds a Grunt at the origin with the target parked far away.
func newRig(route ...gamemath.Vec2) *rig {
	body := &fakeBody{}
	r := &rig{
		body:   body,
		nav:    &fakeNav{body: body, enabled: true},
		vol:    &fakeVolume{},
		target: &fakeTarget{pos: gamemath.V(1000, 1000)},
	}
	r.agent = NewAgent(config.Agent.Types["Grunt"], config.World, route, Deps{
		Name:      "grunt-1",
		Body:      r.body,
		Navigator: r.nav,
		Volume:    r.vol,
		Target:    r.target,
		Rand:      fixedRand(0.5),
	})
	return r
}

// tickN advances the agent n times and returns the merged effects.
func (r *rig) tickN(n int, dt float64) Effects {
	var all Effects
	for range n {
		e := r.agent.Tick(dt)
		all.Transitions = append(all.Transitions, e.Transitions...)
		all.Cues = append(all.Cues, e.Cues...)
		all.Died = all.Died || e.Died
		if e.Died {
			all.RemoveAfter = e.RemoveAfter
		}
	}
	return all
}
