package components

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-ai/ai"
	"github.com/automoto/doomerang-ai/nav"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/automoto/doomerang-ai/tags"
)

// AgentData links a hostile agent entity to its brain and the collaborators
// the brain drives. Every field is a pointer so the brain keeps valid
// references when the entry changes archetype.
type AgentData struct {
	TypeName string
	Brain    *ai.Agent
	Nav      *nav.GridNavigator
	Body     *AgentBody
	Volume   *DamageVolume
	Target   *TargetPoint
	Sensor   *Neighborhood
}

var Agent = donburi.NewComponentType[AgentData]()

// AgentBody is the agent's pose: the navigator owns the position and the
// body owns the heading.
type AgentBody struct {
	Nav     *nav.GridNavigator
	Heading float64
}

func (b *AgentBody) Position() gamemath.Vec2 { return b.Nav.Position() }
func (b *AgentBody) Facing() float64         { return b.Heading }
func (b *AgentBody) SetFacing(h float64)     { b.Heading = h }

// farAway stands in for the target when nobody is in the arena.
var farAway = gamemath.V(math.MaxFloat32, math.MaxFloat32)

// TargetPoint is what one agent currently perceives as its target.
type TargetPoint struct {
	Pos     gamemath.Vec2
	Present bool
}

func (t *TargetPoint) Position() gamemath.Vec2 {
	if !t.Present {
		return farAway
	}
	return t.Pos
}

// Neighborhood answers repulsion queries from the collision space's cell
// index instead of scanning every agent.
type Neighborhood struct {
	Self   *resolv.Object
	Probe  *resolv.Object
	Scale  float64
	Radius float64 // Last queried radius, in world units
}

// Neighbors returns the centres of live agents within radius, excluding the
// agent itself.
func (n *Neighborhood) Neighbors(radius float64) []gamemath.Vec2 {
	self := CenterOf(n.Self, n.Scale)
	size := 2 * radius * n.Scale
	n.Probe.W, n.Probe.H = size, size
	n.Probe.X = self.X*n.Scale - size/2
	n.Probe.Y = self.Y*n.Scale - size/2
	n.Probe.Update()
	n.Radius = radius

	check := n.Probe.Check(0, 0, tags.ResolvAgent)
	if check == nil {
		return nil
	}

	var out []gamemath.Vec2
	for _, obj := range check.Objects {
		if obj == n.Self {
			continue
		}
		if entry, ok := obj.Data.(*donburi.Entry); ok && entry.Valid() && entry.HasComponent(Death) {
			continue
		}
		c := CenterOf(obj, n.Scale)
		if gamemath.Distance(self, c) <= radius {
			out = append(out, c)
		}
	}
	return out
}

// CenterOf returns the centre of a resolv object in world units.
func CenterOf(obj *resolv.Object, scale float64) gamemath.Vec2 {
	return gamemath.V((obj.X+obj.W/2)/scale, (obj.Y+obj.H/2)/scale)
}

// PlaceCenter moves a resolv object so its centre sits on p (world units).
func PlaceCenter(obj *resolv.Object, p gamemath.Vec2, scale float64) {
	obj.X = p.X*scale - obj.W/2
	obj.Y = p.Y*scale - obj.H/2
	obj.Update()
}
