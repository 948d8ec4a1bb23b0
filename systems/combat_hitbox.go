package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/doomerang-ai/components"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/automoto/doomerang-ai/tags"
)

// UpdateDamageVolumes keeps every live damage volume in front of its owner
// and reports volume contacts with avatars to the owner's brain. The brain
// decides whether a contact deals damage.
func UpdateDamageVolumes(ecs *ecs.ECS) {
	scale := worldScale(ecs)

	tags.Agent.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		agent := components.Agent.Get(e)
		volume := agent.Volume
		if !volume.On {
			return
		}

		updateVolumePosition(agent, scale)
		checkVolumeContacts(agent, volume.Object)
	})
}

// updateVolumePosition centres the volume ahead of the agent along its
// heading, just clear of the agent's own body.
func updateVolumePosition(agent *components.AgentData, scale float64) {
	cfg := agent.Brain.Config()
	reach := cfg.CollisionWidth/2 + agent.Volume.Width/2
	center := gamemath.Add(agent.Nav.Position(), gamemath.Scale(gamemath.FromHeading(agent.Body.Heading), reach))
	components.PlaceCenter(agent.Volume.Object, center, scale)
}

func checkVolumeContacts(agent *components.AgentData, volumeObject *resolv.Object) {
	// Efficient collision check using resolv space
	check := volumeObject.Check(0, 0, tags.ResolvTarget)
	if check == nil {
		return
	}
	for _, obj := range check.Objects {
		targetEntry, ok := obj.Data.(*donburi.Entry)
		if !ok || !targetEntry.Valid() {
			continue
		}
		if !overlaps(volumeObject, obj) {
			continue
		}
		agent.Brain.HandleContact(damageReceiver{entry: targetEntry, source: agent.Brain.Name()})
	}
}

// overlaps confirms a broadphase hit with an exact rectangle test.
func overlaps(a, b *resolv.Object) bool {
	return gamemath.RectsOverlap(a.X, a.Y, a.W, a.H, b.X, b.Y, b.W, b.H)
}
