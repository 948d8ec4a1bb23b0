package systems

import (
	"log/slog"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/doomerang-ai/components"
	"github.com/automoto/doomerang-ai/systems/factory"
)

// UpdateDeaths fades out dead agents and removes them once their grace
// period is over.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := delta(ecs)

	var expired []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if death.Tween == nil {
			expired = append(expired, e)
			return
		}

		fade, finished := death.Tween.Update(float32(dt))
		death.Fade = float64(fade)
		if finished {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		if e.HasComponent(components.Agent) {
			slog.Debug("agent removed", "agent", components.Agent.Get(e).Brain.Name())
			factory.RemoveAgent(ecs, e)
			continue
		}
		ecs.World.Remove(e.Entity())
	}
}
