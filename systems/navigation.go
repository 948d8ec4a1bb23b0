package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/doomerang-ai/components"
	"github.com/automoto/doomerang-ai/tags"
)

// UpdateNavigation steps every navigator and moves the agent's collision
// body onto the navigator's position.
func UpdateNavigation(ecs *ecs.ECS) {
	dt := delta(ecs)
	scale := worldScale(ecs)

	tags.Agent.Each(ecs.World, func(e *donburi.Entry) {
		agent := components.Agent.Get(e)
		agent.Nav.Step(dt)
		components.PlaceCenter(components.Object.Get(e).Object, agent.Nav.Position(), scale)
	})
}

// delta returns the duration of the current step in seconds.
func delta(ecs *ecs.ECS) float64 {
	if entry, ok := components.Clock.First(ecs.World); ok {
		return components.Clock.Get(entry).Delta
	}
	return 0
}

// worldScale returns level pixels per world unit.
func worldScale(ecs *ecs.ECS) float64 {
	if entry, ok := components.Level.First(ecs.World); ok {
		return components.Level.Get(entry).Scale
	}
	return 1
}
