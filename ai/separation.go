package ai

import "github.com/automoto/doomerang-ai/shared/gamemath"

// separate pushes the navigator's velocity away from every neighbour within
// the separation radius. It is a crowding heuristic, not collision response.
// Neighbours standing exactly on the agent give no direction and are skipped.
func (a *Agent) separate() {
	if a.deps.Neighbors == nil || a.world.SeparationPush == 0 {
		return
	}

	pos := a.position()
	for _, n := range a.deps.Neighbors.Neighbors(a.world.SeparationRadius) {
		away, ok := gamemath.Normalize(gamemath.Sub(pos, n))
		if !ok {
			continue
		}
		a.deps.Navigator.AddVelocity(gamemath.Scale(away, a.world.SeparationPush))
	}
}
