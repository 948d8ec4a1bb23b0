package ai

import "github.com/automoto/doomerang-ai/shared/gamemath"

// Detect reports whether a target at targetPos is perceived from agentPos,
// that is whether it lies within rangeDist (inclusive).
func Detect(agentPos, targetPos gamemath.Vec2, rangeDist float64) bool {
	return gamemath.Distance(agentPos, targetPos) <= rangeDist
}
