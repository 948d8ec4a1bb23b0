package tags

import "github.com/yohamta/donburi"

var (
	Agent  = donburi.NewTag().SetName("Agent")
	Target = donburi.NewTag().SetName("Target")
	Wall   = donburi.NewTag().SetName("Wall")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvAgent  = "Agent"
	ResolvTarget = "Target"
	ResolvHitbox = "hitbox"
)
