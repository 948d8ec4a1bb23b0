package factory

import (
	"github.com/automoto/doomerang-ai/archetypes"
	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Seconds for the avatar to reach or lose full speed.
const targetResponse = 0.125

// CreateTarget spawns an avatar centred on pos (world units).
func CreateTarget(ecs *ecs.ECS, name string, pos gamemath.Vec2) *donburi.Entry {
	scale := components.Level.Get(components.Level.MustFirst(ecs.World)).Scale
	target := archetypes.Target.Spawn(ecs)

	w, h := cfg.Target.CollisionWidth*scale, cfg.Target.CollisionHeight*scale
	obj := resolv.NewObject(0, 0, w, h, tags.ResolvTarget)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = target
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	components.PlaceCenter(obj, pos, scale)
	components.Object.SetValue(target, components.ObjectData{Object: obj})

	components.Target.SetValue(target, components.TargetData{
		Name:   name,
		Facing: gamemath.V(1, 0),
		Spawn:  pos,
	})
	components.Health.SetValue(target, components.HealthData{
		Current: cfg.Target.Health,
		Max:     cfg.Target.Health,
	})
	components.Physics.SetValue(target, components.PhysicsData{
		Accel:    cfg.Target.MoveSpeed / targetResponse,
		Friction: cfg.Target.MoveSpeed / targetResponse,
		MaxSpeed: cfg.Target.MoveSpeed,
	})

	return target
}

// RemoveTarget takes an avatar out of the space and the world.
func RemoveTarget(ecs *ecs.ECS, entry *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		if obj := components.Object.Get(entry); obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(entry.Entity())
}
