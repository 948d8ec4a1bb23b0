package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/automoto/doomerang-ai/tags"
)

// UpdateTargets moves every avatar from its held input, resolves it against
// walls and resolves its melee strikes against agents.
func UpdateTargets(ecs *ecs.ECS) {
	dt := delta(ecs)
	scale := worldScale(ecs)

	tags.Target.Each(ecs.World, func(e *donburi.Entry) {
		target := components.Target.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		dir := inputDirection(target)
		accelerate(physics, dir, dt)
		if n, ok := gamemath.Normalize(dir); ok {
			target.Facing = n
		}
		moveAgainstWalls(obj, physics.SpeedX*dt*scale, physics.SpeedY*dt*scale, physics)

		if target.AttackTimer > 0 {
			target.AttackTimer -= dt
			if target.AttackTimer < 0 {
				target.AttackTimer = 0
			}
		}
		if target.Input[cfg.ActionAttack] && target.AttackTimer == 0 {
			strike(ecs, target, obj, scale)
			target.AttackTimer = cfg.Target.AttackCooldown
		}
	})
}

func inputDirection(t *components.TargetData) gamemath.Vec2 {
	var dir gamemath.Vec2
	if t.Input[cfg.ActionMoveLeft] {
		dir.X--
	}
	if t.Input[cfg.ActionMoveRight] {
		dir.X++
	}
	if t.Input[cfg.ActionMoveUp] {
		dir.Y--
	}
	if t.Input[cfg.ActionMoveDown] {
		dir.Y++
	}
	return dir
}

// accelerate applies input acceleration on held axes and friction on idle ones.
func accelerate(p *components.PhysicsData, dir gamemath.Vec2, dt float64) {
	if dir.X != 0 {
		p.SpeedX += dir.X * p.Accel * dt
	} else {
		p.SpeedX = gamemath.ApplyFriction(p.SpeedX, p.Friction*dt)
	}
	if dir.Y != 0 {
		p.SpeedY += dir.Y * p.Accel * dt
	} else {
		p.SpeedY = gamemath.ApplyFriction(p.SpeedY, p.Friction*dt)
	}
	p.SpeedX = gamemath.ClampSpeed(p.SpeedX, p.MaxSpeed)
	p.SpeedY = gamemath.ClampSpeed(p.SpeedY, p.MaxSpeed)
}

// moveAgainstWalls moves obj by (dx, dy) pixels one axis at a time, stopping
// flush against the first solid on each axis.
func moveAgainstWalls(obj *resolv.Object, dx, dy float64, p *components.PhysicsData) {
	if dx != 0 {
		if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
				p.SpeedX = 0
			}
		}
		obj.X += dx
	}
	if dy != 0 {
		if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dy = check.ContactWithObject(solids[0]).Y()
				p.SpeedY = 0
			}
		}
		obj.Y += dy
	}
	obj.Update()
}

// strike damages every live agent within reach in front of the avatar.
func strike(ecs *ecs.ECS, target *components.TargetData, obj *resolv.Object, scale float64) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	reach := cfg.Target.AttackReach
	center := components.CenterOf(obj, scale)

	probe := resolv.NewObject(0, 0, 2*reach*scale, 2*reach*scale)
	space.Add(probe)
	defer space.Remove(probe)
	components.PlaceCenter(probe, center, scale)

	check := probe.Check(0, 0, tags.ResolvAgent)
	if check == nil {
		return
	}

	for _, other := range check.Objects {
		agentEntry, ok := other.Data.(*donburi.Entry)
		if !ok || !agentEntry.Valid() || agentEntry.HasComponent(components.Death) {
			continue
		}
		offset := gamemath.Sub(components.CenterOf(other, scale), center)
		if gamemath.Length(offset) > reach {
			continue
		}
		if offset.X*target.Facing.X+offset.Y*target.Facing.Y < 0 {
			continue
		}
		queueDamage(agentEntry, cfg.Target.AttackDamage, target.Name)
	}
}
