package ai

import (
	"math"

	"github.com/automoto/doomerang-ai/shared/gamemath"
)

// turnFraction converts a turn rate into the share of the remaining angle
// covered in dt. Two ticks of dt/2 turn exactly as far as one tick of dt.
func turnFraction(rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-rate*dt)
}

// FaceToward turns body toward point along the shorter arc.
func FaceToward(body Body, point gamemath.Vec2, rate, dt float64) {
	dir, ok := gamemath.Normalize(gamemath.Sub(point, body.Position()))
	if !ok {
		return
	}
	FaceAlong(body, dir, rate, dt)
}

// FaceAlong turns body toward direction dir. A zero dir leaves facing alone.
func FaceAlong(body Body, dir gamemath.Vec2, rate, dt float64) {
	if gamemath.Length(dir) == 0 {
		return
	}
	heading := gamemath.LerpAngle(body.Facing(), gamemath.Heading(dir), turnFraction(rate, dt))
	body.SetFacing(heading)
}
