package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec2 is the point and direction type shared by the agent core, the
// navigator and the ECS layer.
type Vec2 = dmath.Vec2

// V is shorthand for building a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func Add(a, b Vec2) Vec2 { return a.Add(b) }

func Sub(a, b Vec2) Vec2 { return a.Sub(b) }

func Scale(a Vec2, s float64) Vec2 { return a.MulScalar(s) }

func Length(a Vec2) float64 { return a.Magnitude() }

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec2) float64 { return a.Distance(b) }

// Normalize returns the unit vector along a, and false when a is too short
// to have a direction.
func Normalize(a Vec2) (Vec2, bool) {
	l := Length(a)
	if l < 1e-9 {
		return Vec2{}, false
	}
	return a.DivScalar(l), true
}

// Heading returns the angle of a in radians, measured from +X toward +Y.
func Heading(a Vec2) float64 {
	return math.Atan2(a.Y, a.X)
}

// FromHeading returns the unit vector pointing along angle.
func FromHeading(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// WrapAngle maps an angle into (-Pi, Pi].
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// LerpAngle moves from toward to along the shorter arc by fraction t,
// clamped to [0, 1]. The result is wrapped into (-Pi, Pi].
func LerpAngle(from, to, t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	delta := WrapAngle(to - from)
	return WrapAngle(from + delta*t)
}

// RectsOverlap reports whether two axis-aligned rectangles intersect.
// Touching edges do not count.
func RectsOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}
