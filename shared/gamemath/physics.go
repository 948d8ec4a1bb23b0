package gamemath

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// DecayVector shrinks v toward zero by amount without flipping its direction.
func DecayVector(v Vec2, amount float64) Vec2 {
	l := Length(v)
	if l <= amount || l == 0 {
		return Vec2{}
	}
	return Scale(v, (l-amount)/l)
}

// ClampLength limits the magnitude of v to max.
func ClampLength(v Vec2, max float64) Vec2 {
	l := Length(v)
	if l <= max || l == 0 {
		return v
	}
	return Scale(v, max/l)
}
