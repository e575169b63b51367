package sim

import "math"

// Angle is the common representation of angle, supporting multiple units.
// It is kept within [-π, π].
type Angle float64

// AngleFromDegrees creates Angle from degrees.
func AngleFromDegrees(d float64) Angle {
	return Angle(normalizeRadians(d * math.Pi / 180.0))
}

// AngleFromRadians creates Angle from radians.
func AngleFromRadians(r float64) Angle {
	return Angle(normalizeRadians(r))
}

// AddRadians adds radians to current angle.
func (a Angle) AddRadians(r float64) Angle {
	return Angle(normalizeRadians(float64(a) + r))
}

// Radians gets angle in radians.
func (a Angle) Radians() float64 {
	return float64(a)
}

// Degrees gets angle in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) * 180 / math.Pi
}

// DiffTo returns the shortest signed rotation in radians from a to target.
func (a Angle) DiffTo(target Angle) float64 {
	return normalizeRadians(float64(target) - float64(a))
}

// Approach rotates towards target by at most step radians.
func (a Angle) Approach(target Angle, step float64) Angle {
	diff := a.DiffTo(target)
	if math.Abs(diff) <= step {
		return target
	}
	if diff < 0 {
		step = -step
	}
	return a.AddRadians(step)
}

func normalizeRadians(r float64) float64 {
	if r >= 2*math.Pi || r <= -2*math.Pi {
		r = math.Remainder(r, 2*math.Pi)
	}
	if r > math.Pi {
		r -= 2 * math.Pi
	} else if r < -math.Pi {
		r += 2 * math.Pi
	}
	return r
}
