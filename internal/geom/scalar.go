package geom

import "math"

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MoveToward steps current toward target by at most maxDelta, landing
// exactly on the target once within range.
func MoveToward(current, target, maxDelta float64) float64 {
	d := target - current
	if math.Abs(d) <= maxDelta {
		return target
	}
	return current + math.Copysign(maxDelta, d)
}

// Damp is a frame-rate independent exponential approach toward target.
// rate is the decay constant per second; the original per-frame tuning
// of lerp(x, target, k) at 60 Hz corresponds to rate = -60*ln(1-k).
func Damp(current, target, rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return current
	}
	return target + (current-target)*math.Exp(-rate*dt)
}

// DampVec applies Damp componentwise.
func DampVec(current, target Vec3, rate, dt float64) Vec3 {
	return Vec3{
		Damp(current.X, target.X, rate, dt),
		Damp(current.Y, target.Y, rate, dt),
		Damp(current.Z, target.Z, rate, dt),
	}
}
