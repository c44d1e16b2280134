package physics

// Approach moves v toward target by at most step without overshooting.
func Approach(v, target, step float64) float64 {
	if v > target {
		if v-step < target {
			return target
		}
		return v - step
	}
	if v+step > target {
		return target
	}
	return v + step
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	return Clamp(speed, -max, max)
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
