package physics

import "math"

// Blocker returns the first impassable body overlapping b, if any.
type Blocker func(b *Body) (*Body, bool)

// Integrate advances b by one tick: it records the previous position,
// updates velocity and moves the body. Solid bodies step against blocked.
func Integrate(b *Body, dt float64, blocked Blocker) {
	b.PrevX, b.PrevY = b.X, b.Y
	UpdateVelocity(b, dt)
	if b.Solid && blocked != nil {
		Step(b, dt, blocked)
		return
	}
	Move(b, dt)
}

// UpdateVelocity applies acceleration, or friction on an axis with no
// acceleration, then clamps to the speed caps.
func UpdateVelocity(b *Body, dt float64) {
	if b.DDX != 0 {
		b.DX += b.DDX * dt
	} else {
		b.DX = Approach(b.DX, 0, b.FX*dt)
	}
	if b.DDY != 0 {
		b.DY += b.DDY * dt
	} else {
		b.DY = Approach(b.DY, 0, b.FY*dt)
	}
	b.DX = ClampSpeed(b.DX, b.DXMax)
	b.DY = ClampSpeed(b.DY, b.DYMax)
}

// Move updates position directly with no collision checks.
func Move(b *Body, dt float64) {
	b.X += b.DX * dt
	b.Y += b.DY * dt
}

// Step resolves X fully, then Y, one pixel at a time. Contact on an axis
// zeroes that velocity component.
func Step(b *Body, dt float64, blocked Blocker) {
	if stepAxis(b, true, b.DX*dt, blocked) {
		b.DX = 0
	}
	if stepAxis(b, false, b.DY*dt, blocked) {
		b.DY = 0
	}
}

func stepAxis(b *Body, horizontal bool, toMove float64, blocked Blocker) bool {
	pos := &b.Y
	if horizontal {
		pos = &b.X
	}

	for toMove != 0 {
		step := Sign(toMove)
		if math.Abs(toMove) < 1 {
			step = toMove
		}
		free := *pos
		*pos += step
		toMove -= step

		if _, hit := blocked(b); hit {
			settle(b, pos, free, step, horizontal, blocked)
			return true
		}
	}
	return false
}

// settle backs a blocked micro-step off to the nearest contact edge,
// never past the free position it started from.
func settle(b *Body, pos *float64, free, step float64, horizontal bool, blocked Blocker) {
	for {
		other, hit := blocked(b)
		if !hit {
			return
		}
		edge := contactEdge(b, other, step, horizontal)
		if (step < 0 && edge >= free) || (step > 0 && edge <= free) {
			*pos = free
			return
		}
		*pos = edge
	}
}

func contactEdge(b, other *Body, step float64, horizontal bool) float64 {
	if horizontal {
		if step < 0 {
			return other.Right()
		}
		return other.X - float64(b.W)
	}
	if step < 0 {
		return other.Top()
	}
	return other.Y - float64(b.H)
}
