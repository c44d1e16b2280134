package systems

import (
	"github.com/grumpus/jam/collision"
	"github.com/grumpus/jam/shared/physics"
	"github.com/grumpus/jam/tags"
)

// shifted reports whether b would touch a Solid if moved by (dx, dy).
// The query runs on a copy so b itself is never disturbed.
func shifted(room *collision.Room, b *physics.Body, dx, dy float64) bool {
	probe := *b
	probe.X += dx
	probe.Y += dy
	return room.Overlaps(&probe, tags.TypeSolid)
}

func onGround(room *collision.Room, b *physics.Body) bool {
	return shifted(room, b, 0, -1)
}

func onRightWall(room *collision.Room, b *physics.Body) bool {
	return shifted(room, b, 1, 0)
}

func onLeftWall(room *collision.Room, b *physics.Body) bool {
	return shifted(room, b, -1, 0)
}

// ledgeSensor is a small box beside the top corner of b on the given side.
type ledgeSensor struct {
	room  *collision.Room
	body  *physics.Body
	right bool
	box   physics.Body
}

func newLedgeSensor(room *collision.Room, b *physics.Body, right bool, w, h int) *ledgeSensor {
	x := b.X - float64(w)
	if right {
		x = b.Right()
	}
	return &ledgeSensor{
		room:  room,
		body:  b,
		right: right,
		box:   physics.NewBody(x, b.Top(), w, h),
	}
}

func (s *ledgeSensor) blockedAt(y float64) bool {
	s.box.Y = y
	return s.room.Overlaps(&s.box, tags.TypeSolid)
}

func (s *ledgeSensor) againstWall() bool {
	if s.right {
		return onRightWall(s.room, s.body)
	}
	return onLeftWall(s.room, s.body)
}

// grab detects a falling body whose top edge just crossed a ledge corner:
// the space beside its top was clear at the previous height and is blocked
// now. On success the body is raised until the sensor is clear.
func (s *ledgeSensor) grab() bool {
	b := s.body
	if b.DY >= 0 || !s.againstWall() {
		return false
	}
	wasFree := !s.blockedAt(b.PrevY + float64(b.H))
	if !wasFree || !s.blockedAt(b.Top()) {
		return false
	}

	// The corner lies between the previous and current top edges.
	startY := b.Y
	limit := int(b.PrevY-b.Y) + s.box.H + 1
	for i := 0; s.blockedAt(s.box.Y); i++ {
		if i > limit {
			b.Y = startY
			return false
		}
		s.box.Y++
		b.Y++
	}
	return true
}

// holding re-verifies that the ledge under the sensor still exists.
func (s *ledgeSensor) holding() bool {
	if !s.againstWall() {
		return false
	}
	clearAbove := !s.blockedAt(s.body.Top())
	blockedBelow := s.blockedAt(s.body.Top() - float64(s.box.H))
	return clearAbove && blockedBelow
}
