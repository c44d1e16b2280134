// Package physics holds the AABB body model and the per-tick integrator.
// It has no dependencies on ebitengine or resolv; the entity id is carried
// only so collision callbacks can identify the owner of a body.
package physics

import "github.com/yohamta/donburi"

// Body is an axis-aligned rectangle with velocity, acceleration, friction
// and per-axis speed caps. (X, Y) is the bottom-left corner; y grows upward.
type Body struct {
	X, Y         float64
	PrevX, PrevY float64
	W, H         int

	DX, DY   float64
	DDX, DDY float64
	FX, FY   float64

	DXMax, DYMax float64

	// Solid bodies are moved pixel by pixel against the Solid group.
	Solid bool

	Entity donburi.Entity
}

// NewBody returns a body at rest with unbounded speed caps.
func NewBody(x, y float64, w, h int) Body {
	return Body{
		X:     x,
		Y:     y,
		PrevX: x,
		PrevY: y,
		W:     w,
		H:     h,
		DXMax: Unbounded,
		DYMax: Unbounded,
	}
}

// Unbounded is the default speed cap.
const Unbounded = 1 << 20

func (b *Body) Right() float64 {
	return b.X + float64(b.W)
}

func (b *Body) Top() float64 {
	return b.Y + float64(b.H)
}

func (b *Body) CenterX() float64 {
	return b.X + float64(b.W)/2
}

func (b *Body) CenterY() float64 {
	return b.Y + float64(b.H)/2
}

// Overlaps reports whether the two rectangles intersect with non-zero area.
// A body never overlaps itself.
func (b *Body) Overlaps(other *Body) bool {
	if b == nil || other == nil || b.same(other) {
		return false
	}
	return b.X < other.Right() &&
		other.X < b.Right() &&
		b.Y < other.Top() &&
		other.Y < b.Top()
}

func (b *Body) same(other *Body) bool {
	if b == other {
		return true
	}
	return b.Entity != 0 && b.Entity == other.Entity
}

// OutOfBounds reports whether the body's position lies outside
// [0, width] x [0, height].
func (b *Body) OutOfBounds(width, height float64) bool {
	return b.X < 0 || b.X > width || b.Y < 0 || b.Y > height
}

// Rect returns the rectangle as float components.
func (b *Body) Rect() (x, y, w, h float64) {
	return b.X, b.Y, float64(b.W), float64(b.H)
}
