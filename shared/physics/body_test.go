package physics

import "testing"

func TestBodyOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b Body
		want bool
	}{
		{"disjoint", NewBody(0, 0, 10, 10), NewBody(20, 20, 10, 10), false},
		{"intersecting", NewBody(0, 0, 10, 10), NewBody(5, 5, 10, 10), true},
		{"contained", NewBody(0, 0, 100, 100), NewBody(10, 10, 4, 4), true},
		{"touching_edge", NewBody(0, 0, 10, 10), NewBody(10, 0, 10, 10), false},
		{"touching_top", NewBody(0, 0, 10, 10), NewBody(0, 10, 10, 10), false},
		{"corner_only", NewBody(0, 0, 10, 10), NewBody(10, 10, 10, 10), false},
		{"fractional", NewBody(0.5, 0, 10, 10), NewBody(10.25, 0, 10, 10), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, b := c.a, c.b
			if got := a.Overlaps(&b); got != c.want {
				t.Fatalf("a.Overlaps(b) = %v, want %v", got, c.want)
			}
			if got := b.Overlaps(&a); got != c.want {
				t.Fatalf("b.Overlaps(a) = %v, want %v", got, c.want)
			}
		})
	}
}

func TestBodyNeverOverlapsItself(t *testing.T) {
	b := NewBody(3, 4, 16, 54)
	if b.Overlaps(&b) {
		t.Fatalf("body overlaps itself")
	}

	// A shifted copy carrying the same entity is the same body.
	b.Entity = 7
	probe := b
	probe.Y--
	if probe.Overlaps(&b) {
		t.Fatalf("probe copy of the same entity reported an overlap")
	}
}

func TestBodyCenterAndBounds(t *testing.T) {
	b := NewBody(10, 20, 16, 54)
	if b.CenterX() != 18 || b.CenterY() != 47 {
		t.Fatalf("center = (%v, %v), want (18, 47)", b.CenterX(), b.CenterY())
	}
	if b.Right() != 26 || b.Top() != 74 {
		t.Fatalf("right/top = (%v, %v), want (26, 74)", b.Right(), b.Top())
	}

	cases := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 100, 100, false},
		{"origin", 0, 0, false},
		{"far_corner", 1024, 576, false},
		{"left", -1, 10, true},
		{"right", 1025, 10, true},
		{"below", 10, -0.5, true},
		{"above", 10, 577, true},
		{"above_height_below_width", 10, 600, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBody(c.x, c.y, 48, 6)
			if got := b.OutOfBounds(1024, 576); got != c.want {
				t.Fatalf("OutOfBounds = %v, want %v", got, c.want)
			}
		})
	}
}

func TestApproach(t *testing.T) {
	cases := []struct {
		v, target, step, want float64
	}{
		{10, 0, 3, 7},
		{2, 0, 3, 0},
		{-2, 0, 3, 0},
		{-10, 0, 3, -7},
		{0, 0, 3, 0},
		{5, 10, 2, 7},
	}
	for _, c := range cases {
		if got := Approach(c.v, c.target, c.step); got != c.want {
			t.Errorf("Approach(%v, %v, %v) = %v, want %v", c.v, c.target, c.step, got, c.want)
		}
	}
}
