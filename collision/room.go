package collision

import (
	"github.com/grumpus/jam/components"
	"github.com/grumpus/jam/shared/physics"
	"github.com/grumpus/jam/tags"
	"github.com/yohamta/donburi"
)

// Room maps every collision tag to its group. One Room exists per level
// instance; the donburi world is the arena that owns the bodies.
type Room struct {
	world  donburi.World
	groups [tags.TypeCount]*Group

	width, height, cell int
}

func NewRoom(world donburi.World, width, height, cell int) *Room {
	r := &Room{
		world:  world,
		width:  width,
		height: height,
		cell:   cell,
	}
	r.Reset()
	return r
}

// Reset re-initializes every group empty.
func (r *Room) Reset() {
	for _, t := range tags.Types {
		var index *spatialIndex
		if t == tags.TypeSolid {
			index = newSpatialIndex(r.width, r.height, r.cell, t.String())
		}
		r.groups[t] = newGroup(r, t, index)
	}
}

func (r *Room) World() donburi.World {
	return r.world
}

func (r *Room) Group(t tags.Type) *Group {
	if t < 0 || t >= tags.TypeCount {
		return nil
	}
	return r.groups[t]
}

// Body resolves e to its live body. Destroyed entities resolve to nothing.
func (r *Room) Body(e donburi.Entity) (*physics.Body, bool) {
	if !r.world.Valid(e) {
		return nil, false
	}
	entry := r.world.Entry(e)
	if !entry.HasComponent(components.Body) {
		return nil, false
	}
	return components.Body.Get(entry), true
}

func (r *Room) Add(e donburi.Entity, t tags.Type) {
	if g := r.Group(t); g != nil {
		g.Add(e)
	}
}

func (r *Room) Remove(e donburi.Entity, t tags.Type) bool {
	if g := r.Group(t); g != nil {
		return g.Remove(e)
	}
	return false
}

// RemoveFromAny removes e from every group it belongs to.
func (r *Room) RemoveFromAny(e donburi.Entity) {
	for _, g := range r.groups {
		g.Remove(e)
	}
}

// Refresh updates every group holding e after its body moved.
func (r *Room) Refresh(e donburi.Entity) {
	for _, g := range r.groups {
		g.Refresh(e)
	}
}

// Overlapping returns the first member of t overlapping b.
func (r *Room) Overlapping(b *physics.Body, t tags.Type) (donburi.Entity, bool) {
	g := r.Group(t)
	if g == nil {
		return 0, false
	}
	return g.Overlapping(b)
}

// OverlappingBody is Overlapping resolved to the member's body.
func (r *Room) OverlappingBody(b *physics.Body, t tags.Type) (*physics.Body, bool) {
	e, ok := r.Overlapping(b, t)
	if !ok {
		return nil, false
	}
	return r.Body(e)
}

func (r *Room) Overlaps(b *physics.Body, t tags.Type) bool {
	_, ok := r.Overlapping(b, t)
	return ok
}

// Blocker returns a physics.Blocker over the Solid group.
func (r *Room) Blocker() physics.Blocker {
	return func(b *physics.Body) (*physics.Body, bool) {
		return r.OverlappingBody(b, tags.TypeSolid)
	}
}
