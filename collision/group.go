// Package collision partitions bodies into tagged groups and answers
// overlap queries against them.
package collision

import (
	"sort"

	"github.com/grumpus/jam/shared/physics"
	"github.com/grumpus/jam/tags"
	"github.com/yohamta/donburi"
)

// Group is an ordered set of entities sharing a collision tag. Members are
// resolved to their live Body on every query, so a group never holds a copy.
type Group struct {
	tag     tags.Type
	room    *Room
	members []donburi.Entity
	order   map[donburi.Entity]uint64
	seq     uint64
	index   *spatialIndex
}

func newGroup(r *Room, t tags.Type, index *spatialIndex) *Group {
	return &Group{
		tag:   t,
		room:  r,
		order: make(map[donburi.Entity]uint64),
		index: index,
	}
}

func (g *Group) Tag() tags.Type {
	return g.tag
}

func (g *Group) Len() int {
	return len(g.members)
}

// Members returns the members in insertion order.
func (g *Group) Members() []donburi.Entity {
	out := make([]donburi.Entity, len(g.members))
	copy(out, g.members)
	return out
}

func (g *Group) Contains(e donburi.Entity) bool {
	_, ok := g.order[e]
	return ok
}

// Add registers e. The spatial index records the body where it is now;
// members that move later need Refresh.
func (g *Group) Add(e donburi.Entity) {
	if g.Contains(e) {
		return
	}
	b, ok := g.room.Body(e)
	if !ok {
		return
	}
	g.seq++
	g.order[e] = g.seq
	g.members = append(g.members, e)
	if g.index != nil {
		g.index.insert(e, b)
	}
}

// Remove unregisters e and reports whether it was a member.
func (g *Group) Remove(e donburi.Entity) bool {
	if !g.Contains(e) {
		return false
	}
	delete(g.order, e)
	for i, m := range g.members {
		if m == e {
			g.members = append(g.members[:i], g.members[i+1:]...)
			break
		}
	}
	if g.index != nil {
		g.index.remove(e)
	}
	return true
}

// Refresh re-indexes e at its current position. It is a no-op for
// non-members and for groups without an index.
func (g *Group) Refresh(e donburi.Entity) {
	if g.index == nil || !g.Contains(e) {
		return
	}
	b, ok := g.room.Body(e)
	if !ok {
		return
	}
	g.index.remove(e)
	g.index.insert(e, b)
}

// Overlapping returns the earliest-registered member overlapping q.
func (g *Group) Overlapping(q *physics.Body) (donburi.Entity, bool) {
	candidates := g.members
	if g.index != nil {
		candidates = g.index.candidates(q)
		sort.Slice(candidates, func(i, j int) bool {
			return g.order[candidates[i]] < g.order[candidates[j]]
		})
	}

	for _, e := range candidates {
		if _, ok := g.order[e]; !ok {
			continue
		}
		b, ok := g.room.Body(e)
		if !ok {
			continue
		}
		if q.Overlaps(b) {
			return e, true
		}
	}
	return 0, false
}
