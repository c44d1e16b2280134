package collision

import (
	"github.com/grumpus/jam/shared/physics"
	"github.com/grumpus/jam/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// indexMargin extends the indexed area beyond the world on every side so
// bodies spawned just off-screen still go through the broad phase.
const indexMargin = 256

// spatialIndex mirrors a group into a resolv space. resolv only narrows the
// search to shared cells; callers confirm with an exact overlap test.
type spatialIndex struct {
	space    *resolv.Space
	probe    *resolv.Object
	mirrors  map[donburi.Entity]*resolv.Object
	overflow map[donburi.Entity]struct{}
	tag      string

	spaceW, spaceH float64
}

func newSpatialIndex(width, height, cell int, tag string) *spatialIndex {
	if cell <= 0 {
		cell = 32
	}
	w := width + 2*indexMargin
	h := height + 2*indexMargin

	space := resolv.NewSpace(w, h, cell, cell)
	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	space.Add(probe)

	return &spatialIndex{
		space:    space,
		probe:    probe,
		mirrors:  make(map[donburi.Entity]*resolv.Object),
		overflow: make(map[donburi.Entity]struct{}),
		tag:      tag,
		spaceW:   float64(w),
		spaceH:   float64(h),
	}
}

// bounds converts b into space coordinates, grown by a pixel on each side
// so fractional edges never fall out of a cell.
func (ix *spatialIndex) bounds(b *physics.Body) (x, y, w, h float64) {
	x, y, w, h = b.Rect()
	return x + indexMargin - 1, y + indexMargin - 1, w + 2, h + 2
}

func (ix *spatialIndex) fits(x, y, w, h float64) bool {
	return x >= 0 && y >= 0 && x+w <= ix.spaceW && y+h <= ix.spaceH
}

func (ix *spatialIndex) insert(e donburi.Entity, b *physics.Body) {
	x, y, w, h := ix.bounds(b)
	if !ix.fits(x, y, w, h) {
		ix.overflow[e] = struct{}{}
		return
	}
	obj := resolv.NewObject(x, y, w, h, ix.tag)
	obj.Data = e
	ix.space.Add(obj)
	ix.mirrors[e] = obj
}

func (ix *spatialIndex) remove(e donburi.Entity) {
	if obj, ok := ix.mirrors[e]; ok {
		ix.space.Remove(obj)
		delete(ix.mirrors, e)
	}
	delete(ix.overflow, e)
}

// candidates returns every member that may overlap q.
func (ix *spatialIndex) candidates(q *physics.Body) []donburi.Entity {
	var out []donburi.Entity
	x, y, w, h := ix.bounds(q)
	ix.probe.X, ix.probe.Y, ix.probe.W, ix.probe.H = x, y, w, h
	ix.probe.Update()

	if check := ix.probe.Check(0, 0, ix.tag); check != nil {
		seen := make(map[donburi.Entity]struct{}, len(check.Objects))
		for _, obj := range check.Objects {
			e, ok := obj.Data.(donburi.Entity)
			if !ok {
				continue
			}
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	for e := range ix.overflow {
		out = append(out, e)
	}
	return out
}
