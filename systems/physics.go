package systems

import (
	"github.com/grumpus/jam/components"
	"github.com/grumpus/jam/shared/physics"
	"github.com/grumpus/jam/tags"
	"github.com/yohamta/donburi"
)

// UpdatePhysics is the integrator pass. Solid bodies only ever read the
// Solid group, so the order across entities does not matter.
func UpdatePhysics(ctx *Context) {
	blocked := ctx.Room.Blocker()
	tags.Physics.Each(ctx.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Body) {
			return
		}
		b := components.Body.Get(e)
		physics.Integrate(b, ctx.Dt, blocked)
		if b.X != b.PrevX || b.Y != b.PrevY {
			ctx.Room.Refresh(e.Entity())
		}
	})
}
