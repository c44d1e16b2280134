package systems

import (
	"github.com/grumpus/jam/components"
	"github.com/yohamta/donburi"
)

// UpdateAnimations advances the clock of every animated entity.
func UpdateAnimations(ctx *Context) {
	components.Animation.Each(ctx.World, func(e *donburi.Entry) {
		components.Animation.Get(e).Elapsed += ctx.Dt
	})
}
