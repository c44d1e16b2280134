package systems

import (
	"github.com/grumpus/jam/components"
	"github.com/grumpus/jam/tags"
	"github.com/yohamta/donburi"
)

// UpdateEffects fades one-shot effects and removes them once the fade ends.
func UpdateEffects(ctx *Context) {
	tags.Effect.Each(ctx.World, func(e *donburi.Entry) {
		effect := components.Effect.Get(e)

		if effect.Delay > 0 {
			effect.Delay -= ctx.Dt
			return
		}
		if effect.Fade == nil {
			ctx.Sink.Destroy(e.Entity())
			return
		}

		alpha, done := effect.Fade.Update(float32(ctx.Dt))
		effect.Alpha = float64(alpha)
		if done {
			ctx.Sink.Destroy(e.Entity())
		}
	})
}
