package systems

import (
	"github.com/grumpus/jam/components"
	cfg "github.com/grumpus/jam/config"
	"github.com/grumpus/jam/tags"
	"github.com/yohamta/donburi"
)

// UpdatePlatforms counts down temporary platforms and removes expired ones.
func UpdatePlatforms(ctx *Context) {
	tags.Platform.Each(ctx.World, func(e *donburi.Entry) {
		platform := components.Platform.Get(e)
		if platform.Permanent {
			return
		}
		platform.Lifetime -= ctx.Dt
		if platform.Lifetime <= 0 {
			body := components.Body.Get(e)
			ctx.Sink.SpawnEffect(body.CenterX(), body.CenterY(), cfg.EffectPlatform)
			ctx.Sink.Destroy(e.Entity())
		}
	})
}
