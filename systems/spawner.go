package systems

import (
	"github.com/grumpus/jam/components"
	"github.com/grumpus/jam/tags"
	"github.com/yohamta/donburi"
)

// UpdateSpawner releases a skull at a random column every interval.
func UpdateSpawner(ctx *Context) {
	w, _ := ctx.worldSize()
	tags.Spawner.Each(ctx.World, func(e *donburi.Entry) {
		spawner := components.Spawner.Get(e)
		if spawner.Clock > 0 {
			spawner.Clock -= ctx.Dt
			return
		}
		spawner.Clock = spawner.Interval
		maxX := w - float64(ctx.Config.Enemy.Width)
		if maxX < 0 {
			maxX = 0
		}
		ctx.Sink.SpawnSkull(spawner.Rand.Float64()*maxX, ctx.Config.Spawner.SpawnY)
	})
}
