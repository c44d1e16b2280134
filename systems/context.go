package systems

import (
	"github.com/grumpus/jam/collision"
	"github.com/grumpus/jam/components"
	"github.com/grumpus/jam/config"
	"github.com/grumpus/jam/input"
	"github.com/yohamta/donburi"
)

// Sink receives lifecycle requests issued during the logic pass. The owner
// applies them in one batch at the end of the tick.
type Sink interface {
	Destroy(e donburi.Entity)
	SpawnArrow(x, y float64, dir components.Direction, charge float64)
	SpawnEffect(x, y float64, key string)
	SpawnPlatform(x, y float64)
	SpawnSkull(x, y float64)
	AddScore(points int)
}

// Context carries everything a system may touch during one tick.
type Context struct {
	World  donburi.World
	Room   *collision.Room
	Config *config.Config
	Input  input.State
	Sink   Sink
	Dt     float64
}

// System is one pass over the world.
type System func(ctx *Context)

func (ctx *Context) worldSize() (w, h float64) {
	return float64(ctx.Config.World.Width), float64(ctx.Config.World.Height)
}
