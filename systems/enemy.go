package systems

import (
	"github.com/grumpus/jam/components"
	cfg "github.com/grumpus/jam/config"
	"github.com/grumpus/jam/shared/physics"
	"github.com/grumpus/jam/tags"
	"github.com/yohamta/donburi"
)

func UpdateEnemies(ctx *Context) {
	var target *physics.Body
	if playerEntry, ok := tags.Player.First(ctx.World); ok {
		if components.Player.Get(playerEntry).State != cfg.StateDead {
			target = components.Body.Get(playerEntry)
		}
	}

	tags.Enemy.Each(ctx.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)

		if hit, ok := ctx.Room.Overlapping(body, tags.TypeArrow); ok {
			killSkull(ctx, e, hit)
			return
		}

		chase(body, components.Enemy.Get(e).Accel, target)
	})
}

// killSkull pins the arrow, leaves a platform where the skull was and
// removes the skull.
func killSkull(ctx *Context, e *donburi.Entry, arrow donburi.Entity) {
	if ctx.World.Valid(arrow) {
		stickArrow(ctx, ctx.World.Entry(arrow))
	}
	body := components.Body.Get(e)
	ctx.Sink.SpawnPlatform(body.X, body.Y)
	ctx.Sink.SpawnEffect(body.CenterX(), body.CenterY(), cfg.EffectSkullDie)
	ctx.Sink.AddScore(1)
	ctx.Sink.Destroy(e.Entity())
}

// chase accelerates body toward the target's position on both axes.
func chase(body *physics.Body, accel float64, target *physics.Body) {
	if target == nil {
		body.DDX, body.DDY = 0, 0
		return
	}
	body.DDX = physics.Sign(target.X-body.X) * accel
	body.DDY = physics.Sign(target.Y-body.Y) * accel
}
