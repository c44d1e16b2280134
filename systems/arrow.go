package systems

import (
	"github.com/grumpus/jam/components"
	cfg "github.com/grumpus/jam/config"
	"github.com/grumpus/jam/tags"
	"github.com/yohamta/donburi"
)

func UpdateArrows(ctx *Context) {
	w, h := ctx.worldSize()
	tags.Arrow.Each(ctx.World, func(e *donburi.Entry) {
		arrow := components.Arrow.Get(e)
		body := components.Body.Get(e)

		if arrow.Dead {
			anim := components.Animation.Get(e)
			if anim.Finished(ctx.Config.Animation(anim.Key)) {
				ctx.Sink.Destroy(e.Entity())
			}
			return
		}

		if body.OutOfBounds(w, h) {
			ctx.Sink.Destroy(e.Entity())
			return
		}

		if ctx.Room.Overlaps(body, tags.TypeSolid) {
			stickArrow(ctx, e)
		}
	})
}

// stickArrow freezes an arrow where it hit and plays its impact animation.
// It leaves the Arrow group at once so nothing else can be hit by it.
func stickArrow(ctx *Context, e *donburi.Entry) {
	arrow := components.Arrow.Get(e)
	if arrow.Dead {
		return
	}
	arrow.Dead = true
	ctx.Room.Remove(e.Entity(), tags.TypeArrow)

	body := components.Body.Get(e)
	body.DX, body.DY, body.DDX, body.DDY = 0, 0, 0, 0
	components.Animation.Get(e).SetAnimation(cfg.AnimArrowPop)
}
