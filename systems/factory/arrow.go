package factory

import (
	"github.com/grumpus/jam/archetypes"
	"github.com/grumpus/jam/collision"
	"github.com/grumpus/jam/components"
	"github.com/grumpus/jam/config"
	"github.com/grumpus/jam/shared/physics"
	"github.com/grumpus/jam/tags"
	"github.com/yohamta/donburi"
)

// CreateArrow spawns an arrow at (x, y) flying in dir. Its initial velocity
// is dir * charge * the axis speed cap.
func CreateArrow(room *collision.Room, cfg *config.Config, x, y float64, dir components.Direction, charge float64) *donburi.Entry {
	arrow := archetypes.Arrow.Spawn(room.World())
	a := cfg.Arrow

	w, h := a.Length, a.Thickness
	if dir.Vertical() {
		w, h = h, w
	}

	body := physics.NewBody(x, y, w, h)
	body.DXMax = a.MaxSpeedX
	body.DYMax = a.MaxSpeedY
	vx, vy := dir.Vector()
	body.DX = vx * charge * a.MaxSpeedX
	body.DY = vy * charge * a.MaxSpeedY
	body.DDY = a.Gravity
	body.Entity = arrow.Entity()
	components.Body.SetValue(arrow, body)

	components.Arrow.SetValue(arrow, components.ArrowData{
		Dir:    dir,
		Charge: charge,
	})
	components.Animation.SetValue(arrow, components.AnimationData{Key: config.AnimArrow})

	room.Add(arrow.Entity(), tags.TypeArrow)
	return arrow
}
