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

// CreateSkull spawns a skull that flies straight at the player.
func CreateSkull(room *collision.Room, cfg *config.Config, x, y float64) *donburi.Entry {
	skull := archetypes.Enemy.Spawn(room.World())
	e := cfg.Enemy

	body := physics.NewBody(x, y, e.Width, e.Height)
	body.DXMax = e.MaxSpeed
	body.DYMax = e.MaxSpeed
	body.Entity = skull.Entity()
	components.Body.SetValue(skull, body)

	components.Enemy.SetValue(skull, components.EnemyData{Accel: e.Accel})
	components.Animation.SetValue(skull, components.AnimationData{Key: config.AnimSkull})

	room.Add(skull.Entity(), tags.TypeEnemy)
	return skull
}
