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

// CreatePlayer spawns the player airborne at (x, y), bottom-left anchored.
func CreatePlayer(room *collision.Room, cfg *config.Config, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(room.World())
	p := cfg.Player

	body := physics.NewBody(x, y, p.Width, p.Height)
	body.Solid = true
	body.DXMax = p.MaxSpeedX
	body.DYMax = p.MaxSpeedY
	body.DDY = p.Gravity
	body.FX = p.AirFriction
	body.Entity = player.Entity()
	components.Body.SetValue(player, body)

	components.Player.SetValue(player, components.PlayerData{
		State:  config.StateAir,
		Ammo:   p.MaxAmmo,
		Facing: components.FacingRight,
		AimDir: components.DirRight,
	})
	components.Animation.SetValue(player, components.AnimationData{Key: config.AnimStand})

	room.Add(player.Entity(), tags.TypePlayer)
	return player
}
