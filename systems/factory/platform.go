package factory

import (
	"math"

	"github.com/grumpus/jam/archetypes"
	"github.com/grumpus/jam/collision"
	"github.com/grumpus/jam/components"
	"github.com/grumpus/jam/config"
	"github.com/grumpus/jam/shared/physics"
	"github.com/grumpus/jam/tags"
	"github.com/yohamta/donburi"
)

// CreatePlatform spawns a Solid snapped to whole pixels. A lifetime <= 0
// makes it permanent.
func CreatePlatform(room *collision.Room, x, y float64, w, h int, lifetime float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(room.World())

	body := physics.NewBody(math.Round(x), math.Round(y), w, h)
	body.Entity = platform.Entity()
	components.Body.SetValue(platform, body)

	components.Platform.SetValue(platform, components.PlatformData{
		Lifetime:  lifetime,
		Permanent: lifetime <= 0,
	})
	components.Animation.SetValue(platform, components.AnimationData{Key: config.AnimPlatform})

	room.Add(platform.Entity(), tags.TypeSolid)
	return platform
}

// CreateTimedPlatform spawns the platform left behind by a killed enemy.
func CreateTimedPlatform(room *collision.Room, cfg *config.Config, x, y float64) *donburi.Entry {
	p := cfg.Platform
	return CreatePlatform(room, x, y, p.Width, p.Height, p.Lifetime)
}
