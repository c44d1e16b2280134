package factory

import (
	"math/rand"

	"github.com/grumpus/jam/archetypes"
	"github.com/grumpus/jam/components"
	"github.com/grumpus/jam/config"
	"github.com/yohamta/donburi"
)

func CreateSpawner(world donburi.World, cfg *config.Config) *donburi.Entry {
	spawner := archetypes.Spawner.Spawn(world)
	components.Spawner.SetValue(spawner, components.SpawnerData{
		Interval: cfg.Spawner.Interval,
		Clock:    cfg.Spawner.Interval,
		Rand:     rand.New(rand.NewSource(cfg.Spawner.Seed)),
	})
	return spawner
}
