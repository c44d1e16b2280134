package archetypes

import (
	"github.com/grumpus/jam/components"
	"github.com/grumpus/jam/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		tags.Physics,
		components.Player,
		components.Body,
		components.Animation,
	)
	Arrow = newArchetype(
		tags.Arrow,
		tags.Physics,
		components.Arrow,
		components.Body,
		components.Animation,
	)
	Enemy = newArchetype(
		tags.Enemy,
		tags.Physics,
		components.Enemy,
		components.Body,
		components.Animation,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Body,
		components.Animation,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Effect,
		components.Animation,
	)
	Spawner = newArchetype(
		tags.Spawner,
		components.Spawner,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(world donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := world.Entry(world.Create(
		append(a.components, cs...)...,
	))
	return e
}
