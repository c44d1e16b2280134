package components

import (
	"github.com/grumpus/jam/shared/physics"
	"github.com/yohamta/donburi"
)

// Body is the arena slot for an entity's collision rectangle. Collision
// groups refer to it through the owning entity, never by copy.
var Body = donburi.NewComponentType[physics.Body]()
