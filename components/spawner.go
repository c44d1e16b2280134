package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

type SpawnerData struct {
	Interval float64
	Clock    float64
	Rand     *rand.Rand
}

var Spawner = donburi.NewComponentType[SpawnerData]()
