package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	Accel float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
