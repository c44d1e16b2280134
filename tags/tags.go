package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Arrow    = donburi.NewTag().SetName("Arrow")
	Platform = donburi.NewTag().SetName("Platform")
	Effect   = donburi.NewTag().SetName("Effect")
	Spawner  = donburi.NewTag().SetName("Spawner")

	// Physics marks entities the integrator advances every tick.
	Physics = donburi.NewTag().SetName("Physics")
)

// Type partitions bodies into collision groups.
type Type int

const (
	TypePlayer Type = iota
	TypeEnemy
	TypeSolid
	TypeArrow

	TypeCount
)

// Types lists every collision tag in declaration order.
var Types = [TypeCount]Type{TypePlayer, TypeEnemy, TypeSolid, TypeArrow}

// Resolv tags for the broad phase
const (
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvSolid  = "solid"
	ResolvArrow  = "Arrow"
	ResolvProbe  = "probe"
)

func (t Type) String() string {
	switch t {
	case TypePlayer:
		return ResolvPlayer
	case TypeEnemy:
		return ResolvEnemy
	case TypeSolid:
		return ResolvSolid
	case TypeArrow:
		return ResolvArrow
	}
	return "unknown"
}
