package components

import (
	"github.com/grumpus/jam/config"
	"github.com/yohamta/donburi"
)

// Facing is -1 for left, 1 for right.
type Facing int

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// Direction returns the aim direction matching the facing.
func (f Facing) Direction() Direction {
	if f == FacingLeft {
		return DirLeft
	}
	return DirRight
}

type PlayerData struct {
	State config.PlayerState

	// Countdown timers in seconds
	GroundClock   float64 // Ground grace, refreshed while touching the ground
	ShortHopClock float64 // Window in which releasing jump halves dy
	PreAimClock   float64 // Lockout before a second press may start aiming
	AimClock      float64 // Remaining charge time

	Ammo   int
	Facing Facing
	AimDir Direction
	PrevDX float64 // Horizontal velocity restored after a shot
}

var Player = donburi.NewComponentType[PlayerData]()
