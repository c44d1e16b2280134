package components

import "github.com/yohamta/donburi"

// Direction is one of the four axis-aligned aim directions.
type Direction int

const (
	DirRight Direction = iota
	DirLeft
	DirUp
	DirDown
)

// Vector returns the unit vector for d in y-up space.
func (d Direction) Vector() (x, y float64) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	}
	return 1, 0
}

func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "right"
}

type ArrowData struct {
	Dir    Direction
	Charge float64
	Dead   bool // Stuck in a solid, waiting for the impact animation
}

var Arrow = donburi.NewComponentType[ArrowData]()
