// Package leveldata describes arena layouts: where the player starts, which
// permanent platforms exist and whether skulls spawn. Coordinates are y-up
// with the origin at the bottom-left of the arena.
package leveldata

// Level holds everything needed to populate an arena.
type Level struct {
	Name      string
	Width     int
	Height    int
	Platforms []Rect
	Spawn     Point
	Spawner   bool
}

// Rect is a permanent platform, anchored at its bottom-left corner.
type Rect struct {
	X, Y float64
	W, H int
}

type Point struct {
	X, Y float64
}

// StartPlatform is the size of the platform under the player in the
// fallback arena.
const StartPlatform = 64

// Default is the fallback arena: the player in the middle of the screen
// with a single platform 128px below.
func Default(width, height int) *Level {
	spawn := Point{X: float64(width) / 2, Y: float64(height) / 2}
	return &Level{
		Name:   "default",
		Width:  width,
		Height: height,
		Platforms: []Rect{{
			X: spawn.X - StartPlatform/2,
			Y: spawn.Y - 128,
			W: StartPlatform,
			H: StartPlatform,
		}},
		Spawn:   spawn,
		Spawner: true,
	}
}
