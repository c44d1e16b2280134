package components

import "github.com/yohamta/donburi"

// PlatformData is a Solid that optionally expires.
type PlatformData struct {
	Lifetime  float64 // Seconds remaining
	Permanent bool
}

var Platform = donburi.NewComponentType[PlatformData]()
