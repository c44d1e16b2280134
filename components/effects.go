package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EffectData is a one-shot visual centred on (X, Y). Alpha fades out over
// the tail of the effect.
type EffectData struct {
	X, Y  float64
	Key   string
	Alpha float64
	Fade  *gween.Tween
	Delay float64 // Seconds before the fade starts
}

var Effect = donburi.NewComponentType[EffectData]()
