package components

import (
	"github.com/grumpus/jam/config"
	"github.com/yohamta/donburi"
)

// AnimationData is the intended animation of an entity. Rendering reads Key
// and Elapsed; the simulation only selects keys and advances time.
type AnimationData struct {
	Key     string
	Elapsed float64
}

// SetAnimation switches to key, restarting only when the key changes.
func (a *AnimationData) SetAnimation(key string) {
	if a.Key == key {
		return
	}
	a.Key = key
	a.Elapsed = 0
}

// Finished reports whether a non-looping animation has played through.
func (a *AnimationData) Finished(def config.AnimationDef) bool {
	return !def.Loop && a.Elapsed >= def.Duration()
}

// Frame returns the current frame index.
func (a *AnimationData) Frame(def config.AnimationDef) int {
	if def.Frames <= 1 || def.FrameDuration <= 0 {
		return 0
	}
	frame := int(a.Elapsed / def.FrameDuration)
	if def.Loop {
		return frame % def.Frames
	}
	if frame >= def.Frames {
		return def.Frames - 1
	}
	return frame
}

var Animation = donburi.NewComponentType[AnimationData]()
