package factory

import (
	"math"

	"github.com/grumpus/jam/archetypes"
	"github.com/grumpus/jam/components"
	"github.com/grumpus/jam/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreateEffect spawns a one-shot effect centred on (x, y). It plays its
// animation once and fades out over the configured tail.
func CreateEffect(world donburi.World, cfg *config.Config, x, y float64, key string) *donburi.Entry {
	effect := archetypes.Effect.Spawn(world)

	total := cfg.Animation(key).Duration()
	fade := math.Min(cfg.Effect.FadeTime, total)
	if fade <= 0 {
		fade = total
	}

	components.Effect.SetValue(effect, components.EffectData{
		X:     x,
		Y:     y,
		Key:   key,
		Alpha: 1,
		Fade:  gween.New(1, 0, float32(fade), ease.InQuad),
		Delay: total - fade,
	})
	components.Animation.SetValue(effect, components.AnimationData{Key: key})

	return effect
}
