package config

// Animation keys selected by the simulation. Rendering maps them to frames.
const (
	AnimStand    = "stand"
	AnimRun      = "run"
	AnimSlide    = "slide"
	AnimJump     = "jump"
	AnimLedge    = "ledge"
	AnimAimSide  = "aim-side"
	AnimAimUp    = "aim-up"
	AnimAimDown  = "aim-down"
	AnimArrow    = "arrow-fly"
	AnimArrowPop = "arrow-pop"
	AnimSkull    = "skull-idle"
	AnimPlatform = "platform-block"

	EffectPlayerDie = "player-die"
	EffectArrowPop  = "ui-arrow-pop"
	EffectSkullDie  = "enemy-die"
	EffectPlatform  = "platform-fade"
)

type AnimationDef struct {
	Frames        int     `yaml:"frames"`
	FrameDuration float64 `yaml:"frame_duration"`
	Loop          bool    `yaml:"loop"`
}

// Duration is the length of one pass through the frames.
func (a AnimationDef) Duration() float64 {
	return float64(a.Frames) * a.FrameDuration
}

// DefaultAnimations returns frame timing for every animation key.
func DefaultAnimations() map[string]AnimationDef {
	return map[string]AnimationDef{
		AnimStand:    {Frames: 1, FrameDuration: 0.1, Loop: true},
		AnimRun:      {Frames: 8, FrameDuration: 0.07, Loop: true},
		AnimSlide:    {Frames: 1, FrameDuration: 0.1, Loop: true},
		AnimJump:     {Frames: 1, FrameDuration: 0.1, Loop: true},
		AnimLedge:    {Frames: 1, FrameDuration: 0.1, Loop: true},
		AnimAimSide:  {Frames: 1, FrameDuration: 0.1, Loop: true},
		AnimAimUp:    {Frames: 1, FrameDuration: 0.1, Loop: true},
		AnimAimDown:  {Frames: 1, FrameDuration: 0.1, Loop: true},
		AnimArrow:    {Frames: 1, FrameDuration: 0.1, Loop: true},
		AnimArrowPop: {Frames: 5, FrameDuration: 0.04},
		AnimSkull:    {Frames: 4, FrameDuration: 0.07, Loop: true},
		AnimPlatform: {Frames: 4, FrameDuration: 0.1, Loop: true},

		EffectPlayerDie: {Frames: 8, FrameDuration: 0.06},
		EffectArrowPop:  {Frames: 4, FrameDuration: 0.06},
		EffectSkullDie:  {Frames: 6, FrameDuration: 0.04},
		EffectPlatform:  {Frames: 3, FrameDuration: 0.1},
	}
}

// Animation returns the definition for key, falling back to a single
// looping frame for unknown keys.
func (c *Config) Animation(key string) AnimationDef {
	if def, ok := c.Animations[key]; ok {
		return def
	}
	return AnimationDef{Frames: 1, FrameDuration: 0.1, Loop: true}
}
