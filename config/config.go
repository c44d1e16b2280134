package config

// WorldConfig contains the arena dimensions and broad-phase cell size
type WorldConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Movement
	MaxSpeedX      float64 `yaml:"max_speed_x"`
	MaxSpeedY      float64 `yaml:"max_speed_y"`
	GroundAccel    float64 `yaml:"ground_accel"`
	AirAccel       float64 `yaml:"air_accel"`
	GroundFriction float64 `yaml:"ground_friction"`
	AirFriction    float64 `yaml:"air_friction"`
	JumpSpeed      float64 `yaml:"jump_speed"`
	Gravity        float64 `yaml:"gravity"`

	// Aiming
	AimDrift      float64 `yaml:"aim_drift"`       // Downward acceleration while charging
	ShotLaunchDiv float64 `yaml:"shot_launch_div"` // Post-shot dy = JumpSpeed / ShotLaunchDiv
	MaxAmmo       int     `yaml:"max_ammo"`

	// Timers (seconds)
	GroundGrace  float64 `yaml:"ground_grace"`
	ShortHopTime float64 `yaml:"short_hop_time"`
	PreAimTime   float64 `yaml:"pre_aim_time"`
	AimTime      float64 `yaml:"aim_time"`

	// Ledge sensor
	SensorWidth  int `yaml:"sensor_width"`
	SensorHeight int `yaml:"sensor_height"`
}

// ArrowConfig contains projectile configuration
type ArrowConfig struct {
	Length    int     `yaml:"length"`
	Thickness int     `yaml:"thickness"`
	MaxSpeedX float64 `yaml:"max_speed_x"`
	MaxSpeedY float64 `yaml:"max_speed_y"`
	Gravity   float64 `yaml:"gravity"`
}

// EnemyConfig contains the skull configuration
type EnemyConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Accel    float64 `yaml:"accel"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// PlatformConfig contains the platform dropped by a killed enemy
type PlatformConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Lifetime float64 `yaml:"lifetime"`
}

// SpawnerConfig controls periodic enemy spawns
type SpawnerConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Interval float64 `yaml:"interval"`
	SpawnY   float64 `yaml:"spawn_y"`
	Seed     int64   `yaml:"seed"`
}

// EffectConfig controls one-shot visual effects
type EffectConfig struct {
	FadeTime float64 `yaml:"fade_time"`
}

// DebugConfig contains debug toggles
type DebugConfig struct {
	LogTransitions bool `yaml:"log_transitions"`
	DrawBodies     bool `yaml:"draw_bodies"`
}

type Config struct {
	World      WorldConfig             `yaml:"world"`
	Player     PlayerConfig            `yaml:"player"`
	Arrow      ArrowConfig             `yaml:"arrow"`
	Enemy      EnemyConfig             `yaml:"enemy"`
	Platform   PlatformConfig          `yaml:"platform"`
	Spawner    SpawnerConfig           `yaml:"spawner"`
	Effect     EffectConfig            `yaml:"effect"`
	Animations map[string]AnimationDef `yaml:"animations"`
	Debug      DebugConfig             `yaml:"debug"`
}

// Default returns the tuned configuration. Each call returns a fresh copy.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Width:    1024,
			Height:   576,
			CellSize: 32,
		},
		Player: PlayerConfig{
			Width:          16,
			Height:         54,
			MaxSpeedX:      290,
			MaxSpeedY:      500,
			GroundAccel:    3000,
			AirAccel:       1500,
			GroundFriction: 1800,
			AirFriction:    900,
			JumpSpeed:      390,
			Gravity:        -625,
			AimDrift:       -10,
			ShotLaunchDiv:  1.5,
			MaxAmmo:        5,
			GroundGrace:    0.1,
			ShortHopTime:   0.1,
			PreAimTime:     0.015,
			AimTime:        1,
			SensorWidth:    4,
			SensorHeight:   4,
		},
		Arrow: ArrowConfig{
			Length:    48,
			Thickness: 6,
			MaxSpeedX: 1700,
			MaxSpeedY: 1500,
			Gravity:   -400,
		},
		Enemy: EnemyConfig{
			Width:    64,
			Height:   64,
			Accel:    100,
			MaxSpeed: 50,
		},
		Platform: PlatformConfig{
			Width:    64,
			Height:   64,
			Lifetime: 5,
		},
		Spawner: SpawnerConfig{
			Enabled:  true,
			Interval: 3,
			SpawnY:   -64,
			Seed:     1,
		},
		Effect: EffectConfig{
			FadeTime: 0.3,
		},
		Animations: DefaultAnimations(),
	}
}

// PostShotSpeed is the vertical launch speed after an arrow is released.
func (p PlayerConfig) PostShotSpeed() float64 {
	if p.ShotLaunchDiv == 0 {
		return p.JumpSpeed
	}
	return p.JumpSpeed / p.ShotLaunchDiv
}
