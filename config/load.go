package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrWorldSize  = errors.New("world size must be positive")
	ErrBodySize   = errors.New("body dimensions must be positive")
	ErrSpeedCap   = errors.New("speed caps must be positive")
	ErrAmmo       = errors.New("max ammo must not be negative")
	ErrTimer      = errors.New("timers must not be negative")
	ErrAnimation  = errors.New("animation frames and frame duration must be positive")
	ErrSpawnDelay = errors.New("spawner interval must be positive")
)

// Load applies YAML overrides on top of Default. Fields missing from data
// keep their default values.
func Load(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads path and applies it with Load.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	c, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 || c.World.CellSize <= 0 {
		return ErrWorldSize
	}

	p := c.Player
	if p.Width <= 0 || p.Height <= 0 || p.SensorWidth <= 0 || p.SensorHeight <= 0 {
		return fmt.Errorf("player: %w", ErrBodySize)
	}
	if p.MaxSpeedX <= 0 || p.MaxSpeedY <= 0 {
		return fmt.Errorf("player: %w", ErrSpeedCap)
	}
	if p.MaxAmmo < 0 {
		return ErrAmmo
	}
	if p.GroundGrace < 0 || p.ShortHopTime < 0 || p.PreAimTime < 0 || p.AimTime <= 0 {
		return ErrTimer
	}

	a := c.Arrow
	if a.Length <= 0 || a.Thickness <= 0 {
		return fmt.Errorf("arrow: %w", ErrBodySize)
	}
	if a.MaxSpeedX <= 0 || a.MaxSpeedY <= 0 {
		return fmt.Errorf("arrow: %w", ErrSpeedCap)
	}

	if c.Enemy.Width <= 0 || c.Enemy.Height <= 0 {
		return fmt.Errorf("enemy: %w", ErrBodySize)
	}
	if c.Platform.Width <= 0 || c.Platform.Height <= 0 {
		return fmt.Errorf("platform: %w", ErrBodySize)
	}
	if c.Spawner.Enabled && c.Spawner.Interval <= 0 {
		return ErrSpawnDelay
	}

	for key, def := range c.Animations {
		if def.Frames <= 0 || def.FrameDuration <= 0 {
			return fmt.Errorf("animation %q: %w", key, ErrAnimation)
		}
	}
	return nil
}
