// Package game drives one arena: it owns the world, the collision room and
// the lifecycle queues, and runs the systems in a fixed order every tick.
package game

import (
	"log"

	"github.com/grumpus/jam/collision"
	"github.com/grumpus/jam/config"
	"github.com/grumpus/jam/input"
	"github.com/grumpus/jam/shared/leveldata"
	"github.com/grumpus/jam/systems"
	"github.com/grumpus/jam/systems/factory"
	"github.com/grumpus/jam/tags"
	"github.com/yohamta/donburi"
)

// tickSystems is the per-tick pass order. Physics moves everything first so
// the logic systems observe resolved positions.
var tickSystems = []systems.System{
	systems.UpdatePhysics,
	systems.UpdatePlayer,
	systems.UpdateEnemies,
	systems.UpdateArrows,
	systems.UpdatePlatforms,
	systems.UpdateSpawner,
	systems.UpdateEffects,
	systems.UpdateAnimations,
}

type Simulation struct {
	cfg   *config.Config
	level *leveldata.Level

	world donburi.World
	room  *collision.Room
	life  *Lifecycle

	ticks int
}

// New builds a simulation of level. A nil cfg uses the defaults and a nil
// level uses the fallback arena.
func New(cfg *config.Config, level *leveldata.Level) *Simulation {
	if cfg == nil {
		cfg = config.Default()
	}
	if level == nil {
		level = leveldata.Default(cfg.World.Width, cfg.World.Height)
	}
	s := &Simulation{level: level}
	s.SetConfig(cfg)
	s.Reset()
	return s
}

// SetConfig swaps the tuning used from the next tick on. Entities already
// spawned keep the limits they were created with. The arena size always
// comes from the level.
func (s *Simulation) SetConfig(cfg *config.Config) {
	c := *cfg
	if c.World.Width != s.level.Width || c.World.Height != s.level.Height {
		if c.World.Width != 0 || c.World.Height != 0 {
			log.Printf("Warning: world size %dx%d replaced by level %q size %dx%d",
				c.World.Width, c.World.Height, s.level.Name, s.level.Width, s.level.Height)
		}
		c.World.Width = s.level.Width
		c.World.Height = s.level.Height
	}
	s.cfg = &c
	if s.life != nil {
		s.life.setConfig(s.cfg)
	}
}

// Reset discards every entity and repopulates the level.
func (s *Simulation) Reset() {
	s.world = donburi.NewWorld()
	s.room = collision.NewRoom(s.world, s.cfg.World.Width, s.cfg.World.Height, s.cfg.World.CellSize)
	s.life = NewLifecycle(s.room, s.cfg)
	s.ticks = 0
	s.populate()
}

func (s *Simulation) populate() {
	for _, p := range s.level.Platforms {
		factory.CreatePlatform(s.room, p.X, p.Y, p.W, p.H, 0)
	}
	factory.CreatePlayer(s.room, s.cfg, s.level.Spawn.X, s.level.Spawn.Y)
	if s.cfg.Spawner.Enabled && s.level.Spawner {
		factory.CreateSpawner(s.world, s.cfg)
	}
}

// Tick advances the simulation by dt seconds with the given input.
func (s *Simulation) Tick(dt float64, in input.State) {
	if in == nil {
		in = input.None
	}
	s.life.beginTick()

	ctx := &systems.Context{
		World:  s.world,
		Room:   s.room,
		Config: s.cfg,
		Input:  in,
		Sink:   s.life,
		Dt:     dt,
	}
	for _, system := range tickSystems {
		system(ctx)
	}

	s.life.Flush()
	s.ticks++
}

func (s *Simulation) Config() *config.Config {
	return s.cfg
}

func (s *Simulation) Level() *leveldata.Level {
	return s.level
}

func (s *Simulation) World() donburi.World {
	return s.world
}

func (s *Simulation) Room() *collision.Room {
	return s.room
}

// Player returns the player entry while the player is alive.
func (s *Simulation) Player() (*donburi.Entry, bool) {
	return tags.Player.First(s.world)
}

// Events returns a copy of what happened during the last tick.
func (s *Simulation) Events() []Event {
	out := make([]Event, len(s.life.events))
	copy(out, s.life.events)
	return out
}

func (s *Simulation) Ticks() int {
	return s.ticks
}

func (s *Simulation) Score() int {
	return s.life.Score()
}

// Over reports whether the player has been destroyed.
func (s *Simulation) Over() bool {
	_, ok := s.Player()
	return !ok
}
