package game

import (
	"github.com/grumpus/jam/collision"
	"github.com/grumpus/jam/components"
	"github.com/grumpus/jam/config"
	"github.com/grumpus/jam/systems/factory"
	"github.com/yohamta/donburi"
)

type EventKind int

const (
	EventArrowFired EventKind = iota
	EventEffect
	EventSkullSpawned
	EventScore
)

func (k EventKind) String() string {
	switch k {
	case EventArrowFired:
		return "arrow"
	case EventEffect:
		return "effect"
	case EventSkullSpawned:
		return "skull"
	case EventScore:
		return "score"
	}
	return "unknown"
}

// Event records something a front-end may want to react to, such as a
// sound cue. Only the fields relevant to Kind are set.
type Event struct {
	Kind   EventKind
	X, Y   float64
	Key    string
	Dir    components.Direction
	Charge float64
	Points int
}

// Lifecycle queues destroy and spawn requests made during the logic pass
// and applies them together in Flush, so no system sees an entity vanish
// or appear in the middle of a tick.
type Lifecycle struct {
	room *collision.Room
	cfg  *config.Config

	destroys []donburi.Entity
	marked   map[donburi.Entity]struct{}
	spawns   []func()

	events []Event
	score  int
}

func NewLifecycle(room *collision.Room, cfg *config.Config) *Lifecycle {
	return &Lifecycle{
		room:   room,
		cfg:    cfg,
		marked: make(map[donburi.Entity]struct{}),
	}
}

// Destroy queues e for removal. Repeated requests are ignored.
func (l *Lifecycle) Destroy(e donburi.Entity) {
	if _, ok := l.marked[e]; ok {
		return
	}
	l.marked[e] = struct{}{}
	l.destroys = append(l.destroys, e)
}

func (l *Lifecycle) SpawnArrow(x, y float64, dir components.Direction, charge float64) {
	l.events = append(l.events, Event{Kind: EventArrowFired, X: x, Y: y, Dir: dir, Charge: charge})
	l.spawns = append(l.spawns, func() {
		factory.CreateArrow(l.room, l.cfg, x, y, dir, charge)
	})
}

func (l *Lifecycle) SpawnEffect(x, y float64, key string) {
	l.events = append(l.events, Event{Kind: EventEffect, X: x, Y: y, Key: key})
	l.spawns = append(l.spawns, func() {
		factory.CreateEffect(l.room.World(), l.cfg, x, y, key)
	})
}

func (l *Lifecycle) SpawnPlatform(x, y float64) {
	l.spawns = append(l.spawns, func() {
		factory.CreateTimedPlatform(l.room, l.cfg, x, y)
	})
}

func (l *Lifecycle) SpawnSkull(x, y float64) {
	l.events = append(l.events, Event{Kind: EventSkullSpawned, X: x, Y: y})
	l.spawns = append(l.spawns, func() {
		factory.CreateSkull(l.room, l.cfg, x, y)
	})
}

func (l *Lifecycle) AddScore(points int) {
	l.score += points
	l.events = append(l.events, Event{Kind: EventScore, Points: points})
}

func (l *Lifecycle) Score() int {
	return l.score
}

// Pending reports how many destroys and spawns are waiting for Flush.
func (l *Lifecycle) Pending() (destroys, spawns int) {
	return len(l.destroys), len(l.spawns)
}

// Flush purges every queued entity from all collision groups and the world,
// then runs the queued spawns.
func (l *Lifecycle) Flush() {
	world := l.room.World()
	for _, e := range l.destroys {
		l.room.RemoveFromAny(e)
		if world.Valid(e) {
			world.Remove(e)
		}
	}
	l.destroys = l.destroys[:0]
	clear(l.marked)

	spawns := l.spawns
	l.spawns = nil
	for _, spawn := range spawns {
		spawn()
	}
}

// beginTick forgets the previous tick's events.
func (l *Lifecycle) beginTick() {
	l.events = l.events[:0]
}

func (l *Lifecycle) setConfig(cfg *config.Config) {
	l.cfg = cfg
}
