package game

import (
	"context"
	"log"
	"time"

	"github.com/grumpus/jam/input"
)

// maxCatchUp bounds how many ticks one Advance may run after a stall.
const maxCatchUp = 8

// Loop runs a Simulation at a fixed tick rate.
type Loop struct {
	sim      *Simulation
	tickRate int
	step     float64
	acc      float64

	// OnTick, if set, is called after every tick.
	OnTick func(sim *Simulation)
}

func NewLoop(sim *Simulation, tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{
		sim:      sim,
		tickRate: tickRate,
		step:     1 / float64(tickRate),
	}
}

// Step is the fixed tick duration in seconds.
func (l *Loop) Step() float64 {
	return l.step
}

// Advance accumulates elapsed seconds and runs every whole tick that fits.
// Press and release edges in in are delivered to the first of those ticks
// only. It returns the number of ticks run.
func (l *Loop) Advance(elapsed float64, in input.State) int {
	l.acc += elapsed
	n := 0
	for l.acc >= l.step {
		if n == maxCatchUp {
			// Drop the backlog instead of spiralling.
			l.acc = 0
			break
		}
		if n == 1 && in != nil {
			in = input.Steady(in)
		}
		l.tick(in)
		l.acc -= l.step
		n++
	}
	return n
}

// Run ticks in real time until ctx is done, sampling input from source
// before every tick.
func (l *Loop) Run(ctx context.Context, source func() input.State) {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-ctx.Done():
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			var in input.State
			if source != nil {
				in = source()
			}
			l.tick(in)
		}
	}
}

func (l *Loop) tick(in input.State) {
	l.sim.Tick(l.step, in)
	if l.OnTick != nil {
		l.OnTick(l.sim)
	}
}
