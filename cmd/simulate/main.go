// Command simulate runs the arena headless with a scripted input plan and
// reports what happened.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/grumpus/jam/assets"
	"github.com/grumpus/jam/components"
	"github.com/grumpus/jam/config"
	"github.com/grumpus/jam/game"
	"github.com/grumpus/jam/input"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default tuning")
	levelName := flag.String("level", assets.DefaultLevel, "embedded level name or path to a .tmx file")
	plan := flag.String("plan", "jump@0.5+0.1,right@0.5+1.5,jump@1.2+0.6", "input cues as action@start+duration, comma separated")
	seconds := flag.Float64("seconds", 10, "simulated time to run")
	tps := flag.Int("tps", 60, "ticks per simulated second")
	realtime := flag.Bool("realtime", false, "run at wall-clock speed instead of as fast as possible")
	quiet := flag.Bool("quiet", false, "do not log state transitions")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	cfg.Debug.LogTransitions = !*quiet

	level, err := assets.LoadLevel(*levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	script, err := game.ParseScript(*plan)
	if err != nil {
		log.Fatalf("Bad plan: %v", err)
	}

	sim := game.New(cfg, level)
	loop := game.NewLoop(sim, *tps)
	r := &runner{sim: sim, script: script, step: loop.Step(), over: make(chan struct{})}
	loop.OnTick = r.observe

	if *realtime {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		ctx, stop := context.WithTimeout(ctx, time.Duration(*seconds*float64(time.Second)))
		defer stop()
		go func() {
			<-r.done()
			stop()
		}()
		loop.Run(ctx, r.input)
	} else {
		for !r.finished(*seconds) {
			loop.Advance(loop.Step(), r.input())
		}
	}

	r.report()
}

// runner feeds the script into the simulation and tallies events.
type runner struct {
	sim    *game.Simulation
	script game.Script
	step   float64
	snap   input.Snapshot

	arrows, skulls int
	over           chan struct{}
}

func (r *runner) elapsed() float64 {
	return float64(r.sim.Ticks()) * r.step
}

func (r *runner) input() input.State {
	r.snap.Push(r.script.Held(r.elapsed()))
	return &r.snap
}

func (r *runner) done() <-chan struct{} {
	return r.over
}

func (r *runner) finished(seconds float64) bool {
	return r.sim.Over() || r.elapsed() >= seconds
}

func (r *runner) observe(sim *game.Simulation) {
	for _, ev := range sim.Events() {
		switch ev.Kind {
		case game.EventArrowFired:
			r.arrows++
			log.Printf("t=%.2fs arrow %s charge %.2f", r.elapsed(), ev.Dir, ev.Charge)
		case game.EventSkullSpawned:
			r.skulls++
		case game.EventScore:
			log.Printf("t=%.2fs skull down, score %d", r.elapsed(), sim.Score())
		}
	}
	if sim.Over() {
		select {
		case <-r.over:
		default:
			close(r.over)
		}
	}
}

func (r *runner) report() {
	log.Printf("ticks=%d time=%.2fs score=%d arrows=%d skulls=%d over=%v",
		r.sim.Ticks(), r.elapsed(), r.sim.Score(), r.arrows, r.skulls, r.sim.Over())
	if e, ok := r.sim.Player(); ok {
		p := components.Player.Get(e)
		b := components.Body.Get(e)
		log.Printf("player %s at (%.1f, %.1f) ammo %d", p.State, b.X, b.Y, p.Ammo)
	}
}
