// Command termplay plays the arena in a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/grumpus/jam/assets"
	"github.com/grumpus/jam/config"
	"github.com/grumpus/jam/game"
	"github.com/grumpus/jam/input"
	"github.com/grumpus/jam/persistence"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

type terminal struct {
	screen tcell.Screen
	sim    *game.Simulation
	loop   *game.Loop
	keys   *keyHold
	snap   input.Snapshot
	draw   renderer
	sound  *sound

	store    *persistence.Store
	best     int
	recorded bool
}

func (t *terminal) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R') && t.sim.Over() {
			t.sim.Reset()
			t.keys.reset()
			t.recorded = false
			return true
		}
		t.keys.press(actionFor(ev), now)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *terminal) frame(elapsed time.Duration, now time.Time) {
	if !t.sim.Over() {
		t.snap.Push(t.keys.held(now))
		t.loop.Advance(elapsed.Seconds(), &t.snap)
	} else if !t.recorded {
		t.recorded = true
		rec, _, err := t.store.SaveBest(t.sim.Level().Name, t.sim.Score())
		if err != nil {
			log.Printf("Warning: Could not save score: %v", err)
		}
		t.best = rec.Best
	}
	t.draw.draw(t.sim, t.best)
}

func (t *terminal) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !t.handleEvent(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			t.frame(now.Sub(last), now)
			last = now
		}
	}
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default tuning")
	levelName := flag.String("level", assets.DefaultLevel, "embedded level name or path to a .tmx file")
	hold := flag.Duration("hold", 300*time.Millisecond, "how long a key counts as held after its last repeat")
	mute := flag.Bool("mute", false, "disable sound cues")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	level, err := assets.LoadLevel(*levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	store, err := persistence.Open("grumpus-jam")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	best, err := store.LoadBest(level.Name)
	if err != nil {
		log.Printf("Warning: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	sim := game.New(cfg, level)
	t := &terminal{
		screen: screen,
		sim:    sim,
		loop:   game.NewLoop(sim, 60),
		keys:   newKeyHold(*hold),
		draw:   renderer{screen: screen},
		sound:  newSound(*mute),
		store:  store,
		best:   best.Best,
	}
	t.loop.OnTick = func(s *game.Simulation) {
		t.sound.play(s.Events())
	}
	defer func() {
		t.sound.close()
		screen.Fini()
	}()

	t.run()
}
