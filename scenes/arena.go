package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/grumpus/jam/config"
	"github.com/grumpus/jam/game"
	"github.com/grumpus/jam/input"
	"github.com/grumpus/jam/persistence"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const layerArena ecs.LayerID = iota

// ArenaScene plays one level in a window. The simulation owns its own
// world; the scene's ECS only schedules the front-end systems and renderers.
type ArenaScene struct {
	ecs      *ecs.ECS
	sim      *game.Simulation
	bindings Bindings
	snap     input.Snapshot
	gamepads []ebiten.GamepadID

	store    *persistence.Store
	best     persistence.Record
	recorded bool
	watcher  *config.Watcher

	once sync.Once
}

// NewArenaScene wraps sim. store and watcher may be nil.
func NewArenaScene(sim *game.Simulation, store *persistence.Store, watcher *config.Watcher) *ArenaScene {
	return &ArenaScene{
		sim:      sim,
		bindings: DefaultBindings(),
		store:    store,
		watcher:  watcher,
	}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	best, err := as.store.LoadBest(as.sim.Level().Name)
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	as.best = best

	as.ecs = ecs.NewECS(donburi.NewWorld())

	as.ecs.AddSystem(as.reloadConfig)
	as.ecs.AddSystem(as.pollInput)
	as.ecs.AddSystem(as.tick)
	as.ecs.AddSystem(as.handleGameOver)

	as.ecs.AddRenderer(layerArena, as.drawPlatforms)
	as.ecs.AddRenderer(layerArena, as.drawBodies)
	as.ecs.AddRenderer(layerArena, as.drawEffects)
	as.ecs.AddRenderer(layerArena, as.drawDebug)
	as.ecs.AddRenderer(layerArena, as.drawHUD)
}

func (as *ArenaScene) reloadConfig(*ecs.ECS) {
	if as.watcher == nil {
		return
	}
	path, ok := as.watcher.Poll()
	if !ok {
		return
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		log.Printf("Warning: Keeping current config: %v", err)
		return
	}
	as.sim.SetConfig(cfg)
	log.Printf("Reloaded config from %s", path)
}

func (as *ArenaScene) pollInput(*ecs.ECS) {
	as.gamepads = ebiten.AppendGamepadIDs(as.gamepads[:0])
	as.snap.Push(as.bindings.Poll(as.gamepads))
}

func (as *ArenaScene) tick(*ecs.ECS) {
	if as.sim.Over() {
		return
	}
	as.sim.Tick(1/float64(ebiten.TPS()), &as.snap)
}

// handleGameOver records the run once and restarts on R.
func (as *ArenaScene) handleGameOver(*ecs.ECS) {
	if !as.sim.Over() {
		return
	}
	if !as.recorded {
		as.recorded = true
		rec, improved, err := as.store.SaveBest(as.sim.Level().Name, as.sim.Score())
		if err != nil {
			log.Printf("Warning: Could not save score: %v", err)
		}
		as.best = rec
		if improved {
			log.Printf("New best on %s: %d", as.sim.Level().Name, rec.Best)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		as.sim.Reset()
		as.recorded = false
	}
}
