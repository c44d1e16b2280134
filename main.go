package main

import (
	"flag"
	"image"
	"log"

	"github.com/grumpus/jam/assets"
	"github.com/grumpus/jam/config"
	"github.com/grumpus/jam/game"
	"github.com/grumpus/jam/persistence"
	"github.com/grumpus/jam/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	width  int
	height int
	scene  Scene
}

func NewGame(sim *game.Simulation, scene Scene) *Game {
	return &Game{
		width:  sim.Config().World.Width,
		height: sim.Config().World.Height,
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, g.width, g.height)
	return g.width, g.height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default tuning")
	levelName := flag.String("level", assets.DefaultLevel, "embedded level name or path to a .tmx file")
	watch := flag.Bool("watch", false, "reload the config file when it changes")
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

	var watcher *config.Watcher
	if *watch && *configPath != "" {
		watcher, err = config.NewWatcher(*configPath)
		if err != nil {
			log.Printf("Warning: Could not watch config: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	store, err := persistence.Open("grumpus-jam")
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	sim := game.New(cfg, level)
	g := NewGame(sim, scenes.NewArenaScene(sim, store, watcher))

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle("jam")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
