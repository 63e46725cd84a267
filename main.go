package main

import (
	"errors"
	"flag"
	"image"
	"io/fs"
	"log"
	"os"

	"github.com/automoto/kinematic/config"
	"github.com/automoto/kinematic/scenes"
	"github.com/automoto/kinematic/shared/leveldata"
	"github.com/automoto/kinematic/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
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
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	levelPath := flag.String("level", "", "TMX level to load instead of the demo layout")
	tuningPath := flag.String("tuning", config.Level.TuningFile, "YAML tuning file, reloaded on change")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("kinematic")

	// Initialize persistence and load saved tuning
	if err := systems.InitPersistence("kinematic"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSavedTuning(); err == nil && saved != nil {
		saved.Apply()
	}

	var reloader *systems.TuningReloader
	if *tuningPath != "" {
		if t, err := config.LoadTuning(*tuningPath); err == nil {
			t.Apply()
		} else if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Warning: Could not load tuning: %v", err)
		}
		watcher, err := config.NewTuningWatcher(*tuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			defer watcher.Close()
			reloader = systems.NewTuningReloader(watcher)
		}
	}

	// Tuning may change the tick rate, so set it once everything is applied
	ebiten.SetTPS(config.Physics.TickRate)

	var level *leveldata.Level
	if *levelPath != "" {
		var err error
		level, err = leveldata.Load(os.DirFS("."), *levelPath)
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
	}

	if err := ebiten.RunGame(NewGame(scenes.NewWorldScene(level, reloader))); err != nil {
		log.Fatal(err)
	}
}
