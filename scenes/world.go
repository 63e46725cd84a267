package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"sync"

	cfg "github.com/automoto/kinematic/config"
	"github.com/automoto/kinematic/shared/leveldata"
	"github.com/automoto/kinematic/systems"
	"github.com/automoto/kinematic/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrNoSpawn = errors.New("no player spawn points defined in level")

// WorldScene runs one level with a single player controller. A nil level
// selects the built-in demo layout.
type WorldScene struct {
	ecs      *ecs.ECS
	level    *leveldata.Level
	reloader *systems.TuningReloader
	once     sync.Once
}

func NewWorldScene(level *leveldata.Level, reloader *systems.TuningReloader) *WorldScene {
	return &WorldScene{level: level, reloader: reloader}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	w, err := NewWorld(ws.level, ws.reloader)
	if err != nil {
		panic("failed to build world: " + err.Error())
	}
	ws.ecs = w
}

// Configure registers the per-tick pipeline and the renderers. Intents
// live for exactly one tick: they are queued after input polling and
// cleared last.
func Configure(w *ecs.ECS, reloader *systems.TuningReloader) {
	w.AddSystem(reloader.Update)
	w.AddSystem(systems.UpdateInput)
	w.AddSystem(systems.UpdateIntents)
	w.AddSystem(systems.UpdateContacts)
	w.AddSystem(systems.UpdateGravity)
	w.AddSystem(systems.UpdateMovement)
	w.AddSystem(systems.UpdateDamping)
	w.AddSystem(systems.UpdatePlatforms)
	w.AddSystem(systems.UpdatePhysics)
	w.AddSystem(systems.UpdateProbes)
	w.AddSystem(systems.UpdateRespawn)
	w.AddSystem(systems.UpdateDebugToggle)
	w.AddSystem(systems.UpdateSaveTuning)
	w.AddSystem(systems.ClearIntents)

	w.AddRenderer(cfg.Default, systems.DrawBodies)
	w.AddRenderer(cfg.Default, systems.DrawDebug)
}

// NewWorld builds a configured world with its space, level geometry and
// player.
func NewWorld(level *leveldata.Level, reloader *systems.TuningReloader) (*ecs.ECS, error) {
	w := ecs.NewECS(donburi.NewWorld())
	Configure(w, reloader)

	cell := cfg.C.CellSize
	var spawnX, spawnY float64
	if level == nil {
		factory.CreateSpace(w, int(cfg.Level.Width), int(cfg.Level.Height), cell, cell)
		if err := factory.CreateDemoLevel(w); err != nil {
			return nil, fmt.Errorf("demo level: %w", err)
		}
		spawnX, spawnY = cfg.Level.Spawn[0], cfg.Level.Spawn[1]
	} else {
		factory.CreateSpace(w, int(level.Width), int(level.Height), cell, cell)
		if err := factory.BuildLevel(w, level); err != nil {
			return nil, err
		}
		if len(level.Spawns) == 0 {
			return nil, fmt.Errorf("level %s: %w", level.Name, ErrNoSpawn)
		}
		spawnX, spawnY = level.Spawns[0].X, level.Spawns[0].Y
	}

	factory.CreateLevel(w, level, mgl64.Vec2{spawnX, spawnY})
	if _, err := factory.CreatePlayer(w, spawnX, spawnY); err != nil {
		return nil, fmt.Errorf("spawn player: %w", err)
	}
	return w, nil
}
