package components

import (
	"github.com/automoto/kinematic/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	// nil when the built-in demo layout is running
	CurrentLevel *leveldata.Level
	Spawn        mgl64.Vec2
}

// Name is the level name shown in the debug overlay.
func (l *LevelData) Name() string {
	if l.CurrentLevel == nil {
		return "demo"
	}
	return l.CurrentLevel.Name
}

var Level = donburi.NewComponentType[LevelData]()
