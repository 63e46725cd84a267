package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

var Tween = donburi.NewComponentType[gween.Sequence]()

// PlatformData anchors a tweened platform. The tween yields an offset
// from Origin along Axis.
type PlatformData struct {
	Origin mgl64.Vec2
	Axis   mgl64.Vec2
}

var Platform = donburi.NewComponentType[PlatformData]()
