package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/kinematic/components"
	cfg "github.com/automoto/kinematic/config"
	"github.com/automoto/kinematic/physics"
	"github.com/automoto/kinematic/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebugToggle flips the overlay text on the toggle key.
func UpdateDebugToggle(ecs *ecs.ECS) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	if GetAction(components.Input.Get(entry), cfg.ActionToggleDebug).JustPressed {
		cfg.Debug.ShowText = !cfg.Debug.ShowText
	}
}

// DrawBodies outlines every body. The world is Y-up, so y is flipped
// against the screen height.
func DrawBodies(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBody {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	height := float32(screen.Bounds().Dy())

	for _, b := range space.Bodies() {
		c := bodyColor(b)
		verts := b.Vertices()
		for i := range verts {
			p, q := verts[i], verts[(i+1)%len(verts)]
			vector.StrokeLine(screen,
				float32(p.X()), height-float32(p.Y()),
				float32(q.X()), height-float32(q.Y()),
				1, c, false)
		}
	}

	for _, p := range freshContactPoints(space.Manifolds()) {
		x, y := float32(p.X()), height-float32(p.Y())
		vector.StrokeLine(screen, x-2, y, x+2, y, 1, contactColor, false)
		vector.StrokeLine(screen, x, y-2, x, y+2, 1, contactColor, false)
	}
}

var contactColor = color.RGBA{255, 64, 64, 255} // Red

// freshContactPoints collects the contact points generated by the latest
// sub-step.
func freshContactPoints(manifolds []physics.Manifold) []mgl64.Vec2 {
	var out []mgl64.Vec2
	for _, m := range manifolds {
		if !m.Fresh {
			continue
		}
		for _, c := range m.Contacts {
			out = append(out, c.Point)
		}
	}
	return out
}

func bodyColor(b *physics.Body) color.Color {
	switch {
	case b.Layers&physics.LayerPlayer != 0 && b.Layers != physics.LayerAll:
		return color.RGBA{0, 128, 255, 255} // Blue
	case b.Layers&physics.LayerClimbable != 0 && b.Layers != physics.LayerAll:
		return color.RGBA{64, 64, 192, 255}
	case b.Kind == physics.Kinematic:
		return color.RGBA{0, 255, 0, 255} // Green
	default:
		return color.RGBA{160, 160, 160, 255} // Grey
	}
}

// DrawDebug prints the contact state of each player controller.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowText {
		return
	}
	line := 0
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		header := "level " + components.Level.Get(levelEntry).Name()
		if inputEntry, ok := components.Input.First(ecs.World); ok {
			header += " input " + components.Input.Get(inputEntry).LastInputMethod.String()
		}
		ebitenutil.DebugPrintAt(screen, header, 4, 4)
		line++
	}
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Contact) || !e.HasComponent(components.Body) {
			return
		}
		contact := components.Contact.Get(e)
		body := components.Body.Get(e)
		ctrl := components.Controller.Get(e)
		msg := fmt.Sprintf("pos %.1f,%.1f vel %.1f,%.1f\ngrounded %v climb %v/%v jumps %d/%d",
			body.Position.X(), body.Position.Y(), body.Velocity.X(), body.Velocity.Y(),
			contact.Grounded, contact.CanClimb, contact.Climbing, ctrl.Jumps.Current, ctrl.Jumps.Max)
		ebitenutil.DebugPrintAt(screen, msg, 4, 4+line*16)
		line += 2
	})
}
