package tags

import "github.com/yohamta/donburi"

var (
	Player         = donburi.NewTag().SetName("Player")
	Ground         = donburi.NewTag().SetName("Ground")
	Ramp           = donburi.NewTag().SetName("Ramp")
	Climbable      = donburi.NewTag().SetName("Climbable")
	MovingPlatform = donburi.NewTag().SetName("MovingPlatform")
)

// Resolv tags for physics layers
const (
	ResolvPlayer       = "player"
	ResolvEnemy        = "enemy"
	ResolvClimbable    = "climbable"
	ResolvInteractable = "interactable"
	ResolvGround       = "ground"
)
