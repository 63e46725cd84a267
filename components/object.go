package components

import (
	"github.com/automoto/kinematic/physics"
	"github.com/yohamta/donburi"
)

type BodyData struct {
	*physics.Body
}

var Body = donburi.NewComponentType[BodyData]()

var Space = donburi.NewComponentType[physics.Space]()
