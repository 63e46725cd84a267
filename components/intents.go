package components

import "github.com/yohamta/donburi"

type IntentKind int

const (
	IntentMove IntentKind = iota
	IntentJump
	IntentClimb
)

// Intent is one requested action for the current tick. Value is the signed
// direction for Move and Climb and unused for Jump.
type Intent struct {
	Kind  IntentKind
	Value float64
}

func MoveIntent(dir float64) Intent  { return Intent{Kind: IntentMove, Value: dir} }
func JumpIntent() Intent             { return Intent{Kind: IntentJump} }
func ClimbIntent(dir float64) Intent { return Intent{Kind: IntentClimb, Value: dir} }

// IntentsData is the ordered intent queue of one controller. It is filled
// during the tick and emptied at the end of it.
type IntentsData struct {
	Queue []Intent
}

func (d *IntentsData) Push(intents ...Intent) {
	d.Queue = append(d.Queue, intents...)
}

func (d *IntentsData) Clear() {
	d.Queue = d.Queue[:0]
}

var Intents = donburi.NewComponentType[IntentsData]()
