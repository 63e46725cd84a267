package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// broadPhaseMargin pads registered bounds so fractional overlaps still
// land in shared cells.
const broadPhaseMargin = 1.0

type BodyKind int

const (
	// Static bodies never move.
	Static BodyKind = iota
	// Kinematic bodies are moved by their velocity each sub-step and are
	// never pushed by contacts. Whoever owns one resolves its penetration.
	Kinematic
)

// Body is a collider registered in a Space. Position is the shape center.
type Body struct {
	Kind     BodyKind
	Shape    Shape
	Position mgl64.Vec2
	Velocity mgl64.Vec2
	Layers   Layer
	Mask     Layer
	Sensor   bool
	Data     any

	id     uint64
	object *resolv.Object
}

func NewBody(kind BodyKind, shape Shape, position mgl64.Vec2) *Body {
	return &Body{
		Kind:     kind,
		Shape:    shape,
		Position: position,
		Layers:   LayerAll,
		Mask:     LayerAll,
	}
}

func (b *Body) ID() uint64 {
	return b.id
}

// Object exposes the broad-phase object, nil until the body is added.
func (b *Body) Object() *resolv.Object {
	return b.object
}

func (b *Body) Bounds() (lo, hi mgl64.Vec2) {
	return b.Shape.Bounds(b.Position)
}

func (b *Body) Vertices() []mgl64.Vec2 {
	return b.Shape.Vertices(b.Position)
}

// Interacts reports whether both bodies accept each other's layers.
func (b *Body) Interacts(other *Body) bool {
	return b.Layers&other.Mask != 0 && other.Layers&b.Mask != 0
}

func (b *Body) sync() {
	if b.object == nil {
		return
	}
	lo, hi := b.Bounds()
	b.object.X = lo.X() - broadPhaseMargin
	b.object.Y = lo.Y() - broadPhaseMargin
	b.object.W = hi.X() - lo.X() + 2*broadPhaseMargin
	b.object.H = hi.Y() - lo.Y() + 2*broadPhaseMargin
	b.object.Update()
}
