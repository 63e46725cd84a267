package physics

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

var (
	ErrNilBody      = errors.New("physics: nil body")
	ErrInvalidShape = errors.New("physics: shape extents must be positive")
	ErrOutOfBounds  = errors.New("physics: body outside space bounds")
)

// Space owns every body and steps kinematic motion in sub-steps. Broad
// phase runs on a resolv spatial hash; narrow phase is separating-axis.
type Space struct {
	objects   *resolv.Space
	width     float64
	height    float64
	bodies    []*Body
	manifolds []Manifold
	probe     *resolv.Object
	nextID    uint64
	subStep   uint64
}

func NewSpace(width, height, cellWidth, cellHeight int) *Space {
	log.Printf("physics: space %dx%d, cells %dx%d", width, height, cellWidth, cellHeight)
	return &Space{
		objects: resolv.NewSpace(width, height, cellWidth, cellHeight),
		width:   float64(width),
		height:  float64(height),
		probe:   resolv.NewObject(0, 0, 1, 1),
	}
}

func (s *Space) Width() float64  { return s.width }
func (s *Space) Height() float64 { return s.height }

// Add registers b. Bodies must start inside the space bounds.
func (s *Space) Add(b *Body) error {
	if b == nil {
		return ErrNilBody
	}
	if !b.Shape.Valid() {
		return fmt.Errorf("add body %vx%v: %w", b.Shape.Width, b.Shape.Height, ErrInvalidShape)
	}
	lo, hi := b.Bounds()
	if lo.X() < 0 || lo.Y() < 0 || hi.X() > s.width || hi.Y() > s.height {
		return fmt.Errorf("add body at %v: %w", b.Position, ErrOutOfBounds)
	}

	s.nextID++
	b.id = s.nextID
	b.object = resolv.NewObject(0, 0, 1, 1, b.Layers.Tags()...)
	b.object.Data = b
	s.objects.Add(b.object)
	b.sync()
	b.object.SetShape(resolv.NewRectangle(0, 0, b.object.W, b.object.H))
	b.object.Update()
	s.bodies = append(s.bodies, b)
	return nil
}

// Remove unregisters b and drops its manifolds.
func (s *Space) Remove(b *Body) {
	if b == nil || b.object == nil {
		return
	}
	s.objects.Remove(b.object)
	b.object = nil
	s.bodies = slices.DeleteFunc(s.bodies, func(o *Body) bool { return o == b })
	s.manifolds = slices.DeleteFunc(s.manifolds, func(m Manifold) bool { return m.Involves(b) })
}

func (s *Space) Bodies() []*Body {
	return s.bodies
}

// Manifolds returns the batch produced by the latest sub-step.
func (s *Space) Manifolds() []Manifold {
	return s.manifolds
}

// SubStep is the number of sub-steps run since the space was created.
func (s *Space) SubStep() uint64 {
	return s.subStep
}

// Step advances dt seconds in substeps equal slices. Each sub-step moves
// kinematic bodies by their velocity, rebuilds manifolds and then calls
// hook, whose position changes are picked up before the next sub-step.
func (s *Space) Step(dt float64, substeps int, hook func([]Manifold)) {
	if substeps < 1 {
		substeps = 1
	}
	h := dt / float64(substeps)
	for i := 0; i < substeps; i++ {
		s.subStep++
		for _, b := range s.bodies {
			if b.Kind != Kinematic {
				continue
			}
			b.Position = b.Position.Add(b.Velocity.Mul(h))
			b.sync()
		}

		s.collide()

		if hook != nil {
			hook(s.manifolds)
		}
		for _, b := range s.bodies {
			if b.Kind == Kinematic {
				b.sync()
			}
		}
	}
}

// SetPosition teleports b and refreshes its broad-phase cells.
func (s *Space) SetPosition(b *Body, p mgl64.Vec2) {
	b.Position = p
	b.sync()
}

func (s *Space) collide() {
	next := make([]Manifold, 0, len(s.manifolds))
	seen := make(map[pairKey]bool, len(s.manifolds))

	for _, a := range s.bodies {
		if a.Kind != Kinematic || a.Mask == LayerNone {
			continue
		}
		c := a.object.Check(0, 0, a.Mask.Tags()...)
		if c == nil {
			continue
		}
		for _, o := range c.Objects {
			b, ok := o.Data.(*Body)
			if !ok || b == a {
				continue
			}
			if b.Kind == Kinematic && b.id < a.id {
				continue
			}
			if (a.Sensor && b.Sensor) || !a.Interacts(b) {
				continue
			}
			key := newPairKey(a, b)
			if seen[key] {
				continue
			}
			m, ok := contact(a, b)
			if !ok {
				continue
			}
			m.SubStep = s.subStep
			m.Fresh = true
			seen[key] = true
			next = append(next, m)
		}
	}

	// Pairs that stopped touching stay visible for one sub-step, flagged stale.
	for _, m := range s.manifolds {
		if m.Fresh && !seen[m.key()] {
			m.Fresh = false
			next = append(next, m)
		}
	}
	s.manifolds = next
}
