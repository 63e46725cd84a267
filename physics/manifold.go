package physics

import "github.com/go-gl/mathgl/mgl64"

type Contact struct {
	Point       mgl64.Vec2
	Penetration float64
}

// Manifold describes one touching pair. Normal is a unit vector pointing
// from BodyA toward BodyB. Fresh is false for a manifold carried over from
// an earlier sub-step that was not regenerated in the current one.
type Manifold struct {
	BodyA    *Body
	BodyB    *Body
	Normal   mgl64.Vec2
	Contacts []Contact
	SubStep  uint64
	Fresh    bool
}

type pairKey struct {
	lo, hi uint64
}

func newPairKey(a, b *Body) pairKey {
	if a.id > b.id {
		a, b = b, a
	}
	return pairKey{a.id, b.id}
}

func (m Manifold) key() pairKey {
	return newPairKey(m.BodyA, m.BodyB)
}

// Involves reports whether b is one side of the manifold.
func (m Manifold) Involves(b *Body) bool {
	return m.BodyA == b || m.BodyB == b
}

func contact(a, b *Body) (Manifold, bool) {
	va, vb := a.Vertices(), b.Vertices()
	n, depth, ok := penetration(va, vb)
	if !ok {
		return Manifold{}, false
	}
	return Manifold{
		BodyA:  a,
		BodyB:  b,
		Normal: n,
		Contacts: []Contact{{
			Point:       deepestPoint(va, n),
			Penetration: depth,
		}},
	}, true
}
