package physics

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Hit is one shape cast result. Normal is the surface normal of Body
// facing the cast shape; Distance is travel along the cast direction.
type Hit struct {
	Body     *Body
	Normal   mgl64.Vec2
	Distance float64
}

// Cast sweeps shape from origin along dir up to maxDistance and returns
// the bodies on mask layers it would touch, nearest first, at most
// maxHits of them (maxHits <= 0 means unbounded).
func (s *Space) Cast(shape Shape, origin, dir mgl64.Vec2, maxDistance float64, mask Layer, maxHits int) []Hit {
	if !shape.Valid() || dir.Len() == 0 || maxDistance < 0 {
		return nil
	}
	dir = dir.Normalize()

	verts := shape.Vertices(origin)
	lo, hi := shape.Bounds(origin)
	end := dir.Mul(maxDistance)
	sweptLo := mgl64.Vec2{math.Min(lo.X(), lo.X()+end.X()), math.Min(lo.Y(), lo.Y()+end.Y())}
	sweptHi := mgl64.Vec2{math.Max(hi.X(), hi.X()+end.X()), math.Max(hi.Y(), hi.Y()+end.Y())}

	var hits []Hit
	for _, b := range s.candidates(sweptLo, sweptHi, mask) {
		toi, n, ok := sweep(verts, b.Vertices(), dir, maxDistance)
		if !ok {
			continue
		}
		hits = append(hits, Hit{Body: b, Normal: n, Distance: toi})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].Distance == hits[j].Distance {
			return hits[i].Body.id < hits[j].Body.id
		}
		return hits[i].Distance < hits[j].Distance
	})
	if maxHits > 0 && len(hits) > maxHits {
		hits = hits[:maxHits]
	}
	return hits
}

// Overlaps returns the bodies on mask layers intersecting shape at origin.
func (s *Space) Overlaps(shape Shape, origin mgl64.Vec2, mask Layer) []*Body {
	if !shape.Valid() {
		return nil
	}
	verts := shape.Vertices(origin)
	lo, hi := shape.Bounds(origin)

	var out []*Body
	for _, b := range s.candidates(lo, hi, mask) {
		if _, _, ok := penetration(verts, b.Vertices()); ok {
			out = append(out, b)
		}
	}
	return out
}

// candidates runs the broad phase over an axis-aligned region.
func (s *Space) candidates(lo, hi mgl64.Vec2, mask Layer) []*Body {
	if mask == LayerNone {
		return nil
	}
	s.probe.X = lo.X() - broadPhaseMargin
	s.probe.Y = lo.Y() - broadPhaseMargin
	s.probe.W = hi.X() - lo.X() + 2*broadPhaseMargin
	s.probe.H = hi.Y() - lo.Y() + 2*broadPhaseMargin
	s.objects.Add(s.probe)
	c := s.probe.Check(0, 0, mask.Tags()...)
	s.objects.Remove(s.probe)
	if c == nil {
		return nil
	}

	out := make([]*Body, 0, len(c.Objects))
	for _, o := range c.Objects {
		if b, ok := o.Data.(*Body); ok && b.Layers&mask != 0 {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}
