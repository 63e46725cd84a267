package physics

import (
	"math"

	"github.com/automoto/kinematic/mathutil"
	"github.com/go-gl/mathgl/mgl64"
)

// contactEpsilon separates resting contact from penetration.
const contactEpsilon = 1e-9

func edgeNormals(verts []mgl64.Vec2) []mgl64.Vec2 {
	axes := make([]mgl64.Vec2, 0, len(verts))
	for i := range verts {
		e := verts[(i+1)%len(verts)].Sub(verts[i])
		n := mgl64.Vec2{-e.Y(), e.X()}
		if l := n.Len(); l > 0 {
			axes = append(axes, n.Mul(1/l))
		}
	}
	return axes
}

func separatingAxes(a, b []mgl64.Vec2) []mgl64.Vec2 {
	return append(edgeNormals(a), edgeNormals(b)...)
}

func project(verts []mgl64.Vec2, axis mgl64.Vec2) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range verts {
		d := v.Dot(axis)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

func centroid(verts []mgl64.Vec2) mgl64.Vec2 {
	var c mgl64.Vec2
	for _, v := range verts {
		c = c.Add(v)
	}
	return c.Mul(1 / float64(len(verts)))
}

// penetration finds the minimum translation between two convex outlines.
// normal points from a toward b; depth is how far b must move along it to
// separate.
func penetration(a, b []mgl64.Vec2) (normal mgl64.Vec2, depth float64, ok bool) {
	depth = math.Inf(1)
	for _, axis := range separatingAxes(a, b) {
		aLo, aHi := project(a, axis)
		bLo, bHi := project(b, axis)
		overlap := math.Min(aHi, bHi) - math.Max(aLo, bLo)
		if overlap <= contactEpsilon {
			return mgl64.Vec2{}, 0, false
		}
		if overlap < depth {
			depth = overlap
			normal = axis
		}
	}
	if centroid(b).Sub(centroid(a)).Dot(normal) < 0 {
		normal = normal.Mul(-1)
	}
	return normal, depth, true
}

// deepestPoint averages the vertices of a that reach furthest along n.
func deepestPoint(a []mgl64.Vec2, n mgl64.Vec2) mgl64.Vec2 {
	best := math.Inf(-1)
	var sum mgl64.Vec2
	count := 0
	for _, v := range a {
		d := v.Dot(n)
		switch {
		case d > best+contactEpsilon:
			best, sum, count = d, v, 1
		case math.Abs(d-best) <= contactEpsilon:
			sum = sum.Add(v)
			count++
		}
	}
	return sum.Mul(1 / float64(count))
}

// sweep moves a along the unit direction dir and reports the first
// distance in [0, maxDistance] at which it touches b. normal is the
// surface normal of b facing a. An initial overlap reports distance 0.
func sweep(a, b []mgl64.Vec2, dir mgl64.Vec2, maxDistance float64) (toi float64, normal mgl64.Vec2, ok bool) {
	enter, exit := math.Inf(-1), math.Inf(1)
	for _, axis := range separatingAxes(a, b) {
		aLo, aHi := project(a, axis)
		bLo, bHi := project(b, axis)
		v := dir.Dot(axis)
		if math.Abs(v) < contactEpsilon {
			if aHi <= bLo || aLo >= bHi {
				return 0, mgl64.Vec2{}, false
			}
			continue
		}
		t0 := (bLo - aHi) / v
		t1 := (bHi - aLo) / v
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > enter {
			enter = t0
			normal = axis.Mul(-mathutil.Sign(v))
		}
		exit = math.Min(exit, t1)
		if enter >= exit {
			return 0, mgl64.Vec2{}, false
		}
	}
	if exit <= 0 || enter > maxDistance {
		return 0, mgl64.Vec2{}, false
	}
	if enter < 0 {
		n, _, overlapping := penetration(a, b)
		if !overlapping {
			return 0, normal, true
		}
		return 0, n.Mul(-1), true
	}
	return enter, normal, true
}
