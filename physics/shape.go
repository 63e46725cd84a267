package physics

import "github.com/go-gl/mathgl/mgl64"

type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeRamp
)

// RampDirection tells which side of a ramp is the high one.
type RampDirection int

const (
	RampUpRight RampDirection = iota
	RampUpLeft
)

// Shape is a convex collider described by its axis-aligned extents.
// Box fills the extents; Ramp is the right triangle under the diagonal.
type Shape struct {
	Kind      ShapeKind
	Width     float64
	Height    float64
	Direction RampDirection
}

func Box(w, h float64) Shape {
	return Shape{Kind: ShapeBox, Width: w, Height: h}
}

func Ramp(w, h float64, dir RampDirection) Shape {
	return Shape{Kind: ShapeRamp, Width: w, Height: h, Direction: dir}
}

func (s Shape) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Scaled returns s uniformly scaled about its center.
func (s Shape) Scaled(f float64) Shape {
	s.Width *= f
	s.Height *= f
	return s
}

// Vertices returns the world-space outline of s centered on center.
func (s Shape) Vertices(center mgl64.Vec2) []mgl64.Vec2 {
	hw, hh := s.Width/2, s.Height/2
	x0, y0 := center.X()-hw, center.Y()-hh
	x1, y1 := center.X()+hw, center.Y()+hh

	if s.Kind == ShapeRamp {
		if s.Direction == RampUpLeft {
			return []mgl64.Vec2{{x0, y0}, {x1, y0}, {x0, y1}}
		}
		return []mgl64.Vec2{{x0, y0}, {x1, y0}, {x1, y1}}
	}
	return []mgl64.Vec2{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

// Bounds returns the axis-aligned bounds of s centered on center.
func (s Shape) Bounds(center mgl64.Vec2) (lo, hi mgl64.Vec2) {
	half := mgl64.Vec2{s.Width / 2, s.Height / 2}
	return center.Sub(half), center.Add(half)
}
