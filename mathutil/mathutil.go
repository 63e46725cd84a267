package mathutil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis. Gravity pulls along -Up.
var Up = mgl64.Vec2{0, 1}

// ClampFloat restricts v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AngleBetween returns the unsigned angle in radians between a and b.
// Zero-length inputs yield 0.
func AngleBetween(a, b mgl64.Vec2) float64 {
	la, lb := a.Len(), b.Len()
	if la == 0 || lb == 0 {
		return 0
	}
	cos := ClampFloat(a.Dot(b)/(la*lb), -1, 1)
	return math.Acos(cos)
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
