// Package leveldata parses TMX levels into plain collision data.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

// Slope property values on ground tiles.
const (
	SlopeUpRight = "45_up_right"
	SlopeUpLeft  = "45_up_left"
)

// Rect is an axis-aligned area in world space. X, Y is the bottom-left
// corner; the world is Y-up.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Ramp is a ground tile whose surface rises toward Slope.
type Ramp struct {
	Rect
	Slope string
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Level holds all collision-relevant data parsed from a TMX level file.
type Level struct {
	Name       string
	Ground     []Rect
	Ramps      []Ramp
	Climbables []Rect
	Spawns     []SpawnPoint
	Width      float64
	Height     float64
}
