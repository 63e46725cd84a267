package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpace_Cast(t *testing.T) {
	s, floor := createTestSpace(t)
	shelf := NewBody(Static, Box(20, 4), mgl64.Vec2{100, 60})
	shelf.Layers = LayerGround
	require.NoError(t, s.Add(shelf))
	down := mgl64.Vec2{0, -1}

	t.Run("nearest first", func(t *testing.T) {
		hits := s.Cast(Box(10, 10), mgl64.Vec2{100, 70}, down, 20, LayerGround, 0)
		require.Len(t, hits, 2)
		assert.Same(t, shelf, hits[0].Body)
		assert.InDelta(t, 3.0, hits[0].Distance, 1e-9)
		assert.Same(t, floor, hits[1].Body)
		assert.InDelta(t, 10.0, hits[1].Distance, 1e-9)
		assert.InDelta(t, 1.0, hits[0].Normal.Y(), 1e-9)
	})

	t.Run("bounded hit count", func(t *testing.T) {
		hits := s.Cast(Box(10, 10), mgl64.Vec2{100, 70}, down, 20, LayerGround, 1)
		require.Len(t, hits, 1)
		assert.Same(t, shelf, hits[0].Body)
	})

	t.Run("direction need not be unit", func(t *testing.T) {
		hits := s.Cast(Box(10, 10), mgl64.Vec2{100, 70}, mgl64.Vec2{0, -5}, 20, LayerGround, 1)
		require.Len(t, hits, 1)
		assert.InDelta(t, 3.0, hits[0].Distance, 1e-9)
	})

	t.Run("mask excludes layer", func(t *testing.T) {
		assert.Empty(t, s.Cast(Box(10, 10), mgl64.Vec2{100, 70}, down, 20, LayerClimbable, 0))
	})

	t.Run("out of reach", func(t *testing.T) {
		assert.Empty(t, s.Cast(Box(10, 10), mgl64.Vec2{100, 70}, down, 2.5, LayerGround, 0))
	})

	t.Run("degenerate input", func(t *testing.T) {
		assert.Empty(t, s.Cast(Box(10, 10), mgl64.Vec2{100, 70}, mgl64.Vec2{}, 20, LayerGround, 0))
		assert.Empty(t, s.Cast(Box(0, 10), mgl64.Vec2{100, 70}, down, 20, LayerGround, 0))
	})
}

func TestSpace_CastRamp(t *testing.T) {
	s := NewSpace(200, 200, 16, 16)
	ramp := NewBody(Static, Ramp(20, 20, RampUpRight), mgl64.Vec2{100, 65})
	ramp.Layers = LayerGround
	require.NoError(t, s.Add(ramp))

	hits := s.Cast(Box(4, 4), mgl64.Vec2{100, 70}, mgl64.Vec2{0, -1}, 5, LayerGround, 1)
	require.Len(t, hits, 1)
	assert.InDelta(t, 1.0, hits[0].Distance, 1e-9)
	assert.Greater(t, hits[0].Normal.Y(), 0.0)
	assert.Less(t, hits[0].Normal.X(), 0.0)
}

func TestSpace_Overlaps(t *testing.T) {
	s, _ := createTestSpace(t)
	rope := NewBody(Static, Box(2, 40), mgl64.Vec2{50, 100})
	rope.Layers = LayerClimbable
	rope.Sensor = true
	require.NoError(t, s.Add(rope))

	got := s.Overlaps(Box(6, 11), mgl64.Vec2{52, 100}, LayerClimbable)
	require.Len(t, got, 1)
	assert.Same(t, rope, got[0])

	assert.Empty(t, s.Overlaps(Box(6, 11), mgl64.Vec2{60, 100}, LayerClimbable))
	assert.Empty(t, s.Overlaps(Box(6, 11), mgl64.Vec2{52, 100}, LayerGround))
	assert.Empty(t, s.Overlaps(Box(6, 11), mgl64.Vec2{52, 100}, LayerNone))
}
