package untangle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Smoke test. The internals are already tested.
func TestDecompose(t *testing.T) {
	points := []Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}

	polygons, err := Decompose(points)
	assert.NoError(t, err)
	assert.Len(t, polygons, 1)
	assert.InDelta(t, 1.0, polygons[0].SignedArea(), DefaultEpsilon)
}

func TestDecomposeBadInput(t *testing.T) {
	_, err := Decompose([]Point{{X: 1, Y: 2}})
	assert.Error(t, err)

	nan := 0.0
	nan /= nan
	_, err = Decompose([]Point{{X: 0, Y: 0}, {X: 1, Y: nan}, {X: 2, Y: 0}})
	assert.Error(t, err)

	// Duplicate points collapse before validation, so a path that is all
	// one point is rejected too.
	_, err = Decompose([]Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 1}})
	assert.Error(t, err)
}

func TestDecomposeOptions(t *testing.T) {
	// Coordinates rounded upstream: the two nearly coincident points only
	// collapse into one with a widened tolerance.
	points := []Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1.0004},
		{X: 0, Y: 1},
	}
	polygons, err := Decompose(points, WithTolerance(1e-2))
	assert.NoError(t, err)
	assert.Len(t, polygons, 1)

	// An open three point path can't enclose anything on its own; the
	// engine still returns its best-effort loop rather than failing.
	open, err := Decompose([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, Open())
	assert.NoError(t, err)
	assert.Len(t, open, 1)
}
