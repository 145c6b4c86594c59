package pathfind

import (
	"testing"

	"belsin/internal/gamemap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openMap returns a w×h map with a one-tile wall border.
func openMap(w, h int) *gamemap.Map {
	m := gamemap.New(w, h, 1)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.Set(x, y, gamemap.TileFloor)
		}
	}
	m.PopulateBlocked()
	return m
}

func TestAStarStraightLine(t *testing.T) {
	m := openMap(10, 5)
	p := AStar(m, m.Idx(1, 2), m.Idx(6, 2))

	require.True(t, p.Success)
	assert.Equal(t, m.Idx(1, 2), p.Steps[0])
	assert.Equal(t, m.Idx(6, 2), p.Steps[len(p.Steps)-1])
	assert.Len(t, p.Steps, 6)
	assert.InDelta(t, 5.0, p.Cost, 1e-9)
}

func TestAStarPrefersDiagonal(t *testing.T) {
	m := openMap(10, 10)
	p := AStar(m, m.Idx(1, 1), m.Idx(4, 4))

	require.True(t, p.Success)
	assert.Len(t, p.Steps, 4, "three diagonal steps are the cheapest route")
	assert.InDelta(t, 3*1.45, p.Cost, 1e-9)
}

func TestAStarRoutesAroundWall(t *testing.T) {
	m := openMap(9, 7)
	// Vertical wall at x=4 with a gap at y=5.
	for y := 1; y <= 4; y++ {
		m.Set(4, y, gamemap.TileWall)
	}
	m.PopulateBlocked()

	p := AStar(m, m.Idx(2, 2), m.Idx(6, 2))
	require.True(t, p.Success)
	for _, s := range p.Steps {
		x, y := m.XY(s)
		assert.False(t, x == 4 && y <= 4, "path crosses the wall at (%d,%d)", x, y)
	}
}

func TestAStarGoalMayBeBlocked(t *testing.T) {
	m := openMap(8, 5)
	goal := m.Idx(5, 2)
	m.Blocked[goal] = true

	p := AStar(m, m.Idx(1, 2), goal)
	require.True(t, p.Success)
	assert.Equal(t, goal, p.Steps[len(p.Steps)-1])
}

func TestAStarNoRoute(t *testing.T) {
	m := openMap(9, 5)
	for y := 0; y < 5; y++ {
		m.Set(4, y, gamemap.TileWall)
	}
	m.PopulateBlocked()

	p := AStar(m, m.Idx(1, 2), m.Idx(7, 2))
	assert.False(t, p.Success)
	assert.Empty(t, p.Steps)
}

func TestAStarStartIsGoal(t *testing.T) {
	m := openMap(5, 5)
	p := AStar(m, m.Idx(2, 2), m.Idx(2, 2))
	require.True(t, p.Success)
	assert.Equal(t, []int{m.Idx(2, 2)}, p.Steps)
}
