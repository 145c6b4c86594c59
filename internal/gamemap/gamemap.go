package gamemap

import (
	"math"

	"belsin/internal/ecs"
)

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle used for rooms.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Map holds one dungeon level. All per-tile slices share the indexing of Idx.
type Map struct {
	Width, Height int
	Tiles         []TileKind
	Revealed      []bool // ever seen by the player; never reset within a level
	Visible       []bool // seen by the player this turn
	Blocked       []bool
	Content       [][]ecs.EntityID
	Rooms         []Rect
	Depth         int
}

// New creates a Map filled with walls.
func New(width, height, depth int) *Map {
	n := width * height
	m := &Map{
		Width:    width,
		Height:   height,
		Tiles:    make([]TileKind, n),
		Revealed: make([]bool, n),
		Visible:  make([]bool, n),
		Blocked:  make([]bool, n),
		Content:  make([][]ecs.EntityID, n),
		Depth:    depth,
	}
	for i := range m.Tiles {
		m.Tiles[i] = TileWall
	}
	return m
}

// Idx converts (x, y) to a tile index.
func (m *Map) Idx(x, y int) int {
	return y*m.Width + x
}

// XY converts a tile index back to (x, y).
func (m *Map) XY(idx int) (int, int) {
	return idx % m.Width, idx / m.Width
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile kind at (x, y). Panics if out of bounds.
func (m *Map) At(x, y int) TileKind {
	return m.Tiles[m.Idx(x, y)]
}

// Set replaces the tile at (x, y).
func (m *Map) Set(x, y int, k TileKind) {
	m.Tiles[m.Idx(x, y)] = k
}

// IsOpaque reports whether (x, y) blocks sight. Out-of-bounds cells are opaque.
func (m *Map) IsOpaque(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.At(x, y).Opaque()
}

// IsBlocked reports whether (x, y) cannot be entered. Out-of-bounds is blocked.
func (m *Map) IsBlocked(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Blocked[m.Idx(x, y)]
}

// PopulateBlocked resets the blocked flags to static obstruction only.
func (m *Map) PopulateBlocked() {
	for i, k := range m.Tiles {
		m.Blocked[i] = k.Obstructs()
	}
}

// ClearContent empties every tile's occupant list.
func (m *Map) ClearContent() {
	for i := range m.Content {
		m.Content[i] = m.Content[i][:0]
	}
}

// ClearVisible resets the transient visible flags.
func (m *Map) ClearVisible() {
	for i := range m.Visible {
		m.Visible[i] = false
	}
}

// Exit is a reachable neighbour of a tile and the cost of stepping there.
type Exit struct {
	Idx  int
	Cost float64
}

var dirs = [8]struct {
	dx, dy int
	cost   float64
}{
	{-1, 0, 1.0}, {1, 0, 1.0}, {0, -1, 1.0}, {0, 1, 1.0},
	{-1, -1, 1.45}, {1, -1, 1.45}, {-1, 1, 1.45}, {1, 1, 1.45},
}

// Exits returns the unblocked 8-directional neighbours of idx.
// goal is always treated as enterable so a path can end on an occupied tile.
func (m *Map) Exits(idx, goal int) []Exit {
	x, y := m.XY(idx)
	out := make([]Exit, 0, 8)
	for _, d := range dirs {
		nx, ny := x+d.dx, y+d.dy
		if !m.InBounds(nx, ny) {
			continue
		}
		n := m.Idx(nx, ny)
		if n != goal && m.Blocked[n] {
			continue
		}
		out = append(out, Exit{Idx: n, Cost: d.cost})
	}
	return out
}

// Distance is the straight-line distance between two tile indices.
func (m *Map) Distance(a, b int) float64 {
	ax, ay := m.XY(a)
	bx, by := m.XY(b)
	dx, dy := float64(ax-bx), float64(ay-by)
	return math.Sqrt(dx*dx + dy*dy)
}
