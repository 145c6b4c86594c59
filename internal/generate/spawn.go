package generate

import (
	"math/rand"

	"belsin/internal/config"
	"belsin/internal/gamemap"
)

// Table is a weighted list of spawn names.
type Table struct {
	names   []string
	weights []int
	total   int
}

// Add appends name with weight. Non-positive weights are ignored.
func (t *Table) Add(name string, weight int) *Table {
	if weight > 0 {
		t.names = append(t.names, name)
		t.weights = append(t.weights, weight)
		t.total += weight
	}
	return t
}

// Total is the sum of all weights.
func (t *Table) Total() int { return t.total }

// Roll picks a name with probability proportional to its weight, or "" when
// the table is empty.
func (t *Table) Roll(rng *rand.Rand) string {
	if t.total == 0 {
		return ""
	}
	roll := rng.Intn(t.total)
	for i, w := range t.weights {
		if roll < w {
			return t.names[i]
		}
		roll -= w
	}
	return t.names[len(t.names)-1]
}

// DepthTable builds the table for depth from the configured entries.
func DepthTable(entries []config.SpawnEntry, depth int) *Table {
	t := &Table{}
	for _, e := range entries {
		t.Add(e.Name, e.WeightAt(depth))
	}
	return t
}

// Spawn is a name to create at a tile.
type Spawn struct {
	Name string
	X, Y int
}

// SpawnCount is how many things a room at depth receives:
// 1d(maxMonsters+3) + depth - 4, never negative.
func SpawnCount(depth, maxMonsters int, rng *rand.Rand) int {
	return max(0, rng.Intn(maxMonsters+3)+1+(depth-1)-3)
}

// RoomSpawns rolls what appears in room at depth. Every spawn gets a distinct
// tile inside the room; a room never receives more spawns than it has tiles.
func RoomSpawns(room gamemap.Rect, depth int, table *Table, maxMonsters int, rng *rand.Rand) []Spawn {
	w, h := room.X2-room.X1+1, room.Y2-room.Y1+1
	n := min(SpawnCount(depth, maxMonsters, rng), w*h)
	if n == 0 || table.Total() == 0 {
		return nil
	}

	taken := make(map[gamemap.Point]bool, n)
	out := make([]Spawn, 0, n)
	for len(out) < n {
		p := gamemap.Point{X: room.X1 + rng.Intn(w), Y: room.Y1 + rng.Intn(h)}
		if taken[p] {
			continue
		}
		taken[p] = true
		out = append(out, Spawn{Name: table.Roll(rng), X: p.X, Y: p.Y})
	}
	return out
}
