// Package pathfind finds cost-optimal routes across the dungeon grid.
package pathfind

import (
	"belsin/internal/gamemap"

	"github.com/zyedidia/generic/heap"
)

// Graph is the grid contract A* needs.
type Graph interface {
	Exits(idx, goal int) []gamemap.Exit
	Distance(a, b int) float64
}

// Path is the result of a search. Steps[0] is the start tile.
type Path struct {
	Success bool
	Steps   []int
	Cost    float64
}

// maxExpansions caps the search on pathological maps.
const maxExpansions = 65536

type node struct {
	idx   int
	f     float64
	order int
}

// lessNode orders by f, then by insertion so ties resolve first-in first-out.
func lessNode(a, b node) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.order < b.order
}

// AStar searches from start to goal. The heuristic is straight-line distance,
// which never overestimates since every step costs at least its length.
func AStar(g Graph, start, goal int) Path {
	if start == goal {
		return Path{Success: true, Steps: []int{start}}
	}

	gScore := map[int]float64{start: 0}
	parent := map[int]int{}
	closed := map[int]bool{}
	open := heap.New[node](lessNode)
	open.Push(node{idx: start, f: g.Distance(start, goal)})
	order := 1

	for expansions := 0; open.Size() > 0 && expansions < maxExpansions; expansions++ {
		cur, _ := open.Pop()
		if closed[cur.idx] {
			continue
		}
		if cur.idx == goal {
			return Path{Success: true, Steps: rebuild(parent, start, goal), Cost: gScore[goal]}
		}
		closed[cur.idx] = true

		for _, e := range g.Exits(cur.idx, goal) {
			if closed[e.Idx] {
				continue
			}
			tentative := gScore[cur.idx] + e.Cost
			if old, seen := gScore[e.Idx]; seen && tentative >= old {
				continue
			}
			gScore[e.Idx] = tentative
			parent[e.Idx] = cur.idx
			open.Push(node{idx: e.Idx, f: tentative + g.Distance(e.Idx, goal), order: order})
			order++
		}
	}
	return Path{}
}

func rebuild(parent map[int]int, start, goal int) []int {
	steps := []int{goal}
	for cur := goal; cur != start; {
		cur = parent[cur]
		steps = append(steps, cur)
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}
