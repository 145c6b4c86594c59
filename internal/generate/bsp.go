// Package generate builds dungeon levels and decides what spawns in them.
package generate

import (
	"math/rand"

	"belsin/internal/config"
	"belsin/internal/gamemap"
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// ParseCorridor maps a config corridor name to a style. Unknown names
// fall back to L-shaped tunnels.
func ParseCorridor(s string) CorridorStyle {
	switch s {
	case "z":
		return CorridorZShaped
	case "straight":
		return CorridorStraight
	}
	return CorridorLShaped
}

// Config drives generation of one level.
type Config struct {
	Width, Height int
	MinLeafSize   int
	MaxLeafSize   int
	MinRoomSize   int
	RoomPadding   int
	Corridor      CorridorStyle
	Depth         int
	Rand          *rand.Rand
}

// FromConfig builds a generator config for depth from the map settings.
func FromConfig(mc config.MapConfig, depth int, rng *rand.Rand) *Config {
	return &Config{
		Width:       mc.Width,
		Height:      mc.Height,
		MinLeafSize: mc.MinLeaf,
		MaxLeafSize: mc.MaxLeaf,
		MinRoomSize: mc.MinRoom,
		RoomPadding: mc.RoomPadding,
		Corridor:    ParseCorridor(mc.Corridor),
		Depth:       depth,
		Rand:        rng,
	}
}

// bspLeaf is a node in the BSP tree.
type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
	room        *gamemap.Rect
}

// split divides the leaf in two, returning false when it is too small.
func (l *bspLeaf) split(cfg *Config) bool {
	if l.left != nil || l.right != nil {
		return false
	}
	splitH := cfg.Rand.Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		splitH = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		splitH = true
	}

	size := l.H
	if !splitH {
		size = l.W
	}
	lo, hi := cfg.MinLeafSize, size-cfg.MinLeafSize
	if size <= cfg.MinLeafSize*2 || lo >= hi {
		return false
	}
	at := lo + cfg.Rand.Intn(hi-lo+1)

	if splitH {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: l.W, H: at}
		l.right = &bspLeaf{X: l.X, Y: l.Y + at, W: l.W, H: l.H - at}
	} else {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: at, H: l.H}
		l.right = &bspLeaf{X: l.X + at, Y: l.Y, W: l.W - at, H: l.H}
	}
	return true
}

// createRooms carves one room in every terminal leaf, left to right.
func (l *bspLeaf) createRooms(m *gamemap.Map, cfg *Config) {
	if l.left != nil || l.right != nil {
		if l.left != nil {
			l.left.createRooms(m, cfg)
		}
		if l.right != nil {
			l.right.createRooms(m, cfg)
		}
		return
	}
	pad, minSize := cfg.RoomPadding, cfg.MinRoomSize
	availW := max(minSize, l.W-2*pad)
	availH := max(minSize, l.H-2*pad)

	rw := min(minSize+cfg.Rand.Intn(max(1, availW-minSize+1)), l.W-2*pad)
	rh := min(minSize+cfg.Rand.Intn(max(1, availH-minSize+1)), l.H-2*pad)
	rw, rh = max(rw, 3), max(rh, 3)

	rx := max(1, l.X+pad+cfg.Rand.Intn(max(1, l.W-rw-2*pad+1)))
	ry := max(1, l.Y+pad+cfg.Rand.Intn(max(1, l.H-rh-2*pad+1)))
	// Keep a solid one-tile border around the map.
	if rx+rw >= m.Width {
		rw = m.Width - rx - 1
	}
	if ry+rh >= m.Height {
		rh = m.Height - ry - 1
	}
	if rw < 3 || rh < 3 {
		return
	}

	room := gamemap.Rect{X1: rx, Y1: ry, X2: rx + rw - 1, Y2: ry + rh - 1}
	l.room = &room
	carveRoom(m, room)
}

func carveRoom(m *gamemap.Map, room gamemap.Rect) {
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			m.Set(x, y, gamemap.TileFloor)
		}
	}
	m.Rooms = append(m.Rooms, room)
}

// getRoom returns a room from this subtree, preferring the left side.
func (l *bspLeaf) getRoom() *gamemap.Rect {
	if l.room != nil {
		return l.room
	}
	var lRoom, rRoom *gamemap.Rect
	if l.left != nil {
		lRoom = l.left.getRoom()
	}
	if l.right != nil {
		rRoom = l.right.getRoom()
	}
	if lRoom == nil {
		return rRoom
	}
	return lRoom
}

// connectChildren carves corridors between the two halves of every split.
func (l *bspLeaf) connectChildren(m *gamemap.Map, cfg *Config) {
	if l.left == nil || l.right == nil {
		return
	}
	l.left.connectChildren(m, cfg)
	l.right.connectChildren(m, cfg)

	lRoom, rRoom := l.left.getRoom(), l.right.getRoom()
	if lRoom == nil || rRoom == nil {
		return
	}
	lx, ly := lRoom.Center()
	rx, ry := rRoom.Center()
	carveCorridor(m, lx, ly, rx, ry, cfg)
}

// Generate builds a level for cfg.Depth. The down stairs sit at the centre of
// the last room; callers place the player at the centre of the first. There
// is always at least one room.
func Generate(cfg *Config) *gamemap.Map {
	m := gamemap.New(cfg.Width, cfg.Height, cfg.Depth)
	root := &bspLeaf{W: cfg.Width, H: cfg.Height}

	leaves := []*bspLeaf{root}
	for splitAny := true; splitAny; {
		splitAny = false
		var next []*bspLeaf
		for _, leaf := range leaves {
			if leaf.left != nil || leaf.right != nil {
				next = append(next, leaf.left, leaf.right)
				continue
			}
			if leaf.W > cfg.MaxLeafSize || leaf.H > cfg.MaxLeafSize || cfg.Rand.Float64() > 0.25 {
				if leaf.split(cfg) {
					next = append(next, leaf.left, leaf.right)
					splitAny = true
					continue
				}
			}
			next = append(next, leaf)
		}
		leaves = next
	}

	root.createRooms(m, cfg)
	root.connectChildren(m, cfg)

	if len(m.Rooms) == 0 {
		w, h := max(3, min(cfg.MinRoomSize, cfg.Width-2)), max(3, min(cfg.MinRoomSize, cfg.Height-2))
		x, y := max(1, (cfg.Width-w)/2), max(1, (cfg.Height-h)/2)
		carveRoom(m, gamemap.Rect{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1})
	}

	sx, sy := m.Rooms[len(m.Rooms)-1].Center()
	m.Set(sx, sy, gamemap.TileDownStairs)
	m.PopulateBlocked()
	return m
}
