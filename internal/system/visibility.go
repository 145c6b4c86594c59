package system

import (
	"belsin/internal/component"
	"belsin/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
)

// Octant multipliers for recursive shadowcasting. A sweep offset (dx, dy)
// maps to the world as (cx + dx*xx + dy*xy, cy + dx*yx + dy*yy).
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// Visibility recomputes the visible set of every dirty sighted entity. The
// player's result is also written into the map's Visible and Revealed flags.
func Visibility(ctx *Context) error {
	w, m := ctx.World, ctx.Map
	for _, id := range w.Query(component.CFov, component.CPosition) {
		fov := w.Get(id, component.CFov).(component.Fov)
		if !fov.Dirty {
			continue
		}
		pos := w.Get(id, component.CPosition).(component.Position)

		fov.Visible = ComputeFOV(m, pos.X, pos.Y, fov.Range)
		fov.Dirty = false
		w.Add(id, fov)

		if !w.Has(id, component.CPlayer) {
			continue
		}
		m.ClearVisible()
		fov.Visible.Each(func(p gamemap.Point) {
			i := m.Idx(p.X, p.Y)
			m.Visible[i] = true
			m.Revealed[i] = true
		})
		ctx.Logger.WithField("system", "visibility").
			Debugf("player sees %d tiles", fov.Visible.Size())
	}
	return nil
}

// ComputeFOV returns the in-bounds tiles visible from (x, y) within radius.
func ComputeFOV(m *gamemap.Map, x, y, radius int) mapset.Set[gamemap.Point] {
	seen := mapset.New[gamemap.Point]()
	if !m.InBounds(x, y) {
		return seen
	}
	seen.Put(gamemap.Point{X: x, Y: y})
	for _, o := range octants {
		castLight(m, seen, x, y, 1, 1.0, 0.0, radius, o[0], o[1], o[2], o[3])
	}
	return seen
}

// castLight scans one octant row by row, recursing past each opaque run.
// Slopes run from start (1.0) down to end (0.0).
func castLight(m *gamemap.Map, seen mapset.Set[gamemap.Point], cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}
	radiusSq := radius * radius
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := cx + dx*xx + dy*xy
			wy := cy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if dx*dx+dy*dy < radiusSq && m.InBounds(wx, wy) {
				seen.Put(gamemap.Point{X: wx, Y: wy})
			}

			opaque := m.IsOpaque(wx, wy)
			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < radius {
				blocked = true
				castLight(m, seen, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
