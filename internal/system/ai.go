package system

import (
	"math"

	"belsin/internal/component"
	"belsin/internal/pathfind"

	"github.com/sirupsen/logrus"
)

// adjacent is the distance under which a monster attacks instead of moving.
// It admits diagonal neighbours (√2) but nothing farther.
const adjacent = 1.5

// MonsterAI decides for every monster whether to attack the player or step
// toward them. It does nothing outside the monster phase.
func MonsterAI(ctx *Context) error {
	if ctx.Phase != PhaseMonster {
		return nil
	}
	w, m := ctx.World, ctx.Map
	ppos, err := ctx.PlayerPos()
	if err != nil {
		return err
	}
	log := ctx.Logger.WithField("system", "monster-ai")
	target := m.Idx(ppos.X, ppos.Y)

	for _, id := range w.Query(component.CMonster, component.CFov, component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		fov := w.Get(id, component.CFov).(component.Fov)

		dx, dy := float64(ppos.X-pos.X), float64(ppos.Y-pos.Y)
		if math.Sqrt(dx*dx+dy*dy) < adjacent {
			ctx.Intents.Attack.Set(id, ctx.Player)
			continue
		}
		if !fov.Sees(ppos.X, ppos.Y) {
			continue
		}

		from := m.Idx(pos.X, pos.Y)
		path := pathfind.AStar(m, from, target)
		if !path.Success || len(path.Steps) < 2 {
			log.WithFields(logrus.Fields{"entity": id, "from": pos}).Debug("no path to player")
			continue
		}
		next := path.Steps[1]
		nx, ny := m.XY(next)
		m.Blocked[from] = false
		m.Blocked[next] = true
		w.Add(id, component.Position{X: nx, Y: ny})
		fov.Dirty = true
		w.Add(id, fov)
	}
	return nil
}
