package system

import (
	"belsin/internal/component"

	"github.com/sirupsen/logrus"
)

// ApplyDamage sums each entity's pending damage into its hp and clears the
// accumulator. HP may go negative here; corpses are removed later.
func ApplyDamage(ctx *Context) error {
	w := ctx.World
	for _, id := range w.Query(component.CSufferDamage) {
		sd := w.Get(id, component.CSufferDamage).(component.SufferDamage)
		w.Remove(id, component.CSufferDamage)

		stats, ok := ctx.stats(id)
		if !ok {
			return invariant("entity %v took damage without combat stats", id)
		}
		total := 0
		for _, a := range sd.Amounts {
			total += a
		}
		stats.HP -= total
		w.Add(id, stats)
	}
	return nil
}

// RemoveCorpses destroys every non-player entity at or below zero hp. It
// never destroys the player; it reports whether the player has died instead.
func RemoveCorpses(ctx *Context) (playerDead bool, err error) {
	w := ctx.World
	log := ctx.Logger.WithField("system", "corpses")
	for _, id := range w.Query(component.CCombatStats) {
		stats := w.Get(id, component.CCombatStats).(component.CombatStats)
		if stats.HP > 0 {
			continue
		}
		if id == ctx.Player {
			playerDead = true
			continue
		}
		log.WithFields(logrus.Fields{
			"entity": id,
			"name":   component.NameOf(w, id),
		}).Debug("removing corpse")
		w.QueueDestroy(id)
	}
	if err := w.Maintain(); err != nil {
		return playerDead, err
	}
	return playerDead, nil
}
