package system

import (
	"belsin/internal/component"
	"belsin/internal/ecs"
)

// Damage is the melee formula: power minus defense, never below zero.
func Damage(attacker, target component.CombatStats) int {
	return max(0, attacker.Power-target.Defense)
}

// MeleeCombat turns attack intents into pending damage and log lines.
// Attacks by dying attackers and on dying targets are skipped.
func MeleeCombat(ctx *Context) error {
	w := ctx.World
	defer ctx.Intents.Attack.Clear()

	return ctx.Intents.Attack.Each(func(attacker, target ecs.EntityID) error {
		as, ok := ctx.stats(attacker)
		if !ok {
			return invariant("attacker %v has no combat stats", attacker)
		}
		if as.HP <= 0 {
			return nil
		}
		if !w.Alive(target) {
			return nil
		}
		ts, ok := ctx.stats(target)
		if !ok {
			return invariant("attack target %v has no combat stats", target)
		}
		if ts.HP <= 0 {
			return nil
		}

		an, err := ctx.nameOf(attacker)
		if err != nil {
			return err
		}
		tn, err := ctx.nameOf(target)
		if err != nil {
			return err
		}

		dmg := Damage(as, ts)
		if dmg == 0 {
			ctx.Log.Addf("%s is unable to hurt %s.", an, tn)
			return nil
		}
		ctx.Log.Addf("%s hits %s, for %d hp.", an, tn, dmg)
		component.AddDamage(w, target, dmg)
		return nil
	})
}
