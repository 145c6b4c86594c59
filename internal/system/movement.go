package system

import (
	"belsin/internal/component"
	"belsin/internal/gamemap"
	"belsin/internal/intent"
)

// MoveResult describes what a player move attempt did.
type MoveResult uint8

const (
	MoveNone   MoveResult = iota // off the map or blocked
	MoveOK                       // position updated
	MoveAttack                   // an attack intent was queued
)

// TryMovePlayer moves the player by (dx, dy), or queues an attack when the
// destination holds anything with combat stats. It relies on the occupant
// lists from the last MapIndex run.
func TryMovePlayer(ctx *Context, dx, dy int) (MoveResult, error) {
	w, m := ctx.World, ctx.Map
	pos, err := ctx.PlayerPos()
	if err != nil {
		return MoveNone, err
	}
	nx, ny := pos.X+dx, pos.Y+dy
	if !m.InBounds(nx, ny) {
		return MoveNone, nil
	}
	dest := m.Idx(nx, ny)

	for _, other := range m.Content[dest] {
		if other == ctx.Player || !w.Has(other, component.CCombatStats) {
			continue
		}
		ctx.Intents.Attack.Set(ctx.Player, other)
		return MoveAttack, nil
	}

	if m.IsBlocked(nx, ny) {
		return MoveNone, nil
	}
	w.Add(ctx.Player, component.Position{X: nx, Y: ny})
	if fc := w.Get(ctx.Player, component.CFov); fc != nil {
		fov := fc.(component.Fov)
		fov.Dirty = true
		w.Add(ctx.Player, fov)
	}
	return MoveOK, nil
}

// QueuePickup asks to pick up an item lying on the player's tile. It reports
// false, and logs why, when there is nothing there.
func QueuePickup(ctx *Context) (bool, error) {
	w := ctx.World
	pos, err := ctx.PlayerPos()
	if err != nil {
		return false, err
	}
	for _, id := range w.Query(component.CItem, component.CPosition) {
		if w.Get(id, component.CPosition).(component.Position) == pos {
			ctx.Intents.Pickup.Set(ctx.Player, intent.Pickup{Item: id, CollectedBy: ctx.Player})
			return true, nil
		}
	}
	ctx.Log.Add("There is nothing here to pick up.")
	return false, nil
}

// SkipTurn heals the player by 1 hp unless a monster is in sight.
func SkipTurn(ctx *Context) error {
	w := ctx.World
	fc := w.Get(ctx.Player, component.CFov)
	if fc == nil {
		return invariant("player %v has no field of view", ctx.Player)
	}
	fov := fc.(component.Fov)
	for _, id := range w.Query(component.CMonster, component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		if fov.Sees(pos.X, pos.Y) {
			return nil
		}
	}
	stats, ok := ctx.stats(ctx.Player)
	if !ok {
		return invariant("player %v has no combat stats", ctx.Player)
	}
	w.Add(ctx.Player, stats.Heal(1))
	return nil
}

// CanDescend reports whether the player stands on down stairs, logging a
// message when they do not.
func CanDescend(ctx *Context) (bool, error) {
	pos, err := ctx.PlayerPos()
	if err != nil {
		return false, err
	}
	if ctx.Map.At(pos.X, pos.Y) == gamemap.TileDownStairs {
		return true, nil
	}
	ctx.Log.Add("There is no way down from here.")
	return false, nil
}
