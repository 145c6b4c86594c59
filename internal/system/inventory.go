package system

import (
	"belsin/internal/component"
	"belsin/internal/ecs"
	"belsin/internal/intent"
)

// Pickup moves requested items from the ground into the collector's backpack.
func Pickup(ctx *Context) error {
	w := ctx.World
	defer ctx.Intents.Pickup.Clear()

	return ctx.Intents.Pickup.Each(func(_ ecs.EntityID, p intent.Pickup) error {
		if !w.Alive(p.Item) {
			return invariant("pickup of dead item %v", p.Item)
		}
		w.Remove(p.Item, component.CPosition)
		w.Remove(p.Item, component.CEquipped)
		w.Add(p.Item, component.InBackpack{Owner: p.CollectedBy})

		if p.CollectedBy == ctx.Player {
			name, err := ctx.nameOf(p.Item)
			if err != nil {
				return err
			}
			ctx.Log.Addf("%s has been picked up.", name)
		}
		return nil
	})
}

// DrinkOrEquip resolves use requests. A potion heals its user and is consumed.
// An equippable item is worn, first returning whatever the user wore in that
// slot to their backpack. An item carrying both does both.
func DrinkOrEquip(ctx *Context) error {
	w := ctx.World
	defer ctx.Intents.Drink.Clear()

	return ctx.Intents.Drink.Each(func(user, item ecs.EntityID) error {
		stats, ok := ctx.stats(user)
		if !ok {
			return nil
		}
		if !w.Alive(item) {
			return invariant("%v uses dead item %v", user, item)
		}
		isPlayer := user == ctx.Player
		name, err := ctx.nameOf(item)
		if err != nil {
			return err
		}

		if pc := w.Get(item, component.CPotion); pc != nil {
			heal := pc.(component.Potion).HealAmount
			w.Add(user, stats.Heal(heal))
			if isPlayer {
				ctx.Log.Addf("You drink the %s, healing %d hp.", name, heal)
			}
			w.QueueDestroy(item)
		}

		if ec := w.Get(item, component.CEquippable); ec != nil {
			slot := ec.(component.Equippable).Slot
			if err := unequipSlot(ctx, user, slot); err != nil {
				return err
			}
			w.Remove(item, component.CInBackpack)
			w.Remove(item, component.CPosition)
			w.Add(item, component.Equipped{Owner: user, Slot: slot})
			if isPlayer {
				ctx.Log.Addf("You have equipped %s.", name)
			}
		}
		return nil
	})
}

// unequipSlot moves whatever owner wears in slot back into owner's backpack.
func unequipSlot(ctx *Context, owner ecs.EntityID, slot component.EquipmentSlot) error {
	w := ctx.World
	for _, id := range w.Query(component.CEquipped) {
		eq := w.Get(id, component.CEquipped).(component.Equipped)
		if eq.Owner != owner || eq.Slot != slot {
			continue
		}
		w.Remove(id, component.CEquipped)
		w.Add(id, component.InBackpack{Owner: owner})
		if owner == ctx.Player {
			name, err := ctx.nameOf(id)
			if err != nil {
				return err
			}
			ctx.Log.Addf("%s has been unequipped.", name)
		}
	}
	return nil
}

// Drop puts requested items on the ground at the dropper's feet.
func Drop(ctx *Context) error {
	w := ctx.World
	defer ctx.Intents.Drop.Clear()

	return ctx.Intents.Drop.Each(func(dropper, item ecs.EntityID) error {
		pc := w.Get(dropper, component.CPosition)
		if pc == nil {
			return invariant("dropper %v has no position", dropper)
		}
		if !w.Alive(item) {
			return invariant("%v drops dead item %v", dropper, item)
		}
		w.Add(item, pc.(component.Position))
		w.Remove(item, component.CInBackpack)
		w.Remove(item, component.CEquipped)

		if dropper == ctx.Player {
			name, err := ctx.nameOf(item)
			if err != nil {
				return err
			}
			ctx.Log.Addf("You dropped the %s.", name)
		}
		return nil
	})
}

// Backpack lists the items in owner's backpack in id order.
func Backpack(w *ecs.World, owner ecs.EntityID) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range w.Query(component.CItem, component.CInBackpack) {
		if w.Get(id, component.CInBackpack).(component.InBackpack).Owner == owner {
			out = append(out, id)
		}
	}
	return out
}
