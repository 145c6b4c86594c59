package system

import (
	"testing"

	"belsin/internal/component"
	"belsin/internal/ecs"
	"belsin/internal/gamelog"
	"belsin/internal/gamemap"
	"belsin/internal/intent"
	"belsin/internal/logger"
)

// roomMap returns a w×h map whose interior is floor, walled at the edges.
func roomMap(w, h int) *gamemap.Map {
	m := gamemap.New(w, h, 1)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.Set(x, y, gamemap.TileFloor)
		}
	}
	m.Rooms = []gamemap.Rect{{X1: 1, Y1: 1, X2: w - 2, Y2: h - 2}}
	m.PopulateBlocked()
	return m
}

// newTestContext builds a 20×12 room with the player standing at (px, py).
func newTestContext(t *testing.T, px, py int) *Context {
	t.Helper()
	w := ecs.NewWorld()
	player := w.CreateEntity()
	w.Add(player, component.Player{})
	w.Add(player, component.Name{Name: "Player"})
	w.Add(player, component.Position{X: px, Y: py})
	w.Add(player, component.NewFov(8))
	w.Add(player, component.CombatStats{MaxHP: 30, HP: 30, Defense: 2, Power: 5})

	return &Context{
		World:   w,
		Map:     roomMap(20, 12),
		Log:     gamelog.New(),
		Intents: &intent.Queues{},
		Player:  player,
		Phase:   PhasePlayer,
		Logger:  logger.Discard().WithField("test", t.Name()),
	}
}

func addMonster(ctx *Context, name string, x, y int) ecs.EntityID {
	w := ctx.World
	id := w.CreateEntity()
	w.Add(id, component.Monster{})
	w.Add(id, component.BlocksTile{})
	w.Add(id, component.Name{Name: name})
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.NewFov(8))
	w.Add(id, component.CombatStats{MaxHP: 16, HP: 16, Defense: 1, Power: 4})
	return id
}

func addPotion(ctx *Context, x, y, heal int) ecs.EntityID {
	w := ctx.World
	id := w.CreateEntity()
	w.Add(id, component.Item{})
	w.Add(id, component.Name{Name: "Health Potion"})
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Potion{HealAmount: heal})
	return id
}

func addGear(ctx *Context, name string, slot component.EquipmentSlot, owner ecs.EntityID) ecs.EntityID {
	w := ctx.World
	id := w.CreateEntity()
	w.Add(id, component.Item{})
	w.Add(id, component.Name{Name: name})
	w.Add(id, component.Equippable{Slot: slot})
	w.Add(id, component.InBackpack{Owner: owner})
	return id
}

func hpOf(ctx *Context, id ecs.EntityID) int {
	return ctx.World.Get(id, component.CCombatStats).(component.CombatStats).HP
}

func posOf(ctx *Context, id ecs.EntityID) component.Position {
	return ctx.World.Get(id, component.CPosition).(component.Position)
}

func fovOf(ctx *Context, id ecs.EntityID) component.Fov {
	return ctx.World.Get(id, component.CFov).(component.Fov)
}

// itemState counts how many of the three location states an item is in.
func itemState(w *ecs.World, id ecs.EntityID) int {
	n := 0
	for _, t := range []ecs.ComponentType{component.CPosition, component.CInBackpack, component.CEquipped} {
		if w.Has(id, t) {
			n++
		}
	}
	return n
}
