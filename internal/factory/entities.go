// Package factory creates fully assembled entities from config templates.
package factory

import (
	"fmt"
	"math/rand"
	"unicode/utf8"

	"belsin/internal/component"
	"belsin/internal/config"
	"belsin/internal/ecs"
	"belsin/internal/gamemap"
	"belsin/internal/generate"

	"github.com/gdamore/tcell/v2"
)

func renderable(glyph, color string, order int) component.Renderable {
	r, _ := utf8.DecodeRuneInString(glyph)
	return component.Renderable{
		Glyph:       r,
		FG:          tcell.GetColor(color),
		BG:          tcell.ColorDefault,
		RenderOrder: order,
	}
}

// NewPlayer creates the player entity at (x, y).
func NewPlayer(w *ecs.World, tmpl config.ActorTemplate, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, renderable(tmpl.Glyph, tmpl.Color, tmpl.RenderOrder))
	w.Add(id, component.Player{})
	w.Add(id, component.NewFov(tmpl.Sight))
	w.Add(id, component.Name{Name: tmpl.Name})
	w.Add(id, component.CombatStats{MaxHP: tmpl.MaxHP, HP: tmpl.MaxHP, Defense: tmpl.Defense, Power: tmpl.Power})
	return id
}

// NewMonster creates a hostile at (x, y).
func NewMonster(w *ecs.World, tmpl config.ActorTemplate, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, renderable(tmpl.Glyph, tmpl.Color, tmpl.RenderOrder))
	w.Add(id, component.NewFov(tmpl.Sight))
	w.Add(id, component.Monster{})
	w.Add(id, component.Name{Name: tmpl.Name})
	w.Add(id, component.BlocksTile{})
	w.Add(id, component.CombatStats{MaxHP: tmpl.MaxHP, HP: tmpl.MaxHP, Defense: tmpl.Defense, Power: tmpl.Power})
	return id
}

// NewItem creates an item lying at (x, y). A heal amount makes it a potion and
// a slot makes it equippable.
func NewItem(w *ecs.World, tmpl config.ItemTemplate, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, renderable(tmpl.Glyph, tmpl.Color, tmpl.RenderOrder))
	w.Add(id, component.Name{Name: tmpl.Name})
	w.Add(id, component.Item{})
	if tmpl.HealAmount > 0 {
		w.Add(id, component.Potion{HealAmount: tmpl.HealAmount})
	}
	switch tmpl.Slot {
	case "weapon":
		w.Add(id, component.Equippable{Slot: component.SlotWeapon})
	case "shield":
		w.Add(id, component.Equippable{Slot: component.SlotShield})
	}
	return id
}

// Spawn creates the monster or item called name at (x, y).
func Spawn(w *ecs.World, cfg *config.Config, name string, x, y int) (ecs.EntityID, error) {
	if m, ok := cfg.Monster(name); ok {
		return NewMonster(w, m, x, y), nil
	}
	if it, ok := cfg.Item(name); ok {
		return NewItem(w, it, x, y), nil
	}
	return ecs.NilEntity, fmt.Errorf("spawn %q: no such monster or item", name)
}

// SpawnRoom rolls and creates everything room receives at depth.
func SpawnRoom(w *ecs.World, cfg *config.Config, room gamemap.Rect, depth int, rng *rand.Rand) ([]ecs.EntityID, error) {
	table := generate.DepthTable(cfg.Spawn.Table, depth)
	var ids []ecs.EntityID
	for _, s := range generate.RoomSpawns(room, depth, table, cfg.Spawn.MaxMonsters, rng) {
		id, err := Spawn(w, cfg, s.Name, s.X, s.Y)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// PopulateLevel spawns into every room of m except the first, which is kept
// clear for the player.
func PopulateLevel(w *ecs.World, cfg *config.Config, m *gamemap.Map, rng *rand.Rand) error {
	for i, room := range m.Rooms {
		if i == 0 {
			continue
		}
		if _, err := SpawnRoom(w, cfg, room, m.Depth, rng); err != nil {
			return fmt.Errorf("room %d: %w", i, err)
		}
	}
	return nil
}
