package component

import "belsin/internal/ecs"

const (
	CCombatStats  ecs.ComponentType = 4
	CSufferDamage ecs.ComponentType = 5
	CName         ecs.ComponentType = 6
)

// CombatStats holds health and melee numbers. HP may dip below zero until
// corpse removal runs.
type CombatStats struct {
	MaxHP, HP      int
	Defense, Power int
}

// Heal raises HP by amount, capped at MaxHP.
func (s CombatStats) Heal(amount int) CombatStats {
	s.HP = min(s.MaxHP, s.HP+amount)
	return s
}

func (CombatStats) Type() ecs.ComponentType { return CCombatStats }

// SufferDamage accumulates damage that has not been applied yet.
type SufferDamage struct {
	Amounts []int
}

func (SufferDamage) Type() ecs.ComponentType { return CSufferDamage }

// AddDamage appends amount to id's pending damage.
func AddDamage(w *ecs.World, id ecs.EntityID, amount int) {
	var sd SufferDamage
	if c := w.Get(id, CSufferDamage); c != nil {
		sd = c.(SufferDamage)
	}
	sd.Amounts = append(sd.Amounts, amount)
	w.Add(id, sd)
}

type Name struct {
	Name string
}

func (Name) Type() ecs.ComponentType { return CName }

// NameOf returns the entity's display name, or "something" when it has none.
func NameOf(w *ecs.World, id ecs.EntityID) string {
	if c := w.Get(id, CName); c != nil {
		return c.(Name).Name
	}
	return "something"
}
