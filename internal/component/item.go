package component

import "belsin/internal/ecs"

const (
	CItem       ecs.ComponentType = 10
	CPotion     ecs.ComponentType = 11
	CEquippable ecs.ComponentType = 12
	CEquipped   ecs.ComponentType = 13
	CInBackpack ecs.ComponentType = 14
)

// EquipmentSlot is where an equippable item is worn.
type EquipmentSlot uint8

const (
	SlotWeapon EquipmentSlot = iota
	SlotShield
)

func (s EquipmentSlot) String() string {
	switch s {
	case SlotWeapon:
		return "weapon"
	case SlotShield:
		return "shield"
	}
	return "unknown"
}

// Item marks something that can be picked up.
type Item struct{}

func (Item) Type() ecs.ComponentType { return CItem }

type Potion struct {
	HealAmount int
}

func (Potion) Type() ecs.ComponentType { return CPotion }

type Equippable struct {
	Slot EquipmentSlot
}

func (Equippable) Type() ecs.ComponentType { return CEquippable }

// Equipped means the item is worn by Owner. An item is on the ground
// (Position), in a backpack (InBackpack) or worn (Equipped); never two at once.
type Equipped struct {
	Owner ecs.EntityID
	Slot  EquipmentSlot
}

func (Equipped) Type() ecs.ComponentType { return CEquipped }

type InBackpack struct {
	Owner ecs.EntityID
}

func (InBackpack) Type() ecs.ComponentType { return CInBackpack }
