package ecs

import "fmt"

// EntityID identifies an entity. The low 32 bits hold the slot index and the
// high 32 bits its generation, so a recycled slot never matches an old ID.
type EntityID uint64

// NilEntity is the zero value; no valid entity has this ID.
const NilEntity EntityID = 0

func makeID(index, gen uint32) EntityID {
	return EntityID(uint64(gen)<<32 | uint64(index))
}

// Index returns the slot index of the entity.
func (id EntityID) Index() uint32 { return uint32(id) }

// Generation returns the generation the ID was minted with.
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }

func (id EntityID) String() string {
	if id == NilEntity {
		return "entity(nil)"
	}
	return fmt.Sprintf("entity(%d@%d)", id.Index(), id.Generation())
}

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}
