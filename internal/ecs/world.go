package ecs

import (
	"fmt"
	"slices"
)

// World is the central entity registry and component store.
type World struct {
	generations []uint32 // current generation per slot; slot 0 is reserved
	alive       []bool
	free        []uint32
	components  map[ComponentType]map[EntityID]Component
	pending     []command
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		generations: []uint32{0},
		alive:       []bool{false},
		components:  make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new entity ID and marks it alive. Freed slots are
// reused with a bumped generation.
func (w *World) CreateEntity() EntityID {
	if n := len(w.free); n > 0 {
		idx := w.free[n-1]
		w.free = w.free[:n-1]
		w.generations[idx]++
		w.alive[idx] = true
		return makeID(idx, w.generations[idx])
	}
	idx := uint32(len(w.generations))
	w.generations = append(w.generations, 0)
	w.alive = append(w.alive, true)
	return makeID(idx, 0)
}

// DestroyEntity marks the entity dead and removes all its components.
// Destroying a dead or stale ID is a no-op.
func (w *World) DestroyEntity(id EntityID) {
	if !w.Alive(id) {
		return
	}
	idx := id.Index()
	w.alive[idx] = false
	w.free = append(w.free, idx)
	for _, store := range w.components {
		delete(store, id)
	}
}

// Alive reports whether the entity is alive and id carries its current generation.
func (w *World) Alive(id EntityID) bool {
	idx := id.Index()
	if idx == 0 || int(idx) >= len(w.alive) {
		return false
	}
	return w.alive[idx] && w.generations[idx] == id.Generation()
}

// Add attaches a component to an entity, replacing any previous component of
// the same type. Panics if id is dead or stale.
func (w *World) Add(id EntityID, c Component) {
	if !w.Alive(id) {
		panic(staleError("add component", id))
	}
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Query returns all alive entities that have every listed component type,
// ordered by slot index.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	// Use the smallest store as the candidate set.
	smallest := types[0]
	for _, t := range types[1:] {
		if len(w.components[t]) < len(w.components[smallest]) {
			smallest = t
		}
	}
	store := w.components[smallest]
	if store == nil {
		return nil
	}
	var result []EntityID
	for id := range store {
		if !w.Alive(id) {
			continue
		}
		match := true
		for _, t := range types {
			if t == smallest {
				continue
			}
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	sortIDs(result)
	return result
}

// Entities returns every alive entity ordered by slot index.
func (w *World) Entities() []EntityID {
	var out []EntityID
	for idx := 1; idx < len(w.alive); idx++ {
		if w.alive[idx] {
			out = append(out, makeID(uint32(idx), w.generations[idx]))
		}
	}
	return out
}

// Count returns the number of alive entities.
func (w *World) Count() int {
	n := 0
	for _, a := range w.alive {
		if a {
			n++
		}
	}
	return n
}

func sortIDs(ids []EntityID) {
	slices.SortFunc(ids, func(a, b EntityID) int {
		return int(a.Index()) - int(b.Index())
	})
}

func staleError(op string, id EntityID) error {
	return fmt.Errorf("%s on %v: %w: %w", op, id, ErrInvariant, ErrStaleEntity)
}
