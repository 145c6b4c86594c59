// Package intent holds one-turn action requests, keyed by the acting entity.
// Each queue is drained and cleared by the system that resolves it.
package intent

import "belsin/internal/ecs"

// Queue holds at most one pending intent per actor, in insertion order.
type Queue[T any] struct {
	order []ecs.EntityID
	items map[ecs.EntityID]T
}

// Set records v for actor, replacing any earlier intent from the same actor.
func (q *Queue[T]) Set(actor ecs.EntityID, v T) {
	if q.items == nil {
		q.items = make(map[ecs.EntityID]T)
	}
	if _, ok := q.items[actor]; !ok {
		q.order = append(q.order, actor)
	}
	q.items[actor] = v
}

// Get returns actor's pending intent.
func (q *Queue[T]) Get(actor ecs.EntityID) (T, bool) {
	v, ok := q.items[actor]
	return v, ok
}

// Each visits intents in the order actors first queued them. It stops early
// when fn returns an error.
func (q *Queue[T]) Each(fn func(actor ecs.EntityID, v T) error) error {
	for _, actor := range q.order {
		if err := fn(actor, q.items[actor]); err != nil {
			return err
		}
	}
	return nil
}

func (q *Queue[T]) Len() int { return len(q.order) }

func (q *Queue[T]) Clear() {
	q.order = q.order[:0]
	clear(q.items)
}

// Pickup asks for Item to go into CollectedBy's backpack.
type Pickup struct {
	Item        ecs.EntityID
	CollectedBy ecs.EntityID
}

// Queues groups every intent kind the turn pipeline resolves.
type Queues struct {
	Attack Queue[ecs.EntityID] // actor → target
	Pickup Queue[Pickup]
	Drink  Queue[ecs.EntityID] // actor → item to drink or equip
	Drop   Queue[ecs.EntityID] // actor → item to drop
}

// Clear empties every queue.
func (q *Queues) Clear() {
	q.Attack.Clear()
	q.Pickup.Clear()
	q.Drink.Clear()
	q.Drop.Clear()
}

// Len is the total number of pending intents.
func (q *Queues) Len() int {
	return q.Attack.Len() + q.Pickup.Len() + q.Drink.Len() + q.Drop.Len()
}
