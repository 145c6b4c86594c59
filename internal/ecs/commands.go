package ecs

import "errors"

type commandKind uint8

const (
	cmdCreate commandKind = iota
	cmdAdd
	cmdDestroy
)

type command struct {
	kind  commandKind
	id    EntityID
	comps []Component
}

// QueueCreate defers creation of an entity carrying comps until Maintain.
func (w *World) QueueCreate(comps ...Component) {
	w.pending = append(w.pending, command{kind: cmdCreate, comps: comps})
}

// QueueAdd defers attaching c to id until Maintain.
func (w *World) QueueAdd(id EntityID, c Component) {
	w.pending = append(w.pending, command{kind: cmdAdd, id: id, comps: []Component{c}})
}

// QueueDestroy defers destruction of id until Maintain. The entity stays
// alive and queryable until then.
func (w *World) QueueDestroy(id EntityID) {
	w.pending = append(w.pending, command{kind: cmdDestroy, id: id})
}

// Pending returns the number of queued structural changes.
func (w *World) Pending() int { return len(w.pending) }

// PendingDestroy reports whether id is queued for destruction.
func (w *World) PendingDestroy(id EntityID) bool {
	for _, c := range w.pending {
		if c.kind == cmdDestroy && c.id == id {
			return true
		}
	}
	return false
}

// Maintain commits queued commands: creations and attaches in queue order,
// then destructions. Attaches aimed at entities that are no longer alive are
// reported as invariant errors; the rest of the batch is still applied.
func (w *World) Maintain() error {
	cmds := w.pending
	w.pending = nil

	var errs []error
	for _, c := range cmds {
		switch c.kind {
		case cmdCreate:
			id := w.CreateEntity()
			for _, comp := range c.comps {
				w.Add(id, comp)
			}
		case cmdAdd:
			if !w.Alive(c.id) {
				errs = append(errs, staleError("queued add", c.id))
				continue
			}
			w.Add(c.id, c.comps[0])
		}
	}
	for _, c := range cmds {
		if c.kind == cmdDestroy {
			w.DestroyEntity(c.id)
		}
	}
	return errors.Join(errs...)
}
