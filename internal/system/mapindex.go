package system

import "belsin/internal/component"

// MapIndex rebuilds the map's Blocked flags and per-tile occupant lists from
// current positions. Occupants are appended in entity id order.
func MapIndex(ctx *Context) error {
	w, m := ctx.World, ctx.Map
	m.PopulateBlocked()
	m.ClearContent()
	for _, id := range w.Query(component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		if !m.InBounds(pos.X, pos.Y) {
			return invariant("entity %v at (%d,%d) is off the map", id, pos.X, pos.Y)
		}
		i := m.Idx(pos.X, pos.Y)
		if w.Has(id, component.CBlocksTile) {
			m.Blocked[i] = true
		}
		m.Content[i] = append(m.Content[i], id)
	}
	return nil
}
