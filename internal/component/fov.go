package component

import (
	"belsin/internal/ecs"
	"belsin/internal/gamemap"

	"github.com/zyedidia/generic/mapset"
)

const CFov ecs.ComponentType = 3

// Fov is an entity's field of view. Visible is recomputed only while Dirty.
type Fov struct {
	Visible mapset.Set[gamemap.Point]
	Range   int
	Dirty   bool
}

// NewFov returns a dirty Fov with an empty visible set.
func NewFov(sightRange int) Fov {
	return Fov{Visible: mapset.New[gamemap.Point](), Range: sightRange, Dirty: true}
}

// Sees reports whether (x, y) is in the visible set.
func (f Fov) Sees(x, y int) bool {
	return f.Visible.Has(gamemap.Point{X: x, Y: y})
}

func (Fov) Type() ecs.ComponentType { return CFov }
