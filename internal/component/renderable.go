package component

import (
	"belsin/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 2

// Renderable is drawn by the UI only. Higher RenderOrder is drawn first, so
// order 0 ends up on top of anything sharing its tile.
type Renderable struct {
	Glyph       rune
	FG, BG      tcell.Color
	RenderOrder int
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
