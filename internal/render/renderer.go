// Package render draws the world, the HUD and the menus onto a tcell screen.
// It only reads game state.
package render

import (
	"sort"

	"belsin/internal/component"
	"belsin/internal/ecs"
	"belsin/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen   tcell.Screen
	camera   *Camera
	logLines int
}

// NewRenderer creates a Renderer for the given screen. logLines is how many
// game log entries the HUD shows.
func NewRenderer(screen tcell.Screen, logLines int) *Renderer {
	if logLines < 0 {
		logLines = 0
	}
	w, h := screen.Size()
	r := &Renderer{screen: screen, logLines: logLines}
	r.camera = NewCamera(0, 0, w, h-r.hudRows())
	return r
}

// hudRows is the separator, the status line and the log lines.
func (r *Renderer) hudRows() int { return r.logLines + 2 }

// Camera exposes the camera, mainly for tests.
func (r *Renderer) Camera() *Camera { return r.camera }

// Clear blanks the back buffer.
func (r *Renderer) Clear() { r.screen.Clear() }

// Show flushes the back buffer to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

// DrawMap draws every revealed tile and the entities standing on visible
// tiles, with the camera following the player.
func (r *Renderer) DrawMap(w *ecs.World, m *gamemap.Map, playerID ecs.EntityID) {
	sw, sh := r.screen.Size()
	r.camera.Resize(sw, sh-r.hudRows())
	if pc := w.Get(playerID, component.CPosition); pc != nil {
		pos := pc.(component.Position)
		r.camera.Fit(pos.X, pos.Y, m.Width, m.Height)
	}
	r.drawTiles(m)
	r.drawEntities(w, m)
}

func (r *Renderer) drawTiles(m *gamemap.Map) {
	for i, kind := range m.Tiles {
		if !m.Revealed[i] {
			continue
		}
		x, y := m.XY(i)
		sx, sy, onScreen := r.camera.WorldToScreen(x, y)
		if !onScreen {
			continue
		}
		look, ok := Tiles[kind]
		if !ok {
			continue
		}
		fg := look.Dim
		if m.Visible[i] {
			fg = look.Lit
		}
		r.putGlyph(sx, sy, look.Glyph, tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack))
	}
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	pos  component.Position
	rend component.Renderable
}

// drawEntities draws Position+Renderable entities on visible tiles. Higher
// render orders are drawn first so lower ones end up on top.
func (r *Renderer) drawEntities(w *ecs.World, m *gamemap.Map) {
	ids := w.Query(component.CPosition, component.CRenderable)
	entities := make([]renderableEntity, 0, len(ids))
	for _, id := range ids {
		pos := w.Get(id, component.CPosition).(component.Position)
		if !m.InBounds(pos.X, pos.Y) || !m.Visible[m.Idx(pos.X, pos.Y)] {
			continue
		}
		entities = append(entities, renderableEntity{pos: pos, rend: w.Get(id, component.CRenderable).(component.Renderable)})
	}

	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].rend.RenderOrder > entities[j].rend.RenderOrder
	})

	for _, e := range entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.pos.X, e.pos.Y)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(e.rend.FG).Background(e.rend.BG)
		r.putGlyph(sx, sy, e.rend.Glyph, style)
	}
}

// putGlyph draws a single rune at (x, y), padding the next column when the
// rune is double width.
func (r *Renderer) putGlyph(x, y int, glyph rune, style tcell.Style) {
	r.screen.SetContent(x, y, glyph, nil, style)
	if runewidth.RuneWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
