package render

import (
	"fmt"

	"belsin/internal/component"
	"belsin/internal/ecs"
	"belsin/internal/gamelog"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	depthX   = 2
	hpX      = 12
	barX     = 28
	barWidth = 51
)

// DrawHUD renders the status line and the most recent log entries, newest
// first, under the map.
func (r *Renderer) DrawHUD(w *ecs.World, playerID ecs.EntityID, depth int, log *gamelog.Log) {
	sw, sh := r.screen.Size()
	hudY := sh - r.hudRows()

	r.drawHLine(hudY, tcell.ColorGray)

	r.drawText(depthX, hudY+1, fmt.Sprintf("Depth: %d", depth), styleTitle)
	if c := w.Get(playerID, component.CCombatStats); c != nil {
		stats := c.(component.CombatStats)
		r.drawText(hpX, hudY+1, fmt.Sprintf("HP: %d / %d", stats.HP, stats.MaxHP), styleTitle)
		r.drawBar(barX, hudY+1, min(barWidth, sw-barX), stats.HP, stats.MaxHP)
	}

	recent := log.Recent(r.logLines)
	for i := range recent {
		r.drawText(depthX, hudY+2+i, recent[len(recent)-1-i], styleText)
	}
}

// drawBar draws a width-cell bar filled in proportion to value/maxValue.
func (r *Renderer) drawBar(x, y, width, value, maxValue int) {
	if width <= 0 {
		return
	}
	filled := 0
	if maxValue > 0 && value > 0 {
		filled = min(width, value*width/maxValue)
	}
	for i := 0; i < width; i++ {
		if i < filled {
			r.screen.SetContent(x+i, y, '█', nil, styleBarFull)
		} else {
			r.screen.SetContent(x+i, y, '░', nil, styleBarEmpty)
		}
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from (x, y), advancing by each rune's cell width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
}

// drawCentered writes text centered on row y.
func (r *Renderer) drawCentered(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.drawText((w-runewidth.StringWidth(text))/2, y, text, style)
}
