package render

import (
	"belsin/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// TileLook is how one tile kind is drawn. Lit is used while the tile is in
// view, Dim once it has only been seen before.
type TileLook struct {
	Glyph rune
	Lit   tcell.Color
	Dim   tcell.Color
}

// Tiles maps each tile kind to its look.
var Tiles = map[gamemap.TileKind]TileLook{
	gamemap.TileWall:       {Glyph: '#', Lit: tcell.ColorGreen, Dim: tcell.ColorDimGray},
	gamemap.TileFloor:      {Glyph: '.', Lit: tcell.ColorTeal, Dim: tcell.ColorDimGray},
	gamemap.TileDownStairs: {Glyph: '>', Lit: tcell.ColorAqua, Dim: tcell.ColorGray},
}

var (
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	styleBarFull  = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack)
	styleBarEmpty = tcell.StyleDefault.Foreground(tcell.ColorMaroon).Background(tcell.ColorBlack)
)
