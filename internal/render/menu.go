package render

import "fmt"

const (
	menuX     = 15
	menuWidth = 31
)

// DrawMainMenu draws the title and the options, highlighting selected.
func (r *Renderer) DrawMainMenu(title string, options []string, selected int) {
	_, h := r.screen.Size()
	top := h/2 - len(options)/2
	r.drawCentered(top-4, title, styleTitle)
	for i, opt := range options {
		style := styleText
		if i == selected {
			style = styleSelected
		}
		r.drawCentered(top+i, opt, style)
	}
}

// DrawItemMenu draws a boxed list of items labelled (a), (b), ... with a
// title on the top border and footer on the bottom one.
func (r *Renderer) DrawItemMenu(title, footer string, items []string) {
	_, h := r.screen.Size()
	count := len(items)
	y := h/2 - count/2

	r.drawBox(menuX, y-2, menuWidth, count+3)
	r.drawText(menuX+3, y-2, title, styleTitle)
	r.drawText(menuX+3, y+count+1, footer, styleTitle)

	for i, name := range items {
		r.drawText(menuX+2, y+i, fmt.Sprintf("(%c)", 'a'+i), styleTitle)
		r.drawText(menuX+6, y+i, name, styleText)
	}
}

// DrawBanner draws lines centered in the middle of the screen, the first one
// as a title.
func (r *Renderer) DrawBanner(lines ...string) {
	_, h := r.screen.Size()
	top := h/2 - len(lines)/2
	for i, line := range lines {
		style := styleText
		if i == 0 {
			style = styleTitle
		}
		r.drawCentered(top+i, line, style)
	}
}

// drawBox draws a w x h frame with its top-left corner at (x, y) and blanks
// its inside.
func (r *Renderer) drawBox(x, y, w, h int) {
	for row := y; row <= y+h; row++ {
		for col := x; col <= x+w; col++ {
			ch := ' '
			switch {
			case (row == y || row == y+h) && (col == x || col == x+w):
				ch = cornerRune(row == y, col == x)
			case row == y || row == y+h:
				ch = '─'
			case col == x || col == x+w:
				ch = '│'
			}
			r.screen.SetContent(col, row, ch, nil, styleText)
		}
	}
}

func cornerRune(top, left bool) rune {
	switch {
	case top && left:
		return '┌'
	case top:
		return '┐'
	case left:
		return '└'
	}
	return '┘'
}
